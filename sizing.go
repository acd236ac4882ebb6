package bloom

import (
	"fmt"
	"math"
)

// ln2Squared is (ln 2)^2, the denominator of the optimal bit count.
const ln2Squared = math.Ln2 * math.Ln2

// maxBits bounds the derived bit count so it downcasts safely to uint64.
const maxBits = float64(1 << 62)

// EstimateParameters derives the filter geometry for n expected elements
// at target false positive rate p:
//
//	m = ceil(-n * ln(p) / ln(2)^2)    total bits
//	k = round(ln(2) * m / n)          hash rounds
//
// m uses ceiling rounding so the filter is never under-provisioned. k is
// clamped to a minimum of 1: for lax rates the rounding reaches 0, and a
// zero-round filter would answer "maybe present" for every query.
// byteLength is ceil(m/8), the buffer size backing m bits.
//
// The function is pure and deterministic; identical inputs produce
// identical geometry across calls and across processes.
func EstimateParameters(n uint64, p float64) (m uint64, k uint32, byteLength uint64, err error) {
	if n == 0 {
		return 0, 0, 0, fmt.Errorf("%w: estimated elements must be greater than zero", ErrInvalidParameter)
	}
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return 0, 0, 0, fmt.Errorf("%w: false positive rate must be in (0, 1), got %v", ErrInvalidParameter, p)
	}

	mf := math.Ceil(-float64(n) * math.Log(p) / ln2Squared)
	if mf >= maxBits {
		return 0, 0, 0, fmt.Errorf("%w: derived bit count overflows", ErrInvalidParameter)
	}
	m = uint64(mf)

	kf := math.Round(math.Ln2 * mf / float64(n))
	if kf < 1 {
		kf = 1
	}
	k = uint32(kf)

	byteLength = (m + 7) / 8
	return m, k, byteLength, nil
}
