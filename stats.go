package bloom

import (
	"fmt"
	"math"
)

// CurrentFalsePositiveRate estimates the live false positive probability
// as (1 - e^(-k*n/m))^k, where n is the number of elements actually added
// rather than the construction-time capacity hint. The estimate is
// monotonically non-decreasing in the element count and climbs past the
// construction target once the filter is loaded beyond its capacity.
func (f *Filter) CurrentFalsePositiveRate() float64 {
	if f.live() != nil {
		return 0
	}
	load := math.Exp(-float64(f.kHashes) * float64(f.elementsAdded) / float64(f.mBits))
	return math.Pow(1-load, float64(f.kHashes))
}

// Stats is a read-only snapshot of a filter's parameters and load.
type Stats struct {
	EstimatedElements        uint64
	FalsePositiveRate        float64
	NumberBits               uint64
	NumberHashes             uint32
	ByteLength               uint64
	ElementsAdded            uint64
	CurrentFalsePositiveRate float64
}

// Stats snapshots the filter. It never mutates the filter; a destroyed
// filter yields the zero snapshot.
func (f *Filter) Stats() Stats {
	if f.live() != nil {
		return Stats{}
	}
	return Stats{
		EstimatedElements:        f.estimatedElements,
		FalsePositiveRate:        float64(f.falsePositiveRate),
		NumberBits:               f.mBits,
		NumberHashes:             f.kHashes,
		ByteLength:               uint64(len(f.bits.bits)),
		ElementsAdded:            f.elementsAdded,
		CurrentFalsePositiveRate: f.CurrentFalsePositiveRate(),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf(`BloomFilter
	bits: %d
	estimated elements: %d
	number hashes: %d
	max false positive rate: %f
	byte length: %d
	elements added: %d
	current false positive rate: %f
`,
		s.NumberBits, s.EstimatedElements, s.NumberHashes,
		s.FalsePositiveRate, s.ByteLength, s.ElementsAdded,
		s.CurrentFalsePositiveRate)
}
