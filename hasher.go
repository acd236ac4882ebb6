package bloom

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
)

// Hasher turns one input into k bit indices for a filter of mBits bits.
//
// Implementations must be deterministic and must return exactly k values,
// each in [0, mBits). A filter's add/check guarantees only hold while the
// same Hasher observes the same inputs, so a Hasher must not carry state
// between calls.
type Hasher interface {
	Indexes(k uint32, mBits uint64, data []byte) []uint64
}

// ChainHasher derives k indices from a single digest primitive by
// chaining: round 0 digests the input bytes, and each later round digests
// the raw digest produced by the round before it. The first 8 bytes of
// each round's digest are read big-endian and reduced modulo mBits.
//
// Chaining trades true per-round independence for the ability to derive
// arbitrarily many indices from one primitive. The digest width must be at
// least 8 bytes.
type ChainHasher struct {
	// New returns a fresh digest. It is invoked once per Indexes call.
	New func() hash.Hash
}

// DefaultHasher returns the SHA-256 chain hasher installed when a filter
// is constructed without an explicit Hasher.
func DefaultHasher() Hasher {
	return ChainHasher{New: sha256.New}
}

func (c ChainHasher) Indexes(k uint32, mBits uint64, data []byte) []uint64 {
	indexes := make([]uint64, k)
	h := c.New()
	var digest []byte
	for i := uint32(0); i < k; i++ {
		h.Reset()
		if i == 0 {
			_, _ = h.Write(data)
		} else {
			_, _ = h.Write(digest)
		}
		digest = h.Sum(digest[:0])
		indexes[i] = binary.BigEndian.Uint64(digest[:8]) % mBits
	}
	return indexes
}
