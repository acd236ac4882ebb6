package bloom

import "github.com/spaolacci/murmur3"

// Murmur3Hasher is a seeded-family alternative to the default digest
// chain: round i hashes the input under seed i, so every round is an
// independent hash of the input rather than a link in a chain. Use it
// where the statistical weakness of chaining matters more than keeping to
// a single unkeyed primitive.
type Murmur3Hasher struct{}

func (Murmur3Hasher) Indexes(k uint32, mBits uint64, data []byte) []uint64 {
	indexes := make([]uint64, k)
	for i := uint32(0); i < k; i++ {
		indexes[i] = murmur3.Sum64WithSeed(data, i) % mBits
	}
	return indexes
}
