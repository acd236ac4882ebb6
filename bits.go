package bloom

import "fmt"

// bitSet is a fixed-size bit array over a byte buffer, packed LSB first:
// bit i lives at byte i/8 under mask 1<<(i%8) (BitOrderLSB0).
//
// Indices are produced by a Hasher, whose contract already bounds them to
// [0, mBits); set and check assert the bound anyway, since a misbehaving
// Hasher would otherwise corrupt or misread neighbouring state.
type bitSet struct {
	bits  []byte
	mBits uint64
}

func newBitSet(mBits, byteLength uint64) bitSet {
	return bitSet{bits: make([]byte, byteLength), mBits: mBits}
}

// set marks bit i. Idempotent.
func (b bitSet) set(i uint64) {
	if i >= b.mBits {
		panic(fmt.Sprintf("bloom: bit index %d out of range [0, %d)", i, b.mBits))
	}
	b.bits[i>>3] |= 1 << (i & 7)
}

// check reports whether bit i is marked.
func (b bitSet) check(i uint64) bool {
	if i >= b.mBits {
		panic(fmt.Sprintf("bloom: bit index %d out of range [0, %d)", i, b.mBits))
	}
	return b.bits[i>>3]&(1<<(i&7)) != 0
}

// clearAll zeroes every bit, keeping the buffer.
func (b bitSet) clearAll() {
	clear(b.bits)
}
