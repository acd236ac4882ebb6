package bloom

// Filter is a probabilistic membership set sized for a target false
// positive rate. Check never produces a false negative for an input that
// was previously added under the same Hasher; "present" answers may be
// false positives at a rate bounded near the construction target.
//
// A Filter is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own mutual exclusion around add, check,
// export and import.
type Filter struct {
	estimatedElements uint64
	falsePositiveRate float32
	mBits             uint64
	kHashes           uint32
	elementsAdded     uint64
	bits              bitSet
	hasher            Hasher
}

// New constructs a filter sized for n elements at target false positive
// rate p, with the default SHA-256 chain hasher installed.
func New(n uint64, p float64) (*Filter, error) {
	return NewWithHasher(n, p, nil)
}

// NewWithHasher constructs a filter with an explicit Hasher; nil installs
// the default.
//
// The target rate is persisted as a float32 (see the serialized layout in
// marshal.go), so the geometry is derived from the float32-rounded value.
// That keeps import re-derivation bit-for-bit identical to construction.
// Rates that round to 0 or 1 in float32 are rejected as out of range.
func NewWithHasher(n uint64, p float64, h Hasher) (*Filter, error) {
	p32 := float32(p)
	m, k, byteLength, err := EstimateParameters(n, float64(p32))
	if err != nil {
		return nil, err
	}
	if h == nil {
		h = DefaultHasher()
	}
	return &Filter{
		estimatedElements: n,
		falsePositiveRate: p32,
		mBits:             m,
		kHashes:           k,
		bits:              newBitSet(m, byteLength),
		hasher:            h,
	}, nil
}

// live returns ErrNotInitialized for a nil, zero-value or destroyed
// filter.
func (f *Filter) live() error {
	if f == nil || f.bits.bits == nil {
		return ErrNotInitialized
	}
	return nil
}

// Add inserts data into the filter. Every add increments ElementsAdded,
// duplicates included, which biases CurrentFalsePositiveRate upward over
// the true rate when the same value is added repeatedly.
func (f *Filter) Add(data []byte) error {
	if err := f.live(); err != nil {
		return err
	}
	for _, i := range f.hasher.Indexes(f.kHashes, f.mBits, data) {
		f.bits.set(i)
	}
	f.elementsAdded++
	return nil
}

// AddString inserts the raw bytes of s.
func (f *Filter) AddString(s string) error {
	return f.Add([]byte(s))
}

// Check reports whether data may be present. false means definitely not
// present; true means present up to the filter's false positive rate.
func (f *Filter) Check(data []byte) (bool, error) {
	if err := f.live(); err != nil {
		return false, err
	}
	for _, i := range f.hasher.Indexes(f.kHashes, f.mBits, data) {
		if !f.bits.check(i) {
			return false, nil
		}
	}
	return true, nil
}

// CheckString checks the raw bytes of s.
func (f *Filter) CheckString(s string) (bool, error) {
	return f.Check([]byte(s))
}

// SetHasher replaces the filter's Hasher; nil installs the default.
//
// Swapping the Hasher between adds and checks over the same data voids
// the no-false-negative guarantee: bits set under the old Hasher are
// invisible to the new one.
func (f *Filter) SetHasher(h Hasher) error {
	if err := f.live(); err != nil {
		return err
	}
	if h == nil {
		h = DefaultHasher()
	}
	f.hasher = h
	return nil
}

// Reset zeroes every bit and the element counter, keeping the geometry
// and the installed Hasher.
func (f *Filter) Reset() error {
	if err := f.live(); err != nil {
		return err
	}
	f.bits.clearAll()
	f.elementsAdded = 0
	return nil
}

// Destroy releases the bit buffer and zeroes the filter's fields. Any use
// after Destroy returns ErrNotInitialized.
func (f *Filter) Destroy() {
	*f = Filter{}
}

// EstimatedElements returns the capacity hint the filter was sized for.
func (f *Filter) EstimatedElements() uint64 { return f.estimatedElements }

// FalsePositiveRate returns the construction-time target rate.
func (f *Filter) FalsePositiveRate() float64 { return float64(f.falsePositiveRate) }

// NumberBits returns m, the size of the bit array.
func (f *Filter) NumberBits() uint64 { return f.mBits }

// NumberHashes returns k, the number of hash rounds per element.
func (f *Filter) NumberHashes() uint32 { return f.kHashes }

// ByteLength returns ceil(m/8), the bit buffer size in bytes.
func (f *Filter) ByteLength() uint64 { return uint64(len(f.bits.bits)) }

// ElementsAdded returns the number of add calls made against the filter.
func (f *Filter) ElementsAdded() uint64 { return f.elementsAdded }
