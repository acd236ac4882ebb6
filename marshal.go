package bloom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Serialized layout, format version 1, all integers big-endian:
//
//	[0:4)   magic "BLF1"
//	[4]     version
//	[5]     bit order (BitOrderLSB0)
//	[6:8)   reserved, zero
//	[8:16)  estimated elements, u64
//	[16:24) elements added, u64
//	[24:28) target false positive rate, f32
//	[28:)   bit buffer, ceil(m/8) bytes, BitOrderLSB0
//
// The derived geometry (m, k, byteLength) is never stored. Import
// re-derives it from the (estimated elements, rate) pair, so a tampered
// length field cannot exist, let alone be trusted.
const preludeBytesV1 = 28

func encodePreludeV1(buf []byte, n, added uint64, p float32) {
	copy(buf[0:4], MagicV1)
	buf[4] = VersionV1
	buf[5] = BitOrderLSB0
	buf[6], buf[7] = 0, 0
	binary.BigEndian.PutUint64(buf[8:16], n)
	binary.BigEndian.PutUint64(buf[16:24], added)
	binary.BigEndian.PutUint32(buf[24:28], math.Float32bits(p))
}

func decodePreludeV1(buf []byte) (n, added uint64, p float32, err error) {
	if string(buf[0:4]) != MagicV1 {
		return 0, 0, 0, ErrBadMagic
	}
	if buf[4] != VersionV1 {
		return 0, 0, 0, fmt.Errorf("%w: %d", ErrBadVersion, buf[4])
	}
	if buf[5] != BitOrderLSB0 {
		return 0, 0, 0, fmt.Errorf("%w: %d", ErrBadBitOrder, buf[5])
	}
	n = binary.BigEndian.Uint64(buf[8:16])
	added = binary.BigEndian.Uint64(buf[16:24])
	p = math.Float32frombits(binary.BigEndian.Uint32(buf[24:28]))
	return n, added, p, nil
}

// WriteTo serializes the filter in the V1 layout. It implements
// io.WriterTo.
func (f *Filter) WriteTo(w io.Writer) (int64, error) {
	if err := f.live(); err != nil {
		return 0, err
	}
	var prelude [preludeBytesV1]byte
	encodePreludeV1(prelude[:], f.estimatedElements, f.elementsAdded, f.falsePositiveRate)

	nw, err := w.Write(prelude[:])
	written := int64(nw)
	if err != nil {
		return written, fmt.Errorf("bloom: export: %w", err)
	}
	nb, err := w.Write(f.bits.bits)
	written += int64(nb)
	if err != nil {
		return written, fmt.Errorf("bloom: export: %w", err)
	}
	return written, nil
}

// ReadFrom replaces the filter's parameters and bit buffer wholesale with
// serialized state read from r, re-deriving the geometry from the stored
// parameters. The installed Hasher is kept; a filter without one gets the
// default. It implements io.ReaderFrom.
//
// Input shorter than the layout demands fails with ErrCorruptData and
// leaves the filter unchanged.
func (f *Filter) ReadFrom(r io.Reader) (int64, error) {
	var prelude [preludeBytesV1]byte
	nr, err := io.ReadFull(r, prelude[:])
	read := int64(nr)
	if err != nil {
		return read, importErr(err)
	}
	n, added, p, err := decodePreludeV1(prelude[:])
	if err != nil {
		return read, err
	}
	m, k, byteLength, err := EstimateParameters(n, float64(p))
	if err != nil {
		return read, err
	}

	bits := newBitSet(m, byteLength)
	nb, err := io.ReadFull(r, bits.bits)
	read += int64(nb)
	if err != nil {
		return read, importErr(err)
	}

	f.estimatedElements = n
	f.falsePositiveRate = p
	f.mBits = m
	f.kHashes = k
	f.elementsAdded = added
	f.bits = bits
	if f.hasher == nil {
		f.hasher = DefaultHasher()
	}
	return read, nil
}

func importErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return fmt.Errorf("bloom: import: %w", err)
}

// NewFromReader constructs a filter from serialized state; nil installs
// the default Hasher. The Hasher must match the one the exporting filter
// added under, or imported membership answers gain false negatives.
func NewFromReader(r io.Reader, h Hasher) (*Filter, error) {
	f := &Filter{hasher: h}
	if _, err := f.ReadFrom(r); err != nil {
		return nil, err
	}
	return f, nil
}

// Export writes the filter to the file at path, creating or truncating
// it.
func (f *Filter) Export(path string) error {
	if err := f.live(); err != nil {
		return err
	}
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bloom: export %s: %w", path, err)
	}
	if _, err := f.WriteTo(fp); err != nil {
		fp.Close()
		return err
	}
	if err := fp.Close(); err != nil {
		return fmt.Errorf("bloom: export %s: %w", path, err)
	}
	return nil
}

// ImportFile constructs a filter from the file at path; nil installs the
// default Hasher.
func ImportFile(path string, h Hasher) (*Filter, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bloom: import %s: %w", path, err)
	}
	defer fp.Close()
	return NewFromReader(fp, h)
}
