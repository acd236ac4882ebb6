package bloom

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func exportedFilter(t *testing.T) (*Filter, []byte) {
	t.Helper()
	f, err := New(1000, 0.01)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		require.NoError(t, f.AddString(fmt.Sprintf("element-%d", i)))
	}

	var buf bytes.Buffer
	n, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	return f, buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	f, raw := exportedFilter(t)

	// Fixed prelude plus the raw bit buffer, nothing else.
	require.Equal(t, preludeBytesV1+int(f.ByteLength()), len(raw))
	require.Equal(t, MagicV1, string(raw[:4]))

	f2, err := NewFromReader(bytes.NewReader(raw), nil)
	require.NoError(t, err)

	require.Equal(t, f.EstimatedElements(), f2.EstimatedElements())
	require.Equal(t, f.ElementsAdded(), f2.ElementsAdded())
	require.Equal(t, f.NumberBits(), f2.NumberBits())
	require.Equal(t, f.NumberHashes(), f2.NumberHashes())
	require.Equal(t, f.ByteLength(), f2.ByteLength())

	for i := 0; i < 100; i++ {
		present, err := f2.CheckString(fmt.Sprintf("element-%d", i))
		require.NoError(t, err)
		require.True(t, present)
	}
	present, err := f2.CheckString("never-added-xyz")
	require.NoError(t, err)
	require.False(t, present)
}

func TestReadFromTruncated(t *testing.T) {
	_, raw := exportedFilter(t)

	for _, cut := range []int{0, 3, preludeBytesV1 - 1, preludeBytesV1, preludeBytesV1 + 10, len(raw) - 1} {
		var f Filter
		_, err := f.ReadFrom(bytes.NewReader(raw[:cut]))
		require.ErrorIs(t, err, ErrCorruptData, "cut at %d", cut)

		// A failed import leaves the filter untouched.
		require.ErrorIs(t, f.Add([]byte("x")), ErrNotInitialized)
	}
}

func TestReadFromBadMagic(t *testing.T) {
	_, raw := exportedFilter(t)
	raw[0] = 'X'

	_, err := NewFromReader(bytes.NewReader(raw), nil)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestReadFromBadVersion(t *testing.T) {
	_, raw := exportedFilter(t)
	raw[4] = VersionV1 + 1

	_, err := NewFromReader(bytes.NewReader(raw), nil)
	require.ErrorIs(t, err, ErrBadVersion)
}

func TestReadFromBadBitOrder(t *testing.T) {
	_, raw := exportedFilter(t)
	require.Equal(t, BitOrderLSB0, raw[5])
	raw[5] = 1

	_, err := NewFromReader(bytes.NewReader(raw), nil)
	require.ErrorIs(t, err, ErrBadBitOrder)
}

func TestReadFromBadParameters(t *testing.T) {
	_, raw := exportedFilter(t)
	// Zero out the stored element estimate; re-derivation must reject it
	// rather than trust the payload.
	for i := 8; i < 16; i++ {
		raw[i] = 0
	}

	_, err := NewFromReader(bytes.NewReader(raw), nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestExportImportFile(t *testing.T) {
	f, err := New(1000, 0.01)
	require.NoError(t, err)
	require.NoError(t, f.AddString("hello"))

	path := filepath.Join(t.TempDir(), "filter.blm")
	require.NoError(t, f.Export(path))

	f2, err := ImportFile(path, nil)
	require.NoError(t, err)

	present, err := f2.CheckString("hello")
	require.NoError(t, err)
	require.True(t, present)
	require.Equal(t, f.ElementsAdded(), f2.ElementsAdded())
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "nope.blm"), nil)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteToDestroyed(t *testing.T) {
	f, err := New(100, 0.01)
	require.NoError(t, err)
	f.Destroy()

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.ErrorIs(t, err, ErrNotInitialized)
	require.ErrorIs(t, f.Export(filepath.Join(t.TempDir(), "x.blm")), ErrNotInitialized)
}

func TestRoundTripKeepsHasherChoice(t *testing.T) {
	f, err := NewWithHasher(1000, 0.01, Murmur3Hasher{})
	require.NoError(t, err)
	require.NoError(t, f.AddString("hello"))

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.NoError(t, err)

	// The format does not carry the hasher; the importer must install
	// the one the exporting filter added under.
	f2, err := NewFromReader(&buf, Murmur3Hasher{})
	require.NoError(t, err)

	present, err := f2.CheckString("hello")
	require.NoError(t, err)
	require.True(t, present)
}
