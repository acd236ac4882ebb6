package bloom

import "errors"

const (
	// MagicV1 identifies serialized filter state in format version 1.
	MagicV1 = "BLF1"

	// VersionV1 is the serialization format version written by WriteTo
	// and Export.
	VersionV1 uint8 = 1

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	// It is the only bit numbering this package uses, for the in-memory
	// buffer and the serialized one alike.
	BitOrderLSB0 uint8 = 0
)

var (
	ErrInvalidParameter = errors.New("bloom: invalid filter parameter")
	ErrNotInitialized   = errors.New("bloom: filter not initialized")

	ErrBadMagic    = errors.New("bloom: header magic invalid")
	ErrBadVersion  = errors.New("bloom: header version unsupported")
	ErrBadBitOrder = errors.New("bloom: header bit order unsupported")
	ErrCorruptData = errors.New("bloom: serialized filter truncated")
)
