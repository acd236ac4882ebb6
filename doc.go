package bloom

/*

# Bloom filter with target-rate sizing and chained hashing

This package provides a classic Bloom filter: given an estimate of the
number of elements to be stored and a target false positive rate, it sizes
a bit array and a hash-round count so that membership queries never produce
false negatives and produce false positives at a bounded, predictable rate.
It is intended as a space-efficient prefilter in front of expensive lookups
(disk, network, database).

## What Bloom filters are (and are not)

- If the filter says "definitely not present", the element is not present.
- If the filter says "maybe present", the element may or may not be present
  (false positives are possible).

Bloom filters are only an I/O optimization. They are not cryptographic
commitments and prove nothing about exclusion, and this package makes no
cryptographic claims about its digests; it only needs them fixed-width,
deterministic and approximately uniform.

## Sizing

Geometry comes from the standard optima, derived once at construction:

	m = ceil(-n * ln(p) / ln(2)^2)
	k = round(ln(2) * m / n), minimum 1

## Hashing

The default Hasher derives k indices from one SHA-256 primitive by digest
chaining: round 0 digests the input, each later round digests the previous
round's raw digest, and every round reads its digest's first 8 bytes
big-endian and reduces them modulo m. The byte order is part of the
contract; serialized filters are portable across hosts. Callers wanting
stronger per-round independence can inject any Hasher (a seeded murmur3
family is provided).

## Indexing and bit numbering

Bit numbering is LSB0 everywhere: bit i lives at byte i/8 under mask
1<<(i%8), in memory and in the serialized buffer alike.

## Serialization: why the `V1` suffix exists

Serialized state carries a magic and a format version, and the format
constants are suffixed accordingly (MagicV1, VersionV1). The suffix means:
this is serialized-format version 1: a specific field layout, byte order
and bit numbering. Incompatible changes get a V2 side-by-side rather than
silently breaking previously persisted filters. Import re-derives the
filter geometry from the stored parameters instead of trusting any stored
size.

## Concurrency

A Filter is single-threaded by design: no locks, no atomics. Sharing one
across goroutines requires external mutual exclusion around add, check,
export and import.

*/
