package idcompressor

import "cmp"

// StableId is a version-4, variant-1 UUID rendered as the canonical
// lowercase xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx string. Internally it is
// the 128 raw bytes of the UUID; 122 of those bits participate in the
// arithmetic of numericuuid.go, with the 4-bit version nibble and 2-bit
// variant field held fixed.
//
// StableId is a value type: comparable, copyable, and safe for use as a
// map key.
type StableId [16]byte

// Nil is the zero-value StableId (all zeros). It is never produced by
// NewSessionId or by arithmetic starting from a valid v4/variant-1 id,
// and is returned alongside non-nil errors.
var Nil StableId

// Version returns the UUID version nibble (bits 48-51). Every StableId
// produced or consumed by this package has Version() == 4.
func (id StableId) Version() int {
	return int(id[6] >> 4)
}

// Variant returns the UUID variant bits (bits 64-65). Every StableId
// produced or consumed by this package has Variant() == 0b10 (RFC 9562
// "variant 1").
func (id StableId) Variant() int {
	return int(id[8] >> 6)
}

// IsNil reports whether id is the zero-value StableId.
func (id StableId) IsNil() bool {
	return id == Nil
}

// Bytes returns a copy of id as a 16-byte slice.
func (id StableId) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, id[:])
	return b
}

// Compare returns an integer comparing two StableIds lexicographically by
// their raw bytes. The result is 0 if a == b, -1 if a < b, and +1 if
// a > b. Suitable for use with slices.SortFunc.
func Compare(a, b StableId) int {
	return cmp.Compare(string(a[:]), string(b[:]))
}
