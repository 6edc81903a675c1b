package idcompressor

import "crypto/rand"

// NewSessionId returns a new random version-4, variant-1 StableId
// suitable for identifying a fresh session. Per spec §1's Non-goals,
// cryptographic strength of this randomness is not a requirement — the
// allocator only needs the version/variant bits fixed and the remaining
// bits distinct enough to avoid collisions across sessions in a
// document, which crypto/rand trivially provides.
func NewSessionId() StableId {
	var id StableId
	_, _ = rand.Read(id[:])
	id[6] = (id[6] & 0x0f) | 0x40 // version 4
	id[8] = (id[8] & 0x3f) | 0x80 // variant RFC 9562 / variant 1
	return id
}
