package idcompressor

import (
	"errors"
	"testing"
)

func FuzzParseStableId(f *testing.F) {
	f.Add("6ba7b810-9dad-41d1-80b4-00c04fd430c8")
	f.Add("00000000-0000-4000-8000-000000000000")
	f.Add("ffffffff-ffff-4fff-bfff-ffffffffffff")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("")
	f.Add("not-a-stable-id")
	f.Add("FFFFFFFF-FFFF-4FFF-BFFF-FFFFFFFFFFFF")

	f.Fuzz(func(t *testing.T, s string) {
		id, err := ParseStableId(s)
		if err != nil {
			return
		}
		// If parse succeeded, round-trip must be exact.
		got := id.String()
		id2, err := ParseStableId(got)
		if err != nil {
			t.Fatalf("round-trip ParseStableId failed: %v", err)
		}
		if id != id2 {
			t.Fatalf("round-trip mismatch: %v != %v", id, id2)
		}
	})
}

func FuzzAddStableId(f *testing.F) {
	base := MustParseStableId("00000000-0000-4000-8000-000000000000")
	f.Add(base.Bytes(), uint64(0))
	f.Add(base.Bytes(), uint64(1))
	f.Add(base.Bytes(), uint64(1<<53))

	f.Fuzz(func(t *testing.T, rawId []byte, k uint64) {
		if len(rawId) != 16 {
			t.Skip()
		}
		id, err := StableIdFromBytes(rawId)
		if err != nil {
			t.Skip()
		}
		// addStableId must never change the version/variant bits, and
		// must only ever fail with OverflowError.
		sum, err := addStableId(id, k)
		if err != nil {
			var operr *OverflowError
			if !errors.As(err, &operr) {
				t.Fatalf("addStableId error = %v, want *OverflowError", err)
			}
			if sum != Nil {
				t.Fatalf("addStableId error path returned non-Nil result")
			}
			return
		}
		if sum.Version() != id.Version() || sum.Variant() != id.Variant() {
			t.Fatalf("addStableId changed version/variant bits: %v + %d = %v", id, k, sum)
		}
	})
}
