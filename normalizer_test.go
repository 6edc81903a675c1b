package idcompressor

import (
	"errors"
	"testing"
)

func TestDecompressLocalId(t *testing.T) {
	c := NewCompressor(nil)
	base := c.LocalSessionId()

	id := mustGenerate(t, c) // -1
	stable, err := c.Decompress(id)
	if err != nil {
		t.Fatalf("Decompress() error: %v", err)
	}
	want, _ := addStableId(base, 0)
	if stable != want {
		t.Errorf("Decompress(-1) = %v, want %v", stable, want)
	}

	mustGenerate(t, c) // -2
	id3 := mustGenerate(t, c)
	stable3, err := c.Decompress(id3)
	if err != nil {
		t.Fatalf("Decompress() error: %v", err)
	}
	want3, _ := addStableId(base, 2)
	if stable3 != want3 {
		t.Errorf("Decompress(-3) = %v, want %v", stable3, want3)
	}
}

func TestDecompressFinalId(t *testing.T) {
	c := NewCompressor(nil, WithClusterCapacityPolicy(5))
	session := c.LocalSessionId()
	mustGenerate(t, c)
	mustGenerate(t, c)
	mustFinalize(t, c, session, 1, 2)

	stable, err := c.Decompress(SessionSpaceId(1))
	if err != nil {
		t.Fatalf("Decompress(1) error: %v", err)
	}
	want, _ := addStableId(session, 1)
	if stable != want {
		t.Errorf("Decompress(1) = %v, want %v", stable, want)
	}
}

func TestDecompressUnknownFinalId(t *testing.T) {
	c := NewCompressor(nil)
	_, err := c.Decompress(SessionSpaceId(42))
	var uerr *UnknownIdError
	if !errors.As(err, &uerr) {
		t.Fatalf("Decompress() error = %v, want *UnknownIdError", err)
	}
}

func TestRecompressInverseOfDecompress(t *testing.T) {
	c := NewCompressor(nil, WithClusterCapacityPolicy(5))
	session := c.LocalSessionId()

	ids := []SessionSpaceId{mustGenerate(t, c), mustGenerate(t, c), mustGenerate(t, c)}
	mustFinalize(t, c, session, 1, 2) // finalizes first two; third stays local

	for _, id := range ids {
		stable, err := c.Decompress(id)
		if err != nil {
			t.Fatalf("Decompress(%v) error: %v", id, err)
		}
		got, err := c.Recompress(stable)
		if err != nil {
			t.Fatalf("Recompress(%v) error: %v", stable, err)
		}
		if got != id {
			t.Errorf("Recompress(Decompress(%v)) = %v, want %v", id, got, id)
		}
	}
}

func TestNormalizeToOpSpaceRoundTrip(t *testing.T) {
	c := NewCompressor(nil, WithClusterCapacityPolicy(5))
	session := c.LocalSessionId()

	local := mustGenerate(t, c)
	op, err := c.NormalizeToOpSpace(local)
	if err != nil {
		t.Fatalf("NormalizeToOpSpace() error: %v", err)
	}
	if op != OpSpaceId(local) {
		t.Errorf("NormalizeToOpSpace(unfinalized) = %v, want %v", op, local)
	}

	back, err := c.NormalizeToSessionSpace(op, session)
	if err != nil {
		t.Fatalf("NormalizeToSessionSpace() error: %v", err)
	}
	if back != local {
		t.Errorf("round trip = %v, want %v", back, local)
	}

	mustFinalize(t, c, session, 1, 1)
	opAfter, err := c.NormalizeToOpSpace(local)
	if err != nil {
		t.Fatalf("NormalizeToOpSpace() after finalization error: %v", err)
	}
	if opAfter.IsLocal() {
		t.Errorf("NormalizeToOpSpace() after finalization should be final, got %v", opAfter)
	}
}

func TestNormalizeToSessionSpaceUnfinalizedForeignId(t *testing.T) {
	local := NewCompressor(nil)
	foreign := MustParseStableId("00000000-0000-4000-8000-00000000000f")

	_, err := local.NormalizeToSessionSpace(OpSpaceId(-7), foreign)
	var uferr *UnfinalizedForeignIdError
	if !errors.As(err, &uferr) {
		t.Fatalf("NormalizeToSessionSpace() error = %v, want *UnfinalizedForeignIdError", err)
	}
}

func TestNormalizeToSessionSpaceUnknownFinalId(t *testing.T) {
	local := NewCompressor(nil)
	foreign := MustParseStableId("00000000-0000-4000-8000-00000000000f")

	_, err := local.NormalizeToSessionSpace(OpSpaceId(99), foreign)
	var uerr *UnknownIdError
	if !errors.As(err, &uerr) {
		t.Fatalf("NormalizeToSessionSpace() error = %v, want *UnknownIdError", err)
	}
}
