package idcompressor

import (
	"errors"
	"testing"
)

func TestTakeNextCreationRangeEmpty(t *testing.T) {
	c := NewCompressor(nil)
	r := mustTakeRange(t, c)
	if r.Ids != nil {
		t.Errorf("TakeNextCreationRange() on a fresh compressor should have nil Ids, got %+v", r.Ids)
	}
	if r.SessionId != c.LocalSessionId() {
		t.Errorf("TakeNextCreationRange().SessionId = %v, want %v", r.SessionId, c.LocalSessionId())
	}
}

func TestTakeNextCreationRangeDrainsPending(t *testing.T) {
	c := NewCompressor(nil)
	mustGenerate(t, c)
	mustGenerate(t, c)
	mustGenerate(t, c)

	r := mustTakeRange(t, c)
	if r.Ids == nil {
		t.Fatalf("TakeNextCreationRange() should return a non-nil range")
	}
	if r.Ids.First != 1 || r.Ids.Last != 3 {
		t.Errorf("range = [%d, %d], want [1, 3]", r.Ids.First, r.Ids.Last)
	}

	again := mustTakeRange(t, c)
	if again.Ids != nil {
		t.Errorf("second TakeNextCreationRange() call should be empty, got %+v", again.Ids)
	}
}

func TestTakeNextCreationRangePartitionsDisjointly(t *testing.T) {
	c := NewCompressor(nil)
	mustGenerate(t, c)
	mustGenerate(t, c)
	first := mustTakeRange(t, c)

	mustGenerate(t, c)
	mustGenerate(t, c)
	mustGenerate(t, c)
	second := mustTakeRange(t, c)

	if first.Ids.First != 1 || first.Ids.Last != 2 {
		t.Errorf("first range = [%d, %d], want [1, 2]", first.Ids.First, first.Ids.Last)
	}
	if second.Ids.First != 3 || second.Ids.Last != 5 {
		t.Errorf("second range = [%d, %d], want [3, 5]", second.Ids.First, second.Ids.Last)
	}
}

func TestTakeNextCreationRangeAfterDispose(t *testing.T) {
	c := NewCompressor(nil)
	c.Dispose()
	_, err := c.TakeNextCreationRange()
	if !errors.Is(err, ErrDisposed) {
		t.Errorf("TakeNextCreationRange() after Dispose() error = %v, want ErrDisposed", err)
	}
}
