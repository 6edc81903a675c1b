package idcompressor

import "fmt"

// SessionIndex interns a SessionId (a StableId) within one compressor.
// Indexes are assigned densely starting at zero in intern order and are
// never reused or renumbered.
type SessionIndex uint32

// FinalId is a document-wide id assigned by finalization: non-negative,
// globally ordered by allocation, and densely packed within each
// cluster. It is never negative; the sign-based LocalId/FinalId split
// only exists in the SessionSpaceId/OpSpaceId wire encoding below.
type FinalId uint64

// GenCount is the 1-based, monotonically increasing index of an id
// within its minting session (spec §3).
type GenCount uint64

// maxGenCount is the largest GenCount or FinalId this package will ever
// assign (spec §7, §9): both axes must fail explicitly with
// OverflowError rather than wrap once they would exceed 2^53-1, the
// largest integer a float64 (and therefore many interop hosts) can
// represent exactly.
const maxGenCount = (uint64(1) << 53) - 1

// SessionSpaceId is an id as understood by its originating session: a
// 64-bit signed integer where a negative value is a LocalId (the
// session's own not-yet-finalized GenCount, negated) and a non-negative
// value is a FinalId. Session space is the form callers mint and
// consume; see normalizer.go for conversion to/from op space.
type SessionSpaceId int64

// OpSpaceId is an id as it travels on the wire: the same signed-integer
// encoding as SessionSpaceId, but a negative value only makes sense
// alongside the originating SessionId that minted it (a foreign
// session's LocalId cannot be resolved without that context).
type OpSpaceId int64

// IsLocal reports whether id is still in its negative, session-local
// LocalId form (not yet finalized, from the perspective of whichever
// session's space it is expressed in).
func (id SessionSpaceId) IsLocal() bool { return id < 0 }

// GenCount returns the GenCount a local SessionSpaceId encodes. It is
// only meaningful when IsLocal() is true.
func (id SessionSpaceId) GenCount() GenCount { return GenCount(-id) }

// AsFinal returns id reinterpreted as a FinalId. It is only meaningful
// when IsLocal() is false.
func (id SessionSpaceId) AsFinal() FinalId { return FinalId(id) }

func (id SessionSpaceId) String() string {
	if id.IsLocal() {
		return fmt.Sprintf("local:%d", id.GenCount())
	}
	return fmt.Sprintf("final:%d", id.AsFinal())
}

// IsLocal reports whether id is in its negative LocalId form.
func (id OpSpaceId) IsLocal() bool { return id < 0 }

// GenCount returns the GenCount a local OpSpaceId encodes. Only
// meaningful when IsLocal() is true.
func (id OpSpaceId) GenCount() GenCount { return GenCount(-id) }

// AsFinal returns id reinterpreted as a FinalId. Only meaningful when
// IsLocal() is false.
func (id OpSpaceId) AsFinal() FinalId { return FinalId(id) }

func (id OpSpaceId) String() string {
	if id.IsLocal() {
		return fmt.Sprintf("local:%d", id.GenCount())
	}
	return fmt.Sprintf("final:%d", id.AsFinal())
}

// localSessionSpaceId builds the negative SessionSpaceId form for the
// given GenCount.
func localSessionSpaceId(g GenCount) SessionSpaceId { return SessionSpaceId(-int64(g)) }

// finalSessionSpaceId builds the non-negative SessionSpaceId form for
// the given FinalId.
func finalSessionSpaceId(f FinalId) SessionSpaceId { return SessionSpaceId(f) }

func localOpSpaceId(g GenCount) OpSpaceId { return OpSpaceId(-int64(g)) }
func finalOpSpaceId(f FinalId) OpSpaceId  { return OpSpaceId(f) }

// GenCountRange is a closed, 1-based interval of GenCounts:
// [First, Last], with Last >= First >= 1.
type GenCountRange struct {
	First GenCount
	Last  GenCount
}

// Count returns the number of GenCounts covered by the range.
func (r GenCountRange) Count() uint64 { return uint64(r.Last-r.First) + 1 }

// IdCreationRange is the wire-visible announcement of a contiguous run
// of a session's newly minted ids: produced locally by TakeNextCreationRange and
// consumed document-wide (in total order) by FinalizeCreationRange. Ids
// is nil when the session had nothing new to announce.
type IdCreationRange struct {
	SessionId StableId
	Ids       *GenCountRange
}
