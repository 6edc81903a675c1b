package idcompressor

import "sort"

// sessionRegistry interns SessionIds into small dense SessionIndex
// handles (C2). It owns no synchronization: spec §5 makes the
// compressor a single-threaded, non-reentrant state machine, so unlike
// the mutex-guarded session table this is grounded on (see
// 3068b82a_backkem-matter__pkg-session-table.go), callers are expected
// to serialize access externally rather than pay for a lock nothing
// here needs.
type sessionRegistry struct {
	byId  map[StableId]SessionIndex
	bases []StableId // index by SessionIndex; base == the session's own id

	// maxGenCount tracks, per session, the highest GenCount known to be
	// finalized (the sum of that session's clusters' counts). Needed by
	// recompress's predecessor search to bound a remote session's
	// minted-id range without walking its clusters.
	maxGenCount []uint64

	// byBase holds SessionIndex values sorted by their base StableId, for
	// recompress's "which session owns this stable id" predecessor
	// search (spec §4.6).
	byBase []SessionIndex
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		byId: make(map[StableId]SessionIndex),
	}
}

// internSession returns the SessionIndex for id, assigning a fresh one
// if id has not been seen before. Never fails; duplicate ids collapse to
// the same index.
func (r *sessionRegistry) internSession(id StableId) SessionIndex {
	if idx, ok := r.byId[id]; ok {
		return idx
	}
	idx := SessionIndex(len(r.bases))
	r.byId[id] = idx
	r.bases = append(r.bases, id)
	r.maxGenCount = append(r.maxGenCount, 0)

	pos := sort.Search(len(r.byBase), func(i int) bool {
		return Compare(r.bases[r.byBase[i]], id) > 0
	})
	r.byBase = append(r.byBase, 0)
	copy(r.byBase[pos+1:], r.byBase[pos:])
	r.byBase[pos] = idx

	return idx
}

// predecessor returns the SessionIndex whose base StableId is the
// greatest one not exceeding stable, i.e. the session that would own
// stable if it owns anything at all. Returns false if stable precedes
// every known session's base.
func (r *sessionRegistry) predecessor(stable StableId) (SessionIndex, bool) {
	i := sort.Search(len(r.byBase), func(i int) bool {
		return Compare(r.bases[r.byBase[i]], stable) > 0
	})
	if i == 0 {
		return 0, false
	}
	return r.byBase[i-1], true
}

// sessionBase returns the StableId used as the arithmetic base for the
// ids minted by idx (spec §9's open question: this implementation takes
// sessionBase == SessionId, see DESIGN.md).
func (r *sessionRegistry) sessionBase(idx SessionIndex) StableId {
	return r.bases[idx]
}

// indexOf returns the SessionIndex for id, if interned.
func (r *sessionRegistry) indexOf(id StableId) (SessionIndex, bool) {
	idx, ok := r.byId[id]
	return idx, ok
}

// sessionId returns the StableId that was interned as idx.
func (r *sessionRegistry) sessionId(idx SessionIndex) StableId {
	return r.bases[idx]
}

// count returns the number of interned sessions.
func (r *sessionRegistry) count() int {
	return len(r.bases)
}

// noteFinalizedCount records that idx now has finalizedUpTo GenCounts
// finalized in total (monotonically increasing).
func (r *sessionRegistry) noteFinalizedCount(idx SessionIndex, finalizedUpTo uint64) {
	r.maxGenCount[idx] = finalizedUpTo
}

// finalizedCount returns the number of GenCounts finalized so far for
// idx (0 if none).
func (r *sessionRegistry) finalizedCount(idx SessionIndex) uint64 {
	return r.maxGenCount[idx]
}
