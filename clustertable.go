package idcompressor

import (
	"sort"

	"github.com/google/btree"
)

// cluster binds a contiguous run of one session's GenCounts to a
// contiguous run of document-wide FinalIds (spec §3, C4).
//
//	covers GenCounts [firstGenCount, firstGenCount+count)
//	covers FinalIds  [baseFinal,     baseFinal+count)
//
// capacity reserves slack beyond count so a later finalization of the
// same session can extend the cluster in place instead of allocating a
// new one (spec §4.5, §9).
type cluster struct {
	session       SessionIndex
	firstGenCount uint64
	capacity      uint32
	count         uint32
	baseFinal     uint64
}

// finalKey is the btree.Item wrapping a cluster for the "by final" index
// (spec §4.4): ordered by baseFinal, used to answer "rightmost cluster
// with baseFinal <= f" in O(log n) via DescendLessOrEqual instead of a
// hand-rolled sort.Search binary search.
type finalKey struct {
	baseFinal uint64
	cl        *cluster
}

func (k finalKey) Less(than btree.Item) bool {
	return k.baseFinal < than.(finalKey).baseFinal
}

// clusterTable is C4: one append-only vector of clusters (ordered by
// baseFinal, since new clusters are always allocated at the current
// nextFinal and therefore appended at the tail) shared by two lookup
// indexes — a btree keyed by baseFinal, and a per-session slice keyed by
// firstGenCount.
type clusterTable struct {
	clusters  []*cluster
	byFinal   *btree.BTree
	bySession map[SessionIndex][]*cluster
}

func newClusterTable() *clusterTable {
	return &clusterTable{
		byFinal:   btree.New(32),
		bySession: make(map[SessionIndex][]*cluster),
	}
}

// append adds a newly allocated cluster to both indexes. Callers must
// ensure c.baseFinal is greater than every existing cluster's baseFinal
// and c.firstGenCount continues c.session's per-session sequence. The
// finalizer (C5) upholds both; Deserialize (C8) calls it with clusters
// in the order Serialize wrote them.
func (t *clusterTable) append(c *cluster) {
	t.clusters = append(t.clusters, c)
	t.byFinal.ReplaceOrInsert(finalKey{baseFinal: c.baseFinal, cl: c})
	t.bySession[c.session] = append(t.bySession[c.session], c)
}

// activeCluster returns the last cluster allocated for session, or nil
// if session has none yet.
func (t *clusterTable) activeCluster(session SessionIndex) *cluster {
	list := t.bySession[session]
	if len(list) == 0 {
		return nil
	}
	return list[len(list)-1]
}

// findByFinal returns the cluster covering FinalId f, or nil if f is
// unknown: either past every cluster's covered end, or in the unused
// capacity slack between a cluster's count and its capacity (slack that
// is abandoned when another cluster is allocated after it).
func (t *clusterTable) findByFinal(f FinalId) *cluster {
	var found *cluster
	t.byFinal.DescendLessOrEqual(finalKey{baseFinal: uint64(f)}, func(item btree.Item) bool {
		found = item.(finalKey).cl
		return false
	})
	if found == nil {
		return nil
	}
	if uint64(f) < found.baseFinal+uint64(found.count) {
		return found
	}
	return nil
}

// findBySessionGen returns the cluster covering GenCount g of session,
// or nil if g is unfinalized (past every covered end) or session has no
// clusters at all.
func (t *clusterTable) findBySessionGen(session SessionIndex, g uint64) *cluster {
	list := t.bySession[session]
	i := sort.Search(len(list), func(i int) bool { return list[i].firstGenCount > g })
	if i == 0 {
		return nil
	}
	c := list[i-1]
	if g < c.firstGenCount+uint64(c.count) {
		return c
	}
	return nil
}

// len returns the total number of clusters, used by the serializer.
func (t *clusterTable) len() int { return len(t.clusters) }
