package idcompressor

import (
	"fmt"

	"go.uber.org/zap"
)

const defaultClusterCapacityPolicy = 512

const maxClusterCapacityPolicy = 1 << 20

// Compressor is a single document session's allocator of compact integer
// handles for StableIds. It is a single-threaded, non-reentrant state
// machine (spec §5): none of its operations block, and callers sharing
// one Compressor across goroutines must serialize access externally.
type Compressor struct {
	localSession SessionIndex

	// nextLocalGenCount is the GenCount of the most recently minted id
	// (0 before the first mint; the next id gets nextLocalGenCount+1);
	// lastTakenGenCount marks how far TakeNextCreationRange has already
	// drained (C7).
	nextLocalGenCount uint64
	lastTakenGenCount uint64

	clusterCapacityPolicy uint32

	clusters  *clusterTable
	sessions  *sessionRegistry
	nextFinal uint64

	logger   *zap.Logger
	disposed bool
}

// compressorConfig holds the optional construction parameters threaded
// through by Option.
type compressorConfig struct {
	clusterCapacityPolicy uint32
	logger                *zap.Logger
}

// Option configures a Compressor at construction time.
type Option func(*compressorConfig)

// WithClusterCapacityPolicy sets the capacity reserved for newly
// allocated clusters (spec §4.5, §9); n must satisfy 1 <= n <= 2^20.
// Invalid values are silently ignored, leaving the default (or a value
// set by an earlier option) in place, since NewCompressor cannot fail.
func WithClusterCapacityPolicy(n uint32) Option {
	return func(c *compressorConfig) {
		if n >= 1 && n <= maxClusterCapacityPolicy {
			c.clusterCapacityPolicy = n
		}
	}
}

// WithLogger attaches a *zap.Logger for the compressor's internal
// Debug/Warn diagnostics (cluster allocation, non-contiguous
// finalizations). A nil logger, or omitting this option, disables
// logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *compressorConfig) {
		c.logger = logger
	}
}

// NewCompressor constructs a Compressor for the given session. If
// sessionId is nil, a fresh one is minted with NewSessionId.
func NewCompressor(sessionId *StableId, opts ...Option) *Compressor {
	cfg := compressorConfig{clusterCapacityPolicy: defaultClusterCapacityPolicy}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var id StableId
	if sessionId != nil {
		id = *sessionId
	} else {
		id = NewSessionId()
	}

	sessions := newSessionRegistry()
	localIdx := sessions.internSession(id)

	return &Compressor{
		localSession:          localIdx,
		clusterCapacityPolicy: cfg.clusterCapacityPolicy,
		clusters:              newClusterTable(),
		sessions:              sessions,
		logger:                logger,
	}
}

// SetClusterCapacity updates the capacity used for clusters allocated
// from this point on (spec §4.5). It does not affect clusters already
// in the table.
func (c *Compressor) SetClusterCapacity(n uint32) error {
	if c.disposed {
		return ErrDisposed
	}
	if n < 1 || n > maxClusterCapacityPolicy {
		return &InvalidArgumentError{Msg: "cluster capacity must satisfy 1 <= n <= 2^20"}
	}
	c.clusterCapacityPolicy = n
	return nil
}

// LocalSessionId returns the StableId of this compressor's own session.
func (c *Compressor) LocalSessionId() StableId {
	return c.sessions.sessionBase(c.localSession)
}

// GenerateCompressedId mints the next id for the local session (C3,
// spec §4.3): a SessionSpaceId, final if the local session's active
// cluster already covers the new GenCount, otherwise a LocalId.
func (c *Compressor) GenerateCompressedId() (SessionSpaceId, error) {
	if c.disposed {
		return 0, ErrDisposed
	}
	if c.nextLocalGenCount >= maxGenCount {
		return 0, &OverflowError{Msg: "GenCount would exceed 2^53-1"}
	}
	c.nextLocalGenCount++
	g := c.nextLocalGenCount

	if cl := c.clusters.findBySessionGen(c.localSession, g); cl != nil {
		return finalSessionSpaceId(FinalId(cl.baseFinal + (g - cl.firstGenCount))), nil
	}
	return localSessionSpaceId(GenCount(g)), nil
}

// Clusters returns a snapshot of every cluster currently in the table,
// in baseFinal order. Intended for inspection and debugging; mutating
// the returned slice's cluster values has no effect on the compressor.
func (c *Compressor) Clusters() []cluster {
	out := make([]cluster, c.clusters.len())
	for i, cl := range c.clusters.clusters {
		out[i] = *cl
	}
	return out
}

// Sessions returns every session known to this compressor, keyed by
// SessionIndex.
func (c *Compressor) Sessions() []StableId {
	out := make([]StableId, c.sessions.count())
	for i := range out {
		out[i] = c.sessions.sessionId(SessionIndex(i))
	}
	return out
}

// Dispose releases the compressor; subsequent operations fail with
// ErrDisposed (spec §5).
func (c *Compressor) Dispose() {
	c.disposed = true
}

// Disposed reports whether Dispose has been called.
func (c *Compressor) Disposed() bool {
	return c.disposed
}

func (c *Compressor) String() string {
	return fmt.Sprintf("Compressor{session: %s, sessions: %d, clusters: %d, nextFinal: %d}",
		c.LocalSessionId(), c.sessions.count(), c.clusters.len(), c.nextFinal)
}

// GoString renders the full cluster table, for use with %#v in test
// failure messages.
func (c *Compressor) GoString() string {
	s := fmt.Sprintf("Compressor{session: %s, nextFinal: %d, clusters: [",
		c.LocalSessionId(), c.nextFinal)
	for i, cl := range c.clusters.clusters {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("{session: %d, firstGenCount: %d, capacity: %d, count: %d, baseFinal: %d}",
			cl.session, cl.firstGenCount, cl.capacity, cl.count, cl.baseFinal)
	}
	return s + "]}"
}

// Equal reports whether c and other have converged to the same
// observable state: the same set of sessions (by StableId), same
// clusters (by content, in table order, with each cluster's session
// compared by StableId), and the same nextFinal. SessionIndex values are
// local to each compressor (a compressor interns its own session first),
// so they are not compared directly. It does not compare
// clusterCapacityPolicy, logger, or disposed, since those are local
// configuration rather than document-wide state.
func (c *Compressor) Equal(other *Compressor) bool {
	if c.nextFinal != other.nextFinal {
		return false
	}
	if c.sessions.count() != other.sessions.count() {
		return false
	}
	for i := 0; i < c.sessions.count(); i++ {
		if _, ok := other.sessions.indexOf(c.sessions.sessionId(SessionIndex(i))); !ok {
			return false
		}
	}
	if c.clusters.len() != other.clusters.len() {
		return false
	}
	for i, cl := range c.clusters.clusters {
		oc := other.clusters.clusters[i]
		if c.sessions.sessionId(cl.session) != other.sessions.sessionId(oc.session) {
			return false
		}
		a, b := *cl, *oc
		a.session, b.session = 0, 0
		if a != b {
			return false
		}
	}
	return true
}
