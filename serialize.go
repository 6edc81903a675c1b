package idcompressor

import (
	"encoding/binary"

	"go.uber.org/zap"
)

// This file implements C8: a versioned, little-endian binary layout for
// checkpoint and resume, grounded on the encode/decode-by-field style of
// the SLC1 header format (see 132ee768_calvinalkan-agent-task__pkg-
// slotcache-format.go's encodeHeader/decodeHeader), adapted here to a
// variable-length body (the header format's fields are all fixed-offset;
// ours grows with the session and cluster counts, so appending via
// encoding/binary rather than writing into fixed field offsets is the
// better fit).

// currentWrittenVersion is the only version this build accepts on
// Deserialize (spec §6). A future format bumps this and may reflow the
// layout below entirely.
const currentWrittenVersion uint32 = 1

// Serialize snapshots the compressor's entire state (spec §4.8, §6). When
// withSession is true, the local session's identity and its in-flight
// (unfinalized) generator state are included, so the result can resume
// this exact session; when false, the blob captures only document-wide
// state, and Deserialize requires a fresh session id to rehydrate it.
func (c *Compressor) Serialize(withSession bool) ([]byte, error) {
	if c.disposed {
		return nil, ErrDisposed
	}

	buf := make([]byte, 0, 64+c.sessions.count()*16+c.clusters.len()*24)

	buf = appendUint32(buf, currentWrittenVersion)
	buf = appendUint32(buf, c.clusterCapacityPolicy)
	if withSession {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	buf = appendUint32(buf, uint32(c.sessions.count()))
	for i := 0; i < c.sessions.count(); i++ {
		base := c.sessions.sessionBase(SessionIndex(i))
		buf = append(buf, base[:]...)
	}

	buf = appendUint32(buf, uint32(c.clusters.len()))
	for _, cl := range c.clusters.clusters {
		buf = appendUint32(buf, uint32(cl.session))
		buf = appendUint64(buf, cl.firstGenCount)
		buf = appendUint32(buf, cl.capacity)
		buf = appendUint32(buf, cl.count)
		buf = appendUint64(buf, cl.baseFinal)
	}

	buf = appendUint64(buf, c.nextFinal)

	if withSession {
		buf = appendUint32(buf, uint32(c.localSession))
		buf = appendUint64(buf, c.nextLocalGenCount)
		buf = appendUint64(buf, c.lastTakenGenCount)
	}

	return buf, nil
}

// Deserialize rebuilds a Compressor from a blob produced by Serialize
// (spec §4.8, §6). newSessionId is required, and must not collide with
// any session recorded in the blob, when the blob was written with
// withSession=false; it is ignored otherwise.
func Deserialize(data []byte, newSessionId *StableId, opts ...Option) (*Compressor, error) {
	r := &byteReader{data: data}

	version, err := r.uint32()
	if err != nil {
		return nil, err
	}
	if version != currentWrittenVersion {
		return nil, &VersionMismatchError{Got: version, Want: currentWrittenVersion}
	}

	capacityPolicy, err := r.uint32()
	if err != nil {
		return nil, err
	}

	hasLocalSession, err := r.uint8()
	if err != nil {
		return nil, err
	}

	sessionCount, err := r.uint32()
	if err != nil {
		return nil, err
	}

	cfg := compressorConfig{clusterCapacityPolicy: defaultClusterCapacityPolicy}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Compressor{
		clusterCapacityPolicy: capacityPolicy,
		clusters:              newClusterTable(),
		sessions:              newSessionRegistry(),
		logger:                logger,
	}

	for i := uint32(0); i < sessionCount; i++ {
		raw, err := r.bytes(16)
		if err != nil {
			return nil, err
		}
		var base StableId
		copy(base[:], raw)
		idx := c.sessions.internSession(base)
		if int(idx) != int(i) {
			return nil, &ProtocolError{Msg: "duplicate session base in serialized session table"}
		}
	}

	clusterCount, err := r.uint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < clusterCount; i++ {
		sessionIdx, err := r.uint32()
		if err != nil {
			return nil, err
		}
		firstGenCount, err := r.uint64()
		if err != nil {
			return nil, err
		}
		capacity, err := r.uint32()
		if err != nil {
			return nil, err
		}
		count, err := r.uint32()
		if err != nil {
			return nil, err
		}
		baseFinal, err := r.uint64()
		if err != nil {
			return nil, err
		}
		c.clusters.append(&cluster{
			session:       SessionIndex(sessionIdx),
			firstGenCount: firstGenCount,
			capacity:      capacity,
			count:         count,
			baseFinal:     baseFinal,
		})
		// Clusters for a given session are encountered in increasing
		// firstGenCount order, so the last write per session wins and
		// ends up holding that session's true finalized count.
		c.sessions.noteFinalizedCount(SessionIndex(sessionIdx), firstGenCount-1+uint64(count))
	}

	nextFinal, err := r.uint64()
	if err != nil {
		return nil, err
	}
	c.nextFinal = nextFinal

	if hasLocalSession != 0 {
		localIdx, err := r.uint32()
		if err != nil {
			return nil, err
		}
		nextLocalGenCount, err := r.uint64()
		if err != nil {
			return nil, err
		}
		lastTakenGenCount, err := r.uint64()
		if err != nil {
			return nil, err
		}
		c.localSession = SessionIndex(localIdx)
		c.nextLocalGenCount = nextLocalGenCount
		c.lastTakenGenCount = lastTakenGenCount
		return c, nil
	}

	if newSessionId == nil {
		return nil, &InvalidArgumentError{Msg: "newSessionId is required to deserialize a withSession=false blob"}
	}
	if _, exists := c.sessions.indexOf(*newSessionId); exists {
		return nil, &ProtocolError{Msg: "newSessionId collides with a session already recorded in the blob"}
	}
	c.localSession = c.sessions.internSession(*newSessionId)
	return c, nil
}

func appendUint32(b []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(b, tmp[:]...)
}

func appendUint64(b []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(b, tmp[:]...)
}

// byteReader is a minimal little-endian cursor over a serialized blob,
// surfacing short reads as the same ProtocolError a truncated or
// corrupt blob would otherwise panic on.
type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) bytes(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, &ProtocolError{Msg: "serialized data is truncated"}
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *byteReader) uint8() (uint8, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReader) uint32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *byteReader) uint64() (uint64, error) {
	b, err := r.bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
