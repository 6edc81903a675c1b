package idcompressor

import "go.uber.org/zap"

// FinalizeCreationRange applies a single, totally-ordered
// IdCreationRange announcement to the cluster table (C5, spec §4.5).
// Every compressor in a document must receive the same sequence of
// ranges in the same order (spec §5); this method assumes, and
// enforces via ProtocolError, that the range it is given is contiguous
// with whatever it has already finalized for that session.
func (c *Compressor) FinalizeCreationRange(r IdCreationRange) error {
	if c.disposed {
		return ErrDisposed
	}
	if r.Ids == nil {
		// Nothing to finalize; an empty range is a legal no-op (it is
		// what TakeNextCreationRange returns when nothing is pending).
		return nil
	}
	if r.Ids.Last < r.Ids.First || r.Ids.First < 1 {
		return &ProtocolError{Msg: "finalization range must have lastGenCount >= firstGenCount >= 1"}
	}
	rangeCount := r.Ids.Count()
	count := uint32(rangeCount)
	if uint64(count) != rangeCount {
		return &OverflowError{Msg: "finalization range count exceeds uint32 range"}
	}
	if count == 0 {
		return &ProtocolError{Msg: "finalization range count must not be zero"}
	}

	sessionIdx := c.sessions.internSession(r.SessionId)
	firstGenCount := uint64(r.Ids.First)

	active := c.clusters.activeCluster(sessionIdx)
	if active == nil {
		if firstGenCount != 1 {
			return &ProtocolError{Msg: "first finalization for a session must start at GenCount 1"}
		}
	} else if active.firstGenCount+uint64(active.count) != firstGenCount {
		c.logger.Warn("finalization range is not contiguous with the active cluster",
			zap.Uint32("session", uint32(sessionIdx)),
			zap.Uint64("expectedFirstGenCount", active.firstGenCount+uint64(active.count)),
			zap.Uint64("gotFirstGenCount", firstGenCount),
		)
		return &ProtocolError{Msg: "finalization range is not contiguous with the session's active cluster"}
	}

	canExtend := active != nil &&
		uint64(active.count)+uint64(count) <= uint64(active.capacity) &&
		active.baseFinal+uint64(active.capacity) == c.nextFinal

	if canExtend {
		active.count += count
		c.logger.Debug("extended active cluster in place",
			zap.Uint32("session", uint32(sessionIdx)),
			zap.Uint32("newCount", active.count),
		)
	} else {
		capacity := c.clusterCapacityPolicy
		if count > capacity {
			capacity = count
		}
		if c.nextFinal+uint64(capacity)-1 > maxGenCount {
			return &OverflowError{Msg: "FinalId would exceed 2^53-1"}
		}
		newCluster := &cluster{
			session:       sessionIdx,
			firstGenCount: firstGenCount,
			capacity:      capacity,
			count:         count,
			baseFinal:     c.nextFinal,
		}
		c.clusters.append(newCluster)
		c.nextFinal += uint64(capacity)
		c.logger.Debug("allocated new cluster",
			zap.Uint32("session", uint32(sessionIdx)),
			zap.Uint64("baseFinal", newCluster.baseFinal),
			zap.Uint32("capacity", capacity),
		)
	}

	c.sessions.noteFinalizedCount(sessionIdx, firstGenCount-1+uint64(count))
	return nil
}
