package idcompressor

// This file implements C7: tracking which locally-generated ids have not
// yet been broadcast, draining them for the caller to hand to the
// total-order service.

// TakeNextCreationRange returns the range of local GenCounts minted
// since the last call (spec §4.7), and advances lastTakenGenCount so the
// same ids are not returned twice. If nothing new has been minted, Ids
// is nil.
func (c *Compressor) TakeNextCreationRange() (IdCreationRange, error) {
	if c.disposed {
		return IdCreationRange{}, ErrDisposed
	}
	sessionId := c.LocalSessionId()
	if c.lastTakenGenCount >= c.nextLocalGenCount {
		return IdCreationRange{SessionId: sessionId}, nil
	}

	r := GenCountRange{
		First: GenCount(c.lastTakenGenCount + 1),
		Last:  GenCount(c.nextLocalGenCount),
	}
	c.lastTakenGenCount = c.nextLocalGenCount

	return IdCreationRange{SessionId: sessionId, Ids: &r}, nil
}
