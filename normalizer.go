package idcompressor

// This file implements C6: translating ids between session space
// (caller-facing), op space (wire-facing), final form, and StableId.

// NormalizeToOpSpace converts a SessionSpaceId (understood by the local
// session) into its OpSpaceId wire form (spec §4.6).
func (c *Compressor) NormalizeToOpSpace(id SessionSpaceId) (OpSpaceId, error) {
	if c.disposed {
		return 0, ErrDisposed
	}
	if !id.IsLocal() {
		// Already final; a FinalId is valid as-is in op space.
		return OpSpaceId(id), nil
	}
	g := id.GenCount()
	if cl := c.clusters.findBySessionGen(c.localSession, uint64(g)); cl != nil {
		return finalOpSpaceId(FinalId(cl.baseFinal + (uint64(g) - cl.firstGenCount))), nil
	}
	// Still unfinalized; the recipient resolves it using the
	// accompanying SessionId.
	return OpSpaceId(id), nil
}

// NormalizeToSessionSpace converts an OpSpaceId received from
// originSession into a SessionSpaceId valid in the local compressor
// (spec §4.6).
func (c *Compressor) NormalizeToSessionSpace(id OpSpaceId, originSession StableId) (SessionSpaceId, error) {
	if c.disposed {
		return 0, ErrDisposed
	}
	if !id.IsLocal() {
		f := id.AsFinal()
		if c.clusters.findByFinal(f) == nil {
			return 0, &UnknownIdError{Msg: "final id not present in the cluster table"}
		}
		// Final ids are document-unique: valid in session space as-is,
		// whether they belong to the local session or a remote one.
		return SessionSpaceId(id), nil
	}

	g := id.GenCount()
	originIdx := c.sessions.internSession(originSession)

	if cl := c.clusters.findBySessionGen(originIdx, uint64(g)); cl != nil {
		return finalSessionSpaceId(FinalId(cl.baseFinal + (uint64(g) - cl.firstGenCount))), nil
	}
	if originIdx == c.localSession {
		return localSessionSpaceId(g), nil
	}
	return 0, &UnfinalizedForeignIdError{Msg: "origin session has not finalized this id yet"}
}

// Decompress expands a SessionSpaceId back into the full StableId it
// denotes (spec §4.6).
func (c *Compressor) Decompress(id SessionSpaceId) (StableId, error) {
	if c.disposed {
		return Nil, ErrDisposed
	}
	if id.IsLocal() {
		g := id.GenCount()
		return addStableId(c.sessions.sessionBase(c.localSession), uint64(g)-1)
	}

	f := id.AsFinal()
	cl := c.clusters.findByFinal(f)
	if cl == nil {
		return Nil, &UnknownIdError{Msg: "final id not present in the cluster table"}
	}
	base := c.sessions.sessionBase(cl.session)
	offset := cl.firstGenCount - 1 + (uint64(f) - cl.baseFinal)
	return addStableId(base, offset)
}

// TryDecompress is Decompress but reports failure as ok=false instead of
// returning an error.
func (c *Compressor) TryDecompress(id SessionSpaceId) (StableId, bool) {
	stable, err := c.Decompress(id)
	if err != nil {
		return Nil, false
	}
	return stable, true
}

// Recompress finds the SessionSpaceId that denotes the given StableId
// (spec §4.6): the inverse of Decompress.
func (c *Compressor) Recompress(stable StableId) (SessionSpaceId, error) {
	if c.disposed {
		return 0, ErrDisposed
	}

	idx, ok := c.sessions.predecessor(stable)
	if !ok {
		return 0, &UnknownIdError{Msg: "no session owns this stable id"}
	}
	base := c.sessions.sessionBase(idx)
	diff := subtractStableId(stable, base)
	if diff.Sign() < 0 || !diff.IsUint64() {
		return 0, &UnknownIdError{Msg: "no session owns this stable id"}
	}
	offset := diff.Uint64()
	g := offset + 1

	var mintedUpTo uint64
	if idx == c.localSession {
		mintedUpTo = c.nextLocalGenCount
	} else {
		mintedUpTo = c.sessions.finalizedCount(idx)
	}
	if g > mintedUpTo {
		return 0, &UnknownIdError{Msg: "stable id is beyond any id its owning session has minted"}
	}

	if cl := c.clusters.findBySessionGen(idx, g); cl != nil {
		return finalSessionSpaceId(FinalId(cl.baseFinal + (g - cl.firstGenCount))), nil
	}
	if idx == c.localSession {
		return localSessionSpaceId(GenCount(g)), nil
	}
	return 0, &UnknownIdError{Msg: "remote session has not finalized this id yet"}
}

// TryRecompress is Recompress but returns ok=false instead of an
// UnknownIdError.
func (c *Compressor) TryRecompress(stable StableId) (SessionSpaceId, bool) {
	id, err := c.Recompress(stable)
	if err != nil {
		return 0, false
	}
	return id, true
}
