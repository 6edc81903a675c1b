// Package idcompressor implements a distributed identifier compressor:
// it issues compact integer handles that stand in for 128-bit version-4
// UUIDs, globally unique within a document (a set of collaborating
// sessions), while allowing each session to mint ids locally at O(1)
// without waiting on a network round trip.
//
// # Data flow
//
// A session mints ids with [Compressor.GenerateCompressedId]; freshly
// minted ids are negative LocalIds, session-local until finalized.
// [Compressor.TakeNextCreationRange] drains the not-yet-broadcast
// portion of a session's minted ids into an [IdCreationRange] for the
// caller to hand to an external total-order broadcast service. Every
// session in the document (including the one that minted the range)
// applies the same sequence of ranges, in the same order, via
// [Compressor.FinalizeCreationRange]; this assigns each range a
// contiguous run of document-wide FinalIds.
//
// Once finalized, an id can be translated between forms with
// [Compressor.NormalizeToOpSpace], [Compressor.NormalizeToSessionSpace],
// [Compressor.Decompress], and [Compressor.Recompress]. A compressor's
// entire state can be snapshotted with [Compressor.Serialize] and
// rebuilt with [Deserialize].
//
// # Concurrency
//
// A Compressor is a single-threaded, non-reentrant state machine: no
// method blocks, and none of its methods are safe to call concurrently
// from multiple goroutines without external synchronization.
package idcompressor
