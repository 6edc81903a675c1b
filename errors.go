package idcompressor

import (
	"errors"
	"fmt"
)

// ParseError is returned when a StableId string cannot be parsed.
//
// Use [errors.As] to check for this error:
//
//	var perr *ParseError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.Input)
//	}
type ParseError struct {
	Input string // the string that failed to parse
	Msg   string // description of the problem
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("idcompressor: parsing %q: %s", e.Input, e.Msg)
}

func (e *ParseError) Is(target error) bool { return target == ErrInvalidArgument }

// LengthError is returned when an input has an unexpected byte length.
type LengthError struct {
	Got  int    // the actual length
	Want string // description of expected length
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("idcompressor: unexpected length %d, want %s", e.Got, e.Want)
}

func (e *LengthError) Is(target error) bool { return target == ErrInvalidArgument }

// ErrInvalidArgument is the sentinel wrapped by every InvalidArgument-kind
// error (spec §7): out-of-range capacity, malformed StableId, a missing
// newSessionId on Deserialize, and similar caller mistakes. Malformed
// finalization ranges are reported as ProtocolError instead.
var ErrInvalidArgument = errors.New("idcompressor: invalid argument")

// InvalidArgumentError reports a malformed or out-of-range argument that
// is not a parse/length failure (those get the more specific ParseError /
// LengthError types above, which also satisfy errors.Is(err,
// ErrInvalidArgument)).
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("idcompressor: invalid argument: %s", e.Msg)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// ErrProtocolError is the sentinel wrapped by ProtocolError.
var ErrProtocolError = errors.New("idcompressor: protocol error")

// ProtocolError is returned by FinalizeCreationRange and deserialization
// when the caller violates the total-order contract: a non-contiguous
// finalization range, or a session collision on resume.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("idcompressor: protocol error: %s", e.Msg)
}

func (e *ProtocolError) Is(target error) bool { return target == ErrProtocolError }

// ErrUnknownId is the sentinel wrapped by UnknownIdError.
var ErrUnknownId = errors.New("idcompressor: unknown id")

// UnknownIdError is returned by decompress, recompress, and the
// normalizer when an id or StableId is not present in the cluster table.
type UnknownIdError struct {
	Msg string
}

func (e *UnknownIdError) Error() string {
	return fmt.Sprintf("idcompressor: unknown id: %s", e.Msg)
}

func (e *UnknownIdError) Is(target error) bool { return target == ErrUnknownId }

// ErrUnfinalizedForeignId is the sentinel wrapped by
// UnfinalizedForeignIdError.
var ErrUnfinalizedForeignId = errors.New("idcompressor: unfinalized foreign id")

// UnfinalizedForeignIdError is returned by NormalizeToSessionSpace when
// asked to represent another session's not-yet-finalized LocalId in
// session space.
type UnfinalizedForeignIdError struct {
	Msg string
}

func (e *UnfinalizedForeignIdError) Error() string {
	return fmt.Sprintf("idcompressor: unfinalized foreign id: %s", e.Msg)
}

func (e *UnfinalizedForeignIdError) Is(target error) bool {
	return target == ErrUnfinalizedForeignId
}

// ErrVersionMismatch is the sentinel wrapped by VersionMismatchError.
var ErrVersionMismatch = errors.New("idcompressor: version mismatch")

// VersionMismatchError is returned by Deserialize when the blob's version
// tag does not match the version this build writes and reads.
type VersionMismatchError struct {
	Got  uint32
	Want uint32
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("idcompressor: version mismatch: got %d, want %d", e.Got, e.Want)
}

func (e *VersionMismatchError) Is(target error) bool { return target == ErrVersionMismatch }

// ErrOverflow is the sentinel wrapped by OverflowError.
var ErrOverflow = errors.New("idcompressor: overflow")

// OverflowError is returned by id generation and numeric-UUID arithmetic
// when a GenCount, FinalId, or the 122-bit StableId free-bit space would
// exceed its representable range.
type OverflowError struct {
	Msg string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("idcompressor: overflow: %s", e.Msg)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// ErrDisposed is returned by any operation on a Compressor after Dispose
// has been called.
var ErrDisposed = errors.New("idcompressor: compressor has been disposed")
