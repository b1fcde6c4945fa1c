package stk1

import "errors"

// Sentinel errors for decoding. Encoding has no error kinds of its own yet;
// EncodeError-equivalent failures are reserved for future use (e.g. an
// input too large to represent under the format's length/distance bounds).
var (
	// ErrInvalidData is returned when the compressed stream is truncated, an
	// S7s field never terminates, a match distance points before the start
	// of the output, or any other structural parse failure occurs.
	ErrInvalidData = errors.New("stk1: invalid data")

	// ErrOutOfMemory is returned by helpers that allocate the output buffer
	// on the caller's behalf when the declared size is unreasonable.
	ErrOutOfMemory = errors.New("stk1: out of memory")

	// ErrDeclaredSizeTooLarge is wrapped by ErrOutOfMemory when DecodeToVec
	// is asked to allocate a buffer larger than maxDecodedSize.
	ErrDeclaredSizeTooLarge = errors.New("stk1: declared size exceeds MaxDecodedSize")

	// ErrRoundTripMismatch is returned by EncodeWithTest when decoding the
	// freshly encoded stream does not reproduce the original input.
	ErrRoundTripMismatch = errors.New("stk1: round-trip mismatch")
)
