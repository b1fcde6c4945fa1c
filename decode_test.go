package stk1

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_ZeroLengthOutputIsNoOp(t *testing.T) {
	err := Decode(nil, nil)
	require.NoError(t, err)

	err = Decode([]byte{0x01, 0x01, 'x'}, []byte{})
	require.NoError(t, err)
}

func TestDecode_EmptyInputWithNonZeroOutput(t *testing.T) {
	err := Decode(nil, make([]byte, 4))
	require.ErrorIs(t, err, ErrInvalidData)
}

func TestDecode_DistanceBeyondCursorIsInvalid(t *testing.T) {
	// leading byte: lit=1, lz=1; one literal byte; match header claims
	// distance = cursor+1 (cursor is 1 at the point the match is parsed).
	out := make([]byte, 4)
	// D = distance-1; want distance=2 (cursor is only 1) -> D=1, D<8 tier:
	// dist_lead = (1<<1)|1 = 3; length nibble: len=2 -> L=1 -> nibble=1
	// (nibble must be nonzero here, or the decoder would try to read an
	// overflow length field that was never written).
	compressed := []byte{0x11, 'x', byte(3 | (1 << 4))}
	err := Decode(compressed, out)
	require.ErrorIs(t, err, ErrInvalidData)
}

func TestDecode_UnterminatedS7sField(t *testing.T) {
	// lit_nibble=0 forces an S7s read for lit_len, but no terminator byte
	// follows.
	compressed := []byte{0x00, 0x00}
	err := Decode(compressed, make([]byte, 4))
	require.ErrorIs(t, err, ErrInvalidData)
}

func TestDecode_TruncatedMidLiteral(t *testing.T) {
	// Declares 4 literal bytes but only provides 2.
	compressed := []byte{0x04 | (1 << 4), 'a', 'b'}
	err := Decode(compressed, make([]byte, 6))
	require.ErrorIs(t, err, ErrInvalidData)
}

func TestDecode_OverlapProducesRunLengthExpansion(t *testing.T) {
	// One literal byte 'A', then a match with distance=1, length=5: must
	// expand to "AAAAAA".
	// D=0 (<8): dist_lead=(0<<1)|1=1; L=4 -> nibble=4.
	compressed := []byte{0x11, 'A', byte(1 | (4 << 4))}
	out := make([]byte, 6)
	err := Decode(compressed, out)
	require.NoError(t, err)
	require.Equal(t, []byte("AAAAAA"), out)
}

func TestDecode_LengthClampedAtTail(t *testing.T) {
	// Match declares more bytes than remain in the output buffer; decoder
	// must clamp rather than overrun.
	// literal "AB" (lit=2, lz=1): leading = 2 | (1<<4) = 0x12.
	// match: distance=1 (D=0, dist_lead=1), declared length 10 (L=9,
	// nibble=9) but only 3 bytes remain in a 5-byte output. Copying 'B'
	// (distance 1) repeatedly from the tail of "AB" yields "ABBBB".
	compressed := []byte{0x12, 'A', 'B', byte(1 | (9 << 4))}
	out := make([]byte, 5)
	err := Decode(compressed, out)
	require.NoError(t, err)
	require.Equal(t, []byte("ABBBB"), out)
}

func TestDecode_CanonicalZeroStream(t *testing.T) {
	// A literal zero byte, then a long run of distance=1 zero bytes
	// compressed via round-trip, decoded back out.
	input := make([]byte, 512)
	compressed, err := Encode(input, DefaultConfiguration)
	require.NoError(t, err)

	out, err := DecodeToVec(compressed, len(input))
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestDecodeToVec_DeclaredSizeTooLarge(t *testing.T) {
	_, err := DecodeToVec(nil, maxDecodedSize+1)
	require.ErrorIs(t, err, ErrOutOfMemory)
	require.True(t, errors.Is(err, ErrDeclaredSizeTooLarge))
}

func TestDecodeToVec_NegativeSize(t *testing.T) {
	_, err := DecodeToVec(nil, -1)
	require.ErrorIs(t, err, ErrOutOfMemory)
}
