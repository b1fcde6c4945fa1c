package stk1

import "fmt"

// EncodeWithTest encodes input, then decodes the result and compares it
// byte-for-byte against input. It costs extra time and memory relative to
// Encode and exists purely as a verification aid for callers who would
// rather fail loudly at encode time than ship a silently corrupt stream.
// On success it returns the same bytes Encode would have returned.
//
// On a round-trip mismatch the returned error wraps ErrRoundTripMismatch
// and names the first differing byte's position and both values, so
// callers can both errors.Is it and read a human-readable message.
func EncodeWithTest(input []byte, config Configuration) ([]byte, error) {
	out, err := Encode(input, config)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	got, err := DecodeToVec(out, len(input))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	for i := range input {
		if input[i] != got[i] {
			return nil, fmt.Errorf("%w: expected %02x but got %02x at offset %08x",
				ErrRoundTripMismatch, input[i], got[i], i)
		}
	}

	return out, nil
}
