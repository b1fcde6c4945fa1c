package stk1

import "fmt"

// Decode parses a stk1 stream from input and reconstructs it into output.
// output must already be sized to the known decompressed length; Decode
// never grows it. A zero-length output is a no-op success.
//
// Decode returns ErrInvalidData for a truncated stream, an S7s field that
// never terminates, a literal run longer than the remaining output, or a
// match distance pointing before the start of the output.
func Decode(input []byte, output []byte) error {
	it := &s7sByteIter{data: input}
	cursor := 0

	for cursor < len(output) {
		lead, ok := it.next()
		if !ok {
			return ErrInvalidData
		}

		by := int(lead & 0x0F)
		lz := int(lead >> 4)

		if by == 0 {
			v, ok := s7sRead(it)
			if !ok {
				return ErrInvalidData
			}
			by = int(v)
		}
		if lz == 0 {
			v, ok := s7sRead(it)
			if !ok {
				return ErrInvalidData
			}
			lz = int(v)
		}

		if by > 0 {
			if it.pos+by > len(it.data) || cursor+by > len(output) {
				return ErrInvalidData
			}
			copy(output[cursor:cursor+by], it.data[it.pos:it.pos+by])
			it.pos += by
			cursor += by
		}

		if cursor >= len(output) {
			break
		}

		for i := 0; i < lz; i++ {
			leadCp, ok := it.next()
			if !ok {
				return ErrInvalidData
			}

			d, ok := s7sReadWithAcc(it, uint64(leadCp&0x0F))
			if !ok {
				return ErrInvalidData
			}
			distance := int(d) + 1

			cp := int(leadCp >> 4)
			if cp == 0 {
				v, ok := s7sRead(it)
				if !ok {
					return ErrInvalidData
				}
				cp = int(v)
			}
			length := cp + 1

			if distance > cursor {
				return ErrInvalidData
			}

			// Tolerates encoders that over-state length at the tail: the
			// last block may legally declare a length longer than the
			// remaining output.
			if remaining := len(output) - cursor; length > remaining {
				length = remaining
			}

			src := cursor - distance
			for j := 0; j < length; j++ {
				output[cursor] = output[src]
				cursor++
				src++
			}
		}
	}

	return nil
}

// DecodeToVec decodes input into a freshly allocated buffer of the given
// declared size. It returns ErrOutOfMemory (wrapping
// ErrDeclaredSizeTooLarge) instead of allocating when size exceeds
// maxDecodedSize: Go has no fallible-allocation API equivalent to a
// try_reserve_exact, so this is the closest analogue.
func DecodeToVec(input []byte, size int) ([]byte, error) {
	if size < 0 || size > maxDecodedSize {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, ErrDeclaredSizeTooLarge)
	}

	output := make([]byte, size)
	if err := Decode(input, output); err != nil {
		return nil, err
	}
	return output, nil
}
