package stk1

// S7s is the variable-length unsigned integer codec underlying every
// field in a stk1 stream. Each byte's low bit is a continuation flag (1 =
// terminator, the last byte; 0 = more bytes follow); the remaining 7 bits
// carry a chunk of the value, most-significant chunk first.
//
//	aaaa_aaa0 bbbb_bbb0 cccc_ccc1  ->  a_aaaa_aabb_bbbb_bccc_cccc
//
// Credit: Kawai Hidemi, http://osask.net/w/196.html#j16c9806

// s7sWrite appends value to out using the minimum number of 7-bit chunks
// (1 chunk for values < 2^7, up to 10 chunks covering the full 64-bit
// range).
func s7sWrite(out []byte, value uint64) []byte {
	switch {
	case value < 0x80:
		return append(out, byte(value<<1)|1)
	case value < 0x40_00:
		return append(out, byte(value>>6)&0xFE, byte(value<<1)|1)
	case value < 0x20_00_00:
		return append(out,
			byte(value>>13)&0xFE,
			byte(value>>6)&0xFE,
			byte(value<<1)|1)
	case value < 0x10_00_00_00:
		return append(out,
			byte(value>>20)&0xFE,
			byte(value>>13)&0xFE,
			byte(value>>6)&0xFE,
			byte(value<<1)|1)
	case value < 0x8_00_00_00_00:
		return append(out,
			byte(value>>27)&0xFE,
			byte(value>>20)&0xFE,
			byte(value>>13)&0xFE,
			byte(value>>6)&0xFE,
			byte(value<<1)|1)
	case value < 0x4_00_00_00_00_00:
		return append(out,
			byte(value>>34)&0xFE,
			byte(value>>27)&0xFE,
			byte(value>>20)&0xFE,
			byte(value>>13)&0xFE,
			byte(value>>6)&0xFE,
			byte(value<<1)|1)
	case value < 0x2_00_00_00_00_00_00:
		return append(out,
			byte(value>>41)&0xFE,
			byte(value>>34)&0xFE,
			byte(value>>27)&0xFE,
			byte(value>>20)&0xFE,
			byte(value>>13)&0xFE,
			byte(value>>6)&0xFE,
			byte(value<<1)|1)
	case value < 0x1_00_00_00_00_00_00_00:
		return append(out,
			byte(value>>48)&0xFE,
			byte(value>>41)&0xFE,
			byte(value>>34)&0xFE,
			byte(value>>27)&0xFE,
			byte(value>>20)&0xFE,
			byte(value>>13)&0xFE,
			byte(value>>6)&0xFE,
			byte(value<<1)|1)
	case value < 0x80_00_00_00_00_00_00_00:
		return append(out,
			byte(value>>55)&0xFE,
			byte(value>>48)&0xFE,
			byte(value>>41)&0xFE,
			byte(value>>34)&0xFE,
			byte(value>>27)&0xFE,
			byte(value>>20)&0xFE,
			byte(value>>13)&0xFE,
			byte(value>>6)&0xFE,
			byte(value<<1)|1)
	default:
		return append(out,
			byte(value>>62)&0xFE,
			byte(value>>55)&0xFE,
			byte(value>>48)&0xFE,
			byte(value>>41)&0xFE,
			byte(value>>34)&0xFE,
			byte(value>>27)&0xFE,
			byte(value>>20)&0xFE,
			byte(value>>13)&0xFE,
			byte(value>>6)&0xFE,
			byte(value<<1)|1)
	}
}

// s7sByteIter is the minimal cursor the S7s reader needs: a position in a
// byte slice. The decoder and the match-header reader both thread one of
// these through a stream of S7s fields.
type s7sByteIter struct {
	data []byte
	pos  int
}

// next consumes and returns the next byte, or reports ok=false at EOF.
func (it *s7sByteIter) next() (b byte, ok bool) {
	if it.pos >= len(it.data) {
		return 0, false
	}
	b = it.data[it.pos]
	it.pos++
	return b, true
}

// s7sRead reads a fresh S7s value (seed accumulator 0).
func s7sRead(it *s7sByteIter) (uint64, bool) {
	return s7sReadWithAcc(it, 0)
}

// s7sReadWithAcc reads an S7s value whose first chunk has already been
// consumed elsewhere (acc). This lets the decoder fold a distance's
// continuation bytes into the match header byte it already read: the
// header's low nibble seeds acc, and reading continues exactly as if that
// nibble had been the first byte's high bits.
func s7sReadWithAcc(it *s7sByteIter, acc uint64) (uint64, bool) {
	for acc&1 == 0 {
		next, ok := it.next()
		if !ok {
			return 0, false
		}
		acc = (acc << 7) | uint64(next)
	}
	return acc >> 1, true
}
