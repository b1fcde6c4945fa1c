// Source: reverse-engineered from the original stk1 decoder by Kawai Hidemi
// (http://osask.net/w/196.html). This package is an independent Go
// implementation and carries no upstream license header.

/*
Package stk1 implements a subset of the "stk1" byte-level dictionary
compression format.

stk1 is an LZ77-style scheme: a compressed stream is a sequence of blocks,
each a literal run followed by zero or more back-reference matches. Every
variable-length field (literal counts, match counts, match lengths,
distances beyond the shortest tier) is carried by the S7s codec, a
7-bits-per-byte integer encoding terminated by a low-bit marker.

There is no container format: the decoder must be told the decompressed
size out of band.

# Compress

	out, err := stk1.Encode(data, stk1.DefaultConfiguration)

# Decompress

	dst := make([]byte, decompressedSize)
	err := stk1.Decode(compressed, dst)

Or, to have the package allocate the output buffer:

	out, err := stk1.DecodeToVec(compressed, decompressedSize)

# Testing a round trip

	out, err := stk1.EncodeWithTest(data, stk1.DefaultConfiguration)
*/
package stk1
