package stk1

// Encoder policy constants. These are fixed at the byte level for format
// compatibility and are not meant to be tuned by callers.
const (
	// lzMaxLen is the default cap on a single match length.
	lzMaxLen = 0x80_00_00
	// lzMaxDistance is the default dictionary window (and the format's
	// hard ceiling, since the distance tiers top out at 0x20000).
	lzMaxDistance = 0x02_00_00

	// thresholdLen1 is the early-exit length for the long-distance search:
	// the encoder accepts the first candidate this long or longer without
	// scanning the rest of the offset list.
	thresholdLen1 = 16
	// lzMinMidLen is the minimum length to accept a long-distance match.
	lzMinMidLen = 4
	// lzShortMinLen is the minimum length to accept a short-distance match.
	lzShortMinLen = 2
	// lzShortMaxDist is the distance ceiling for the short-distance pass.
	lzShortMaxDist = 8
)

// maxDecodedSize caps DecodeToVec's declared size: the format itself has no
// notion of a maximum decompressed size, but a hostile or corrupt declared
// size should not be handed straight to make([]byte, n).
const maxDecodedSize = 1 << 34
