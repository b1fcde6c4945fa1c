package stk1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOffsetCache_NoKeyUnderThreeBytes(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		c := newOffsetCache(make([]byte, n), lzMaxDistance)
		c.advance(1)
		require.Nil(t, c.matches())
	}
}

func TestOffsetCache_FindsRepeatedKey(t *testing.T) {
	// "abcabc": at cursor 3 the key "abc" was already inserted at position 0.
	input := []byte("abcabc")
	c := newOffsetCache(input, lzMaxDistance)
	c.advance(3)

	dists := c.matches()
	require.Equal(t, []int{3}, dists)
}

func TestOffsetCache_MostRecentFirst(t *testing.T) {
	// Three occurrences of "key" separated by filler; matches() should
	// yield distances in ascending order (nearest occurrence first).
	input := []byte("key" + "AAAAA" + "key" + "BBBBB" + "key" + "C")
	c := newOffsetCache(input, lzMaxDistance)

	// Advance through everything up to (but not including) the final "key".
	target := len(input) - len("key") - len("C")
	c.advance(target)

	dists := c.matches()
	require.Len(t, dists, 2)
	require.Less(t, dists[0], dists[1], "distances must be strictly increasing (most recent first)")
}

func TestOffsetCache_PruningDropsPositionsBelowWindow(t *testing.T) {
	maxDistance := 4
	// Build input so the cache definitely triggers its eviction sweep
	// (size >= 2*maxDistance).
	input := make([]byte, 0, 64)
	input = append(input, 'o', 'l', 'd') // position 0: a key that will fall out of range
	for i := 0; i < 40; i++ {
		input = append(input, byte('a'+i%26))
	}

	c := newOffsetCache(input, maxDistance)
	c.advance(len(input) - 2)

	// Eviction is amortized, triggered once size crosses 2*maxDistance, so
	// a position can briefly outlive the exact threshold until the next
	// sweep catches it; the contract only requires that it does not
	// survive indefinitely. maxDistance*3 gives slack for the sweep that
	// hasn't fired yet while still catching a cache that never prunes at
	// all.
	minValue := c.cursor - c.maxDistance*3
	for _, list := range c.positions {
		for _, p := range list {
			require.GreaterOrEqual(t, int(p), minValue)
		}
	}
}

func TestPruneList(t *testing.T) {
	require.Nil(t, pruneList(nil, 5))
	require.Nil(t, pruneList([]uint32{1, 2, 3}, 5))
	require.Equal(t, []uint32{5, 6, 7}, pruneList([]uint32{1, 3, 5, 6, 7}, 5))
	require.Equal(t, []uint32{1, 2, 3}, pruneList([]uint32{1, 2, 3}, 0))
}

func TestOffsetCache_AdvanceStopsAtLimit(t *testing.T) {
	input := []byte("abcde")
	c := newOffsetCache(input, lzMaxDistance)
	c.advance(1)
	c.advance(100) // should stop at limit = len(input)-2, not run off the end
	require.Equal(t, len(input)-2, c.cursor)
}
