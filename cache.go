package stk1

// offsetCache maps every 3-byte key seen at positions <= cursor to a
// most-recent-first list of positions, evicting by distance. A 3-byte key
// is the shortest key that makes hash collisions benign in greedy LZ77
// matching, and walking most-recent-first lets the encoder take the first
// good-enough long match and stop early.
//
// The observable contract (most-recent-first traversal, eviction by
// distance) does not depend on representation; this implementation uses a
// plain slice per key instead of a hand-rolled linked list. Positions are
// appended in increasing cursor order, so within a list they are already
// sorted oldest-first; "most recent first" traversal is simply a walk from
// the tail backward, and pruning stale entries is a slice of the front.
type offsetCache struct {
	input       []byte
	positions   map[uint32][]uint32
	key         uint32
	cursor      int
	limit       int
	maxDistance int
}

// newOffsetCache builds a cache over input with the given maxDistance. If
// input is shorter than 3 bytes, no 3-byte key ever exists and the cache
// is permanently empty.
func newOffsetCache(input []byte, maxDistance int) *offsetCache {
	c := &offsetCache{
		input:       input,
		positions:   make(map[uint32][]uint32),
		maxDistance: maxDistance,
	}
	if len(input) < 3 {
		c.limit = 0
		return c
	}
	c.key = pack3(input[0], input[1], input[2])
	c.limit = len(input) - 2
	return c
}

// pack3 packs three bytes big-endian into a 24-bit key.
func pack3(a, b, c byte) uint32 {
	return uint32(a)<<16 | uint32(b)<<8 | uint32(c)
}

// advance inserts the current rolling key at the current cursor position
// for up to step positions, then rolls the key forward. Insertion stops at
// limit = len(input)-2, since a key needs 3 bytes.
func (c *offsetCache) advance(step int) {
	if c.cursor >= c.limit {
		return
	}
	for i := 0; i < step; i++ {
		c.insert(c.key, c.cursor)
		c.cursor++
		if c.cursor >= c.limit {
			break
		}
		c.key = ((c.key << 8) | uint32(c.input[c.cursor+2])) & 0xFF_FF_FF
	}
}

// insert prepends value (logically) to key's position list and evicts
// stale entries once the cache has grown large enough.
func (c *offsetCache) insert(key uint32, value int) {
	c.positions[key] = append(c.positions[key], uint32(value))

	if len(c.positions) >= c.maxDistance*2 {
		minValue := uint32(0)
		if c.cursor > c.maxDistance {
			minValue = uint32(c.cursor - c.maxDistance)
		}
		for k, list := range c.positions {
			pruned := pruneList(list, minValue)
			if len(pruned) == 0 {
				delete(c.positions, k)
			} else {
				c.positions[k] = pruned
			}
		}
	}
}

// pruneList drops every position below minValue. Since list is sorted
// increasing (oldest first), this is just finding the cut point.
func pruneList(list []uint32, minValue uint32) []uint32 {
	if len(list) == 0 || list[len(list)-1] < minValue {
		return nil
	}
	lo, hi := 0, len(list)
	for lo < hi {
		mid := (lo + hi) / 2
		if list[mid] < minValue {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return list[lo:]
}

// matches returns candidate distances for the current cursor position in
// most-recent-first (ascending distance) order, or nil if no 3-byte key
// exists at the cursor or none is cached.
func (c *offsetCache) matches() []int {
	if c.cursor >= c.limit {
		return nil
	}
	list := c.positions[c.key]
	if len(list) == 0 {
		return nil
	}

	minValue := 0
	if c.cursor > c.maxDistance {
		minValue = c.cursor - c.maxDistance
	}

	distances := make([]int, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		pos := int(list[i])
		if pos < minValue {
			break
		}
		distances = append(distances, c.cursor-pos)
	}
	return distances
}
