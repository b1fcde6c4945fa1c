package stk1

// Encode compresses input under the given configuration. The empty input
// encodes to a nil, zero-length output (decode against a zero-length
// output buffer is a documented no-op success, so the symmetric choice is
// made here too).
func Encode(input []byte, config Configuration) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil
	}

	var output []byte

	cache := newOffsetCache(input, config.maxDistance)
	lit := newVarSlice(input, 0)
	var matches []match

	cursor := 1
	cache.advance(cursor)

	for cursor < len(input) {
		count := 1
		found := matchZero

		if dists := cache.matches(); dists != nil {
			for _, distance := range dists {
				length := matchingLen(input, cursor, distance, config.maxLen)
				if found.len < length && length >= lzMinMidLen {
					found = match{len: length, distance: distance}
					if found.len >= thresholdLen1 {
						break
					}
				}
			}
		}

		if found.isZero() {
			maxShort := cursor
			if maxShort > lzShortMaxDist {
				maxShort = lzShortMaxDist
			}
			for distance := 1; distance <= maxShort; distance++ {
				length := matchingLen(input, cursor, distance, config.maxLen)
				if length >= lzShortMinLen && found.len < length {
					found = match{len: length, distance: distance}
				}
			}
		}

		if found.isZero() {
			if len(matches) > 0 {
				output = flushBlock(output, lit, matches)
				matches = matches[:0]
				lit = newVarSlice(input, cursor)
			} else {
				lit.expand(1)
			}
			count = 1
		} else {
			matches = append(matches, found)
			count = found.len
		}

		cache.advance(count)
		cursor += count
	}

	output = flushBlock(output, lit, matches)
	return output, nil
}

// flushBlock writes one block: header nibbles (with S7s overflow), the
// literal bytes, and a match header + distance/length fields per match.
func flushBlock(output []byte, lit varSlice, matches []match) []byte {
	litLen := lit.len()
	lzCount := len(matches)

	litNibble := litLen
	if litNibble > 15 {
		litNibble = 0
	}
	lzNibble := lzCount
	if lzNibble > 15 {
		lzNibble = 0
	}

	output = append(output, byte(litNibble)|byte(lzNibble<<4))
	if litLen > 15 {
		output = s7sWrite(output, uint64(litLen))
	}
	if lzCount > 15 || lzCount == 0 {
		// lzCount == 0 deliberately reuses the overflow encoding: the
		// nibble value 0 always means "read an S7s next", whether because
		// the true count exceeds 15 or because it is exactly 0 (which
		// only happens at end-of-input, a literal-only final block).
		output = s7sWrite(output, uint64(lzCount))
	}

	output = append(output, lit.bytes()...)

	for _, m := range matches {
		d := m.distance - 1
		l := m.len - 1

		var distLead byte
		var trail []byte
		switch {
		case d < 8:
			distLead = byte(d<<1) | 0x01
		case d < 0x400:
			distLead = byte(d>>6) & 0x0E
			trail = []byte{byte(d<<1) | 1}
		default: // d < 0x20000
			distLead = byte(d>>13) & 0x0E
			trail = []byte{
				byte(d >> 6 & 0xFE),
				byte(d<<1) | 1,
			}
		}

		lenNibble := l
		if lenNibble > 15 {
			lenNibble = 0
		}
		output = append(output, distLead|byte(lenNibble<<4))
		output = append(output, trail...)
		if l > 15 {
			output = s7sWrite(output, uint64(l))
		}
	}

	return output
}
