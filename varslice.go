package stk1

// varSlice is the literal-run affordance: a (source, offset, length)
// window into the input, so growing a pending literal run is O(1) and no
// bytes are copied until the run is flushed.
type varSlice struct {
	source []byte
	offset int
	length int
}

// newVarSlice starts a one-byte literal run anchored at offset.
func newVarSlice(source []byte, offset int) varSlice {
	return varSlice{source: source, offset: offset, length: 1}
}

// expand grows the run by delta bytes.
func (v *varSlice) expand(delta int) { v.length += delta }

func (v varSlice) len() int { return v.length }

// bytes returns the run's current window. No copy occurs.
func (v varSlice) bytes() []byte { return v.source[v.offset : v.offset+v.length] }
