package stk1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchingLen_Basic(t *testing.T) {
	data := []byte("abcabcabc")
	// current=3, distance=3: "abc" vs "abc" then "abc" vs next 3, etc.
	require.Equal(t, 6, matchingLen(data, 3, 3, 100))
}

func TestMatchingLen_StopsAtMismatch(t *testing.T) {
	data := []byte("abcabX")
	require.Equal(t, 2, matchingLen(data, 3, 3, 100))
}

func TestMatchingLen_ClampsToRemainingInput(t *testing.T) {
	data := []byte("aaaaa")
	require.Equal(t, 2, matchingLen(data, 3, 1, 100))
}

func TestMatchingLen_ClampsToMaxLen(t *testing.T) {
	data := []byte("aaaaaaaaaa")
	require.Equal(t, 3, matchingLen(data, 3, 1, 3))
}

func TestMatch_IsZero(t *testing.T) {
	require.True(t, matchZero.isZero())
	require.False(t, match{len: 1, distance: 1}.isZero())
}
