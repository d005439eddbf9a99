package shortlex_test

import (
	"testing"

	"github.com/katalvlaran/moment/shortlex"
	"github.com/stretchr/testify/require"
)

func TestHashEmptyIsIdentity(t *testing.T) {
	h := shortlex.New(5)
	require.Equal(t, shortlex.Identity, h.Hash(nil))
}

func TestHashWorkedExample(t *testing.T) {
	// spec §8: alphabet 3, sequence (0,1,2): hash = 1 + 1*1 + 2*3 + 3*9 = 35.
	h := shortlex.New(3)
	require.Equal(t, uint64(35), h.Hash([]int{0, 1, 2}))
}

func TestEmptyAlphabetOnlyRepresentsEmpty(t *testing.T) {
	h := shortlex.New(0)
	require.True(t, h.CanHash(0))
	require.Equal(t, 0, h.MaxLength())
}

func TestCanHashDetectsOverflowBoundary(t *testing.T) {
	h := shortlex.New(2)
	require.True(t, h.CanHash(h.MaxLength()))
	require.False(t, h.CanHash(h.MaxLength()+1))
}

func TestHashOrdersByLengthThenLex(t *testing.T) {
	h := shortlex.New(4)
	shorter := h.Hash([]int{3, 3, 3})
	longer := h.Hash([]int{0, 0, 0, 0})
	require.Less(t, shorter, longer)

	a := h.Hash([]int{0, 1})
	b := h.Hash([]int{0, 2})
	require.Less(t, a, b)
}
