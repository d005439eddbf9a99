package indextree_test

import (
	"testing"

	"github.com/katalvlaran/moment/indextree"
	"github.com/stretchr/testify/require"
)

func TestAddFindRoundTrip(t *testing.T) {
	tr := indextree.New[int, string]()
	tr.Add([]int{1, 2, 3}, "abc")
	tr.Add([]int{1, 2}, "ab")
	tr.Add([]int{}, "root")

	v, ok := tr.Find([]int{1, 2, 3})
	require.True(t, ok)
	require.Equal(t, "abc", v)

	v, ok = tr.Find([]int{1, 2})
	require.True(t, ok)
	require.Equal(t, "ab", v)

	v, ok = tr.Find(nil)
	require.True(t, ok)
	require.Equal(t, "root", v)

	_, ok = tr.Find([]int{1})
	require.False(t, ok)

	_, ok = tr.Find([]int{9, 9, 9})
	require.False(t, ok)
}

func TestLeaf(t *testing.T) {
	tr := indextree.New[int, int]()
	require.True(t, tr.Leaf())
	tr.Add([]int{5}, 42)
	require.False(t, tr.Leaf())
}

func TestChildrenStaySortedUnderArbitraryInsertOrder(t *testing.T) {
	tr := indextree.New[int, int]()
	order := []int{5, 1, 9, 3, 7, 0, 8, 2, 6, 4}
	for _, k := range order {
		tr.Add([]int{k}, k*10)
	}
	for _, k := range order {
		v, ok := tr.Find([]int{k})
		require.True(t, ok)
		require.Equal(t, k*10, v)
	}
}

func TestOverwriteExistingKey(t *testing.T) {
	tr := indextree.New[int, string]()
	tr.Add([]int{1, 1}, "first")
	tr.Add([]int{1, 1}, "second")
	v, ok := tr.Find([]int{1, 1})
	require.True(t, ok)
	require.Equal(t, "second", v)
}
