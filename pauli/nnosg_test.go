package pauli_test

import (
	"testing"

	"github.com/katalvlaran/moment/pauli"
	"github.com/stretchr/testify/require"
)

func TestNNCacheFiltersAndMemoizes(t *testing.T) {
	ctx, err := pauli.NewContext(5, false, false)
	require.NoError(t, err)
	cache, err := pauli.NewNNCache(ctx, 8)
	require.NoError(t, err)

	idx := pauli.NearestNeighbourIndex{WordLength: 2, Radius: 1}
	first := cache.Get(idx)
	require.NotEmpty(t, first)
	for _, s := range first {
		require.True(t, pauli.WithinChainRadius(s, 1))
	}

	second := cache.Get(idx)
	require.Equal(t, len(first), len(second))
}
