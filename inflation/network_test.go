package inflation_test

import (
	"testing"

	"github.com/katalvlaran/moment/inflation"
	"github.com/stretchr/testify/require"
)

// Triangle scenario: three binary observables A, B, C, each pair sharing
// one source (spec §8's concrete triangle-inflation example).
func newTriangleNetwork(t *testing.T) *inflation.Network {
	t.Helper()
	net, err := inflation.NewNetwork(
		[]int{2, 2, 2},
		[][]int{
			{0, 2}, // A: sources 0 (A-B) and 2 (A-C)
			{0, 1}, // B: sources 0 (A-B) and 1 (B-C)
			{1, 2}, // C: sources 1 (B-C) and 2 (A-C)
		},
	)
	require.NoError(t, err)
	return net
}

func TestTriangleNetworkHasThreeExplicitSourcesNoImplicit(t *testing.T) {
	net := newTriangleNetwork(t)
	require.Equal(t, 3, net.ExplicitSourceCount())
	require.Equal(t, 0, net.ImplicitSourceCount())
}

func TestTriangleNetworkTotalSourceCountScalesWithInflation(t *testing.T) {
	net := newTriangleNetwork(t)
	require.Equal(t, 3, net.TotalSourceCount(1))
	require.Equal(t, 6, net.TotalSourceCount(2))
}

func TestUnconnectedObservableGetsImplicitSource(t *testing.T) {
	net, err := inflation.NewNetwork([]int{2}, [][]int{{}})
	require.NoError(t, err)
	require.Equal(t, 0, net.ExplicitSourceCount())
	require.Equal(t, 1, net.ImplicitSourceCount())
	require.Len(t, net.Observables()[0].Sources, 1)
}

func TestGlobalSourceVariantRoundTrip(t *testing.T) {
	net := newTriangleNetwork(t)
	const level = 3
	for src := 0; src < net.ExplicitSourceCount(); src++ {
		for variant := 0; variant < level; variant++ {
			global := net.VariantToGlobalSource(level, src, variant)
			gotSrc, gotVariant := net.GlobalSourceToVariant(level, global)
			require.Equal(t, src, gotSrc)
			require.Equal(t, variant, gotVariant)
		}
	}
}

func TestMismatchedLengthsRejected(t *testing.T) {
	_, err := inflation.NewNetwork([]int{2, 2}, [][]int{{0}})
	require.Error(t, err)
}
