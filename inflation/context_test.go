package inflation_test

import (
	"testing"

	"github.com/katalvlaran/moment/inflation"
	"github.com/katalvlaran/moment/sequence"
	"github.com/stretchr/testify/require"
)

func newBipartiteContext(t *testing.T, level int) (*inflation.Context, *inflation.Network) {
	t.Helper()
	// Two binary observables sharing a single source: the minimal
	// network with a nontrivial source variant to inflate.
	net, err := inflation.NewNetwork([]int{2, 2}, [][]int{{0}, {0}})
	require.NoError(t, err)
	ctx, err := inflation.NewContext(net, level)
	require.NoError(t, err)
	return ctx, net
}

func TestSameOperatorIsIdempotent(t *testing.T) {
	ctx, _ := newBipartiteContext(t, 1)
	seq, err := ctx.Canonicalize([]int{0, 0}, sequence.SignPositive)
	require.NoError(t, err)
	require.Equal(t, 1, seq.Len())
}

func TestDistinctOutcomesOfSameMeasurementAreOrthogonal(t *testing.T) {
	// A two-outcome observable has only one operator, so build a network
	// whose single observable has 3 outcomes and confirm that the product
	// of its two distinct outcome operators annihilates.
	net, err := inflation.NewNetwork([]int{3}, [][]int{{0}})
	require.NoError(t, err)
	ctx3, err := inflation.NewContext(net, 1)
	require.NoError(t, err)
	// Observable has 3 outcomes -> 2 operators (indices 0 and 1).
	seq, err := ctx3.Canonicalize([]int{0, 1}, sequence.SignPositive)
	require.NoError(t, err)
	require.True(t, seq.IsZero())
}

func TestDistinctObservablesCommute(t *testing.T) {
	ctx, _ := newBipartiteContext(t, 1)
	a, err := ctx.Canonicalize([]int{0, 1}, sequence.SignPositive)
	require.NoError(t, err)
	b, err := ctx.Canonicalize([]int{1, 0}, sequence.SignPositive)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestInflationLevelMustBePositive(t *testing.T) {
	net, err := inflation.NewNetwork([]int{2}, [][]int{{0}})
	require.NoError(t, err)
	_, err = inflation.NewContext(net, 0)
	require.Error(t, err)
}

func newTriangleContext(t *testing.T, level int) *inflation.Context {
	t.Helper()
	// The triangle network: three binary observables A, B, C, each
	// sharing exactly one source with each of the other two.
	net, err := inflation.NewNetwork(
		[]int{2, 2, 2},
		[][]int{
			{0, 2},
			{0, 1},
			{1, 2},
		},
	)
	require.NoError(t, err)
	ctx, err := inflation.NewContext(net, level)
	require.NoError(t, err)
	return ctx
}

func TestFactorizeSplitsIndependentPartiesIntoTwoFactors(t *testing.T) {
	ctx := newTriangleContext(t, 2)
	// Operator 0 is party A at (source0=variant0, source2=variant0);
	// operator 11 is party C at (source1=variant1, source2=variant1).
	// They both touch source 2, but at different variants, so they share
	// no (source, variant) instance and must factorize apart (spec
	// §4.5(c), §8's triangle-network worked example).
	seq, err := ctx.Canonicalize([]int{0, 11}, sequence.SignPositive)
	require.NoError(t, err)
	require.Equal(t, 2, seq.Len())

	factors := ctx.Factorize(seq)
	require.Len(t, factors, 2)
	for _, f := range factors {
		require.Equal(t, 1, f.Len())
	}
}

func TestFactorizeKeepsSharedSourceVariantFused(t *testing.T) {
	ctx := newTriangleContext(t, 2)
	// Operator 1 is party A at (source0=variant0, source2=variant1);
	// operator 11 is party C at (source1=variant1, source2=variant1).
	// Both touch source 2 at variant 1 -- the same instance -- so they
	// must NOT factorize apart.
	seq, err := ctx.Canonicalize([]int{1, 11}, sequence.SignPositive)
	require.NoError(t, err)
	require.Equal(t, 2, seq.Len())

	factors := ctx.Factorize(seq)
	require.Len(t, factors, 1)
}
