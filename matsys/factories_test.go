package matsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moment/inflation"
	"github.com/katalvlaran/moment/pauli"
	"github.com/katalvlaran/moment/sequence"
)

func TestBuildLocalizingMatrixHasSameDimAsMoment(t *testing.T) {
	s := newGenericSystem(t, 2)
	_, moment, err := s.BuildMoment(1)
	require.NoError(t, err)

	osg := s.dict.OSGUpTo(1)
	_, localizing, err := s.BuildLocalizing(1, osg.At(1))
	require.NoError(t, err)
	assert.Equal(t, moment.Dim, localizing.Dim)
}

func TestBuildLocalizingMatrixCachesByWord(t *testing.T) {
	s := newGenericSystem(t, 2)
	osg := s.dict.OSGUpTo(1)
	word := osg.At(1)

	offset1, _, err := s.BuildLocalizing(1, word)
	require.NoError(t, err)
	offset2, _, err := s.BuildLocalizing(1, word)
	require.NoError(t, err)
	assert.Equal(t, offset1, offset2)
	assert.Equal(t, 1, s.MatrixCount())
}

func TestBuildNearestNeighbourRejectsNonPauliContext(t *testing.T) {
	s := newGenericSystem(t, 2)
	_, _, err := s.BuildNearestNeighbour(1, 0)
	require.Error(t, err)
}

func TestBuildNearestNeighbourMatchesPlainMomentAtFullRadius(t *testing.T) {
	pctx, err := pauli.NewContext(2, false, false)
	require.NoError(t, err)
	s := New(pctx, 2)

	_, nn, err := s.BuildNearestNeighbour(1, 1)
	require.NoError(t, err)
	_, plain, err := s.BuildMoment(1)
	require.NoError(t, err)
	assert.Equal(t, plain.Dim, nn.Dim, "radius covering the whole chain keeps every word")
}

func TestBuildExtendedRequiresInflationContext(t *testing.T) {
	s := newGenericSystem(t, 2)
	_, _, err := s.BuildExtended(1)
	require.Error(t, err)
}

func TestBuildExtendedOnTriangleNetworkAtLeastMatchesBaseMoment(t *testing.T) {
	net, err := inflation.NewNetwork(
		[]int{2, 2, 2},
		[][]int{
			{0, 2},
			{0, 1},
			{1, 2},
		},
	)
	require.NoError(t, err)
	ictx, err := inflation.NewContext(net, 2)
	require.NoError(t, err)
	s := New(ictx, 2)

	_, base, err := s.BuildMoment(1)
	require.NoError(t, err)
	_, extended, err := s.BuildExtended(1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, extended.Dim, base.Dim)

	// registerFactors must have actually factorized at least one base
	// moment-matrix symbol into more than one canonical factor -- proof
	// that the suggester sees a real factor table, not only the trivial
	// singleton fallback.
	factored := false
	for i := 0; i < s.inflation.factors.Size(); i++ {
		if !s.inflation.factors.At(i).Fundamental() {
			factored = true
			break
		}
	}
	assert.True(t, factored, "expected at least one non-fundamental factor-table entry after building the base moment matrix")
}

func TestBuildCommutatorRejectsNonPauliContext(t *testing.T) {
	s := newGenericSystem(t, 2)
	osg := s.dict.OSGUpTo(1)
	_, _, err := s.BuildCommutator(1, -1, osg.At(0))
	require.Error(t, err)
}

func TestBuildCommutatorWithIdentityWordIsZero(t *testing.T) {
	pctx, err := pauli.NewContext(2, false, false)
	require.NoError(t, err)
	s := New(pctx, 2)

	_, m, err := s.BuildCommutator(1, -1, sequence.Identity())
	require.NoError(t, err)
	for r := 0; r < m.Dim; r++ {
		for c := 0; c < m.Dim; c++ {
			assert.True(t, m.Cells[r][c].Zero, "[x, 1] must vanish for every generator x")
		}
	}
}

func TestBuildAntiCommutatorWithIdentityWordMatchesTwiceMoment(t *testing.T) {
	pctx, err := pauli.NewContext(2, false, false)
	require.NoError(t, err)
	s := New(pctx, 2)

	_, moment, err := s.BuildMoment(1)
	require.NoError(t, err)
	_, anti, err := s.BuildAntiCommutator(1, -1, sequence.Identity())
	require.NoError(t, err)

	require.Equal(t, moment.Dim, anti.Dim)
	for r := 0; r < moment.Dim; r++ {
		for c := 0; c < moment.Dim; c++ {
			// {x, 1} = 2x never vanishes, and carries the same symbol as
			// the plain moment-matrix cell, just doubled.
			assert.Equal(t, moment.Cells[r][c].Zero, anti.Cells[r][c].Zero)
			if !moment.Cells[r][c].Zero {
				assert.Equal(t, moment.Cells[r][c].Symbol, anti.Cells[r][c].Symbol)
				assert.InDelta(t, real(moment.Cells[r][c].Coefficient)*2, real(anti.Cells[r][c].Coefficient), 1e-9)
			}
		}
	}
}

func TestBuildCommutatorCachesByIndex(t *testing.T) {
	pctx, err := pauli.NewContext(2, false, false)
	require.NoError(t, err)
	s := New(pctx, 2)

	offset1, _, err := s.BuildCommutator(1, -1, sequence.Identity())
	require.NoError(t, err)
	offset2, _, err := s.BuildCommutator(1, -1, sequence.Identity())
	require.NoError(t, err)
	assert.Equal(t, offset1, offset2)
	assert.Equal(t, 1, s.MatrixCount())
}

func TestBuildExtendedIsIdempotentByOffset(t *testing.T) {
	net, err := inflation.NewNetwork([]int{2}, [][]int{{}})
	require.NoError(t, err)
	ictx, err := inflation.NewContext(net, 1)
	require.NoError(t, err)
	s := New(ictx, 2)

	offset1, _, err := s.BuildExtended(0)
	require.NoError(t, err)
	offset2, _, err := s.BuildExtended(0)
	require.NoError(t, err)
	assert.Equal(t, offset1, offset2)
}
