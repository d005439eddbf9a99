package matsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moment/opctx"
)

func newGenericSystem(t *testing.T, alphabet int) *System {
	t.Helper()
	ctx, err := opctx.NewGeneric(alphabet)
	require.NoError(t, err)
	return New(ctx, 2)
}

func TestLevelZeroMomentMatrixIsOneByOneIdentity(t *testing.T) {
	s := newGenericSystem(t, 2)
	_, m, err := s.BuildMoment(0)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Dim)
	assert.Equal(t, 1, s.Symbols().Len()-1, "only the reserved identity symbol should exist besides zero")
	cell := m.At(0, 0)
	assert.False(t, cell.Zero)
	assert.Equal(t, 1, cell.Symbol, "level-0 moment matrix's sole entry is the identity symbol")
}

func TestBuildMomentIsIdempotentByOffset(t *testing.T) {
	s := newGenericSystem(t, 2)
	offset1, _, err := s.BuildMoment(1)
	require.NoError(t, err)
	offset2, _, err := s.BuildMoment(1)
	require.NoError(t, err)
	assert.Equal(t, offset1, offset2)
	assert.Equal(t, 1, s.MatrixCount())
}

func TestBuildMomentRejectsNegativeLevel(t *testing.T) {
	s := newGenericSystem(t, 2)
	_, _, err := s.BuildMoment(-1)
	require.Error(t, err)
}

func TestMomentMatrixGrowsWithLevel(t *testing.T) {
	s := newGenericSystem(t, 2)
	_, m0, err := s.BuildMoment(0)
	require.NoError(t, err)
	_, m1, err := s.BuildMoment(1)
	require.NoError(t, err)
	assert.Less(t, m0.Dim, m1.Dim)
}

func TestMatrixAtOutOfRangeReturnsError(t *testing.T) {
	s := newGenericSystem(t, 2)
	_, _, err := s.BuildMoment(0)
	require.NoError(t, err)
	_, err = s.MatrixAt(99)
	require.Error(t, err)
}
