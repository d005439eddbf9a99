package pauli_test

import (
	"testing"

	"github.com/katalvlaran/moment/pauli"
	"github.com/katalvlaran/moment/sequence"
	"github.com/stretchr/testify/require"
)

func TestCommutatorDisjointQubitsIsZero(t *testing.T) {
	ctx, err := pauli.NewContext(2, false, false)
	require.NoError(t, err)
	a, err := ctx.Canonicalize([]int{0}, sequence.SignPositive) // X0
	require.NoError(t, err)
	b, err := ctx.Canonicalize([]int{4}, sequence.SignPositive) // Y1
	require.NoError(t, err)
	result, err := ctx.Commutator(a, b)
	require.NoError(t, err)
	require.True(t, result.IsZero())
}

func TestCommutatorSameGeneratorIsZero(t *testing.T) {
	ctx, err := pauli.NewContext(1, false, false)
	require.NoError(t, err)
	a, err := ctx.Canonicalize([]int{1}, sequence.SignPositive) // Y0
	require.NoError(t, err)
	result, err := ctx.Commutator(a, a)
	require.NoError(t, err)
	require.True(t, result.IsZero())
}

func TestCommutatorDistinctGeneratorsSameQubitIsNonzero(t *testing.T) {
	ctx, err := pauli.NewContext(1, false, false)
	require.NoError(t, err)
	x, err := ctx.Canonicalize([]int{0}, sequence.SignPositive)
	require.NoError(t, err)
	y, err := ctx.Canonicalize([]int{1}, sequence.SignPositive)
	require.NoError(t, err)
	result, err := ctx.Commutator(x, y)
	require.NoError(t, err)
	require.False(t, result.IsZero())
	require.Equal(t, sequence.SignImaginary, result.Sign()) // X0*Y0 = iZ0
}

func TestAntiCommutatorDistinctGeneratorsSameQubitIsZero(t *testing.T) {
	ctx, err := pauli.NewContext(1, false, false)
	require.NoError(t, err)
	x, err := ctx.Canonicalize([]int{0}, sequence.SignPositive)
	require.NoError(t, err)
	y, err := ctx.Canonicalize([]int{1}, sequence.SignPositive)
	require.NoError(t, err)
	result, err := ctx.AntiCommutator(x, y)
	require.NoError(t, err)
	require.True(t, result.IsZero())
}

func TestAntiCommutatorSameOperandIsNonzero(t *testing.T) {
	ctx, err := pauli.NewContext(1, false, false)
	require.NoError(t, err)
	x, err := ctx.Canonicalize([]int{0}, sequence.SignPositive)
	require.NoError(t, err)
	result, err := ctx.AntiCommutator(x, x)
	require.NoError(t, err)
	require.False(t, result.IsZero())
	require.True(t, result.IsIdentity()) // X0*X0 = I
}
