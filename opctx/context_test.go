package opctx_test

import (
	"testing"

	"github.com/katalvlaran/moment/opctx"
	"github.com/katalvlaran/moment/sequence"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeIdempotent(t *testing.T) {
	ctx, err := opctx.NewGeneric(4)
	require.NoError(t, err)

	s1, err := ctx.Canonicalize([]int{0, 1, 2}, sequence.SignPositive)
	require.NoError(t, err)

	s2, err := ctx.Canonicalize(s1.Ops(), s1.Sign())
	require.NoError(t, err)

	require.True(t, s1.Equal(s2))
}

func TestConjugateInvolution(t *testing.T) {
	ctx, err := opctx.NewGeneric(3)
	require.NoError(t, err)

	s, err := ctx.Canonicalize([]int{0, 1, 2}, sequence.SignImaginary)
	require.NoError(t, err)

	require.True(t, s.Equal(ctx.Conjugate(ctx.Conjugate(s))))
}

func TestEmptyAlphabetOnlyIdentityAndZero(t *testing.T) {
	ctx, err := opctx.NewGeneric(0)
	require.NoError(t, err)

	id, err := ctx.Canonicalize(nil, sequence.SignPositive)
	require.NoError(t, err)
	require.True(t, id.IsIdentity())

	_, err = ctx.Canonicalize([]int{0}, sequence.SignPositive)
	require.Error(t, err)
}

func TestZeroLengthSequenceIsIdentityUnlessZeroFlagSet(t *testing.T) {
	require.True(t, sequence.Identity().IsIdentity())
	require.False(t, sequence.Zero().IsIdentity())
	require.True(t, sequence.Zero().IsZero())
}

func TestBadInputOnOutOfRangeOperator(t *testing.T) {
	ctx, err := opctx.NewGeneric(2)
	require.NoError(t, err)
	_, err = ctx.Canonicalize([]int{5}, sequence.SignPositive)
	require.Error(t, err)
}
