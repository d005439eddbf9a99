package worker_test

import (
	"testing"

	"github.com/katalvlaran/moment/inflation/worker"
	"github.com/katalvlaran/moment/opctx"
	"github.com/katalvlaran/moment/sequence"
	"github.com/katalvlaran/moment/symboltab"
	"github.com/stretchr/testify/require"
)

func TestBuildSquareInternsConsistentlyAcrossWorkers(t *testing.T) {
	ctx, err := opctx.NewGeneric(3)
	require.NoError(t, err)
	symbols := symboltab.New(ctx)

	dim := 6
	gen := func(row, col int) (sequence.OperatorSequence, error) {
		ops := []int{row % 3, col % 3}
		return ctx.Canonicalize(ops, sequence.SignPositive)
	}

	cells, err := worker.BuildSquare(symbols, dim, 4, gen)
	require.NoError(t, err)
	require.Len(t, cells, dim)
	for r := 0; r < dim; r++ {
		require.Len(t, cells[r], dim)
		for c := 0; c < dim; c++ {
			require.False(t, cells[r][c].Zero)
		}
	}

	// Cells generated from the same underlying sequence across
	// different (row,col) pairs must intern to the same symbol.
	require.Equal(t, cells[0][0].Symbol, cells[3][3].Symbol)
}

func TestBuildSquarePropagatesGeneratorError(t *testing.T) {
	ctx, err := opctx.NewGeneric(2)
	require.NoError(t, err)
	symbols := symboltab.New(ctx)

	gen := func(row, col int) (sequence.OperatorSequence, error) {
		return ctx.Canonicalize([]int{99}, sequence.SignPositive)
	}

	_, err = worker.BuildSquare(symbols, 3, 2, gen)
	require.Error(t, err)
}
