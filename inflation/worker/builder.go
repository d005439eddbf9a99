package worker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/moment/sequence"
	"github.com/katalvlaran/moment/symboltab"
)

// Cell is one entry of a built matrix: the interned symbol ID, whether
// the stored symbol's conjugate (rather than its primary form) matches
// this cell's sequence, the sequence's scalar phase (spec §3 Monomial's
// "coefficient"), and a zero flag for entries that canonicalized to
// algebraic zero.
type Cell struct {
	Symbol      int
	Conjugated  bool
	Coefficient complex128
	Zero        bool
}

// RowColGenerator produces the operator sequence for matrix cell (row,
// col); it is called concurrently from many goroutines and must not
// mutate shared state outside what it returns.
type RowColGenerator func(row, col int) (sequence.OperatorSequence, error)

// BuildSquare builds a dim x dim matrix of Cell by partitioning columns
// across a worker pool of the given width (spec §4.8's column-mod
// partitioning): each worker computes the cells of the columns assigned
// to it via gen, then interns any newly-discovered symbol into symbols.
//
// Symbol interning itself is already safe for concurrent use
// (symboltab.Table guards its own state), so unlike the teacher's
// numeric builders this needs no separate merge step -- the "overlay"
// spec §4.8 describes collapses to each worker calling symbols.Intern
// directly, and errgroup.Group surfaces the first generator error
// (the other workers stop at their next column boundary via its derived
// context) rather than silently producing a partial matrix.
func BuildSquare(symbols *symboltab.Table, dim, workers int, gen RowColGenerator) ([][]Cell, error) {
	if workers < 1 {
		workers = 1
	}

	out := make([][]Cell, dim)
	for r := range out {
		out[r] = make([]Cell, dim)
	}

	g, gctx := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for col := w; col < dim; col += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				for row := 0; row < dim; row++ {
					seq, err := gen(row, col)
					if err != nil {
						return err
					}
					if seq.IsZero() {
						out[row][col] = Cell{Zero: true}
						continue
					}
					id, conjugated, _ := symbols.Intern(seq)
					out[row][col] = Cell{Symbol: id, Conjugated: conjugated, Coefficient: seq.Sign().Complex128()}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
