package matsys

import "github.com/katalvlaran/moment/inflation/worker"

// Monomial is one matrix entry: a symbol ID (with conjugation flag), or
// a zero entry (spec §3 "Monomial").
type Monomial = worker.Cell

// Matrix is a dense symbolic matrix (spec §4.7): every entry is a
// Monomial. Dense storage is adapted from the teacher's matrix.Dense,
// generalized from numeric float64 cells to Monomial cells, since every
// matrix this engine produces (moment, localizing, extended, commutator)
// is small enough in practice that a sparse representation buys nothing.
type Matrix struct {
	Dim   int
	Cells [][]Monomial

	// Description is a short human-readable label (e.g. "Moment matrix,
	// level 2"), used for diagnostics.
	Description string
}

// At returns the (row, col) entry.
func (m *Matrix) At(row, col int) Monomial { return m.Cells[row][col] }

// Symbols returns the distinct non-zero symbol IDs appearing in m, in
// order of first appearance (row by row), deduplicated -- the input Suggester.Suggest and
// similar factor-table queries need.
func (m *Matrix) Symbols() []int {
	seen := make(map[int]bool)
	var out []int
	for _, row := range m.Cells {
		for _, cell := range row {
			if cell.Zero {
				continue
			}
			if !seen[cell.Symbol] {
				seen[cell.Symbol] = true
				out = append(out, cell.Symbol)
			}
		}
	}
	return out
}
