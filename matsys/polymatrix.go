package matsys

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/moment/momenterr"
	"github.com/katalvlaran/moment/polynomial"
)

// PolyMatrix is a dense matrix whose entries are full Polynomials rather
// than single Monomials (spec §6 "polynomial localizing matrix"): the
// weighted sum of several monomial localizing matrices, one per term of
// the defining polynomial.
type PolyMatrix struct {
	Dim         int
	Cells       [][]polynomial.Polynomial
	Description string
}

// At returns the (row, col) entry.
func (m *PolyMatrix) At(row, col int) polynomial.Polynomial { return m.Cells[row][col] }

// PolynomialLocalizingMatrixIndex selects the polynomial localizing
// matrix for Poly at Level (spec's `PolynomialLMIndex { level,
// polynomial }`).
type PolynomialLocalizingMatrixIndex struct {
	Level int
	Poly  polynomial.Polynomial
}

// Key implements Keyed.
func (p PolynomialLocalizingMatrixIndex) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "polylocalizing:%d:", p.Level)
	for _, term := range p.Poly {
		fmt.Fprintf(&b, "%d=%v,%v;", term.Symbol, term.Coefficient, term.Conjugated)
	}
	return b.String()
}

// BuildPolynomialLocalizing returns the polynomial localizing matrix for
// poly at the given level (spec §4.9, §6): the coefficient-weighted sum
// of the monomial localizing matrices for each of poly's terms. Per
// spec §5's ordering guarantee, each constituent monomial localizing
// matrix is created (and so registered) before the composite.
func (s *System) BuildPolynomialLocalizing(level int, poly polynomial.Polynomial) (int, *PolyMatrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := PolynomialLocalizingMatrixIndex{Level: level, Poly: poly}
	if offset, err := s.polyLocalizingIndices.Get(index); err == nil {
		return offset, s.polyMatrices[offset], nil
	}
	if level < 0 {
		return 0, nil, momenterr.BadInput("polynomial localizing matrix level must be >= 0, got %d", level)
	}

	dim := s.dict.OSGUpTo(level).Len()
	terms := make([][][]polynomial.Term, dim)
	for r := range terms {
		terms[r] = make([][]polynomial.Term, dim)
	}

	for _, term := range poly {
		sym, ok := s.symbols.At(term.Symbol)
		if !ok {
			return 0, nil, momenterr.NotFound("no symbol registered with id %d", term.Symbol)
		}
		_, lm, err := s.createLocalizing(LocalizingMatrixIndex{Level: level, Word: sym.Sequence})
		if err != nil {
			return 0, nil, err
		}
		for r := 0; r < dim; r++ {
			for c := 0; c < dim; c++ {
				cell := lm.At(r, c)
				if cell.Zero {
					continue
				}
				// cell.Coefficient carries the cell sequence's own phase
				// (e.g. a Pauli product's ±i), and cell.Conjugated records
				// whether this cell refers to the symbol's conjugate; the
				// conjugation itself belongs on the term, not folded into
				// the coefficient, since coeff*conj(symbol_value) and
				// conj(coeff)*symbol_value differ whenever coeff is
				// genuinely complex.
				coeff := term.Coefficient * cell.Coefficient
				terms[r][c] = append(terms[r][c], polynomial.Term{Symbol: cell.Symbol, Coefficient: coeff, Conjugated: cell.Conjugated})
			}
		}
	}

	cells := make([][]polynomial.Polynomial, dim)
	for r := range cells {
		cells[r] = make([]polynomial.Polynomial, dim)
		for c := 0; c < dim; c++ {
			cells[r][c] = s.polys.FromTerms(terms[r][c])
		}
	}

	m := &PolyMatrix{Dim: dim, Cells: cells, Description: fmt.Sprintf("Polynomial localizing matrix, level %d, %d terms", level, len(poly))}
	offset := len(s.polyMatrices)
	s.polyMatrices = append(s.polyMatrices, m)
	s.polyLocalizingIndices.InsertAlias(index, offset)
	s.log.Info("built polynomial localizing matrix", zapFields(level, offset, dim)...)
	return offset, m, nil
}

// PolyMatrixAt returns the polynomial matrix at the given offset.
func (s *System) PolyMatrixAt(offset int) (*PolyMatrix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if offset < 0 || offset >= len(s.polyMatrices) {
		return nil, momenterr.NotFound("no polynomial matrix at offset %d", offset)
	}
	return s.polyMatrices[offset], nil
}
