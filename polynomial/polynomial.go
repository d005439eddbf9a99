package polynomial

import (
	"fmt"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/katalvlaran/moment/opctx"
	"github.com/katalvlaran/moment/symboltab"
)

// Term is one monomial of a Polynomial: an interned symbol ID, its
// complex coefficient, and whether this term refers to the symbol's
// conjugate rather than its primary form (spec §3 "symbol id + complex
// coefficient + conjugated flag"). Conjugated is part of a term's
// identity: terms on the same symbol but opposite Conjugated do not
// combine, since `coeff * s` and `coeff * conj(s)` are different
// quantities whenever s is non-Hermitian.
type Term struct {
	Symbol      int
	Coefficient complex128
	Conjugated  bool
}

// Polynomial is a canonically-ordered, zero-pruned sum of Term (spec
// §4.5). The zero polynomial is the empty slice.
type Polynomial []Term

// IsZero reports whether p has no terms.
func (p Polynomial) IsZero() bool { return len(p) == 0 }

// String renders p using symbols to format each symbol's underlying
// sequence via ctx.
func (p Polynomial) String(ctx opctx.Context, symbols *symboltab.Table) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p {
		if i > 0 {
			b.WriteString(" + ")
		}
		sym, ok := symbols.At(t.Symbol)
		if !ok {
			fmt.Fprintf(&b, "(%v)*#%d", t.Coefficient, t.Symbol)
			continue
		}
		fmt.Fprintf(&b, "(%v)*%s", t.Coefficient, ctx.FormatSequence(sym.Sequence))
	}
	return b.String()
}

// Factory constructs Polynomial values with canonical term ordering
// (ascending symbol ID) and tolerance-based zero pruning, mirroring the
// C++ PolynomialFactory's role of being the single place term combination
// and pruning rules live (spec §4.5).
type Factory struct {
	table     *symboltab.Table
	tolerance float64
}

// NewFactory constructs a Factory backed by table, pruning any
// coefficient whose magnitude is <= tolerance after combination.
// tolerance must be >= 0; a typical value is 1e-12.
func NewFactory(table *symboltab.Table, tolerance float64) *Factory {
	return &Factory{table: table, tolerance: tolerance}
}

// Tolerance returns the factory's zero-pruning tolerance.
func (f *Factory) Tolerance() float64 { return f.tolerance }

// termKey identifies a term for combination purposes: same symbol,
// same conjugation. Terms differing only in Conjugated are distinct
// monomials and must never be summed together.
type termKey struct {
	symbol     int
	conjugated bool
}

// FromTerms combines duplicate (symbol, conjugated) pairs by summing
// coefficients, prunes any term whose resulting magnitude is within
// tolerance of zero, and sorts the remainder by ascending symbol ID, then
// primary form before conjugate (the canonical order spec §4.5 requires
// for polynomial equality comparisons).
func (f *Factory) FromTerms(terms []Term) Polynomial {
	byKey := make(map[termKey]complex128, len(terms))
	for _, t := range terms {
		byKey[termKey{symbol: t.Symbol, conjugated: t.Conjugated}] += t.Coefficient
	}
	out := make(Polynomial, 0, len(byKey))
	for key, coeff := range byKey {
		if cmplx.Abs(coeff) <= f.tolerance {
			continue
		}
		out = append(out, Term{Symbol: key.symbol, Coefficient: coeff, Conjugated: key.conjugated})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Symbol != out[j].Symbol {
			return out[i].Symbol < out[j].Symbol
		}
		return !out[i].Conjugated && out[j].Conjugated
	})
	return out
}

// Add returns the canonical sum of lhs and rhs.
func (f *Factory) Add(lhs, rhs Polynomial) Polynomial {
	terms := make([]Term, 0, len(lhs)+len(rhs))
	terms = append(terms, lhs...)
	terms = append(terms, rhs...)
	return f.FromTerms(terms)
}

// Scale returns the canonical result of multiplying every term of p by c.
func (f *Factory) Scale(p Polynomial, c complex128) Polynomial {
	terms := make([]Term, len(p))
	for i, t := range p {
		terms[i] = Term{Symbol: t.Symbol, Coefficient: t.Coefficient * c, Conjugated: t.Conjugated}
	}
	return f.FromTerms(terms)
}

// Equal reports whether lhs and rhs have identical canonical term lists
// within the factory's tolerance.
func (f *Factory) Equal(lhs, rhs Polynomial) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	for i := range lhs {
		if lhs[i].Symbol != rhs[i].Symbol || lhs[i].Conjugated != rhs[i].Conjugated {
			return false
		}
		if cmplx.Abs(lhs[i].Coefficient-rhs[i].Coefficient) > f.tolerance {
			return false
		}
	}
	return true
}
