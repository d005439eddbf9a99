package polynomial

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/moment/opctx"
	"github.com/katalvlaran/moment/sequence"
	"github.com/katalvlaran/moment/symboltab"
)

// RawElement is one term of a RawPolynomial: an operator sequence and a
// complex weight. Construction absorbs the sequence's sign tag into the
// weight, so Sequence is always stored with SignPositive (spec §4.4).
type RawElement struct {
	Sequence sequence.OperatorSequence
	Weight   complex128
}

// NewRawElement absorbs seq's sign into weight and returns the element
// with a positively-signed sequence.
func NewRawElement(seq sequence.OperatorSequence, weight complex128) RawElement {
	w := weight
	switch seq.Sign() {
	case sequence.SignImaginary:
		w *= complex(0, 1)
	case sequence.SignNegative:
		w *= -1
	case sequence.SignNegativeImaginary:
		w *= complex(0, -1)
	}
	return RawElement{Sequence: seq.WithSign(sequence.SignPositive), Weight: w}
}

// Raw is an ordered list of RawElement: an operator-sequence-keyed
// polynomial before any symbol has been assigned. The same symbol can
// arise from more than one raw sequence (moment aliasing), so the raw
// form keeps them distinct until ToPolynomial or
// ToPolynomialRegisterSymbols resolves symbols.
type Raw []RawElement

// Append adds one term, absorbing seq's sign into w.
func (r *Raw) Append(seq sequence.OperatorSequence, w complex128) {
	*r = append(*r, NewRawElement(seq, w))
}

// String renders r using ctx.FormatSequence for each term.
func (r Raw) String(ctx opctx.Context) string {
	var b strings.Builder
	for i, e := range r {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "(%v)*%s", e.Weight, ctx.FormatSequence(e.Sequence))
	}
	return b.String()
}

// ToPolynomial looks up each term's symbol via factory's table, skipping
// (not erroring on) any sequence that is not yet interned; the resulting
// terms are combined and canonicalized by factory. Use ToPolynomialRegisterSymbols
// instead when unregistered sequences should be interned rather than dropped.
func (r Raw) ToPolynomial(factory *Factory) Polynomial {
	terms := make([]Term, 0, len(r))
	for _, e := range r {
		id, conjugated, ok := factory.table.Find(e.Sequence.Hash())
		if !ok {
			continue
		}
		terms = append(terms, Term{Symbol: id, Coefficient: e.Weight, Conjugated: conjugated})
	}
	return factory.FromTerms(terms)
}

// ToPolynomialRegisterSymbols is as ToPolynomial, but interns any sequence
// not yet present in symbols instead of dropping it.
func (r Raw) ToPolynomialRegisterSymbols(factory *Factory, symbols *symboltab.Table) Polynomial {
	terms := make([]Term, 0, len(r))
	for _, e := range r {
		id, conjugated, _ := symbols.Intern(e.Sequence)
		terms = append(terms, Term{Symbol: id, Coefficient: e.Weight, Conjugated: conjugated})
	}
	return factory.FromTerms(terms)
}
