package opctx

import (
	"fmt"

	"github.com/katalvlaran/moment/sequence"
)

// Generic is the plain multi-party measurement scenario (spec §1(c)):
// an alphabet of operators with no algebraic relations beyond the
// universal ones Base already encodes (associativity, Hermiticity of
// generators). It is the "do nothing extra" concrete Context, used
// directly for scenarios that need nothing scenario-specific, and as
// the baseline every other concrete scenario's tests compare against.
//
// PartyOf optionally maps an operator index to a party label for
// formatting (e.g. multi-party Bell scenarios with named parties);
// when nil, operators format as "X<i+1>" like the C++ default.
type Generic struct {
	Base
	PartyOf func(opIndex int) string
}

// NewGeneric constructs a Generic context over the given alphabet size.
func NewGeneric(alphabetSize int) (*Generic, error) {
	base, err := NewBase(alphabetSize)
	if err != nil {
		return nil, err
	}
	return &Generic{Base: base}, nil
}

var _ Context = (*Generic)(nil)

// Multiply implements Context via DefaultMultiply.
func (g *Generic) Multiply(lhs, rhs sequence.OperatorSequence) (sequence.OperatorSequence, error) {
	return DefaultMultiply(g, lhs, rhs)
}

// Conjugate implements Context via DefaultConjugate.
func (g *Generic) Conjugate(seq sequence.OperatorSequence) sequence.OperatorSequence {
	return DefaultConjugate(g, seq)
}

// SimplifyAsMoment implements Context: pass-through.
func (g *Generic) SimplifyAsMoment(seq sequence.OperatorSequence) sequence.OperatorSequence {
	return DefaultSimplifyAsMoment(seq)
}

// FormatSequence implements Context, using PartyOf when supplied.
func (g *Generic) FormatSequence(seq sequence.OperatorSequence) string {
	if g.PartyOf == nil {
		return DefaultFormatSequence(seq)
	}
	if seq.IsZero() {
		return "0"
	}
	ops := seq.Ops()
	if len(ops) == 0 {
		return "1"
	}
	out := ""
	switch seq.Sign() {
	case sequence.SignNegative:
		out += "-"
	case sequence.SignImaginary:
		out += "i*"
	case sequence.SignNegativeImaginary:
		out += "-i*"
	}
	for i, o := range ops {
		if i > 0 {
			out += ";"
		}
		out += fmt.Sprintf("%s%d", g.PartyOf(o), o+1)
	}
	return out
}
