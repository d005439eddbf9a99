// Package opctx defines the Context contract (spec §4.2): the single
// place scenario-specific canonicalization, multiplication, conjugation,
// moment-simplification and formatting rules live.
//
// The C++ original expresses this via virtual dispatch on a base class
// (Context / InflationContext / PauliContext / DerivedContext). Per
// spec §9's redesign note, this is expressed here as an interface plus
// an embeddable Base that supplies the generic pass-through behavior;
// concrete scenarios (inflation.Context, pauli.Context) embed Base and
// override only the methods their algebra actually changes.
package opctx

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/moment/momenterr"
	"github.com/katalvlaran/moment/sequence"
	"github.com/katalvlaran/moment/shortlex"
)

// Context is the scenario-specific rewrite-rule contract every concrete
// scenario (generic, inflation, Pauli) implements. Contexts are
// constructed once from validated inputs and are immutable afterwards --
// safe to share read-only across goroutines (spec §3 "Lifecycles").
type Context interface {
	// AlphabetSize returns the number of distinct operator indices.
	AlphabetSize() int

	// CanBeNonHermitian reports whether this context can, in principle,
	// generate non-Hermitian operator strings (governs whether interned
	// symbols need a separate imaginary basis index).
	CanBeNonHermitian() bool

	// Hasher returns the context's shortlex hasher.
	Hasher() shortlex.Hasher

	// Canonicalize rewrites a raw operator-index list (plus incoming
	// sign) into its canonical OperatorSequence, applying every
	// scenario-specific simplification rule. This is the only place
	// scenario rules live (spec §4.2).
	Canonicalize(ops []int, sign sequence.SignTag) (sequence.OperatorSequence, error)

	// Multiply concatenates and re-canonicalizes two sequences.
	Multiply(lhs, rhs sequence.OperatorSequence) (sequence.OperatorSequence, error)

	// Conjugate returns the Hermitian conjugate of seq; must be an
	// involution and must preserve the canonical-form invariant.
	Conjugate(seq sequence.OperatorSequence) sequence.OperatorSequence

	// SimplifyAsMoment applies moment-equivalence (e.g. translational
	// symmetry) for use as a row/column label. Default is identity.
	SimplifyAsMoment(seq sequence.OperatorSequence) sequence.OperatorSequence

	// FormatSequence renders seq for diagnostics and export.
	FormatSequence(seq sequence.OperatorSequence) string
}

// Base supplies the scenario-agnostic parts of a Context: the alphabet
// size, the shortlex hasher, and validated construction via a
// non-rewriting Canonicalize. It has no Multiply, Conjugate or
// SimplifyAsMoment of its own; the DefaultMultiply, DefaultConjugate and
// DefaultSimplifyAsMoment helpers hold those defaults. Concrete scenarios
// embed Base and add or override what their algebra changes.
type Base struct {
	alphabetSize int
	hasher       shortlex.Hasher
}

// NewBase constructs a Base for the given alphabet size. alphabetSize
// must be >= 0; spec §8 boundary behaviour #8 requires alphabetSize==0
// to still admit the identity and zero sequences.
func NewBase(alphabetSize int) (Base, error) {
	if alphabetSize < 0 {
		return Base{}, momenterr.BadInput("alphabet size must be >= 0, got %d", alphabetSize)
	}
	return Base{alphabetSize: alphabetSize, hasher: shortlex.New(alphabetSize)}, nil
}

// AlphabetSize implements Context.
func (b Base) AlphabetSize() int { return b.alphabetSize }

// CanBeNonHermitian implements Context's default: true (non-Hermitian
// strings are possible unless a scenario knows better, e.g. Pauli).
func (b Base) CanBeNonHermitian() bool { return true }

// Hasher implements Context.
func (b Base) Hasher() shortlex.Hasher { return b.hasher }

// Canonicalize implements the base-case contract: validate the sequence
// is representable, then hash it. No rewriting is performed; scenarios
// that need rewriting call Base.Canonicalize *after* applying their own
// rules to the already-simplified index list (see inflation/pauli).
func (b Base) Canonicalize(ops []int, sign sequence.SignTag) (sequence.OperatorSequence, error) {
	for _, o := range ops {
		if o < 0 || o >= b.alphabetSize {
			return sequence.OperatorSequence{}, momenterr.BadInput("operator index %d out of range [0,%d)", o, b.alphabetSize)
		}
	}
	if !b.hasher.CanHash(len(ops)) {
		return sequence.OperatorSequence{}, momenterr.BadInput(
			"sequence of length %d exceeds hasher's representable length %d for alphabet size %d",
			len(ops), b.hasher.MaxLength(), b.alphabetSize)
	}
	return sequence.NewCanonical(ops, sign, b.hasher.Hash(ops)), nil
}

// DefaultMultiply concatenates lhs and rhs's operators and re-canonicalizes
// through ctx. It is the generic-context Multiply and the building block
// every scenario-specific Multiply uses after applying its own algebra.
func DefaultMultiply(ctx Context, lhs, rhs sequence.OperatorSequence) (sequence.OperatorSequence, error) {
	if lhs.IsZero() || rhs.IsZero() {
		return sequence.Zero(), nil
	}
	combined := make([]int, 0, lhs.Len()+rhs.Len())
	combined = append(combined, lhs.Ops()...)
	combined = append(combined, rhs.Ops()...)
	out, err := ctx.Canonicalize(combined, lhs.Sign().Mul(rhs.Sign()))
	if err != nil {
		return sequence.OperatorSequence{}, err
	}
	return out, nil
}

// DefaultConjugate reverses seq's operator order and re-canonicalizes
// through ctx, conjugating the sign tag. This is correct whenever every
// generator in the alphabet is self-adjoint (the generic-context
// assumption); scenarios with non-self-adjoint generators (none in this
// engine; Pauli and inflation operators are all Hermitian) would override.
func DefaultConjugate(ctx Context, seq sequence.OperatorSequence) sequence.OperatorSequence {
	if seq.IsZero() {
		return sequence.Zero()
	}
	out, err := ctx.Canonicalize(seq.ReversedOps(), seq.Sign().Conjugate())
	if err != nil {
		// Reversal of an already-canonical, already-validated sequence
		// cannot fail re-validation: same length, same alphabet.
		panic(fmt.Sprintf("opctx: DefaultConjugate: unreachable canonicalize error: %v", err))
	}
	return out
}

// DefaultFormatSequence renders seq as "X<i+1>;X<j+1>;..." (1-indexed,
// MATLAB-style, matching original_source/.../context.cpp's format_sequence),
// "1" for the identity, "0" for zero, with a leading sign marker.
func DefaultFormatSequence(seq sequence.OperatorSequence) string {
	if seq.IsZero() {
		return "0"
	}
	var b strings.Builder
	switch seq.Sign() {
	case sequence.SignNegative:
		b.WriteString("-")
	case sequence.SignImaginary:
		b.WriteString("i*")
	case sequence.SignNegativeImaginary:
		b.WriteString("-i*")
	}
	ops := seq.Ops()
	if len(ops) == 0 {
		if b.Len() == 0 {
			return "1"
		}
		b.WriteString("1")
		return b.String()
	}
	for i, o := range ops {
		if i > 0 {
			b.WriteString(";")
		}
		fmt.Fprintf(&b, "X%d", o+1)
	}
	return b.String()
}

// DefaultSimplifyAsMoment is the pass-through default (spec §4.2).
func DefaultSimplifyAsMoment(seq sequence.OperatorSequence) sequence.OperatorSequence { return seq }
