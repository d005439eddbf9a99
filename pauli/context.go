package pauli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/moment/momenterr"
	"github.com/katalvlaran/moment/opctx"
	"github.com/katalvlaran/moment/sequence"
)

// Context is the Pauli chain scenario's Context (spec §4.2, §4.6): a
// chain of QubitCount qubits, each with generators X, Y, Z, multiplied
// via the Pauli Cayley table. Wrap, when true, makes the chain
// translationally closed (qubit QubitCount-1 is adjacent to qubit 0) for
// the purposes of nearest-neighbour restriction and translational-symmetry
// moment simplification.
type Context struct {
	opctx.Base

	QubitCount int
	Wrap       bool
	Translate  bool // whether SimplifyAsMoment applies the minimal-rotation symmetry
}

// NewContext constructs a Pauli chain Context over qubitCount qubits
// (alphabet size qubitCount*3).
func NewContext(qubitCount int, wrap, translate bool) (*Context, error) {
	if qubitCount < 0 {
		return nil, momenterr.BadInput("qubit count must be >= 0, got %d", qubitCount)
	}
	base, err := opctx.NewBase(qubitCount * 3)
	if err != nil {
		return nil, err
	}
	return &Context{Base: base, QubitCount: qubitCount, Wrap: wrap, Translate: translate}, nil
}

var _ opctx.Context = (*Context)(nil)

// CanBeNonHermitian overrides Base: every Pauli operator is Hermitian,
// and products either stay Hermitian or pick up a fixed i/-i phase that
// Conjugate correctly inverts, so the scenario never needs a separate
// imaginary basis beyond what the sign tag itself already encodes.
func (c *Context) CanBeNonHermitian() bool { return false }

// qubitOf returns the qubit index an alphabet operator belongs to.
func (c *Context) qubitOf(op int) int { return op / 3 }

// pauliOf returns the 1-indexed Pauli generator (1=X,2=Y,3=Z) of an
// alphabet operator.
func (c *Context) pauliOf(op int) int { return 1 + op%3 }

// Canonicalize groups operators by qubit (stable sort preserves
// within-qubit order so the Cayley reduction below is deterministic),
// then reduces consecutive same-qubit operators via the Cayley table,
// accumulating any i/-i phase the reduction introduces into sign. This
// is the direct port of pauli_context.cpp's additional_simplification.
func (c *Context) Canonicalize(ops []int, sign sequence.SignTag) (sequence.OperatorSequence, error) {
	for _, o := range ops {
		if o < 0 || o >= c.AlphabetSize() {
			return sequence.OperatorSequence{}, momenterr.BadInput("operator index %d out of range [0,%d)", o, c.AlphabetSize())
		}
	}
	if len(ops) == 0 {
		return c.Base.Canonicalize(ops, sign)
	}

	sorted := append([]int(nil), ops...)
	sort.SliceStable(sorted, func(i, j int) bool { return c.qubitOf(sorted[i]) < c.qubitOf(sorted[j]) })

	var reduced []int
	runningSign := sign

	lastQubit := c.qubitOf(sorted[0])
	lastPauli := c.pauliOf(sorted[0])
	for i := 1; i < len(sorted); i++ {
		qubit := c.qubitOf(sorted[i])
		pauli := c.pauliOf(sorted[i])
		if qubit != lastQubit {
			if lastPauli != 0 {
				reduced = append(reduced, lastQubit*3+(lastPauli-1))
			}
			lastQubit, lastPauli = qubit, pauli
			continue
		}
		if lastPauli == 0 {
			lastPauli = pauli
			continue
		}
		var factor sequence.SignTag
		lastPauli, factor = multiplyPauliWithID(lastPauli, pauli)
		runningSign = runningSign.Mul(factor)
	}
	if lastPauli != 0 {
		reduced = append(reduced, lastQubit*3+(lastPauli-1))
	}

	return c.Base.Canonicalize(reduced, runningSign)
}

// Multiply implements Context via DefaultMultiply (concatenate then
// re-canonicalize, which runs the Cayley reduction above).
func (c *Context) Multiply(lhs, rhs sequence.OperatorSequence) (sequence.OperatorSequence, error) {
	return opctx.DefaultMultiply(c, lhs, rhs)
}

// Conjugate implements Context: Pauli generators are Hermitian, so
// reversal-then-recanonicalize (which re-sorts by qubit regardless of
// input order) is correct; the Cayley reduction's phase bookkeeping
// combined with sign conjugation on entry gives the correct overall
// conjugate phase.
func (c *Context) Conjugate(seq sequence.OperatorSequence) sequence.OperatorSequence {
	return opctx.DefaultConjugate(c, seq)
}

// SimplifyAsMoment applies translational-symmetry moment equivalence
// when Translate is set. Wrap selects which translation rule applies
// (spec §4.6): a wrapped (periodic) chain rotates the occupied-qubit
// pattern to its lexicographically minimal cyclic shift via
// MinimalRotation, while an unwrapped (aperiodic) chain instead shifts,
// without wraparound, by the offset that maps the first occupied qubit
// to 0 via FirstOccupiedOffset -- qubit QubitCount-1 is not adjacent to
// qubit 0 in that case, so a cyclic minimum would conflate chains that
// are not actually translations of one another.
func (c *Context) SimplifyAsMoment(seq sequence.OperatorSequence) sequence.OperatorSequence {
	if !c.Translate || seq.IsZero() || seq.IsIdentity() || c.QubitCount == 0 {
		return seq
	}

	ops := make([]int, len(seq.Ops()))
	if c.Wrap {
		shift := MinimalRotation(seq.Ops(), c.QubitCount, 3)
		for i, o := range seq.Ops() {
			q := c.qubitOf(o)
			p := o % 3
			newQ := ((q-shift)%c.QubitCount + c.QubitCount) % c.QubitCount
			ops[i] = newQ*3 + p
		}
	} else {
		shift := FirstOccupiedOffset(seq.Ops(), 3)
		for i, o := range seq.Ops() {
			q := c.qubitOf(o)
			p := o % 3
			ops[i] = (q-shift)*3 + p
		}
	}

	out, err := c.Canonicalize(ops, seq.Sign())
	if err != nil {
		return seq
	}
	return out
}

// FormatSequence renders a Pauli sequence as e.g. "X1;Z3" (1-indexed
// qubits), matching the style of pauli_context.cpp's format_sequence.
func (c *Context) FormatSequence(seq sequence.OperatorSequence) string {
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
		b.WriteString("1")
		return b.String()
	}
	names := [3]string{"X", "Y", "Z"}
	for i, o := range ops {
		if i > 0 {
			b.WriteString(";")
		}
		fmt.Fprintf(&b, "%s%d", names[o%3], c.qubitOf(o)+1)
	}
	return b.String()
}
