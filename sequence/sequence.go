package sequence

import (
	"fmt"
	"strings"
)

// OperatorSequence is an ordered, canonicalized sequence of operator
// indices, plus a sign tag and a zero flag (spec §3).
//
// Values are always constructed already in canonical form: this type
// holds no logic to get there itself (that belongs to opctx.Context);
// it only carries the invariants and accessors. The zero value is the
// empty, positively-signed, non-zero sequence, so IsIdentity reports true
// for it, but its Hash is 0 rather than the identity's 1; Identity()
// returns the fully-formed identity.
type OperatorSequence struct {
	ops    []int
	sign   SignTag
	isZero bool
	hash   uint64
}

// NewCanonical wraps an already-canonicalized index slice, its sign, and
// its precomputed shortlex hash into an OperatorSequence. Callers outside
// opctx should not normally call this directly -- it performs no
// simplification or hashing of its own, by design (symmetric to the C++
// "ConstructRawFlag" constructor, spec §3/§9).
func NewCanonical(ops []int, sign SignTag, hash uint64) OperatorSequence {
	cp := make([]int, len(ops))
	copy(cp, ops)
	return OperatorSequence{ops: cp, sign: sign, hash: hash}
}

// Zero constructs the algebraically-zero sequence: empty index list,
// hash 0, zero flag set.
func Zero() OperatorSequence {
	return OperatorSequence{isZero: true}
}

// Identity constructs the empty (identity) sequence: hash 1 (shortlex.Identity).
func Identity() OperatorSequence {
	return OperatorSequence{hash: 1}
}

// Ops returns the canonical operator-index list. The returned slice must
// not be mutated by the caller.
func (s OperatorSequence) Ops() []int { return s.ops }

// Len returns the number of operators in the sequence.
func (s OperatorSequence) Len() int { return len(s.ops) }

// Sign returns the sequence's sign tag.
func (s OperatorSequence) Sign() SignTag { return s.sign }

// WithSign returns a copy of s with a different sign tag. Used when
// contextual simplification moves sign between sequence and coefficient.
func (s OperatorSequence) WithSign(tag SignTag) OperatorSequence {
	s.sign = tag
	return s
}

// IsZero reports whether this sequence represents algebraic zero.
func (s OperatorSequence) IsZero() bool { return s.isZero }

// IsIdentity reports whether this sequence is the empty, non-zero word.
func (s OperatorSequence) IsIdentity() bool { return !s.isZero && len(s.ops) == 0 }

// Hash returns the precomputed shortlex hash (0 for zero sequences).
func (s OperatorSequence) Hash() uint64 {
	if s.isZero {
		return 0
	}
	return s.hash
}

// ReversedOps returns a new index slice with operators in reverse order --
// the raw material for a default (non-scenario-specific) conjugate.
func (s OperatorSequence) ReversedOps() []int {
	n := len(s.ops)
	out := make([]int, n)
	for i, o := range s.ops {
		out[n-1-i] = o
	}
	return out
}

// Equal reports whether two sequences have the same operators, sign, and
// zero flag. Two zero sequences are always equal regardless of prior sign
// (spec §3 invariant).
func (s OperatorSequence) Equal(other OperatorSequence) bool {
	if s.isZero || other.isZero {
		return s.isZero == other.isZero
	}
	if s.sign != other.sign || len(s.ops) != len(other.ops) {
		return false
	}
	for i := range s.ops {
		if s.ops[i] != other.ops[i] {
			return false
		}
	}
	return true
}

// CompareSameSign compares two sequences' operator lists and then their
// signs, reporting:
//
//	+1 if identical (same ops, same sign)
//	 0 if the operator lists differ, or match with signs that differ by a
//	   factor of +i or -i
//	-1 if the operator lists match but signs are negatives of one another
//	   (same magnitude, opposite overall sign: e.g. +1 vs -1, or +i vs -i)
//
// This mirrors the C++ OperatorSequence::compare_same_negation (spec §9,
// grounded on original_source/.../operator_sequence.cpp) generalized from
// a boolean negation flag to the full 4-group sign tag: "opposite" here
// means sign and other.sign are related by exactly the Negate() operation.
func CompareSameSign(lhs, rhs OperatorSequence) int {
	if lhs.hash != rhs.hash || lhs.isZero != rhs.isZero {
		return 0
	}
	if len(lhs.ops) != len(rhs.ops) {
		return 0
	}
	for i := range lhs.ops {
		if lhs.ops[i] != rhs.ops[i] {
			return 0
		}
	}
	if lhs.sign == rhs.sign {
		return 1
	}
	if lhs.sign == rhs.sign.Negate() {
		return -1
	}
	return 0
}

// String renders a minimal, context-free diagnostic form: "0", "1", or
// "±[i]X<o0+1>;X<o1+1>;...". Scenario-specific formatting belongs to
// opctx.Context.FormatSequence; this is only a fallback for %v/debugging.
func (s OperatorSequence) String() string {
	if s.isZero {
		return "0"
	}
	if len(s.ops) == 0 {
		switch s.sign {
		case SignPositive:
			return "1"
		case SignNegative:
			return "-1"
		case SignImaginary:
			return "i"
		case SignNegativeImaginary:
			return "-i"
		}
	}
	var b strings.Builder
	switch s.sign {
	case SignNegative:
		b.WriteString("-")
	case SignImaginary:
		b.WriteString("i*")
	case SignNegativeImaginary:
		b.WriteString("-i*")
	}
	for i, o := range s.ops {
		if i > 0 {
			b.WriteString(";")
		}
		fmt.Fprintf(&b, "X%d", o+1)
	}
	return b.String()
}
