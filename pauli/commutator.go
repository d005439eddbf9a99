package pauli

import "github.com/katalvlaran/moment/sequence"

// Commutator computes [lhs, rhs] = lhs.rhs - rhs.lhs (spec §4.6, §1(e))
// without ever forming the subtraction: it computes the ordinary product
// lhs.rhs once, then decides whether the two terms cancel from a single
// sign comparison, ported verbatim from
// original_source/.../pauli_context.cpp's PauliContext::commutator. The
// commutator is exactly zero iff the prefactor sign lhs.Sign()*rhs.Sign()
// agrees with the product's own sign on being imaginary (real-real or
// imaginary-imaginary cancel; a real/imaginary mismatch survives).
func (c *Context) Commutator(lhs, rhs sequence.OperatorSequence) (sequence.OperatorSequence, error) {
	prefactorImaginary := lhs.Sign().Mul(rhs.Sign()).IsImaginary()
	result, err := c.Multiply(lhs, rhs)
	if err != nil {
		return sequence.OperatorSequence{}, err
	}
	if prefactorImaginary == result.Sign().IsImaginary() {
		return sequence.Zero(), nil
	}
	return result, nil
}

// AntiCommutator computes {lhs, rhs} = lhs.rhs + rhs.lhs, by the same
// single-product short-circuit as Commutator but with the opposite
// cancellation condition: the anticommutator is exactly zero iff the
// prefactor sign and the product's sign disagree on being imaginary.
func (c *Context) AntiCommutator(lhs, rhs sequence.OperatorSequence) (sequence.OperatorSequence, error) {
	prefactorImaginary := lhs.Sign().Mul(rhs.Sign()).IsImaginary()
	result, err := c.Multiply(lhs, rhs)
	if err != nil {
		return sequence.OperatorSequence{}, err
	}
	if prefactorImaginary != result.Sign().IsImaginary() {
		return sequence.Zero(), nil
	}
	return result, nil
}
