package pauli

import "github.com/katalvlaran/moment/sequence"

// cayleyTable is the Pauli Cayley table, indexed [left*4+right] for
// left, right in {0=I, 1=X, 2=Y, 3=Z}. For two non-identity generators,
// a positive entry v means the product is the pauli generator v
// (1=X, 2=Y, 3=Z) times +i, a negative entry means generator -v times -i,
// and zero means the identity. Row 0 and column 0 hold the other operand;
// multiplyPauliWithID gives those products no phase.
// Ported verbatim from pauli_context.cpp's cayley_table_ixyz.
var cayleyTable = [16]int{
	0, 1, 2, 3,
	1, 0, 3, -2,
	2, -3, 0, 1,
	3, 2, -1, 0,
}

// multiplyPauliWithID multiplies two generators in {0=I,1=X,2=Y,3=Z},
// returning the resulting generator (0 for I) and the sign factor the
// product introduces (always Positive when either operand is I, since
// I commutes without phase).
func multiplyPauliWithID(left, right int) (result int, factor sequence.SignTag) {
	if left == 0 || right == 0 {
		return left + right, sequence.SignPositive
	}
	v := cayleyTable[(left<<2)+right]
	switch {
	case v == 0:
		return 0, sequence.SignPositive
	case v > 0:
		return v, sequence.SignImaginary
	default:
		return -v, sequence.SignNegativeImaginary
	}
}
