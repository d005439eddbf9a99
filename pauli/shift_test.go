package pauli_test

import (
	"testing"

	"github.com/katalvlaran/moment/pauli"
	"github.com/stretchr/testify/require"
)

func TestMinimalRotationFindsLexLeastShift(t *testing.T) {
	// 5-qubit chain, occupied qubits 3 and 4 with generators X,Y --
	// rotating by 3 should bring qubit 3 to position 0.
	ops := []int{3*3 + 0, 4*3 + 1} // X3, Y4
	shift := pauli.MinimalRotation(ops, 5, 3)
	require.GreaterOrEqual(t, shift, 0)
	require.Less(t, shift, 5)
	require.Equal(t, 3, shift)
}

func TestMinimalRotationTrivialForSingleQubit(t *testing.T) {
	require.Equal(t, 0, pauli.MinimalRotation(nil, 1, 3))
	require.Equal(t, 0, pauli.MinimalRotation([]int{0}, 1, 3))
}

func TestMinimalRotationIsRotationInvariant(t *testing.T) {
	const n = 6
	base := []int{0*3 + 0, 2*3 + 2} // X0, Z2
	rotated := make([]int, len(base))
	const by = 2
	for i, o := range base {
		q := o / 3
		p := o % 3
		rotated[i] = ((q+by)%n)*3 + p
	}
	s1 := pauli.MinimalRotation(base, n, 3)
	s2 := pauli.MinimalRotation(rotated, n, 3)
	// Both should identify the same canonical pattern start relative to
	// their own occupied set, i.e. the chosen offset compensates exactly
	// for the applied rotation modulo n.
	require.Equal(t, (s1+by)%n, s2)
}
