package pauli

// MinimalRotation finds the cyclic rotation offset that makes the
// occupied-qubit pattern of ops lexicographically minimal over a ring of
// qubitCount qubits, each carrying one of perQubit generator slots (spec
// §4.6's translational symmetry). An empty qubit compares greater than
// any generator, so the minimal rotation starts at an occupied qubit.
// Ported from
// original_source/cpp/lib_moment/utilities/shift_sorter.h's
// ShiftSorter: a plain O(n^2) scan comparing every candidate offset's
// rotated view against the current best, since qubit chains in this
// engine's scale never warrant a linear-time (Booth's algorithm)
// replacement.
//
// The returned offset is the position that should become qubit 0 after
// rotation: row q of the original maps to row (q-offset mod qubitCount).
func MinimalRotation(ops []int, qubitCount, perQubit int) int {
	if qubitCount <= 1 {
		return 0
	}
	pattern := make([]int, qubitCount)
	for q := range pattern {
		pattern[q] = perQubit + 1 // empty qubits sort after every generator
	}
	for _, o := range ops {
		q := o / perQubit
		p := o%perQubit + 1
		pattern[q] = p
	}

	less := func(lhsOffset, rhsOffset int) bool {
		for i := 0; i < qubitCount; i++ {
			lhsIdx := (i + lhsOffset) % qubitCount
			rhsIdx := (i + rhsOffset) % qubitCount
			if pattern[lhsIdx] < pattern[rhsIdx] {
				return true
			}
			if pattern[lhsIdx] > pattern[rhsIdx] {
				return false
			}
		}
		return false
	}

	best := 0
	for candidate := 1; candidate < qubitCount; candidate++ {
		if less(candidate, best) {
			best = candidate
		}
	}
	return best
}

// FirstOccupiedOffset returns the smallest occupied qubit index among ops
// (perQubit generator slots per qubit): translating every qubit index
// down by this offset, without wraparound, maps the first occupied qubit
// to 0 (spec §4.6's non-periodic chain translational rule, as distinct
// from MinimalRotation's cyclic minimum used when the chain wraps).
// Returns 0 for an empty (identity) sequence.
func FirstOccupiedOffset(ops []int, perQubit int) int {
	if len(ops) == 0 {
		return 0
	}
	min := ops[0] / perQubit
	for _, o := range ops[1:] {
		if q := o / perQubit; q < min {
			min = q
		}
	}
	return min
}
