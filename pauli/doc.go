// Package pauli implements the Pauli scenario of spec §4.6: a chain of
// qubits, each carrying the three non-identity Pauli generators X, Y, Z,
// multiplied via the Pauli Cayley table (with an optional identity
// wraparound for a closed chain and translational-symmetry moment
// simplification via minimal cyclic rotation).
//
// The alphabet encodes qubit q's generator p (0=X, 1=Y, 2=Z) as the
// single index q*3+p, matching
// original_source/cpp/lib_moment/scenarios/pauli/pauli_context.h's
// `qubit_size*3`-sized alphabet. Canonicalize's party-grouping and
// same-party reduction is a direct port of pauli_context.cpp's
// additional_simplification and its cayley_table_ixyz constant.
package pauli
