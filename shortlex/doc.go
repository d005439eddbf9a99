// Package shortlex computes the shortlex hash of an operator-index
// sequence: a polynomial-in-alphabet-size encoding that is injective
// within its representable range and orders sequences first by length,
// then, among equal lengths, by comparing operators from the last one
// backwards (the last operator is the most significant digit).
//
// Given alphabet size n, the hash of (o_0, ..., o_k-1) is
//
//	1 + sum_i (1 + o_i) * n^i
//
// with the empty sequence hashing to 1. The zero (algebraically-zero)
// sequence is never passed through the hasher: by convention it hashes
// to 0, a value the formula above can never produce for n >= 1.
package shortlex
