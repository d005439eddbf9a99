// Package polynomial implements the pre-symbolic and symbolic polynomial
// algebra of spec §4.4-4.5: RawPolynomial (operator sequence -> complex
// weight, before symbols exist) and Polynomial (symbol ID -> complex
// coefficient, after interning), plus the PolynomialFactory that enforces
// canonical term ordering and tolerance-based zero pruning.
//
// RawElement's sign-absorption rule is ported directly from
// original_source/cpp/lib_moment/dictionary/raw_polynomial.h: a sequence's
// sign tag is folded into the complex weight at construction time so that
// every downstream consumer only ever sees positively-signed sequences.
package polynomial
