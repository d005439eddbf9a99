// Package sequence defines OperatorSequence: an immutable, canonicalized
// sequence of operator indices together with a sign tag and a zero flag.
//
// An OperatorSequence is always the output of a Context's canonicalizer
// (see package opctx) -- this package itself performs no scenario-specific
// rewriting; it only carries the canonical-form invariants and the
// shortlex hash that identifies the sequence's content.
package sequence
