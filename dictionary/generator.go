package dictionary

import "github.com/katalvlaran/moment/sequence"

// Generator is the minimal contract Dictionary needs from a scenario
// context: enough to canonicalize a raw operator-index tuple and know
// the alphabet it ranges over. Any opctx.Context satisfies this
// structurally; dictionary does not import opctx to avoid a cycle (a
// future opctx helper that wants to return a Dictionary would otherwise
// need to import back into dictionary).
type Generator interface {
	AlphabetSize() int
	Canonicalize(ops []int, sign sequence.SignTag) (sequence.OperatorSequence, error)
}

// Builder is an optional interface a Generator may also implement to
// supply a specialized, more efficient enumeration for a given word
// length instead of the brute-force default (spec §4.4's example: the
// Pauli OSG, which applies idempotence and orthogonality during
// generation rather than filtering after the fact).
type Builder interface {
	BuildOSG(wordLength int) []sequence.OperatorSequence
}

// OSG (OperatorSequenceGenerator) is every canonical operator sequence
// of length 0 through wordLength, inclusive, for one context.
type OSG struct {
	wordLength int
	sequences  []sequence.OperatorSequence
}

// WordLength returns the maximum sequence length this OSG enumerates.
func (o *OSG) WordLength() int { return o.wordLength }

// Sequences returns every sequence this OSG enumerates, in the order
// generated (ascending length, then the order defaultEnumerate or the
// scenario's Builder produced them).
func (o *OSG) Sequences() []sequence.OperatorSequence { return o.sequences }

// Len returns the number of sequences this OSG enumerates.
func (o *OSG) Len() int { return len(o.sequences) }

// At returns the i'th sequence.
func (o *OSG) At(i int) sequence.OperatorSequence { return o.sequences[i] }

// defaultEnumerate brute-forces every alphabet^length tuple for each
// length 0..wordLength and retains only those Canonicalize accepts
// without error and reports as the lexicographically-least member of
// their equivalence class (Canonicalize is idempotent on canonical
// input, so a tuple is canonical iff re-canonicalizing it with its own
// ops and sign yields an equal sequence).
func defaultEnumerate(gen Generator, wordLength int) []sequence.OperatorSequence {
	out := []sequence.OperatorSequence{identityOf(gen)}
	alphabet := gen.AlphabetSize()
	if alphabet == 0 {
		return out
	}
	for length := 1; length <= wordLength; length++ {
		ops := make([]int, length)
		out = appendCanonicalTuples(gen, ops, 0, alphabet, out)
	}
	return out
}

func identityOf(gen Generator) sequence.OperatorSequence {
	id, err := gen.Canonicalize(nil, sequence.SignPositive)
	if err != nil {
		// A zero-length sequence is always representable; Canonicalize
		// only rejects out-of-range operators or over-length tuples.
		panic("dictionary: context rejected the empty (identity) sequence")
	}
	return id
}

func appendCanonicalTuples(gen Generator, ops []int, pos, alphabet int, out []sequence.OperatorSequence) []sequence.OperatorSequence {
	if pos == len(ops) {
		seq, err := gen.Canonicalize(ops, sequence.SignPositive)
		if err != nil {
			return out
		}
		if len(seq.Ops()) != len(ops) {
			// Canonicalize rewrote this tuple to something shorter
			// (e.g. idempotence collapsed it); the shorter canonical
			// form was already, or will be, enumerated at its own
			// length, so skip the duplicate here.
			return out
		}
		for i, o := range seq.Ops() {
			if o != ops[i] {
				// Not the canonical representative of its class.
				return out
			}
		}
		return append(out, seq)
	}
	for v := 0; v < alphabet; v++ {
		ops[pos] = v
		out = appendCanonicalTuples(gen, ops, pos+1, alphabet, out)
	}
	return out
}
