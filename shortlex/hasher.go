package shortlex

import "math"

// Hasher computes shortlex hashes for sequences drawn from an alphabet
// of a fixed size. The zero value is not usable; construct with New.
type Hasher struct {
	alphabetSize uint64
	// maxLength is the longest sequence length this hasher can encode
	// without the running power n^i overflowing uint64.
	maxLength int
}

// New builds a Hasher for the given alphabet size. alphabetSize may be
// zero (the empty-alphabet context, spec §8 boundary behaviour #8); in
// that case only the empty sequence is representable.
func New(alphabetSize int) Hasher {
	n := uint64(alphabetSize)
	if n == 0 {
		return Hasher{alphabetSize: 0, maxLength: 0}
	}

	// Longest length for which n^length fits in a uint64 without
	// wrapping, so that Hash can detect overflow before it happens
	// rather than silently truncating (spec §9: "C++ shortlex-hash
	// overflow silently truncates ... detect at construction time").
	maxLen := 0
	power := uint64(1)
	for {
		next := power * n
		if n != 0 && next/n != power {
			break // would overflow
		}
		power = next
		maxLen++
		if maxLen > 1<<20 {
			break // practically unbounded alphabet+length; stop searching
		}
	}

	return Hasher{alphabetSize: n, maxLength: maxLen}
}

// AlphabetSize returns the alphabet size this hasher was built for.
func (h Hasher) AlphabetSize() int { return int(h.alphabetSize) }

// MaxLength returns the longest sequence length this hasher can encode
// without overflow.
func (h Hasher) MaxLength() int { return h.maxLength }

// CanHash reports whether a sequence of the given length can be safely
// hashed by this hasher.
func (h Hasher) CanHash(length int) bool {
	if length == 0 {
		return true
	}
	return length <= h.maxLength
}

// Hash computes the shortlex hash of a raw operator-index sequence.
// The caller must have already verified CanHash(len(ops)) -- Hash does
// not itself detect overflow, since detection requires the declared
// maxLength bound that BadInput-checking callers consult beforehand
// (spec §9).
func (h Hasher) Hash(ops []int) uint64 {
	result := uint64(1)
	power := uint64(1)
	for _, o := range ops {
		result += (1 + uint64(o)) * power
		power *= h.alphabetSize
	}
	return result
}

// Identity is the hash of the empty (identity) sequence: always 1.
const Identity uint64 = 1

// Zero is the reserved hash of the algebraically-zero sequence.
const Zero uint64 = 0

// MaxUint64 is exposed for callers that need to reason about the top of
// the hash range (e.g. when sizing lookup tables).
const MaxUint64 = math.MaxUint64
