package inflation

import (
	roaring "github.com/RoaringBitmap/roaring/v2"
)

// MaxExtensions bounds how many extension symbols Suggester.Suggest will
// ever propose for one matrix, matching extension_suggester.h's
// max_extensions constant.
const MaxExtensions = 100

// Suggester proposes additional (non-fundamental) symbols for an extended
// matrix (spec §4.5's "extension suggester"), ported from
// original_source/cpp/lib_moment/scenarios/inflation/extension_suggester.h.
//
// The symbols present in the matrix are tracked in a roaring.Bitmap (the
// Go analogue of the original's DynamicBitset<uint64_t>), and a factor-table
// symbol is proposed when it has more than one canonical factor, every one
// of those factors is present in the matrix, and it is not itself present.
type Suggester struct {
	factors *FactorTable
}

// NewSuggester constructs a Suggester backed by factors.
func NewSuggester(factors *FactorTable) *Suggester {
	return &Suggester{factors: factors}
}

// NonFundamentalSymbols returns the bitmap of symbols present in
// matrixSymbols that do not appear in the factor table as fundamental
// (i.e. they factorize into more than one canonical factor).
func (s *Suggester) NonFundamentalSymbols(matrixSymbols []int) *roaring.Bitmap {
	bm := roaring.New()
	for _, sym := range matrixSymbols {
		entry, ok := s.factors.FindBySymbol(sym)
		if ok && !entry.Fundamental() {
			bm.Add(uint32(sym))
		}
	}
	return bm
}

// Suggest proposes, for the given set of symbols already present in a
// moment matrix, additional symbols whose factors are all already
// present -- these are the candidates an extended matrix construction
// should add a row/column for, up to MaxExtensions (spec §4.5).
func (s *Suggester) Suggest(matrixSymbols []int) []int {
	present := roaring.New()
	for _, sym := range matrixSymbols {
		present.Add(uint32(sym))
	}

	tested := roaring.New()
	var out []int
	for i := 0; i < s.factors.Size() && len(out) < MaxExtensions; i++ {
		entry := s.factors.At(i)
		if present.Contains(uint32(entry.Symbol)) {
			continue
		}
		if tested.Contains(uint32(entry.Symbol)) {
			continue
		}
		tested.Add(uint32(entry.Symbol))

		allFactorsPresent := true
		for _, f := range entry.CanonicalFactors {
			if !present.Contains(uint32(f)) {
				allFactorsPresent = false
				break
			}
		}
		if allFactorsPresent && len(entry.CanonicalFactors) > 1 {
			out = append(out, entry.Symbol)
		}
	}
	return out
}
