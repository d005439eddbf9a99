package inflation

import (
	"sort"

	"github.com/katalvlaran/moment/indextree"
)

// FactorEntry records how one interned symbol factorizes into
// independent sub-products under inflation's source replication (spec
// §4.5), ported from factor_table.h's FactorEntry.
type FactorEntry struct {
	Symbol int

	// CanonicalFactors is the symbol's factorization after canonical
	// source-variant relabelling (the form used for lookup); a
	// fundamental (non-factorizing) symbol has exactly one entry here,
	// itself.
	CanonicalFactors []int

	// Appearances counts how many other entries list this symbol as one
	// of their own factors.
	Appearances int
}

// Fundamental reports whether this symbol does not factorize further.
func (e FactorEntry) Fundamental() bool { return len(e.CanonicalFactors) <= 1 }

// FactorTable tracks, for every interned symbol, how it factorizes
// (spec §4.5), and supports the reverse lookup "which symbol has exactly
// this sorted factor list" via an indextree.Tree, mirroring
// factor_table.h's index_tree member.
type FactorTable struct {
	entries []FactorEntry
	byIndex map[int]int // symbol id -> index into entries
	tree    *indextree.Tree[int, int]
}

// NewFactorTable constructs an empty FactorTable.
func NewFactorTable() *FactorTable {
	return &FactorTable{
		byIndex: make(map[int]int),
		tree:    indextree.New[int, int](),
	}
}

// Size returns the number of tracked entries.
func (t *FactorTable) Size() int { return len(t.entries) }

// At returns the entry at position i (not keyed by symbol ID; use
// FindBySymbol to look up by symbol).
func (t *FactorTable) At(i int) FactorEntry { return t.entries[i] }

// FindBySymbol returns the entry tracking the given symbol, if any.
func (t *FactorTable) FindBySymbol(symbol int) (FactorEntry, bool) {
	idx, ok := t.byIndex[symbol]
	if !ok {
		return FactorEntry{}, false
	}
	return t.entries[idx], true
}

// FindIndexByFactors looks up which symbol has exactly the given
// (already sorted, combined) factor list.
func (t *FactorTable) FindIndexByFactors(factors []int) (int, bool) {
	return t.tree.Find(factors)
}

// RegisterNew records that symbol factorizes as the given canonical
// factor list, incrementing Appearances on every distinct factor symbol
// referenced (ported from factor_table.h's register_new, minus the raw
// pre-relabelling factor list the C++ keeps for diagnostics and this
// port omits as presentation-only).
func (t *FactorTable) RegisterNew(symbol int, factors []int) {
	sorted := append([]int(nil), factors...)
	sort.Ints(sorted)

	entry := FactorEntry{Symbol: symbol, CanonicalFactors: sorted}
	// Entries registered earlier may already list symbol as a factor.
	for _, e := range t.entries {
		i := sort.SearchInts(e.CanonicalFactors, symbol)
		if len(e.CanonicalFactors) > 1 && i < len(e.CanonicalFactors) && e.CanonicalFactors[i] == symbol {
			entry.Appearances++
		}
	}
	t.byIndex[symbol] = len(t.entries)
	t.entries = append(t.entries, entry)
	t.tree.Add(sorted, symbol)

	if len(sorted) > 1 {
		for i, f := range sorted {
			if f == symbol || (i > 0 && f == sorted[i-1]) {
				continue
			}
			if fi, ok := t.byIndex[f]; ok {
				t.entries[fi].Appearances++
			}
		}
	}
}

// CombineSymbolicFactors merges two sorted factor lists, dropping
// identity (symbol 1) entries from either side, and re-sorts the result
// (ported from factor_table.h's combine_symbolic_factors, used when
// multiplying two already-factorized moments).
func CombineSymbolicFactors(left, right []int) []int {
	out := make([]int, 0, len(left)+len(right))
	for _, f := range left {
		if f != 1 {
			out = append(out, f)
		}
	}
	for _, f := range right {
		if f != 1 {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		out = append(out, 1)
	}
	sort.Ints(out)
	return out
}
