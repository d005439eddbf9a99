// Package indextree implements a generic trie keyed on ordered integer
// sequences, used by the inflation scenario's FactorTable (spec §6.4) to
// map a sorted list of factor symbol IDs to the symbol with that
// factorization.
//
// It is a direct generalization of the C++ template
// original_source/cpp/lib_moment/utilities/index_tree.h, which is itself
// generic over any std::integral key. Go has no native template
// equivalent, so the key type is parameterized with a type constraint
// instead (golang.org/x/exp/constraints.Integer), and children are kept
// sorted by key via a binary search on insert exactly as the C++ does
// with std::lower_bound.
package indextree
