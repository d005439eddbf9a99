// Package dictionary implements the lazy OperatorSequenceGenerator (OSG)
// collection of spec §4.4: given a context, enumerate every canonical
// operator sequence up to a requested word length, building longer
// generators only on demand and sharing the result across concurrent
// callers that request the same length at once.
//
// The default enumeration (brute-force over every length-ℓ tuple,
// filtered through the context's own canonicalizer) is grounded on the
// C++ default OperatorSequenceGenerator referenced by
// original_source/cpp/lib_moment/scenarios/inflation/inflation_osg.h and
// scenarios/pauli/pauli_osg.h, both of which derive from it for the
// fully-enumerated case and override only the specialized cases.
//
// The "build unlocked, insert under a race-checked exclusive lock"
// pattern spec §4.4 calls for maps naturally onto
// golang.org/x/sync/singleflight: concurrent callers requesting the same
// length collapse onto a single build, and the cache itself is a plain
// map guarded by the Dictionary's own mutex, following the
// read-then-upgrade discipline of core/types.go's ComponentSlice cache.
package dictionary
