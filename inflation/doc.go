// Package inflation implements the inflation scenario of spec §4.5: a
// classical causal network of observables and hidden sources, replicated
// ("inflated") some number of times to produce source variants, together
// with the FactorTable that tracks which interned symbols factorize into
// independent sub-products under that replication.
//
// The network and entry types are ported from
// original_source/cpp/lib_moment/scenarios/inflation/{causal_network,observable,source}.h;
// FactorTable generalizes factor_table.h's IndexTree-backed lookup using
// this module's indextree package.
package inflation
