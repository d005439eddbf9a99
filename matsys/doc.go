// Package matsys implements the MatrixSystem of spec §4.7: the single
// registry that owns a context, a symbol table, a polynomial factory,
// and every matrix built against them, keyed by scenario-specific index
// types through a generic MatrixIndices registry.
//
// Locking follows spec §5: one reader-writer lock guards the whole
// registry (lookup takes a shared lock, construction takes an exclusive
// one); a factory invoked while the write lock is held may recursively
// request prerequisite matrices through the same System, which this
// package implements by simply not re-locking on the recursive call
// (the lock is acquired once per public System method, not per
// MatrixIndices operation).
//
// Moment, localizing, extended and (anti-)commutator matrices all hold
// Monomial cells (Matrix); a polynomial localizing matrix holds full
// Polynomial cells (PolyMatrix) and is registered in its own vector and
// MatrixIndices, since the two cell types have nothing in common to
// share a backing slice over.
package matsys
