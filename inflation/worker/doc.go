// Package worker implements the column-striped parallel matrix builder
// of spec §4.8: split a square matrix's columns across a worker pool,
// have each worker compute its columns' operator-sequence products and
// intern each new symbol directly into the shared symbol table, whose own
// lock serializes the inserts. There is no per-worker overlay and no merge
// pass after the workers join, so the IDs given to newly interned symbols
// follow the order in which workers reach them and can differ between
// runs.
//
// The column-striped layout is grounded on the teacher's
// matrix/impl_builder.go concurrent builder, generalized here from dense
// numeric rows to operator-sequence cells, and driven by
// golang.org/x/sync/errgroup instead of the teacher's raw WaitGroup so a
// worker's error aborts the remaining columns promptly.
package worker
