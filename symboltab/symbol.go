// Package symboltab implements the content-addressed symbol table of
// spec §4.3: a sequence of canonical operator sequences, interned once
// each, with Hermitian-pair detection and dense real/imaginary basis
// index assignment.
//
// The interning idiom (append-only slice + hash->id lookup map) is
// grounded on other_examples/15c16043_SnellerInc-sneller__ion-symtab.go.go's
// Symtab: an append-only `interned []string` plus a `map[string]int`
// reverse index, generalized here from strings to operator sequences and
// from a single index to the paired (sequence, conjugate) index spec §4.3
// requires. Locking follows the teacher's (core/types.go) dual-RWMutex
// idiom, collapsed here to one lock since symbols and their hash index
// are always mutated together.
package symboltab

import (
	"sync"

	"github.com/katalvlaran/moment/opctx"
	"github.com/katalvlaran/moment/sequence"
)

// ReservedZero is the symbol ID permanently assigned to algebraic zero.
const ReservedZero = 0

// ReservedIdentity is the symbol ID permanently assigned to the identity.
const ReservedIdentity = 1

// Symbol is a canonical operator sequence together with its conjugate,
// an integer ID, a Hermitian flag, and optional real/imaginary basis
// indices (spec §3).
type Symbol struct {
	ID        int
	Sequence  sequence.OperatorSequence
	Conjugate sequence.OperatorSequence
	Hermitian bool
	RealBasis int // -1 if this symbol has no real basis index (only the zero symbol)
	ImagBasis int // -1 if Hermitian or unassigned
}

type hashEntry struct {
	id         int
	conjugated bool
}

// Table is the symbol table: a sequence of Symbol plus a hash index
// mapping hash -> (symbol id, conjugated?).
type Table struct {
	mu      sync.RWMutex
	ctx     opctx.Context
	symbols []Symbol
	byHash  map[uint64]hashEntry

	nextRealBasis int
	nextImagBasis int
}

// New constructs a Table seeded with the two reserved symbols: ID 0 for
// zero, ID 1 for the identity (spec §4.3).
func New(ctx opctx.Context) *Table {
	t := &Table{
		ctx:    ctx,
		byHash: make(map[uint64]hashEntry),
	}
	t.symbols = append(t.symbols, Symbol{
		ID:        ReservedZero,
		Sequence:  sequence.Zero(),
		Conjugate: sequence.Zero(),
		Hermitian: true,
		RealBasis: -1,
		ImagBasis: -1,
	})
	identity := sequence.Identity()
	t.symbols = append(t.symbols, Symbol{
		ID:        ReservedIdentity,
		Sequence:  identity,
		Conjugate: identity,
		Hermitian: true,
		RealBasis: 0,
		ImagBasis: -1,
	})
	t.nextRealBasis = 1
	t.byHash[sequence.Zero().Hash()] = hashEntry{id: ReservedZero, conjugated: false}
	t.byHash[identity.Hash()] = hashEntry{id: ReservedIdentity, conjugated: false}
	return t
}

// Len returns the number of interned symbols, including the two reserved ones.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.symbols)
}

// At returns the symbol with the given ID.
func (t *Table) At(id int) (Symbol, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id < 0 || id >= len(t.symbols) {
		return Symbol{}, false
	}
	return t.symbols[id], true
}

// Find looks up a symbol by the shortlex hash of an operator sequence.
// Returns (id, conjugated, true) on hit -- conjugated reports whether the
// hash matched the symbol's conjugate rather than its primary sequence.
func (t *Table) Find(hash uint64) (id int, conjugated bool, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, found := t.byHash[hash]
	if !found {
		return 0, false, false
	}
	return e.id, e.conjugated, true
}

// Intern canonicalizes nothing further (seq must already be in the
// context's canonical form, e.g. freshly returned by Context.Canonicalize)
// and either returns an existing symbol's ID or creates a new one.
//
// Zero sequences always intern to ReservedZero; the empty (identity)
// sequence always interns to ReservedIdentity.
func (t *Table) Intern(seq sequence.OperatorSequence) (id int, conjugated bool, wasNew bool) {
	if seq.IsZero() {
		return ReservedZero, false, false
	}
	if seq.IsIdentity() {
		return ReservedIdentity, false, false
	}

	h := seq.Hash()

	t.mu.RLock()
	if e, ok := t.byHash[h]; ok {
		t.mu.RUnlock()
		return e.id, e.conjugated, false
	}
	t.mu.RUnlock()

	// Build conjugate and candidate symbol outside the write lock where
	// possible; only the insert itself needs exclusive access.
	conj := t.ctx.Conjugate(seq)

	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-check: another goroutine may have interned seq (or its
	// conjugate) while we didn't hold the lock.
	if e, ok := t.byHash[h]; ok {
		return e.id, e.conjugated, false
	}
	if e, ok := t.byHash[conj.Hash()]; ok {
		return e.id, !e.conjugated, false
	}

	newID := len(t.symbols)
	hermitian := conj.Hash() == h
	sym := Symbol{
		ID:        newID,
		Sequence:  seq,
		Conjugate: conj,
		Hermitian: hermitian,
		RealBasis: t.nextRealBasis,
		ImagBasis: -1,
	}
	t.nextRealBasis++
	if !hermitian {
		sym.ImagBasis = t.nextImagBasis
		t.nextImagBasis++
	}
	t.symbols = append(t.symbols, sym)
	t.byHash[h] = hashEntry{id: newID, conjugated: false}
	if !hermitian {
		t.byHash[conj.Hash()] = hashEntry{id: newID, conjugated: true}
	}
	return newID, false, true
}

// MergeIn registers a pre-constructed symbol's underlying sequence
// (spec §4.3's merge-in operation for sequences derived outside the
// normal dictionary-driven discovery order). It is Intern under a
// different name; the factor-table and extended-matrix paths in matsys
// call Intern directly.
func (t *Table) MergeIn(seq sequence.OperatorSequence) (id int, conjugated bool, wasNew bool) {
	return t.Intern(seq)
}

// RealBasisSize returns the number of distinct real basis indices assigned.
func (t *Table) RealBasisSize() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nextRealBasis
}

// ImagBasisSize returns the number of distinct imaginary basis indices assigned.
func (t *Table) ImagBasisSize() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nextImagBasis
}
