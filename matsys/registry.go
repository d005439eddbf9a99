package matsys

import (
	"github.com/google/btree"

	"github.com/katalvlaran/moment/momenterr"
)

// Keyed is the minimal contract an Index type must satisfy to be used
// with MatrixIndices: a stable, total-order-comparable string key. This
// sidesteps requiring google/btree's generic variant (the pack carries
// the classic Item-interface v1.1.3) by wrapping every index behind a
// uniform string comparison.
type Keyed interface {
	Key() string
}

type registryItem struct {
	key    string
	offset int
}

func (r *registryItem) Less(than btree.Item) bool {
	return r.key < than.(*registryItem).key
}

// MatrixIndices is a generic registry mapping an Index to the offset of
// its built matrix in a caller-owned backing slice (spec §4.7). It is
// not itself safe for concurrent use; callers (System) serialize access
// with their own lock.
type MatrixIndices[Index Keyed] struct {
	tree *btree.BTree
}

// NewMatrixIndices constructs an empty registry. degree controls the
// underlying B-tree's branching factor; 32 is a reasonable default for
// the matrix counts this engine deals with.
func NewMatrixIndices[Index Keyed](degree int) *MatrixIndices[Index] {
	return &MatrixIndices[Index]{tree: btree.New(degree)}
}

// Get returns the offset registered for index, or ErrNotFound.
func (m *MatrixIndices[Index]) Get(index Index) (int, error) {
	item := m.tree.Get(&registryItem{key: index.Key()})
	if item == nil {
		return 0, momenterr.NotFound("no matrix registered for index %q", index.Key())
	}
	return item.(*registryItem).offset, nil
}

// Create returns the offset registered for index if present; otherwise
// it calls build to construct one, registers offset under index, and
// returns it. build is only invoked on a genuine miss (spec §4.7: "if
// present, returns the existing entry without re-invoking the factory").
func (m *MatrixIndices[Index]) Create(index Index, build func() (int, error)) (int, error) {
	if offset, err := m.Get(index); err == nil {
		return offset, nil
	}
	offset, err := build()
	if err != nil {
		return 0, err
	}
	m.tree.ReplaceOrInsert(&registryItem{key: index.Key(), offset: offset})
	return offset, nil
}

// InsertAlias cross-registers offset under a second index (spec §4.7:
// e.g. a Pauli MomentMatrix also registered under the plain
// MomentMatrix index when the neighbour radius is zero).
func (m *MatrixIndices[Index]) InsertAlias(index Index, offset int) {
	m.tree.ReplaceOrInsert(&registryItem{key: index.Key(), offset: offset})
}

// Len returns the number of registered indices.
func (m *MatrixIndices[Index]) Len() int { return m.tree.Len() }
