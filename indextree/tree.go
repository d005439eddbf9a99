package indextree

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Tree is a trie over sequences of K, storing one V per distinct
// sequence. The zero value is an empty, usable tree (an empty root).
//
// Children of each node are kept sorted by key so Add/Find can binary
// search instead of scan, matching the std::lower_bound discipline of
// the original.
type Tree[K constraints.Integer, V any] struct {
	id       K
	value    V
	hasValue bool
	children []*Tree[K, V]
}

// New returns an empty Tree, ready to use.
func New[K constraints.Integer, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Add writes value at the node reached by following key from the root,
// creating intermediate nodes as needed. An empty key writes to the
// root itself.
func (t *Tree[K, V]) Add(key []K, value V) {
	node := t
	for _, k := range key {
		node = node.childOrCreate(k)
	}
	node.value = value
	node.hasValue = true
}

// Find reads the value stored at the node reached by following key from
// the root, reporting false if no value was ever written there.
func (t *Tree[K, V]) Find(key []K) (V, bool) {
	node := t
	for _, k := range key {
		child := node.child(k)
		if child == nil {
			var zero V
			return zero, false
		}
		node = child
	}
	return node.value, node.hasValue
}

// Leaf reports whether this node has no children.
func (t *Tree[K, V]) Leaf() bool {
	return len(t.children) == 0
}

// child returns the existing child keyed by k, or nil.
func (t *Tree[K, V]) child(k K) *Tree[K, V] {
	i := sort.Search(len(t.children), func(i int) bool {
		return t.children[i].id >= k
	})
	if i < len(t.children) && t.children[i].id == k {
		return t.children[i]
	}
	return nil
}

// childOrCreate returns the existing child keyed by k, inserting a fresh
// one in sorted position if none exists yet.
func (t *Tree[K, V]) childOrCreate(k K) *Tree[K, V] {
	i := sort.Search(len(t.children), func(i int) bool {
		return t.children[i].id >= k
	})
	if i < len(t.children) && t.children[i].id == k {
		return t.children[i]
	}
	node := &Tree[K, V]{id: k}
	t.children = append(t.children, nil)
	copy(t.children[i+1:], t.children[i:])
	t.children[i] = node
	return node
}
