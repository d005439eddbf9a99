package pauli

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/moment/dictionary"
	"github.com/katalvlaran/moment/sequence"
)

// NearestNeighbourIndex selects one cached restricted OSG: a word length
// and a neighbour radius (spec §4.6's NearestNeighbourIndex).
type NearestNeighbourIndex struct {
	WordLength int
	Radius     int
}

// NNCache memoizes nearest-neighbour-restricted OSGs keyed by
// NearestNeighbourIndex (spec §4.6), backed by an LRU so long-running
// processes that sweep many radii don't grow this cache unboundedly, and
// a singleflight.Group so concurrent requests for the same index
// collapse onto a single build -- the same race-collapsing discipline
// dictionary.Dictionary uses for its own OSG cache.
type NNCache struct {
	ctx *Context

	mu    sync.Mutex
	cache *lru.Cache[NearestNeighbourIndex, []sequence.OperatorSequence]
	group singleflight.Group
}

// NewNNCache constructs an NNCache over ctx with room for at most
// maxEntries restricted OSGs.
func NewNNCache(ctx *Context, maxEntries int) (*NNCache, error) {
	c, err := lru.New[NearestNeighbourIndex, []sequence.OperatorSequence](maxEntries)
	if err != nil {
		return nil, err
	}
	return &NNCache{ctx: ctx, cache: c}, nil
}

// Get returns the nearest-neighbour-restricted OSG for idx, building it
// via a full OSG up to idx.WordLength filtered by WithinChainRadius if
// not already cached.
func (n *NNCache) Get(idx NearestNeighbourIndex) []sequence.OperatorSequence {
	n.mu.Lock()
	if seqs, ok := n.cache.Get(idx); ok {
		n.mu.Unlock()
		return seqs
	}
	n.mu.Unlock()

	key := fmt.Sprintf("%d:%d", idx.WordLength, idx.Radius)
	result, _, _ := n.group.Do(key, func() (interface{}, error) {
		n.mu.Lock()
		if seqs, ok := n.cache.Get(idx); ok {
			n.mu.Unlock()
			return seqs, nil
		}
		n.mu.Unlock()

		d := dictionary.New(n.ctx)
		full := d.OSGUpTo(idx.WordLength)
		var filtered []sequence.OperatorSequence
		for _, s := range full.Sequences() {
			if WithinChainRadius(s, idx.Radius) {
				filtered = append(filtered, s)
			}
		}

		n.mu.Lock()
		n.cache.Add(idx, filtered)
		n.mu.Unlock()
		return filtered, nil
	})
	return result.([]sequence.OperatorSequence)
}
