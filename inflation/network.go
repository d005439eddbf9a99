package inflation

import (
	"sort"

	"github.com/katalvlaran/moment/momenterr"
)

// Observable is one classical measurement of a causal network (spec
// §4.5): an outcome count and the set of sources feeding it.
// OutcomeCount == 0 marks a "singleton" generic moment rather than a
// projective measurement (ported from
// original_source/.../observable.h's the outcomes==0 convention).
type Observable struct {
	ID           int
	OutcomeCount int
	Sources      []int // sorted, distinct source indices feeding this observable
	Singleton    bool
}

// Projective reports whether this observable is a projective measurement
// (has a nonzero declared outcome count).
func (o Observable) Projective() bool { return o.OutcomeCount != 0 }

// OperatorCount is the number of distinct non-identity operators needed
// to express this observable: outcomes-1 for a projective measurement
// (the last outcome is implied by completeness), 1 otherwise.
func (o Observable) OperatorCount() int {
	if o.OutcomeCount != 0 {
		return o.OutcomeCount - 1
	}
	return 1
}

// CountCopies is the number of source-variant replicas this observable
// has at the given inflation level: the product of the inflation level
// over every explicit source it touches (implicit sources never
// replicate an observable further).
func (o Observable) CountCopies(explicitSourceIDs map[int]bool, inflationLevel int) int {
	copies := 1
	for _, s := range o.Sources {
		if explicitSourceIDs[s] {
			copies *= inflationLevel
		}
	}
	return copies
}

// Source is a hidden variable connecting a set of observables (spec
// §4.5). Implicit marks a source synthesized to connect an observable
// that the original network left otherwise unconnected (so every
// observable has at least one source).
type Source struct {
	ID          int
	Observables []int // sorted, distinct observable indices this source feeds
	Implicit    bool
}

// Network is a bipartite causal network of Observable and Source (spec
// §4.5), ported from
// original_source/cpp/lib_moment/scenarios/inflation/causal_network.h.
type Network struct {
	observables         []Observable
	sources             []Source
	implicitSourceIndex int // index of the first implicit (synthesized) source
}

// NewNetwork builds a Network from a per-observable outcome count list
// and, per observable, the set of source indices feeding it (source
// indices are named implicitly by first appearance: the network
// synthesizes one implicit source per fully-unconnected observable).
func NewNetwork(outcomeCounts []int, observableSources [][]int) (*Network, error) {
	if len(outcomeCounts) != len(observableSources) {
		return nil, momenterr.BadInput("outcome count list (len %d) and source list (len %d) must have the same length",
			len(outcomeCounts), len(observableSources))
	}
	n := len(outcomeCounts)

	maxSource := -1
	for _, srcs := range observableSources {
		for _, s := range srcs {
			if s < 0 {
				return nil, momenterr.BadInput("source index %d is negative", s)
			}
			if s > maxSource {
				maxSource = s
			}
		}
	}
	numExplicit := maxSource + 1

	sourceToObs := make([]map[int]bool, numExplicit)
	for i := range sourceToObs {
		sourceToObs[i] = make(map[int]bool)
	}
	observables := make([]Observable, n)
	for i, outcomes := range outcomeCounts {
		if outcomes < 0 {
			return nil, momenterr.BadInput("observable %d has negative outcome count %d", i, outcomes)
		}
		srcs := append([]int(nil), observableSources[i]...)
		sort.Ints(srcs)
		observables[i] = Observable{ID: i, OutcomeCount: outcomes, Sources: srcs}
		for _, s := range srcs {
			sourceToObs[s][i] = true
		}
	}

	net := &Network{implicitSourceIndex: numExplicit}
	for s := 0; s < numExplicit; s++ {
		obsList := sortedKeys(sourceToObs[s])
		net.sources = append(net.sources, Source{ID: s, Observables: obsList})
	}

	// Synthesize one implicit source per observable with no explicit
	// source, so every observable is connected to at least one source
	// (matches the C++ constructor's reverse_observable_to_source pass).
	nextSource := numExplicit
	for i := range observables {
		if len(observables[i].Sources) == 0 {
			observables[i].Sources = []int{nextSource}
			net.sources = append(net.sources, Source{ID: nextSource, Observables: []int{i}, Implicit: true})
			nextSource++
		}
	}
	net.observables = observables
	return net, nil
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Observables returns the network's observables, in declaration order.
func (n *Network) Observables() []Observable { return n.observables }

// Sources returns the network's sources, explicit ones first.
func (n *Network) Sources() []Source { return n.sources }

// ExplicitSourceCount returns the number of explicitly declared sources.
func (n *Network) ExplicitSourceCount() int { return n.implicitSourceIndex }

// ImplicitSourceCount returns the number of synthesized sources.
func (n *Network) ImplicitSourceCount() int { return len(n.sources) - n.implicitSourceIndex }

// TotalSourceCount returns the number of sources the network has once
// every explicit source is replicated inflationLevel times (implicit
// sources never replicate).
func (n *Network) TotalSourceCount(inflationLevel int) int {
	return n.implicitSourceIndex*inflationLevel + n.ImplicitSourceCount()
}

// GlobalSourceToVariant converts a flat (inflated) source index into its
// (source, variant) pair.
func (n *Network) GlobalSourceToVariant(inflationLevel, globalID int) (source, variant int) {
	explicitTotal := n.implicitSourceIndex * inflationLevel
	if globalID >= explicitTotal {
		return n.implicitSourceIndex + (globalID - explicitTotal), 0
	}
	return globalID / inflationLevel, globalID % inflationLevel
}

// VariantToGlobalSource converts a (source, variant) pair into its flat
// (inflated) source index.
func (n *Network) VariantToGlobalSource(inflationLevel, sourceID, variantID int) int {
	if sourceID >= n.implicitSourceIndex {
		return n.implicitSourceIndex*inflationLevel + (sourceID - n.implicitSourceIndex)
	}
	return sourceID*inflationLevel + variantID
}

// TotalOperatorCount is the number of distinct operators needed to
// express the whole network at the given inflation level: each
// observable's OperatorCount times its CountCopies.
func (n *Network) TotalOperatorCount(inflationLevel int) int {
	explicit := make(map[int]bool, n.implicitSourceIndex)
	for i := 0; i < n.implicitSourceIndex; i++ {
		explicit[i] = true
	}
	total := 0
	for _, o := range n.observables {
		total += o.OperatorCount() * o.CountCopies(explicit, inflationLevel)
	}
	return total
}
