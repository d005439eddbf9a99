package inflation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/moment/momenterr"
	"github.com/katalvlaran/moment/opctx"
	"github.com/katalvlaran/moment/sequence"
)

// operatorDesc is the per-alphabet-index metadata InflationContext needs
// to canonicalize and relabel operators: which observable it belongs to,
// which outcome of that observable it represents, and which source
// variant (one per explicit source feeding the observable) it was
// generated under.
type operatorDesc struct {
	observable int
	outcome    int
	variant    []int // one entry per explicit source feeding this observable, sorted by source id
}

func (d operatorDesc) partyKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:", d.observable)
	for _, v := range d.variant {
		fmt.Fprintf(&b, "%d,", v)
	}
	return b.String()
}

// Context is the inflation scenario's Context (spec §4.2, §4.5): operator
// multiplication applies the projective-measurement algebra (idempotence
// within a measurement, orthogonality across outcomes of the same
// measurement, commutativity across distinct measurements), and moment
// simplification applies a greedy source-variant relabelling so that
// moments differing only by a source-variant permutation compare equal.
type Context struct {
	opctx.Base

	network        *Network
	inflationLevel int
	operators      []operatorDesc

	// index maps (observable, outcome, variant-key) back to an alphabet
	// index, used by SimplifyAsMoment to re-encode after relabelling.
	index map[string]int
}

// NewContext builds an InflationContext for network at the given
// inflation level (spec §4.5: "inflation" replicates each explicit
// source inflationLevel times).
func NewContext(network *Network, inflationLevel int) (*Context, error) {
	if inflationLevel < 1 {
		return nil, momenterr.BadInput("inflation level must be >= 1, got %d", inflationLevel)
	}

	var operators []operatorDesc
	index := make(map[string]int)
	for _, obs := range network.Observables() {
		variants := variantCombinations(obs.Sources, network.ExplicitSourceCount(), inflationLevel)
		for _, variant := range variants {
			for outcome := 0; outcome < obs.OperatorCount(); outcome++ {
				d := operatorDesc{observable: obs.ID, outcome: outcome, variant: variant}
				index[operatorKey(obs.ID, outcome, variant)] = len(operators)
				operators = append(operators, d)
			}
		}
	}

	base, err := opctx.NewBase(len(operators))
	if err != nil {
		return nil, err
	}
	return &Context{Base: base, network: network, inflationLevel: inflationLevel, operators: operators, index: index}, nil
}

var _ opctx.Context = (*Context)(nil)

// variantCombinations enumerates every assignment of a variant index
// (0..inflationLevel-1) to each explicit source in sources, in
// generation order; sources beyond explicitSourceCount (implicit
// sources) contribute no variant choice and are omitted from the tuple.
func variantCombinations(sources []int, explicitSourceCount, inflationLevel int) [][]int {
	var explicit []int
	for _, s := range sources {
		if s < explicitSourceCount {
			explicit = append(explicit, s)
		}
	}
	if len(explicit) == 0 {
		return [][]int{{}}
	}
	var out [][]int
	var rec func(i int, cur []int)
	rec = func(i int, cur []int) {
		if i == len(explicit) {
			cp := append([]int(nil), cur...)
			out = append(out, cp)
			return
		}
		for v := 0; v < inflationLevel; v++ {
			rec(i+1, append(cur, v))
		}
	}
	rec(0, nil)
	return out
}

func operatorKey(observable, outcome int, variant []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%d|", observable, outcome)
	for _, v := range variant {
		fmt.Fprintf(&b, "%d,", v)
	}
	return b.String()
}

// CanBeNonHermitian overrides Base: every inflation operator is a
// Hermitian projective measurement, so inflated products are always
// Hermitian up to ordering.
func (c *Context) CanBeNonHermitian() bool { return false }

// Canonicalize applies the projective-measurement algebra: operators
// commute across distinct measurements (distinct observable+variant
// "party"), so parties are grouped together (stable sort preserves
// relative order within a party); within one party, two operators
// referring to the same outcome collapse to one copy (idempotence), and
// two operators referring to different outcomes annihilate the whole
// sequence (orthogonality).
func (c *Context) Canonicalize(ops []int, sign sequence.SignTag) (sequence.OperatorSequence, error) {
	for _, o := range ops {
		if o < 0 || o >= len(c.operators) {
			return sequence.OperatorSequence{}, momenterr.BadInput("operator index %d out of range [0,%d)", o, len(c.operators))
		}
	}

	type tagged struct {
		op  int
		key string
	}
	items := make([]tagged, len(ops))
	for i, o := range ops {
		items[i] = tagged{op: o, key: c.operators[o].partyKey()}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].key < items[j].key })

	var reduced []int
	i := 0
	for i < len(items) {
		j := i
		outcome := c.operators[items[i].op].outcome
		mixed := false
		for j < len(items) && items[j].key == items[i].key {
			if c.operators[items[j].op].outcome != outcome {
				mixed = true
			}
			j++
		}
		if mixed {
			return sequence.Zero(), nil
		}
		reduced = append(reduced, items[i].op)
		i = j
	}

	return c.Base.Canonicalize(reduced, sign)
}

// Multiply implements Context via DefaultMultiply.
func (c *Context) Multiply(lhs, rhs sequence.OperatorSequence) (sequence.OperatorSequence, error) {
	return opctx.DefaultMultiply(c, lhs, rhs)
}

// Conjugate implements Context via DefaultConjugate: every generator is
// Hermitian so reversal-then-recanonicalize is correct (Canonicalize's
// commuting sort makes the reversal irrelevant to the result anyway).
func (c *Context) Conjugate(seq sequence.OperatorSequence) sequence.OperatorSequence {
	return opctx.DefaultConjugate(c, seq)
}

// SimplifyAsMoment applies the greedy source-variant relabelling: the
// first explicit source encountered (in sequence order) is relabelled to
// variant 0, the second distinct source-variant pairing encountered gets
// 1, and so on, independently per source. This is not guaranteed to find
// the group-theoretically minimal representative under source-observable
// symmetries beyond plain inflation-copy replication, matching the
// limitation the original implementation documents for this pass.
func (c *Context) SimplifyAsMoment(seq sequence.OperatorSequence) sequence.OperatorSequence {
	if seq.IsZero() || seq.IsIdentity() {
		return seq
	}

	relabel := make(map[int]map[int]int) // source id -> old variant -> new variant
	nextLabel := make(map[int]int)

	remapVariant := func(obs Observable, variant []int) []int {
		out := make([]int, len(variant))
		for i, srcID := range explicitSourcesOf(obs, c.network.ExplicitSourceCount()) {
			if relabel[srcID] == nil {
				relabel[srcID] = make(map[int]int)
			}
			old := variant[i]
			if lbl, ok := relabel[srcID][old]; ok {
				out[i] = lbl
			} else {
				lbl := nextLabel[srcID]
				relabel[srcID][old] = lbl
				nextLabel[srcID]++
				out[i] = lbl
			}
		}
		return out
	}

	newOps := make([]int, 0, seq.Len())
	for _, o := range seq.Ops() {
		d := c.operators[o]
		obs := c.network.Observables()[d.observable]
		newVariant := remapVariant(obs, d.variant)
		newOp, ok := c.index[operatorKey(d.observable, d.outcome, newVariant)]
		if !ok {
			// Relabelling produced a variant combination that was never
			// generated (can happen if the same source appears under
			// more labels than the inflation level provides headroom
			// for); fall back to the original operator rather than
			// drop information.
			newOp = o
		}
		newOps = append(newOps, newOp)
	}

	out, err := c.Canonicalize(newOps, seq.Sign())
	if err != nil {
		return seq
	}
	return out
}

// Factorize splits seq into its maximal source-disjoint connected
// components (spec §4.5(c)): two operators fall in the same factor iff
// their (explicit source, variant) instances overlap at at least one
// source, found by a union-find over seq's operator positions keyed on
// those instances. A sequence touching zero or one such component
// (including the zero and identity sequences) returns itself as the
// sole factor -- it is already fundamental.
func (c *Context) Factorize(seq sequence.OperatorSequence) []sequence.OperatorSequence {
	ops := seq.Ops()
	if seq.IsZero() || len(ops) <= 1 {
		return []sequence.OperatorSequence{seq}
	}

	parent := make([]int, len(ops))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	type instance struct {
		source  int
		variant int
	}
	seen := make(map[instance]int)
	for i, o := range ops {
		d := c.operators[o]
		obs := c.network.Observables()[d.observable]
		for k, srcID := range explicitSourcesOf(obs, c.network.ExplicitSourceCount()) {
			inst := instance{source: srcID, variant: d.variant[k]}
			if first, ok := seen[inst]; ok {
				union(first, i)
			} else {
				seen[inst] = i
			}
		}
	}

	groups := make(map[int][]int, len(ops))
	var roots []int
	for i := range ops {
		root := find(i)
		if _, ok := groups[root]; !ok {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], ops[i])
	}
	if len(roots) <= 1 {
		return []sequence.OperatorSequence{seq}
	}

	factors := make([]sequence.OperatorSequence, 0, len(roots))
	for idx, root := range roots {
		sign := sequence.SignPositive
		if idx == 0 {
			sign = seq.Sign()
		}
		part, err := c.Canonicalize(groups[root], sign)
		if err != nil {
			return []sequence.OperatorSequence{seq}
		}
		factors = append(factors, part)
	}
	return factors
}

func explicitSourcesOf(obs Observable, explicitSourceCount int) []int {
	var out []int
	for _, s := range obs.Sources {
		if s < explicitSourceCount {
			out = append(out, s)
		}
	}
	return out
}

// FormatSequence implements Context using the default renderer.
func (c *Context) FormatSequence(seq sequence.OperatorSequence) string {
	return opctx.DefaultFormatSequence(seq)
}

// Network returns the context's underlying causal network.
func (c *Context) Network() *Network { return c.network }

// InflationLevel returns the context's inflation level.
func (c *Context) InflationLevel() int { return c.inflationLevel }
