package matsys

import (
	"fmt"

	"github.com/katalvlaran/moment/inflation"
	"github.com/katalvlaran/moment/inflation/worker"
	"github.com/katalvlaran/moment/momenterr"
	"github.com/katalvlaran/moment/pauli"
	"github.com/katalvlaran/moment/sequence"
)

func cellsToMatrix(dim int, cells [][]worker.Cell, description string) *Matrix {
	return &Matrix{Dim: dim, Cells: cells, Description: description}
}

// BuildMoment returns the moment matrix at the given level (spec §6
// "Moment matrix"), building and registering it on first request.
func (s *System) BuildMoment(level int) (int, *Matrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createMoment(MomentMatrixIndex{Level: level})
}

// createMoment is the lock-free factory body, callable both from
// BuildMoment and recursively from other factories already holding the
// write lock (spec §4.7 "Reentrancy").
func (s *System) createMoment(index MomentMatrixIndex) (int, *Matrix, error) {
	if offset, err := s.momentIndices.Get(index); err == nil {
		m, _ := s.matrixAtLocked(offset)
		return offset, m, nil
	}
	if index.Level < 0 {
		return 0, nil, momenterr.BadInput("moment matrix level must be >= 0, got %d", index.Level)
	}
	osg := s.dict.OSGUpTo(index.Level)
	gen := wordGenerator(s.ctx, osg, sequence.Identity())
	cells, err := worker.BuildSquare(s.symbols, osg.Len(), s.workers, gen)
	if err != nil {
		return 0, nil, err
	}
	m := cellsToMatrix(osg.Len(), cells, fmt.Sprintf("Moment matrix, level %d", index.Level))
	offset := s.register(m)
	s.momentIndices.InsertAlias(index, offset)
	s.registerFactors(m)
	s.log.Info("built moment matrix", zapFields(index.Level, offset, m.Dim)...)
	return offset, m, nil
}

// BuildLocalizing returns the localizing matrix for word at the given
// level (spec §6 "Localizing matrix"): entry (i,j) is the symbol for
// gi* . word . gj.
func (s *System) BuildLocalizing(level int, word sequence.OperatorSequence) (int, *Matrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocalizing(LocalizingMatrixIndex{Level: level, Word: word})
}

// createLocalizing is the lock-free factory body, shared with
// BuildPolynomialLocalizing's recursive constituent construction (spec
// §4.7 "Reentrancy").
func (s *System) createLocalizing(index LocalizingMatrixIndex) (int, *Matrix, error) {
	if offset, err := s.localizingIndices.Get(index); err == nil {
		m, _ := s.matrixAtLocked(offset)
		return offset, m, nil
	}
	if index.Level < 0 {
		return 0, nil, momenterr.BadInput("localizing matrix level must be >= 0, got %d", index.Level)
	}
	osg := s.dict.OSGUpTo(index.Level)
	gen := wordGenerator(s.ctx, osg, index.Word)
	cells, err := worker.BuildSquare(s.symbols, osg.Len(), s.workers, gen)
	if err != nil {
		return 0, nil, err
	}
	m := cellsToMatrix(osg.Len(), cells, fmt.Sprintf("Localizing matrix, level %d, word %s", index.Level, s.ctx.FormatSequence(index.Word)))
	offset := s.register(m)
	s.localizingIndices.InsertAlias(index, offset)
	s.registerFactors(m)
	s.log.Info("built localizing matrix", zapFields(index.Level, offset, m.Dim)...)
	return offset, m, nil
}

// BuildNearestNeighbour returns the moment matrix restricted to the
// Pauli nearest-neighbour OSG of the given radius (spec §4.6, §4.7). It
// requires ctx to be a *pauli.Context; any other scenario returns
// momenterr.BadInput. A radius of 0 applies no restriction: it uses the
// full dictionary OSG, so the result equals the plain moment matrix and
// is additionally cross-registered under MomentMatrixIndex
// (spec §4.7's InsertAlias example).
func (s *System) BuildNearestNeighbour(level, radius int) (int, *Matrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pctx, ok := s.ctx.(*pauli.Context)
	if !ok || s.nnCache == nil {
		return 0, nil, momenterr.BadInput("nearest-neighbour matrix requires a Pauli context")
	}
	index := NearestNeighbourMatrixIndex{Level: level, Radius: radius}
	if offset, err := s.nnIndices.Get(index); err == nil {
		m, _ := s.matrixAtLocked(offset)
		return offset, m, nil
	}
	var sequences []sequence.OperatorSequence
	if radius == 0 {
		// Radius 0 applies no nearest-neighbour restriction.
		sequences = s.dict.OSGUpTo(level).Sequences()
	} else {
		sequences = s.nnCache.Get(pauli.NearestNeighbourIndex{WordLength: level, Radius: radius})
	}
	osg := &fixedOSG{sequences: sequences}
	gen := wordGenerator(pctx, osg, sequence.Identity())
	cells, err := worker.BuildSquare(s.symbols, len(sequences), s.workers, gen)
	if err != nil {
		return 0, nil, err
	}
	m := cellsToMatrix(len(sequences), cells, fmt.Sprintf("Nearest-neighbour moment matrix, level %d, radius %d", level, radius))
	offset := s.register(m)
	s.nnIndices.InsertAlias(index, offset)
	if radius == 0 {
		s.momentIndices.InsertAlias(MomentMatrixIndex{Level: level}, offset)
	}
	s.log.Info("built nearest-neighbour matrix", zapFields(level, offset, m.Dim)...)
	return offset, m, nil
}

// fixedOSG adapts a precomputed sequence slice to the minimal interface
// wordGenerator needs (At, Len), without going through dictionary.OSG's
// own construction path -- the nearest-neighbour restriction replaces
// dictionary enumeration entirely rather than filtering its output.
type fixedOSG struct{ sequences []sequence.OperatorSequence }

func (f *fixedOSG) At(i int) sequence.OperatorSequence { return f.sequences[i] }
func (f *fixedOSG) Len() int                           { return len(f.sequences) }

// BuildCommutator returns the commutator matrix [gi*.gj, word] at the
// given level, optionally restricted to the Pauli nearest-neighbour OSG
// of radius (spec §1(e), §4.6 "commutator matrices"): one of the two
// concurrent matrix-construction pipelines spec §1 names alongside
// inflation's extended matrix. It requires ctx to be a *pauli.Context.
// radius<0 selects the unrestricted moment-matrix OSG; radius>=0 selects
// the nearest-neighbour-restricted OSG (spec §4.6), mirroring the
// original's CommutatorMatrixIndex sharing its generator set with the
// Pauli localizing matrix.
func (s *System) BuildCommutator(level, radius int, word sequence.OperatorSequence) (int, *Matrix, error) {
	return s.buildCommutatorLike(level, radius, word, false)
}

// BuildAntiCommutator is BuildCommutator's {gi*.gj, word} counterpart.
func (s *System) BuildAntiCommutator(level, radius int, word sequence.OperatorSequence) (int, *Matrix, error) {
	return s.buildCommutatorLike(level, radius, word, true)
}

func (s *System) buildCommutatorLike(level, radius int, word sequence.OperatorSequence, anti bool) (int, *Matrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pctx, ok := s.ctx.(*pauli.Context)
	if !ok {
		return 0, nil, momenterr.BadInput("commutator matrix requires a Pauli context")
	}
	if level < 0 {
		return 0, nil, momenterr.BadInput("commutator matrix level must be >= 0, got %d", level)
	}

	index := CommutatorMatrixIndex{Level: level, Radius: radius, Word: word, Anti: anti}
	if offset, err := s.commutatorIndices.Get(index); err == nil {
		m, _ := s.matrixAtLocked(offset)
		return offset, m, nil
	}

	var osg dictionaryLike
	if radius < 0 {
		osg = s.dict.OSGUpTo(level)
	} else {
		if s.nnCache == nil {
			return 0, nil, momenterr.BadInput("nearest-neighbour-restricted commutator matrix requires a Pauli context")
		}
		osg = &fixedOSG{sequences: s.nnCache.Get(pauli.NearestNeighbourIndex{WordLength: level, Radius: radius})}
	}

	gen := commutatorGenerator(pctx, osg, word, anti)
	cells, err := worker.BuildSquare(s.symbols, osg.Len(), s.workers, gen)
	if err != nil {
		return 0, nil, err
	}
	for r := range cells {
		for c := range cells[r] {
			if !cells[r][c].Zero {
				cells[r][c].Coefficient *= commutatorPrefactor
			}
		}
	}

	kind := "Commutator"
	if anti {
		kind = "Anti-commutator"
	}
	m := cellsToMatrix(osg.Len(), cells, fmt.Sprintf("%s matrix, level %d, word %s", kind, level, pctx.FormatSequence(word)))
	offset := s.register(m)
	s.commutatorIndices.InsertAlias(index, offset)
	s.log.Info("built commutator matrix", zapFields(level, offset, m.Dim)...)
	return offset, m, nil
}

// BuildExtended returns the extended moment matrix at the given level
// (spec §4.8): the base moment matrix plus one additional row/column per
// symbol the inflation Suggester proposes. It requires ctx to be an
// *inflation.Context. When the suggester proposes nothing, the base
// moment matrix itself is registered under InflationExtendedMatrixIndex
// as well (spec §4.7's InsertAlias example generalized to this index
// kind).
func (s *System) BuildExtended(level int) (int, *Matrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflation == nil {
		return 0, nil, momenterr.BadInput("extended matrix requires an inflation context")
	}

	baseOffset, base, err := s.createMoment(MomentMatrixIndex{Level: level})
	if err != nil {
		return 0, nil, err
	}

	suggestions := s.inflation.suggester.Suggest(base.Symbols())
	index := InflationExtendedMatrixIndex{Level: level, Extension: extensionKey(suggestions)}
	if offset, err := s.extendedIndices.Get(index); err == nil {
		m, _ := s.matrixAtLocked(offset)
		return offset, m, nil
	}
	if len(suggestions) == 0 {
		s.extendedIndices.InsertAlias(index, baseOffset)
		return baseOffset, base, nil
	}

	// Column c's generator symbol is exactly base.Cells[0][c], since row
	// 0 of a moment matrix is g_0* . g_c with g_0 the identity.
	columnFactors := make([][]int, base.Dim)
	for c := 0; c < base.Dim; c++ {
		columnFactors[c] = s.factorsOf(base.Cells[0][c].Symbol)
	}
	extFactors := make([][]int, len(suggestions))
	for k, sym := range suggestions {
		extFactors[k] = s.factorsOf(sym)
	}

	newDim := base.Dim + len(suggestions)
	cells := make([][]worker.Cell, newDim)
	for r := range cells {
		cells[r] = make([]worker.Cell, newDim)
	}
	for r := 0; r < base.Dim; r++ {
		copy(cells[r][:base.Dim], base.Cells[r])
	}

	// The column-mod worker partitioning spec §4.8 describes assumes a
	// mutex-protected overlay so concurrent workers can each discover
	// and register new factor-table entries safely. FactorTable (unlike
	// symboltab.Table) carries no internal synchronization of its own,
	// so resolving combined symbols here stays single-threaded rather
	// than reintroducing that overlay for a handful of extension
	// columns; BuildSquare's column-striping is still exercised, just
	// for the far larger base moment matrix this extends.
	for k := range suggestions {
		col := base.Dim + k
		for r := 0; r < base.Dim; r++ {
			combined := inflation.CombineSymbolicFactors(columnFactors[r], extFactors[k])
			cell, err := s.resolveCombinedSymbol(combined)
			if err != nil {
				return 0, nil, err
			}
			cells[r][col] = cell
			cells[col][r] = cell
		}
		for k2 := k; k2 < len(suggestions); k2++ {
			combined := inflation.CombineSymbolicFactors(extFactors[k], extFactors[k2])
			cell, err := s.resolveCombinedSymbol(combined)
			if err != nil {
				return 0, nil, err
			}
			cells[col][base.Dim+k2] = cell
			cells[base.Dim+k2][col] = cell
		}
	}

	m := cellsToMatrix(newDim, cells, fmt.Sprintf("Extended moment matrix, level %d, +%d symbols", level, len(suggestions)))
	offset := s.register(m)
	s.extendedIndices.InsertAlias(index, offset)
	s.log.Info("built extended matrix", zapFields(level, offset, m.Dim)...)
	return offset, m, nil
}

// registerFactors records a FactorTable entry for every distinct symbol
// appearing in m that the table does not already track, splitting each
// symbol's underlying sequence into its maximal source-disjoint
// components via inflation.Context.Factorize (spec §4.5(c)) and interning
// each component as its own symbol. Called from createMoment and
// createLocalizing so the factor table is already populated by the time
// BuildExtended's suggester runs, rather than the reverse (spec §4.8): a
// no-op outside an inflation scenario.
func (s *System) registerFactors(m *Matrix) {
	ictx, ok := s.ctx.(*inflation.Context)
	if !ok || s.inflation == nil {
		return
	}
	for _, symID := range m.Symbols() {
		if _, ok := s.inflation.factors.FindBySymbol(symID); ok {
			continue
		}
		sym, ok := s.symbols.At(symID)
		if !ok {
			continue
		}
		parts := ictx.Factorize(sym.Sequence)
		if len(parts) <= 1 {
			s.inflation.factors.RegisterNew(symID, []int{symID})
			continue
		}
		factorIDs := make([]int, len(parts))
		for i, part := range parts {
			id, _, _ := s.symbols.Intern(part)
			factorIDs[i] = id
		}
		s.inflation.factors.RegisterNew(symID, factorIDs)
	}
}

// factorsOf returns symbol's canonical factor list, defaulting to the
// singleton [symbol] for anything registerFactors has not already
// recorded (defensive only: every matrix-born symbol is registered by
// registerFactors before BuildExtended can reach this method).
func (s *System) factorsOf(symbol int) []int {
	if entry, ok := s.inflation.factors.FindBySymbol(symbol); ok {
		return entry.CanonicalFactors
	}
	return []int{symbol}
}

// resolveCombinedSymbol resolves the product of the given factor symbols'
// underlying sequences through the context, interning the result and
// recording its factorization (spec §4.8 step 2's "resolves it to a
// symbol ID"), returning a full Cell -- not just the bare symbol ID -- so
// the product's phase (e.g. Pauli factors combining to a nontrivial ±1/±i
// coefficient) and conjugation are preserved rather than discarded.
func (s *System) resolveCombinedSymbol(factors []int) (worker.Cell, error) {
	seq := sequence.Identity()
	for _, f := range factors {
		sub, ok := s.symbols.At(f)
		if !ok {
			return worker.Cell{}, momenterr.NotFound("no symbol registered with id %d", f)
		}
		next, err := s.ctx.Multiply(seq, sub.Sequence)
		if err != nil {
			return worker.Cell{}, err
		}
		seq = next
	}
	seq = s.ctx.SimplifyAsMoment(seq)
	if seq.IsZero() {
		return worker.Cell{Zero: true}, nil
	}
	id, conjugated, _ := s.symbols.Intern(seq)
	if _, ok := s.inflation.factors.FindBySymbol(id); !ok {
		s.inflation.factors.RegisterNew(id, factors)
	}
	return worker.Cell{Symbol: id, Conjugated: conjugated, Coefficient: seq.Sign().Complex128()}, nil
}

// extensionKey renders a suggestion list as a stable map key.
func extensionKey(suggestions []int) string {
	out := make([]byte, 0, len(suggestions)*4)
	for i, s := range suggestions {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, []byte(fmt.Sprintf("%d", s))...)
	}
	return string(out)
}
