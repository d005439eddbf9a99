package matsys

import (
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/moment/dictionary"
	"github.com/katalvlaran/moment/inflation"
	"github.com/katalvlaran/moment/inflation/worker"
	"github.com/katalvlaran/moment/momenterr"
	"github.com/katalvlaran/moment/opctx"
	"github.com/katalvlaran/moment/pauli"
	"github.com/katalvlaran/moment/polynomial"
	"github.com/katalvlaran/moment/sequence"
	"github.com/katalvlaran/moment/symboltab"
)

// Tolerance is the default numeric zero-pruning tolerance the System's
// PolynomialFactory is constructed with (spec §4.9).
const Tolerance = 1e-12

// DefaultWorkers is the column-partitioning width BuildMoment and
// BuildExtended use when the caller does not request a specific degree
// of parallelism.
const DefaultWorkers = 4

// System is the MatrixSystem of spec §4.7: the single owner of a
// context, a symbol table, a polynomial factory, every built matrix, and
// one MatrixIndices registry per index kind.
//
// Locking follows spec §5: one RWMutex guards the whole System. Public
// methods take the lock once for their whole operation; a factory
// invoked while the write lock is held recurses into other private
// (lock-free) build helpers rather than calling back into a public,
// locking method, giving the re-entrancy spec §4.7 requires without an
// actual re-entrant mutex.
type System struct {
	mu sync.RWMutex

	ctx     opctx.Context
	symbols *symboltab.Table
	polys   *polynomial.Factory
	dict    *dictionary.Dictionary
	workers int
	log     *zap.Logger

	matrices     []*Matrix
	polyMatrices []*PolyMatrix

	momentIndices         *MatrixIndices[MomentMatrixIndex]
	localizingIndices     *MatrixIndices[LocalizingMatrixIndex]
	nnIndices             *MatrixIndices[NearestNeighbourMatrixIndex]
	extendedIndices       *MatrixIndices[InflationExtendedMatrixIndex]
	polyLocalizingIndices *MatrixIndices[PolynomialLocalizingMatrixIndex]
	commutatorIndices     *MatrixIndices[CommutatorMatrixIndex]

	// inflation is non-nil iff ctx is an *inflation.Context, giving
	// BuildExtended access to the factor table and extension suggester
	// spec §4.8 describes without a type switch at every call site.
	inflation *inflationAux

	// nnCache is non-nil iff ctx is a *pauli.Context, owning the
	// nearest-neighbour OSG cache spec §3's "Ownership" lists among the
	// MatrixSystem's scenario-specific auxiliary tables.
	nnCache *pauli.NNCache
}

// NNCacheSize bounds the number of restricted OSGs a pauli MatrixSystem
// memoizes before evicting the least recently used.
const NNCacheSize = 64

type inflationAux struct {
	factors   *inflation.FactorTable
	suggester *inflation.Suggester
}

// New constructs an empty MatrixSystem over ctx. workers<=0 selects
// DefaultWorkers.
func New(ctx opctx.Context, workers int) *System {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	symbols := symboltab.New(ctx)
	s := &System{
		ctx:                   ctx,
		symbols:               symbols,
		polys:                 polynomial.NewFactory(symbols, Tolerance),
		dict:                  dictionary.New(generatorOf(ctx)),
		workers:               workers,
		log:                   zap.NewNop(),
		momentIndices:         NewMatrixIndices[MomentMatrixIndex](32),
		localizingIndices:     NewMatrixIndices[LocalizingMatrixIndex](32),
		nnIndices:             NewMatrixIndices[NearestNeighbourMatrixIndex](32),
		extendedIndices:       NewMatrixIndices[InflationExtendedMatrixIndex](32),
		polyLocalizingIndices: NewMatrixIndices[PolynomialLocalizingMatrixIndex](32),
		commutatorIndices:     NewMatrixIndices[CommutatorMatrixIndex](32),
	}
	if _, ok := ctx.(*inflation.Context); ok {
		factors := inflation.NewFactorTable()
		s.inflation = &inflationAux{factors: factors, suggester: inflation.NewSuggester(factors)}
	}
	if pctx, ok := ctx.(*pauli.Context); ok {
		// NewNNCache only fails on a non-positive capacity, never the
		// case here.
		cache, _ := pauli.NewNNCache(pctx, NNCacheSize)
		s.nnCache = cache
	}
	return s
}

// SetLogger replaces the System's structural logger (default: a no-op
// logger). Matrix construction logs one Info entry per factory
// invocation, at the granularity the teacher's services log request
// handling.
func (s *System) SetLogger(log *zap.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = log
}

// Context returns the owned context.
func (s *System) Context() opctx.Context { return s.ctx }

// Symbols returns the owned symbol table.
func (s *System) Symbols() *symboltab.Table { return s.symbols }

// Polynomials returns the owned polynomial factory.
func (s *System) Polynomials() *polynomial.Factory { return s.polys }

// MatrixCount returns the number of matrices registered so far.
func (s *System) MatrixCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matrices)
}

// MatrixAt returns the matrix at the given offset (as returned by a
// Build* method or a MatrixIndices lookup).
func (s *System) MatrixAt(offset int) (*Matrix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if offset < 0 || offset >= len(s.matrices) {
		return nil, momenterr.NotFound("no matrix at offset %d", offset)
	}
	return s.matrices[offset], nil
}

// register appends m to the matrix vector and returns its offset.
// Callers must hold s.mu for writing.
func (s *System) register(m *Matrix) int {
	s.matrices = append(s.matrices, m)
	return len(s.matrices) - 1
}

// generatorOf adapts ctx to dictionary.Generator. Every Context already
// satisfies the interface structurally; this exists only to make the
// dependency explicit at the call site.
func generatorOf(ctx opctx.Context) dictionary.Generator { return ctx }

// matrixAtLocked is MatrixAt without its own locking, for use by
// factories that already hold s.mu.
func (s *System) matrixAtLocked(offset int) (*Matrix, error) {
	if offset < 0 || offset >= len(s.matrices) {
		return nil, momenterr.NotFound("no matrix at offset %d", offset)
	}
	return s.matrices[offset], nil
}

// dictionaryLike is the minimal read interface wordGenerator needs from
// a word-indexed sequence list: dictionary.OSG satisfies it directly,
// and the nearest-neighbour factory's fixedOSG satisfies it without
// going through dictionary's own construction path.
type dictionaryLike interface {
	At(i int) sequence.OperatorSequence
	Len() int
}

// zapFields builds the common (level, offset, dim) field triple every
// Build* factory logs on success.
func zapFields(level, offset, dim int) []zap.Field {
	return []zap.Field{
		zap.Int("level", level),
		zap.Int("offset", offset),
		zap.Int("dim", dim),
	}
}

// wordGenerator returns a worker.RowColGenerator computing g_i* . word . g_j
// for the dictionary words in osg (word may be the identity for a plain
// moment matrix).
func wordGenerator(ctx opctx.Context, osg dictionaryLike, word sequence.OperatorSequence) worker.RowColGenerator {
	return func(row, col int) (sequence.OperatorSequence, error) {
		left := ctx.Conjugate(osg.At(row))
		mid, err := ctx.Multiply(left, word)
		if err != nil {
			return sequence.OperatorSequence{}, err
		}
		full, err := ctx.Multiply(mid, osg.At(col))
		if err != nil {
			return sequence.OperatorSequence{}, err
		}
		return ctx.SimplifyAsMoment(full), nil
	}
}

// commutatorPrefactor is the fixed scalar every commutator/anticommutator
// matrix cell carries in addition to its algebraic sign (spec §1(e),
// ported from commutator_matrix.h's determine_prefactor), applied after
// worker.BuildSquare since OperatorSequence's sign tag itself can only
// represent the 4-element {+1,+i,-1,-i} group.
const commutatorPrefactor = complex(2, 0)

// commutatorGenerator returns a worker.RowColGenerator computing
// [gi* . gj, word] (or the anticommutator, when anti is set) for the
// dictionary words in osg (spec §1(e), §4.6).
func commutatorGenerator(ctx *pauli.Context, osg dictionaryLike, word sequence.OperatorSequence, anti bool) worker.RowColGenerator {
	return func(row, col int) (sequence.OperatorSequence, error) {
		left := ctx.Conjugate(osg.At(row))
		mid, err := ctx.Multiply(left, osg.At(col))
		if err != nil {
			return sequence.OperatorSequence{}, err
		}
		var result sequence.OperatorSequence
		if anti {
			result, err = ctx.AntiCommutator(mid, word)
		} else {
			result, err = ctx.Commutator(mid, word)
		}
		if err != nil {
			return sequence.OperatorSequence{}, err
		}
		if result.IsZero() {
			return result, nil
		}
		return ctx.SimplifyAsMoment(result), nil
	}
}
