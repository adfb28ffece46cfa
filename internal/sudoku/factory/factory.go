// Package factory implements spec.md §4.7's Factory (component G): a
// parallel puzzle generator that amortizes setup by precomputing a pool of
// solved Grids, then runs independent worker goroutines that each remove
// cells in a random order and test the requested layer predicate after
// every removal, streaming accepted (or absent) attempts back to the
// caller.
//
// Grounded on the teacher's cmd/generate/main.go worker-pool/progress-ticker
// shape (worker goroutines draining a shared work channel, atomic progress
// counter) and on the distilled original's
// packages/core/src/core/factories/sudoku_factory.py (solved-grid pool,
// per-attempt shuffle-and-remove loop, the three layer predicates in
// enums/sudoku_simplified_candidate_type.py). Attempt correlation uses
// google/uuid the same way leanlp-BTC-coinjoin and pflow-xyz-go-pflow use it
// for request/session IDs.
package factory

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"sudoku-core/internal/core"
	"sudoku-core/internal/sudoku"
	"sudoku-core/internal/sudoku/grid"
	"sudoku-core/internal/sudoku/solver"
)

// Layer selects which of the three generator-facing predicates an attempt
// must satisfy, per spec.md §4.7.
type Layer int

const (
	// NakedSingleTarget requires removed cells ≥ ⌈α·N²⌉, no Hidden-Single
	// candidates, and at least one Naked-Single candidate.
	NakedSingleTarget Layer = iota
	// HiddenSingleTarget requires no Naked-Single candidates and at least
	// one Hidden-Single candidate.
	HiddenSingleTarget
	// ConsensusTarget requires no Naked-Single and no Hidden-Single
	// candidates, and at least one Consensus candidate.
	ConsensusTarget
)

func (l Layer) String() string {
	switch l {
	case NakedSingleTarget:
		return core.Layer0NakedSingle.String()
	case HiddenSingleTarget:
		return core.Layer0HiddenSingle.String()
	case ConsensusTarget:
		return core.Layer1Consensus.String()
	default:
		return "UNKNOWN_TARGET"
	}
}

// Result is one element of generate's lazy sequence: either an accepted
// Grid (Found true) or an absent attempt (Found false) — spec.md §4.7's
// "each element is either a Grid meeting the requested layer criterion or
// absent."
type Result struct {
	AttemptID    uuid.UUID
	Found        bool
	Grid         grid.Grid
	RemovedCells int
}

// Factory holds the precomputed pool of solved Grids spec.md §4.7 says is
// computed once, amortized across every subsequent attempt.
type Factory struct {
	side     int
	pool     []grid.Grid
	workers  int
	minRatio float64
}

// New builds a Factory for side-N grids: maxSolutions bounds the solved-grid
// pool size (via Solver, component B), workerCount sets parallelism (≤0
// falls back to hardware parallelism, spec.md §6's documented default), and
// nakedSingleMinRatio is α for NakedSingleTarget (≤0 falls back to
// constants.DefaultNakedSingleMinRatio).
func New(side, maxSolutions, workerCount int, nakedSingleMinRatio float64) (*Factory, error) {
	empty := make([][]int, side)
	for i := range empty {
		empty[i] = make([]int, side)
	}
	base, err := grid.FromRows(empty)
	if err != nil {
		return nil, err
	}

	poolCap := maxSolutions
	if poolCap <= 0 {
		poolCap = 1
	}
	pool, err := solver.Solve(base, poolCap)
	if err != nil {
		return nil, err
	}

	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	if nakedSingleMinRatio <= 0 {
		nakedSingleMinRatio = 0.25
	}

	return &Factory{side: side, pool: pool, workers: workerCount, minRatio: nakedSingleMinRatio}, nil
}

// Generate runs targetCount×maxAttempts independent attempts across the
// Factory's worker pool and streams every Result — accepted or absent — in
// completion order over the returned channel, per spec.md §4.7/§5.
// Cancelling ctx stops dispatching new attempts and discards in-flight
// workers' partial results (spec.md §5's cooperative cancellation).
func (f *Factory) Generate(ctx context.Context, layer Layer, targetCount, maxAttempts int) <-chan Result {
	total := targetCount * maxAttempts
	out := make(chan Result)

	go func() {
		defer close(out)
		if len(f.pool) == 0 || total <= 0 {
			return
		}

		work := make(chan struct{}, total)
		for i := 0; i < total; i++ {
			work <- struct{}{}
		}
		close(work)

		var wg sync.WaitGroup
		for w := 0; w < f.workers; w++ {
			wg.Add(1)
			go func(workerSeed int64) {
				defer wg.Done()
				rng := rand.New(rand.NewSource(workerSeed))
				for range work {
					select {
					case <-ctx.Done():
						return
					default:
					}
					result := f.attempt(rng, layer)
					select {
					case out <- result:
					case <-ctx.Done():
						return
					}
				}
			}(int64(w) + 1)
		}
		wg.Wait()
	}()

	return out
}

// attempt runs one shuffle-and-remove trial: pick a random pool Grid, carve
// cells off in random order, testing the layer predicate after each
// removal, per spec.md §4.7 steps 1-3.
func (f *Factory) attempt(rng *rand.Rand, layer Layer) Result {
	id := uuid.New()
	source := f.pool[rng.Intn(len(f.pool))]

	side := f.side
	area := side * side
	positions := make([]core.CellRef, 0, area)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			positions = append(positions, core.CellRef{Row: i, Col: j})
		}
	}
	rng.Shuffle(len(positions), func(a, b int) {
		positions[a], positions[b] = positions[b], positions[a]
	})

	g := source
	removed := 0
	for _, p := range positions {
		g = g.With(p.Row, p.Col, 0)
		removed++

		if f.satisfies(g, layer, removed) {
			return Result{AttemptID: id, Found: true, Grid: g, RemovedCells: removed}
		}
	}

	return Result{AttemptID: id, Found: false, RemovedCells: removed}
}

// satisfies evaluates the layer predicate from spec.md §4.7 against g after
// removed cells have been cleared.
func (f *Factory) satisfies(g grid.Grid, layer Layer, removed int) bool {
	switch layer {
	case NakedSingleTarget:
		minRemoved := int(math.Ceil(f.minRatio * float64(g.Area())))
		return removed >= minRemoved && !sudoku.HasHiddenSingle(g) && sudoku.HasNakedSingle(g)
	case HiddenSingleTarget:
		return !sudoku.HasNakedSingle(g) && sudoku.HasHiddenSingle(g)
	case ConsensusTarget:
		return !sudoku.HasNakedSingle(g) && !sudoku.HasHiddenSingle(g) && sudoku.HasConsensus(g)
	default:
		return false
	}
}

