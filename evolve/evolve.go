// ABOUTME: Generational evolution driver over the double-buffered arena
// ABOUTME: Elite walk plus tournament selection, two-phase find-then-shrink schedule, cooperative stop

package evolve

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"bfintern/bf"
	"bfintern/config"
	"bfintern/rng"
)

// TournamentSize is how many genomes contest one tournament pick, capped
// at the population size.
const TournamentSize = 6

// Stage identifies which phase of the schedule a progress record belongs
// to: finding a correct program, or shrinking it.
const (
	StageFind     = 1
	StageOptimize = 2
)

// Update is one progress record, emitted whenever a new all-time best
// genome appears. Records are emitted synchronously from the driver, in
// strict generation order.
type Update struct {
	Stage      int
	Generation uint32
	Fitness    uint32
	Program    string
}

// Result summarizes a finished run.
type Result struct {
	Program     string
	Fitness     uint32
	Generations uint32
	// Executed is the total number of BF programs created and executed:
	// population size times generations.
	Executed uint64
}

// Evolver runs the generational loop. The loop itself is strictly
// single-threaded; the only cross-goroutine state is the stop flag and
// the published generation counter.
type Evolver struct {
	shared *config.Shared
	cases  []TestCase
	rng    *rng.PCG32
	arena  *arena
	eval   *evaluator
	mut    mutator

	popSize        int
	maxLen         int
	optGens        int
	quiet          bool
	penalizeLength bool
	optimizing     bool

	generation atomic.Uint32
	stop       atomic.Bool

	// Progress, when set, receives one record per new all-time best.
	Progress func(Update)

	// Logf, when set, receives schedule transition messages.
	Logf func(format string, args ...any)
}

// New builds an evolver for the given test cases. Structural parameters
// (population size, max program size, optimization generations, quiet)
// are fixed from the snapshot at construction; the rates are re-read
// from shared every generation so they can be tuned live.
func New(shared *config.Shared, cases []TestCase, seed uint32) (*Evolver, error) {
	cfg := shared.Get()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(cases) == 0 {
		return nil, fmt.Errorf("at least one test case is required")
	}

	r := rng.New(seed)

	e := &Evolver{
		shared:  shared,
		cases:   cases,
		rng:     r,
		arena:   newArena(cfg.PopulationSize, cfg.MaxProgramSize),
		eval:    newEvaluator(cases),
		mut:     mutator{rng: r, maxLen: cfg.MaxProgramSize},
		popSize: cfg.PopulationSize,
		maxLen:  cfg.MaxProgramSize,
		optGens: cfg.OptimizationGenerations,
		quiet:   cfg.Quiet,
	}

	return e, nil
}

// ArenaBytes reports the approximate arena allocation, for the startup
// banner.
func (e *Evolver) ArenaBytes() uint64 {
	slot := uint64(e.maxLen + 1)
	return slot * uint64(e.popSize*2+1)
}

// Generation returns the number of completed generations. Safe to call
// from other goroutines while the run is in flight.
func (e *Evolver) Generation() uint32 {
	return e.generation.Load()
}

// RequestStop asks the run to end after the current generation.
// Idempotent and safe from any goroutine.
func (e *Evolver) RequestStop() {
	e.stop.Store(true)
}

// Run evolves until a stop is requested, ctx is cancelled, or the
// schedule completes. A cancellation observed mid-generation finishes
// that generation first.
func (e *Evolver) Run(ctx context.Context) (Result, error) {
	// Initial population: random programs, scored and sorted.
	for i := 0; i < e.popSize; i++ {
		g := e.arena.Active(i)
		if err := e.randomize(g); err != nil {
			return Result{}, err
		}
	}

	e.arena.SortActive()
	e.arena.Best().fitness = math.MaxUint32

	optGenCount := 0

	for !e.stop.Load() {
		select {
		case <-ctx.Done():
			e.stop.Store(true)
			continue
		default:
		}

		cfg := e.shared.Get()

		if err := e.evolveOnce(cfg); err != nil {
			return Result{}, err
		}

		e.arena.Swap()
		e.arena.SortActive()

		best := e.arena.Best()
		if top := e.arena.Active(0); top.fitness < best.fitness {
			best.copyFrom(top)

			if !e.quiet && e.Progress != nil {
				e.Progress(Update{
					Stage:      e.stage(),
					Generation: e.generation.Load(),
					Fitness:    best.fitness,
					Program:    best.Text(),
				})
			}
		}

		e.generation.Add(1)

		if best.fitness == 0 && !e.optimizing {
			if e.optGens == 0 {
				e.stop.Store(true)
				continue
			}

			e.startOptimizing()
		} else if e.optimizing {
			if e.optGens > 0 {
				optGenCount++
				if optGenCount >= e.optGens {
					e.stop.Store(true)
				}
			}
		}
	}

	best := e.arena.Best()
	gens := e.generation.Load()

	return Result{
		Program:     best.Text(),
		Fitness:     best.fitness,
		Generations: gens,
		Executed:    uint64(e.popSize) * uint64(gens),
	}, nil
}

// stage reports the current schedule phase for progress records.
func (e *Evolver) stage() int {
	if e.optimizing {
		return StageOptimize
	}
	return StageFind
}

// evolveOnce fills the next buffer from the active one: the elite walk
// breeds or copies pairs, the remainder of the active population is
// carried over, and any still-empty slots get fresh random genomes.
func (e *Evolver) evolveOnce(cfg config.Config) error {
	eliteBorder := int(float64(e.popSize) * cfg.Elitism)

	nextPos := 0
	activePos := 0

	for ; activePos < eliteBorder; activePos++ {
		if nextPos >= e.popSize-1 {
			break
		}

		// One parent by rank, one by tournament; redraw until distinct.
		curr1 := e.arena.Active(activePos)
		curr2Idx := activePos
		for curr2Idx == activePos {
			curr2Idx = e.tournament()
		}
		curr2 := e.arena.Active(curr2Idx)

		next1 := e.arena.Next(nextPos)
		nextPos++
		next2 := e.arena.Next(nextPos)
		nextPos++

		changed := false

		// The rank-0 parent always breeds.
		if e.rng.Unit() <= cfg.Crossover || activePos == 0 {
			if err := breed(e.rng, curr1, curr2, next1, next2, e.maxLen); err != nil {
				return err
			}
			changed = true
		} else {
			next1.copyFrom(curr1)
			next2.copyFrom(curr2)
		}

		if e.rng.Unit() <= cfg.Mutation {
			e.mut.mutate(next1)
			e.mut.mutate(next2)
			changed = true
		}

		if changed {
			next1.fitness = e.eval.score(next1, e.penalizeLength)
			next2.fitness = e.eval.score(next2, e.penalizeLength)
		}
	}

	// Carry the rest of the active population across as-is, with a
	// mutation chance per genome.
	if nextPos < e.popSize {
		copyCount := min(e.popSize-nextPos, e.popSize-activePos)

		for i := activePos; i < activePos+copyCount; i++ {
			dst := e.arena.Next(nextPos)
			nextPos++
			dst.copyFrom(e.arena.Active(i))

			if e.rng.Unit() <= cfg.Mutation {
				e.mut.mutate(dst)
				dst.fitness = e.eval.score(dst, e.penalizeLength)
			}
		}

		// Top up with fresh random genomes.
		for nextPos < e.popSize {
			if err := e.randomize(e.arena.Next(nextPos)); err != nil {
				return err
			}
			nextPos++
		}
	}

	return nil
}

// tournament samples min(TournamentSize, population) indices with
// replacement from the active buffer and returns the fittest, first
// seen winning ties.
func (e *Evolver) tournament() int {
	k := min(TournamentSize, e.popSize)

	bestIdx := e.rng.IntRange(0, e.popSize-1)
	bestFitness := e.arena.Active(bestIdx).fitness

	for i := 1; i < k; i++ {
		idx := e.rng.IntRange(0, e.popSize-1)
		if f := e.arena.Active(idx).fitness; f < bestFitness {
			bestIdx = idx
			bestFitness = f
		}
	}

	return bestIdx
}

// randomize fills g with a fresh random program and scores it.
func (e *Evolver) randomize(g *Genome) error {
	g.text = g.text[:e.maxLen]

	n, err := bf.RandSyms(g.text, MinProgram, e.maxLen, e.rng)
	if err != nil {
		return fmt.Errorf("failed to generate random BF characters: %w", err)
	}

	g.text = g.text[:n]
	g.fitness = e.eval.score(g, e.penalizeLength)

	return nil
}

// startOptimizing switches the schedule into the shrink phase: every
// genome is re-scored with the length penalty and the best slot is
// re-seeded from the re-sorted population.
func (e *Evolver) startOptimizing() {
	if !e.quiet && e.Logf != nil {
		e.Logf("start optimizing for length")
	}

	e.penalizeLength = true
	e.optimizing = true

	for i := 0; i < e.popSize; i++ {
		g := e.arena.Active(i)
		g.fitness = e.eval.score(g, true)
	}

	best := e.arena.Best()
	best.fitness = e.eval.score(best, true)

	e.arena.SortActive()
	best.copyFrom(e.arena.Active(0))
}
