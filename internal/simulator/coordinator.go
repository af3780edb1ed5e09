// Package simulator runs the parallel Monte-Carlo simulation: it splits a
// total game budget across one worker per hardware thread, joins them, and
// aggregates their counters under a single commit lock.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultGames is the total game budget used when Config.Games is zero,
// matching the original tool's MAXGAMES.
const DefaultGames = 200000

const seedMixConstant = 0x9e3779b97f4a7c15

// Config describes one simulation run.
type Config struct {
	// Players is the number of players at the table, including the target.
	Players int
	// Known is the target player's known cards: hole cards first, then any
	// revealed community cards, in reveal order. Length must be in [2, 7].
	Known []int
	// Games is the total game budget. Zero means DefaultGames.
	Games int
	// Workers overrides the worker count. Zero or negative means one
	// worker per reported hardware thread.
	Workers int
	// SeedFunc derives a worker's RNG seed from its index. A nil SeedFunc
	// falls back to a wall-clock seed mixed with the worker index, so that
	// independent workers never share a seed (and never start at zero).
	SeedFunc func(worker int) uint32
}

// Result is the outcome of a completed run.
type Result struct {
	Workers  int
	Games    int
	Counters Counters
}

// Run executes the simulation described by cfg: it validates the known-card
// set, splits the game budget across workers, runs them concurrently, joins
// them, and verifies the two counter-closure invariants from the data model
// before returning.
func Run(cfg Config) (Result, error) {
	if cfg.Players < 2 {
		return Result{}, fmt.Errorf("players must be at least 2, got %d", cfg.Players)
	}
	if err := validateKnown(cfg.Known); err != nil {
		return Result{}, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	games := cfg.Games
	if games <= 0 {
		games = DefaultGames
	}
	perWorker := games / workers
	total := perWorker * workers

	seedFunc := cfg.SeedFunc
	if seedFunc == nil {
		base := uint64(time.Now().UnixNano())
		seedFunc = func(w int) uint32 { return defaultSeed(base, w) }
	}

	var mu sync.Mutex
	var shared Counters

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			wk := newWorker(cfg.Players, cfg.Known, seedFunc(w))
			local := wk.run(perWorker)

			mu.Lock()
			shared.add(&local)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	if want := int64(total); shared.OutcomeTotal() != want || shared.CategoryTotal() != want {
		return Result{}, fmt.Errorf("counter checksum failed: outcomes=%d categories=%d want=%d",
			shared.OutcomeTotal(), shared.CategoryTotal(), want)
	}

	return Result{Workers: workers, Games: total, Counters: shared}, nil
}

func validateKnown(known []int) error {
	if len(known) < 2 {
		return fmt.Errorf("at least 2 known cards (the hole cards) are required, got %d", len(known))
	}
	if len(known) > 7 {
		return fmt.Errorf("at most 7 known cards are allowed, got %d", len(known))
	}
	seen := make(map[int]bool, len(known))
	for _, c := range known {
		if seen[c] {
			return fmt.Errorf("duplicate known card %d", c)
		}
		seen[c] = true
	}
	return nil
}

// defaultSeed mixes a wall-clock base with a worker index so concurrent
// workers get distinct streams. The result can be zero; xorshift.New then
// substitutes its nonzero fallback seed.
func defaultSeed(base uint64, worker int) uint32 {
	x := base ^ (uint64(worker)*seedMixConstant + seedMixConstant)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return uint32(x)
}
