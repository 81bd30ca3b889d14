// ABOUTME: Visual mode glue wiring the evolver to the TUI
// ABOUTME: Converts evolver progress into TUI updates and tracks the generation rate

package main

import (
	"context"
	"fmt"
	"time"

	"bfintern/config"
	"bfintern/evolve"
	"bfintern/tui"
)

// rateTickInterval is the interval for pushing generation-rate frames to the TUI.
const rateTickInterval = 500 * time.Millisecond

// RunVisual executes a run under the interactive TUI. The evolver runs
// in its own goroutine; improvement records and periodic rate frames are
// funneled into the TUI's update channel.
func RunVisual(opts RunOptions, cfg config.Config, cases []evolve.TestCase) error {
	shared := config.NewShared(cfg)

	evolver, err := evolve.New(shared, cases, opts.Seed)
	if err != nil {
		return err
	}

	updates := make(chan tui.Update, 16)

	evolver.Progress = func(u evolve.Update) {
		push(updates, tui.Update{
			Stage:      u.Stage,
			Generation: u.Generation,
			Fitness:    u.Fitness,
			Program:    u.Program,
			Improved:   true,
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan evolve.Result, 1)

	go func() {
		result, runErr := evolver.Run(ctx)
		if runErr != nil {
			debugf("[VISUAL] evolver error: %v", runErr)
		}
		done <- result
	}()

	// Rate frames let the TUI show progress between improvements.
	go func() {
		ticker := time.NewTicker(rateTickInterval)
		defer ticker.Stop()

		lastGen := uint32(0)
		lastTime := time.Now()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				gen := evolver.Generation()
				elapsed := now.Sub(lastTime).Seconds()

				genPerSec := 0.0
				if elapsed > 0 {
					genPerSec = float64(gen-lastGen) / elapsed
				}

				push(updates, tui.Update{
					Generation: gen,
					GenPerSec:  genPerSec,
					Executed:   uint64(gen) * uint64(cfg.PopulationSize),
				})

				lastGen = gen
				lastTime = now
			}
		}
	}()

	deps := tui.Dependencies{
		Config:      shared,
		Updates:     updates,
		RequestStop: evolver.RequestStop,
		ConfigPath:  opts.ConfigPath,
		Debugf:      debugf,
	}

	if err := tui.Run(deps); err != nil {
		evolver.RequestStop()
		cancel()
		<-done

		return fmt.Errorf("visual mode error: %w", err)
	}

	// TUI exited; let the evolver finish its generation and report.
	evolver.RequestStop()
	cancel()
	result := <-done

	fmt.Printf("\nBest BF program (fitness %d, %d bytes):\n\n%s\n",
		result.Fitness, len(result.Program), result.Program)

	return nil
}

// push delivers an update without blocking; the TUI drops frames rather
// than stalling the evolver.
func push(ch chan<- tui.Update, u tui.Update) {
	select {
	case ch <- u:
	default:
	}
}
