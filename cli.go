// ABOUTME: CLI mode implementation for non-interactive program synthesis
// ABOUTME: Handles progress display, final summary, and signal handling for command-line usage

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bfintern/config"
	"bfintern/evolve"
)

// RunCLI executes a full evolution run in the terminal: startup banner,
// per-improvement progress lines, and a final summary.
func RunCLI(opts RunOptions, cfg config.Config, cases []evolve.TestCase) error {
	shared := config.NewShared(cfg)

	evolver, err := evolve.New(shared, cases, opts.Seed)
	if err != nil {
		return err
	}

	evolver.Progress = func(u evolve.Update) {
		logf("(stage %d) gen. #%d, fitness %d, %s", u.Stage, u.Generation, u.Fitness, u.Program)
	}
	evolver.Logf = logf

	logf("successfully loaded %d test case(s)", len(cases))
	logf("%s allocated", FormatBytes(evolver.ArenaBytes()))
	logf("elitism=%.2f, crossover=%.2f, mutation=%.2f", cfg.Elitism, cfg.Crossover, cfg.Mutation)
	logf("population_size=%d, max_program_size=%d, optimization_generations=%d",
		cfg.PopulationSize, cfg.MaxProgramSize, cfg.OptimizationGenerations)
	logf("random seed: %d", opts.Seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	go func() {
		<-stop
		evolver.RequestStop()
		cancel()
	}()

	startTime := time.Now()

	result, err := evolver.Run(ctx)
	if err != nil {
		return err
	}

	elapsed := time.Since(startTime)

	perSec := uint64(0)
	if secs := elapsed.Seconds(); secs > 0 {
		perSec = uint64(float64(result.Executed) / secs)
	}

	fmt.Printf("\n\nTotal runtime             : %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("BF programs executed      : %s (%s per second)\n",
		FormatCount(result.Executed), FormatCount(perSec))
	fmt.Printf("Random seed               : %d\n", opts.Seed)
	fmt.Printf("Best BF program (fitness %d, %d bytes):\n\n%s\n",
		result.Fitness, len(result.Program), result.Program)

	return nil
}
