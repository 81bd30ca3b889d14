// ABOUTME: Entry point for bfintern, a genetic Brainfuck program synthesizer
// ABOUTME: Handles command-line parsing, profiling, and routing to CLI or visual mode

// Package main provides the entry point for bfintern, which breeds
// Brainfuck programs matching user-supplied test cases.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"bfintern/config"
	"bfintern/evolve"
)

func main() {
	os.Exit(run())
}

func usage() {
	fmt.Fprintf(os.Stderr, `
Brainfuck Intern

Uses a genetic algorithm to mutate strings of random Brainfuck characters
until they match a set of user-provided test cases.

Press Ctrl-C at any time to display the current best Brainfuck program
and terminate.

Usage: %s [OPTIONS] <TESTCASE> [<TESTCASE>, ...]

POSITIONAL ARGUMENTS:

One or more test cases, where each test case consists of two ASCII
strings separated by a colon ':'. The left side is passed as input to
the Brainfuck program under test, and the right side is the output the
program must produce for the test case to pass. A test case without a
colon is an expected output with no input.

OPTIONS:

`, os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
EXAMPLES:

Produce a program that prints "Hello, world!":

    %[1]s "Hello, world!"

Produce a program that prints "true" when the input is "1", and "false"
when the input is "0":

    %[1]s "0:false" "1:true"
`, os.Args[0])
}

func run() int {
	defaults := config.Default()

	elitism := flag.Float64("e", defaults.Elitism, "fraction of the population selected for breeding & mutation each generation (0.0 to 1.0)")
	crossover := flag.Float64("c", defaults.Crossover, "fraction of selected programs bred with other randomly selected programs (0.0 to 1.0)")
	mutation := flag.Float64("m", defaults.Mutation, "fraction of selected programs randomly mutated (0.0 to 1.0)")
	popSize := flag.Int("s", defaults.PopulationSize, "number of Brainfuck programs in the population")
	maxLen := flag.Int("l", defaults.MaxProgramSize, "maximum size in bytes of each generated Brainfuck program")
	optGens := flag.Int("o", defaults.OptimizationGenerations, "after a correct program is found, keep evolving this many generations to shorten it (-1 to optimize indefinitely)")
	seed := flag.Uint("r", 0, "fixed seed for random number generation (default: current time in seconds)")
	quiet := flag.Bool("q", false, "do not print the fittest program at each improved generation; only print the final program")
	visual := flag.Bool("visual", false, "run in visual/interactive mode with live parameter tuning")
	configPath := flag.String("config", "", "config file path (default: ./bfintern.toml, then ~/.config/bfintern/config.toml)")
	debugFlag := flag.Bool("debug", false, "enable debug logging to bfintern-debug.log")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		return 1
	}

	path := *configPath
	if path == "" {
		path = config.Path()
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("Config error: %v", err)
		return 1
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "e":
			cfg.Elitism = *elitism
		case "c":
			cfg.Crossover = *crossover
		case "m":
			cfg.Mutation = *mutation
		case "s":
			cfg.PopulationSize = *popSize
		case "l":
			cfg.MaxProgramSize = *maxLen
		case "o":
			cfg.OptimizationGenerations = *optGens
		case "q":
			cfg.Quiet = *quiet
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid option: %v", err)
		return 1
	}

	cases, err := evolve.ParseTestCases(flag.Args())
	if err != nil {
		log.Printf("Invalid test case: %v", err)
		return 1
	}

	seedVal := uint32(*seed)
	seedProvided := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "r" {
			seedProvided = true
		}
	})
	if !seedProvided {
		seedVal = uint32(time.Now().Unix())
	}

	if *cpuprofile != "" {
		stopCPUProfile := setupCPUProfile(*cpuprofile)
		defer stopCPUProfile()
	}

	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	if *debugFlag {
		if err := SetupDebugLog("bfintern-debug.log"); err != nil {
			log.Printf("Failed to setup debug log: %v", err)
			return 1
		}
	}

	opts := RunOptions{
		Seed:       seedVal,
		ConfigPath: path,
		DebugLog:   *debugFlag,
	}

	if *visual {
		if err := RunVisual(opts, cfg, cases); err != nil {
			log.Printf("Visual mode error: %v", err)
			return 1
		}

		return 0
	}

	if err := RunCLI(opts, cfg, cases); err != nil {
		log.Printf("CLI error: %v", err)
		return 1
	}

	return 0
}

// setupCPUProfile starts CPU profiling, returns cleanup function
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes memory profile to file
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)
		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
