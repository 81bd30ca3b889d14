// ABOUTME: Evolver parameter management with TOML persistence
// ABOUTME: Loading/saving config files with fallback to defaults, plus a thread-safe shared wrapper

// Package config holds the tunable evolution parameters and their TOML
// file round-trip.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// Config holds all tunable evolution parameters.
type Config struct {
	// Selection and breeding rates, all in [0.0, 1.0]
	Elitism   float64 `toml:"elitism"`
	Crossover float64 `toml:"crossover"`
	Mutation  float64 `toml:"mutation"`

	// Population shape
	PopulationSize int `toml:"population_size"`
	MaxProgramSize int `toml:"max_program_size"`

	// Generations to keep evolving for length after a correct program is
	// found; -1 optimizes indefinitely, 0 stops at the first hit
	OptimizationGenerations int `toml:"optimization_generations"`

	// Quiet suppresses per-improvement progress output
	Quiet bool `toml:"quiet"`
}

// Default returns the default configuration, matching the tool's
// historical CLI defaults.
func Default() Config {
	return Config{
		Elitism:                 0.5,
		Crossover:               0.5,
		Mutation:                1.0,
		PopulationSize:          2048,
		MaxProgramSize:          4096,
		OptimizationGenerations: 1000,
	}
}

// Validate reports the first invalid parameter, if any.
func (c Config) Validate() error {
	if c.Elitism < 0.0 || c.Elitism > 1.0 {
		return fmt.Errorf("elitism must be between 0.0 and 1.0")
	}

	if c.Crossover < 0.0 || c.Crossover > 1.0 {
		return fmt.Errorf("crossover must be between 0.0 and 1.0")
	}

	if c.Mutation < 0.0 || c.Mutation > 1.0 {
		return fmt.Errorf("mutation must be between 0.0 and 1.0")
	}

	if c.PopulationSize <= 1 {
		return fmt.Errorf("population size must be greater than 1")
	}

	if c.MaxProgramSize < 2 {
		return fmt.Errorf("max program size must be at least 2")
	}

	if c.OptimizationGenerations < -1 {
		return fmt.Errorf("optimization generations must be greater than or equal to -1")
	}

	return nil
}

// Load loads configuration from a TOML file. A missing file is not an
// error; defaults are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to a TOML file, creating directories as
// needed.
func Save(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close config file: %v\n", cerr)
		}
	}()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file path: ./bfintern.toml if present,
// otherwise ~/.config/bfintern/config.toml.
func Path() string {
	if _, err := os.Stat("./bfintern.toml"); err == nil {
		return "./bfintern.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./bfintern.toml"
	}

	return filepath.Join(home, ".config", "bfintern", "config.toml")
}

// Shared wraps a Config with a mutex so the TUI can retune rates while
// the evolver runs. The evolver snapshots it once per generation.
type Shared struct {
	mu  sync.RWMutex
	cfg Config
}

// NewShared returns a Shared seeded with cfg.
func NewShared(cfg Config) *Shared {
	return &Shared{cfg: cfg}
}

// Get returns a copy of the current config.
func (s *Shared) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg
}

// Update replaces the current config.
func (s *Shared) Update(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}
