// ABOUTME: TUI dependency wiring and update frame definition
// ABOUTME: Defines what the visual mode needs from the rest of the program

// Package tui provides an interactive terminal UI for watching and
// retuning a running evolution.
package tui

import "bfintern/config"

// Update is one frame of evolver state. Improvement frames carry a new
// best program; rate frames only refresh counters.
type Update struct {
	Stage      int
	Generation uint32
	Fitness    uint32
	Program    string
	GenPerSec  float64
	Executed   uint64
	Improved   bool
}

// Dependencies holds everything the TUI needs from the caller. Keeping
// these as plain values and funcs makes the model testable without a
// running evolver.
type Dependencies struct {
	Config      *config.Shared
	Updates     <-chan Update
	RequestStop func()
	ConfigPath  string
	Debugf      func(format string, args ...any)
}
