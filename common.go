// ABOUTME: Shared glue for all modes: run options, timestamped logging, debug log
// ABOUTME: Mirrors the tool's historical bracketed log line format

package main

import (
	"fmt"
	"log"
	"os"
	"time"
)

// RunOptions carries command-line options shared by CLI and visual modes.
type RunOptions struct {
	Seed       uint32
	ConfigPath string
	DebugLog   bool
}

// logf prints one timestamped "[bfintern ...]" line. All banner,
// progress, and transition output goes through here so the stream reads
// uniformly.
func logf(format string, args ...any) {
	ts := time.Now().Format("02-01-2006 15:04:05.000")
	fmt.Printf("[bfintern %s]: %s\n", ts, fmt.Sprintf(format, args...))
}

// Debug logger - writes to file for debugging
var debugLog *log.Logger

// SetupDebugLog opens the debug log file and enables debugf output.
func SetupDebugLog(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	debugLog = log.New(f, "", log.LstdFlags|log.Lmicroseconds)

	return nil
}

// debugf logs to the debug file when enabled, otherwise does nothing.
func debugf(format string, args ...any) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}
