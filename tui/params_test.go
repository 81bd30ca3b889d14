// ABOUTME: Tests for tunable parameter stepping
// ABOUTME: Clamping at bounds and write-through to config snapshots

package tui

import (
	"math"
	"testing"

	"bfintern/config"
)

const epsilon = 1e-9

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestBuildParams(t *testing.T) {
	params := buildParams()

	if len(params) != 3 {
		t.Fatalf("Expected 3 parameters, got %d", len(params))
	}

	cfg := config.Default()
	wants := map[string]float64{
		"Elitism":   cfg.Elitism,
		"Crossover": cfg.Crossover,
		"Mutation":  cfg.Mutation,
	}

	for _, p := range params {
		want, ok := wants[p.Name]
		if !ok {
			t.Errorf("Unexpected parameter %q", p.Name)
			continue
		}

		if got := p.Get(cfg); got != want {
			t.Errorf("%s = %.2f, want %.2f", p.Name, got, want)
		}
	}
}

func TestAdjustSteps(t *testing.T) {
	params := buildParams()
	cfg := config.Default()
	p := params[0] // Elitism, default 0.5, step 0.05

	v := adjust(p, &cfg, 1)
	if !closeTo(v, 0.55) {
		t.Errorf("Adjusted value = %.4f, want 0.55", v)
	}

	if !closeTo(cfg.Elitism, 0.55) {
		t.Errorf("Config not written through: %.4f", cfg.Elitism)
	}

	v = adjust(p, &cfg, -2)
	if !closeTo(v, 0.45) {
		t.Errorf("Adjusted value = %.4f, want 0.45", v)
	}
}

func TestAdjustClampsAtBounds(t *testing.T) {
	params := buildParams()
	cfg := config.Default()
	p := params[2] // Mutation, default 1.0

	if v := adjust(p, &cfg, 5); v != 1.0 {
		t.Errorf("Value above max: %.2f", v)
	}

	cfg.Mutation = 0.0
	if v := adjust(p, &cfg, -1); v != 0.0 {
		t.Errorf("Value below min: %.2f", v)
	}
}
