// ABOUTME: Tunable parameter definitions for the TUI parameter panel
// ABOUTME: Accessor-based parameters with clamped stepping over the shared config

package tui

import "bfintern/config"

// Parameter is one live-tunable evolution rate with its bounds and step.
// Get and Set operate on config snapshots; the model writes the modified
// snapshot back through config.Shared.
type Parameter struct {
	Name string
	Get  func(config.Config) float64
	Set  func(*config.Config, float64)
	Min  float64
	Max  float64
	Step float64
}

// buildParams returns the panel's parameters. Only the selection and
// breeding rates are live-tunable; population shape is fixed for the
// lifetime of a run.
func buildParams() []Parameter {
	return []Parameter{
		{
			Name: "Elitism",
			Get:  func(c config.Config) float64 { return c.Elitism },
			Set:  func(c *config.Config, v float64) { c.Elitism = v },
			Min:  0.0, Max: 1.0, Step: 0.05,
		},
		{
			Name: "Crossover",
			Get:  func(c config.Config) float64 { return c.Crossover },
			Set:  func(c *config.Config, v float64) { c.Crossover = v },
			Min:  0.0, Max: 1.0, Step: 0.05,
		},
		{
			Name: "Mutation",
			Get:  func(c config.Config) float64 { return c.Mutation },
			Set:  func(c *config.Config, v float64) { c.Mutation = v },
			Min:  0.0, Max: 1.0, Step: 0.05,
		},
	}
}

// adjust applies delta steps to parameter p in cfg, clamped to its
// bounds, and returns the new value.
func adjust(p Parameter, cfg *config.Config, delta int) float64 {
	v := p.Get(*cfg) + float64(delta)*p.Step

	if v < p.Min {
		v = p.Min
	}

	if v > p.Max {
		v = p.Max
	}

	p.Set(cfg, v)

	return v
}
