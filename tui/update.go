// ABOUTME: Bubble Tea update loop for the visual mode
// ABOUTME: Key handling, evolver frames, config reload, and viewport sizing

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"bfintern/config"
)

// Update handles all incoming messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.ready = true

		return m, nil

	case updateMsg:
		m.applyUpdate(Update(msg))
		return m, waitForUpdate(m.deps.Updates)

	case fileChangeMsg:
		return m, tea.Batch(reloadConfig(m.deps.ConfigPath), waitForFileChange(m.watcher))

	case configLoadedMsg:
		if msg.err != nil {
			return m, m.setStatus("Config reload failed: %v", msg.err)
		}

		// Only the live-tunable rates follow the file; population shape
		// stays fixed for the run.
		cfg := m.deps.Config.Get()
		cfg.Elitism = msg.cfg.Elitism
		cfg.Crossover = msg.cfg.Crossover
		cfg.Mutation = msg.cfg.Mutation
		m.deps.Config.Update(cfg)

		return m, m.setStatus("Config reloaded from %s", m.deps.ConfigPath)

	case statusExpiredMsg:
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKey processes one key press.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		if m.deps.RequestStop != nil {
			m.deps.RequestStop()
		}

		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.selectedParam > 0 {
			m.selectedParam--
		}

		return m, nil

	case key.Matches(msg, keys.Down):
		if m.selectedParam < len(m.params)-1 {
			m.selectedParam++
		}

		return m, nil

	case key.Matches(msg, keys.Left):
		return m, m.adjustSelected(-1)

	case key.Matches(msg, keys.Right):
		return m, m.adjustSelected(+1)

	case key.Matches(msg, keys.Reset):
		cfg := m.deps.Config.Get()
		defaults := config.Default()
		cfg.Elitism = defaults.Elitism
		cfg.Crossover = defaults.Crossover
		cfg.Mutation = defaults.Mutation
		m.deps.Config.Update(cfg)

		return m, m.setStatus("Rates reset to defaults")

	case key.Matches(msg, keys.Save):
		cfg := m.deps.Config.Get()
		if err := config.Save(m.deps.ConfigPath, cfg); err != nil {
			return m, m.setStatus("Save failed: %v", err)
		}

		return m, m.setStatus("Config saved to %s", m.deps.ConfigPath)
	}

	// Remaining keys scroll the program viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// adjustSelected steps the selected parameter and writes it through the
// shared config.
func (m *model) adjustSelected(delta int) tea.Cmd {
	p := m.params[m.selectedParam]

	cfg := m.deps.Config.Get()
	v := adjust(p, &cfg, delta)
	m.deps.Config.Update(cfg)

	return m.setStatus("%s = %.2f", p.Name, v)
}

// applyUpdate folds one evolver frame into the model.
func (m *model) applyUpdate(u Update) {
	if u.Generation > 0 || u.Improved {
		m.generation = u.Generation
	}

	if u.GenPerSec > 0 {
		m.genPerSec = u.GenPerSec
	}

	if u.Executed > 0 {
		m.executed = u.Executed
	}

	if u.Improved {
		m.stage = u.Stage
		m.bestFitness = u.Fitness
		m.bestProgram = u.Program
		m.haveBest = true

		if m.ready {
			m.viewport.SetContent(wrapProgram(m.bestProgram, m.viewport.Width))
		}
	}
}

// resizeViewport recomputes the program viewport dimensions.
func (m *model) resizeViewport() {
	w := m.width - paramPanelWidth - panelPadding
	if w < minViewportWidth {
		w = minViewportWidth
	}

	h := m.height - totalUIChrome
	if h < minViewportHeight {
		h = minViewportHeight
	}

	if m.viewport.Width == 0 && m.viewport.Height == 0 {
		m.viewport = viewport.New(w, h)
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}

	if m.haveBest {
		m.viewport.SetContent(wrapProgram(m.bestProgram, w))
	}
}
