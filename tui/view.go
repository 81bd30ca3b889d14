// ABOUTME: Rendering for the visual mode
// ABOUTME: Parameter panel, best-program viewport, status bar, and help line

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	selectedParamStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15")).
				Bold(true)

	paramStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	programStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// View renders the whole screen.
func (m model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("bfintern — Brainfuck Intern"))
	b.WriteString("\n\n")

	left := m.renderParams()
	right := m.renderProgram()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", panelPadding), right))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select · ←/→ adjust · r reset · s save · q quit"))

	return b.String()
}

// renderParams renders the left panel with the live-tunable rates.
func (m model) renderParams() string {
	var b strings.Builder

	b.WriteString(panelTitleStyle.Render("Parameters"))
	b.WriteString("\n")

	cfg := m.deps.Config.Get()

	for i, p := range m.params {
		line := fmt.Sprintf(" %-12s %5.2f ", p.Name, p.Get(cfg))

		if i == m.selectedParam {
			line = selectedParamStyle.Render("▸" + line)
		} else {
			line = paramStyle.Render(" " + line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(paramStyle.Render(fmt.Sprintf("  population   %d", cfg.PopulationSize)))
	b.WriteString("\n")
	b.WriteString(paramStyle.Render(fmt.Sprintf("  max length   %d", cfg.MaxProgramSize)))

	return lipgloss.NewStyle().Width(paramPanelWidth).Render(b.String())
}

// renderProgram renders the best-program viewport.
func (m model) renderProgram() string {
	var b strings.Builder

	title := "Best program"
	if m.haveBest {
		title = fmt.Sprintf("Best program (fitness %d, %d bytes)", m.bestFitness, len(m.bestProgram))
	}

	b.WriteString(panelTitleStyle.Render(title))
	b.WriteString("\n")

	if m.haveBest {
		b.WriteString(programStyle.Render(m.viewport.View()))
	} else {
		b.WriteString(paramStyle.Render("waiting for first improvement..."))
	}

	return b.String()
}

// renderStatusBar renders the bottom status line.
func (m model) renderStatusBar() string {
	if m.statusMsg != "" {
		return statusBarStyle.Render(m.statusMsg)
	}

	stage := "1 (find)"
	if m.stage == 2 {
		stage = "2 (optimize)"
	}

	elapsed := time.Since(m.startTime).Round(time.Second)

	return statusBarStyle.Render(fmt.Sprintf(
		"stage %s · gen %d · fitness %s · %.1f gen/s · %d programs · %s",
		stage, m.generation, m.fitnessText(), m.genPerSec, m.executed, elapsed,
	))
}

// fitnessText renders the best fitness, or a placeholder before the
// first improvement.
func (m model) fitnessText() string {
	if !m.haveBest {
		return "-"
	}

	return fmt.Sprintf("%d", m.bestFitness)
}

// wrapProgram hard-wraps BF source to the viewport width.
func wrapProgram(prog string, width int) string {
	if width <= 0 || len(prog) <= width {
		return prog
	}

	var b strings.Builder
	for len(prog) > width {
		b.WriteString(prog[:width])
		b.WriteByte('\n')
		prog = prog[width:]
	}
	b.WriteString(prog)

	return b.String()
}
