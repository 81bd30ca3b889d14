// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model wiring evolver updates, parameter tuning, and config file watching

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"bfintern/config"
)

// Layout constants for UI dimensions
const (
	paramPanelWidth = 34 // Left panel width for parameter controls
	panelPadding    = 2  // Horizontal spacing between panels

	// UI chrome heights (elements that reduce available viewport space)
	titleHeight     = 2
	statusBarHeight = 1
	helpHeight      = 1
	spacingHeight   = 2
	totalUIChrome   = titleHeight + statusBarHeight + helpHeight + spacingHeight

	minViewportWidth  = 20
	minViewportHeight = 5
)

const statusMessageDuration = 5 * time.Second

// keyMap defines the visual mode key bindings.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Reset key.Binding
	Save  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "prev param"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next param"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "decrease"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "increase"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset rates"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save config"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Messages
type (
	updateMsg       Update
	fileChangeMsg   struct{}
	configLoadedMsg struct {
		cfg config.Config
		err error
	}
	statusExpiredMsg struct{}
)

// model holds the TUI state.
type model struct {
	deps    Dependencies
	watcher *fsnotify.Watcher

	// Parameter panel
	params        []Parameter
	selectedParam int

	// Evolver state as of the latest frames
	stage       int
	generation  uint32
	bestFitness uint32
	bestProgram string
	genPerSec   float64
	executed    uint64
	haveBest    bool
	startTime   time.Time

	// UI state
	viewport     viewport.Model
	width        int
	height       int
	ready        bool
	quitting     bool
	statusMsg    string
	statusMsgAge time.Time
}

// Run starts the visual mode and blocks until the user quits.
func Run(deps Dependencies) error {
	m := model{
		deps:      deps,
		params:    buildParams(),
		startTime: time.Now(),
	}

	// Config file watching is best-effort: the file may not exist yet.
	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		if werr := watcher.Add(deps.ConfigPath); werr != nil {
			deps.Debugf("[TUI] not watching config: %v", werr)
			_ = watcher.Close()
			watcher = nil
		}
	} else {
		deps.Debugf("[TUI] watcher unavailable: %v", err)
		watcher = nil
	}
	m.watcher = watcher

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()

	if watcher != nil {
		_ = watcher.Close()
	}

	return err
}

// Init starts the update and file-watch listeners.
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForUpdate(m.deps.Updates)}
	if m.watcher != nil {
		cmds = append(cmds, waitForFileChange(m.watcher))
	}

	return tea.Batch(cmds...)
}

// waitForUpdate returns a command that delivers the next evolver frame.
func waitForUpdate(updates <-chan Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}

		return updateMsg(u)
	}
}

// waitForFileChange returns a command that waits for config file writes.
func waitForFileChange(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				if event.Op&fsnotify.Write == fsnotify.Write {
					// Debounce: wait for atomic writes to complete
					time.Sleep(100 * time.Millisecond)
					return fileChangeMsg{}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// reloadConfig loads the config file in the background.
func reloadConfig(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load(path)
		return configLoadedMsg{cfg: cfg, err: err}
	}
}

// expireStatus clears the transient status message after a delay.
func expireStatus() tea.Cmd {
	return tea.Tick(statusMessageDuration, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}

// setStatus records a transient status line.
func (m *model) setStatus(format string, args ...any) tea.Cmd {
	m.statusMsg = fmt.Sprintf(format, args...)
	m.statusMsgAge = time.Now()

	return expireStatus()
}
