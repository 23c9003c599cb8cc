package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paddle-arcade/internal/app"
	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Model is the Bubble Tea model that drives one App: key events feed the
// held set, each tick runs one frame of the scene stack.
type Model struct {
	app     *app.App
	screen  *core.Screen
	palette Palette
	keys    KeyMap
	tracker *KeyTracker
	input   core.InputTracker
	shotDir string
	now     func() time.Time
}

// Option configures a Model.
type Option func(*Model)

// WithRenderer binds colors to a specific renderer, e.g. an SSH session's.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.palette = NewPalette(r) }
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) { m.keys = km }
}

// WithHold sets how long a key stays held after its last event.
func WithHold(d time.Duration) Option {
	return func(m *Model) { m.tracker = NewKeyTracker(d) }
}

// WithScreenshotDir sets where ctrl+s writes screenshots. An empty dir
// disables screenshots.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) { m.shotDir = dir }
}

// NewModel creates a model for a started App.
func NewModel(a *app.App, opts ...Option) Model {
	m := Model{
		app:     a,
		screen:  core.NewScreen(a.Runtime.ScreenW, a.Runtime.ScreenH),
		keys:    DefaultKeyMap(),
		tracker: NewKeyTracker(DefaultHold),
		shotDir: defaultScreenshotDir(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.palette == nil {
		m.palette = NewPalette(nil)
	}
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paddle", "screenshots")
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.app.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.app.Quit()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.app.Logger.Warn("screenshot failed", "error", err)
		} else if path != "" {
			m.app.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if k, ok := m.keys.Resolve(msg); ok {
		m.tracker.Press(k, m.now())
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.app.Runtime.ScreenW = msg.Width
	m.app.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	held, edges := m.tracker.Sample(m.now())
	in := m.input.NextLatched(held, edges)
	m.app.Update(in)

	if !m.app.Running() {
		return m, tea.Quit
	}
	return m, tickCmd(m.app.Runtime.TickRate)
}

// saveScreenshot writes the current frame as plain text and returns its
// path. Returns an empty path when screenshots are disabled.
func (m Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", nil
	}
	m.app.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	name := m.app.Variant
	if name == "" {
		name = "paddle"
	}
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", name, m.now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if !m.app.Running() {
		return ""
	}
	m.app.Render(m.screen)
	return RenderScreen(m.screen, m.palette)
}

// Run starts the Bubble Tea program for a started App and blocks until
// the session quits. High scores are flushed on the way out.
func Run(a *app.App, opts ...Option) error {
	p := tea.NewProgram(
		NewModel(a, opts...),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	a.SaveHighScores()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
