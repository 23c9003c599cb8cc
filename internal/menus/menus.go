// Package menus contains the menu scenes of the arcade: main menu, pause,
// settings, difficulty and resolution choices, high scores and the
// game-over and win screens.
package menus

import (
	"github.com/vovakirdan/paddle-arcade/internal/app"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/scene"
)

// Accent colors per menu kind.
const (
	MainColor     = core.ColorCyan
	PauseColor    = core.ColorYellow
	GameOverColor = core.ColorRed
	WinColor      = core.ColorGreen
	SettingsColor = core.ColorCyan
)

// menuScene puts a selection list on the stack.
type menuScene struct {
	*scene.Menu
	name string
}

func newMenuScene(name string, m *scene.Menu) *menuScene {
	return &menuScene{Menu: m, name: name}
}

func (s *menuScene) Name() string { return s.name }

// back pops the current scene.
func back(a *app.App) func() {
	return func() { a.Stack.Pop() }
}

// onOff formats a switch value.
func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// startGame pushes a fresh gameplay scene for the selected variant.
func startGame(a *app.App) {
	game, err := registry.Create(a.Variant, a)
	if err != nil {
		a.Logger.Error("cannot start game", "variant", a.Variant, "error", err)
		return
	}
	a.Stack.Push(game)
}
