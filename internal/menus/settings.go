package menus

import (
	"fmt"

	"github.com/vovakirdan/paddle-arcade/internal/app"
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/scene"
)

// NewSettings creates the settings menu.
func NewSettings(a *app.App) scene.Scene {
	items := []scene.Item{
		{Label: "resolution", Action: func() { a.Stack.Push(NewResolution(a)) }},
		{
			Label:  "hitboxes",
			Value:  func() string { return onOff(a.ShowHitbox()) },
			Action: a.ToggleHitbox,
		},
		{
			Label:  "sound",
			Value:  func() string { return "unavailable" },
			Action: func() { a.Logger.Info("sound is not available in the terminal") },
		},
	}
	if a.Tunables.Debug.Cheats {
		items = append(items, scene.Item{Label: "save score", Action: func() {
			a.SaveHighScores()
			a.Logger.Info("high scores saved", "player", a.Player, "score", a.BestScore())
		}})
	}
	items = append(items, scene.Item{Label: "back", Action: back(a)})

	m := scene.NewMenu("Settings", items...)
	m.Cancel = back(a)
	m.Color = SettingsColor
	return newMenuScene("settings", m)
}

// NewDifficulty creates the difficulty choice. Choosing a preset replaces
// the tunables and returns to the previous menu.
func NewDifficulty(a *app.App) scene.Scene {
	items := make([]scene.Item, 0, len(config.Presets))
	selected := 0
	for i, p := range config.Presets {
		if p == a.Difficulty {
			selected = i
		}
		items = append(items, scene.Item{Label: string(p), Action: func() {
			a.SetDifficulty(p)
			a.Stack.Pop()
		}})
	}

	m := scene.NewMenu("Difficulties", items...)
	m.Selected = selected
	m.Cancel = back(a)
	m.Color = SettingsColor
	return newMenuScene("difficulty", m)
}

// Windowed arena sizes offered by the resolution menu.
var Resolutions = []config.ArenaConfig{
	{Width: 512, Height: 256},
	{Width: 1024, Height: 512},
}

// NewResolution creates the resolution menu.
func NewResolution(a *app.App) scene.Scene {
	items := make([]scene.Item, 0, len(Resolutions)+2)
	for _, r := range Resolutions {
		items = append(items, scene.Item{
			Label: fmt.Sprintf("%gx%g", r.Width, r.Height),
			Action: func() {
				a.SetFullscreen(false)
				a.SetArena(r.Width, r.Height)
			},
		})
	}
	items = append(items,
		scene.Item{
			Label:  "fullscreen",
			Value:  func() string { return onOff(a.Fullscreen) },
			Action: func() { a.SetFullscreen(!a.Fullscreen) },
		},
		scene.Item{Label: "back", Action: back(a)},
	)

	m := scene.NewMenu("Resolutions", items...)
	m.Lines = []string{arenaLine(a)}
	m.Cancel = back(a)
	m.Color = SettingsColor
	return &resolutionScene{menuScene: newMenuScene("resolution", m), app: a}
}

// resolutionScene keeps the arena line current.
type resolutionScene struct {
	*menuScene
	app *app.App
}

func (s *resolutionScene) Update(in core.Input) {
	s.menuScene.Update(in)
	s.Menu.Lines[0] = arenaLine(s.app)
}

func arenaLine(a *app.App) string {
	return fmt.Sprintf("arena %gx%g", a.Tunables.Arena.Width, a.Tunables.Arena.Height)
}
