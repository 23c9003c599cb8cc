package menus

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/paddle-arcade/internal/app"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/scene"
)

// NewMain creates the root menu. Escape does nothing here; the stack
// never drops below it.
func NewMain(a *app.App) scene.Scene {
	if a.Variant == "" {
		a.Variant = registry.Next("")
	}

	m := scene.NewMenu("MAIN MENU",
		scene.Item{Label: "play", Action: func() { startGame(a) }},
		scene.Item{
			Label:  "game",
			Value:  func() string { return variantTitle(a.Variant) },
			Action: func() { a.Variant = registry.Next(a.Variant) },
		},
		scene.Item{
			Label:  "difficulty",
			Value:  func() string { return string(a.Difficulty) },
			Action: func() { a.Stack.Push(NewDifficulty(a)) },
		},
		scene.Item{Label: "high scores", Action: func() { a.Stack.Push(NewHighScores(a)) }},
		scene.Item{Label: "settings", Action: func() { a.Stack.Push(NewSettings(a)) }},
		scene.Item{Label: "exit", Action: a.Quit},
	)
	m.Color = MainColor
	return newMenuScene("main", m)
}

func variantTitle(id string) string {
	for _, info := range registry.List() {
		if info.ID == id {
			return info.Title
		}
	}
	return id
}

// Launch starts a with the main menu as root. When variant is set the
// game is pushed straight away; leaving it returns to the menu.
func Launch(a *app.App, variant string) error {
	if variant != "" && !registry.Exists(variant) {
		return fmt.Errorf("menus: unknown variant %q (available: %s)", variant, strings.Join(registry.IDs(), ", "))
	}
	if variant != "" {
		a.Variant = variant
	}
	a.Start(NewMain(a))
	if variant != "" {
		startGame(a)
	}
	return nil
}
