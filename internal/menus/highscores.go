package menus

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/paddle-arcade/internal/app"
	"github.com/vovakirdan/paddle-arcade/internal/scene"
)

// MaxListed is how many high scores the list shows.
const MaxListed = 10

// Entry is one row of the high-score list.
type Entry struct {
	Player string
	Score  int
}

// Ranked returns the high-score table sorted by score, best first, ties
// by name.
func Ranked(best map[string]int) []Entry {
	entries := make([]Entry, 0, len(best))
	for p, s := range best {
		entries = append(entries, Entry{Player: p, Score: s})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Player < entries[j].Player
	})
	return entries
}

// NewHighScores creates the high-score list.
func NewHighScores(a *app.App) scene.Scene {
	entries := Ranked(a.Best)
	if len(entries) > MaxListed {
		entries = entries[:MaxListed]
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%2d. %-12s %6d", i+1, e.Player, e.Score))
	}
	if len(lines) == 0 {
		lines = append(lines, "no scores yet")
	}

	m := scene.NewMenu("HIGH SCORES", scene.Item{Label: "back", Action: back(a)})
	m.Lines = lines
	m.Cancel = back(a)
	m.Color = MainColor
	return newMenuScene("highscores", m)
}
