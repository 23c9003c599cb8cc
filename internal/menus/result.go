package menus

import (
	"fmt"

	"github.com/vovakirdan/paddle-arcade/internal/app"
	"github.com/vovakirdan/paddle-arcade/internal/scene"
)

// Result is the outcome of a finished game handed to the end screens.
type Result struct {
	Points int    // recorded as the player's score
	Text   string // shown to the player, e.g. "10-4"
}

// Outcome is an end screen: game over or win. Entering it records the
// high score.
type Outcome struct {
	*menuScene
	app     *app.App
	result  Result
	won     bool
	newBest bool
}

// NewGameOver creates the game-over screen.
func NewGameOver(a *app.App, r Result) *Outcome {
	return newOutcome(a, r, false)
}

// NewWin creates the win screen.
func NewWin(a *app.App, r Result) *Outcome {
	return newOutcome(a, r, true)
}

func newOutcome(a *app.App, r Result, won bool) *Outcome {
	o := &Outcome{app: a, result: r, won: won}

	title, color, name := "GAME OVER", GameOverColor, "gameover"
	if won {
		title, color, name = "YOU WON !!!", WinColor, "win"
	}

	m := scene.NewMenu(title,
		scene.Item{Label: "replay", Action: o.replay},
		scene.Item{Label: "menu", Action: o.toMenu},
	)
	m.Cancel = o.toMenu
	m.Color = color
	o.menuScene = newMenuScene(name, m)
	return o
}

// Enter records the score and fills in the labels.
func (o *Outcome) Enter() {
	o.newBest = o.app.RecordHighScore(o.result.Points)
	o.Menu.Lines = []string{
		fmt.Sprintf("score : %s", o.result.Text),
		fmt.Sprintf("highscore : %d", o.app.BestScore()),
	}
	if o.newBest {
		o.Menu.Lines = append(o.Menu.Lines, "new high score!")
	}
}

// Won reports whether this is the win screen.
func (o *Outcome) Won() bool { return o.won }

// NewBest reports whether entering the screen set a new high score.
func (o *Outcome) NewBest() bool { return o.newBest }

func (o *Outcome) toMenu() {
	o.app.Stack.Pop() // back to gameplay
	o.app.Stack.Pop() // back to the menu
}

func (o *Outcome) replay() {
	o.app.Stack.PopToRoot()
	startGame(o.app)
}
