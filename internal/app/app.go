// Package app holds the process-wide state of one game session: the scene
// stack, the active tunables, the score and the high-score table.
package app

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/scene"
	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

// DefaultPlayer is the high-score name used when none is given.
const DefaultPlayer = "player"

// Score is the running score of the current game. Breakout uses Total,
// the two-paddle variant uses Left and Right.
type Score struct {
	Left  int
	Right int
	Total int
}

// Reset zeroes every counter.
func (s *Score) Reset() {
	*s = Score{}
}

// Credit adds a point to the given side.
func (s *Score) Credit(side physics.Side) {
	switch side {
	case physics.SideLeft:
		s.Left++
	case physics.SideRight:
		s.Right++
	}
}

// Options configure a new App.
type Options struct {
	Tunables   config.Tunables
	Difficulty config.DifficultyPreset
	Store      storage.HighScores // nil disables persistence
	Player     string
	Variant    string
	Seed       int64 // 0 means time-based
	Logger     *log.Logger
	Runtime    core.RuntimeConfig
}

// App is shared by every scene of one session. It is only touched from
// the platform loop, so it needs no locking.
type App struct {
	Stack      *scene.Stack
	Tunables   config.Tunables
	Difficulty config.DifficultyPreset
	Score      Score
	Best       map[string]int
	Player     string
	Variant    string
	Logger     *log.Logger
	Runtime    core.RuntimeConfig
	Fullscreen bool

	base     config.Tunables // as loaded, before any difficulty preset
	windowed config.ArenaConfig
	store    storage.HighScores
	seed     int64
	games    int64
	running  bool
}

// New creates an App. Call Start with the root scene before running it.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Tunables.Debug.Stack {
		logger.SetLevel(log.DebugLevel)
	}

	player := opts.Player
	if player == "" {
		player = DefaultPlayer
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}

	a := &App{
		Tunables:   opts.Tunables.WithDifficulty(difficulty),
		Difficulty: difficulty,
		Player:     player,
		Variant:    opts.Variant,
		Logger:     logger,
		Runtime:    opts.Runtime,
		base:       opts.Tunables,
		store:      opts.Store,
		seed:       seed,
	}
	a.Best = storage.LoadOrDefault(opts.Store, player, logger)
	return a
}

// Start builds the scene stack around root and marks the app running.
func (a *App) Start(root scene.Scene) {
	a.Stack = scene.NewStack(root, a.Logger)
	a.running = true
}

// Running reports whether the session should keep going.
func (a *App) Running() bool {
	return a.running
}

// Quit raises the quit signal. The loop stops after the current frame.
func (a *App) Quit() {
	if a.running {
		a.Logger.Info("quit requested")
	}
	a.running = false
}

// Update runs one frame of the top scene.
func (a *App) Update(in core.Input) {
	if a.Stack == nil {
		return
	}
	a.Stack.Update(in)
}

// Render clears dst and draws the top scene.
func (a *App) Render(dst *core.Screen) {
	dst.Clear()
	if a.Stack == nil {
		return
	}
	a.Stack.Render(dst)
}

// SetTunables replaces the tunables wholesale. Scenes created afterwards
// see the new values; running scenes keep their copy.
func (a *App) SetTunables(t config.Tunables) {
	a.Tunables = t
	a.Logger.Debug("tunables replaced",
		"difficulty", a.Difficulty,
		"arena", []float64{t.Arena.Width, t.Arena.Height},
		"ball_speed", t.Ball.Speed,
	)
}

// SetDifficulty applies a preset to the loaded tunables, keeping the
// current arena size.
func (a *App) SetDifficulty(p config.DifficultyPreset) {
	a.Difficulty = p
	t := a.base.WithDifficulty(p).WithArena(a.Tunables.Arena.Width, a.Tunables.Arena.Height)
	t.Debug = a.Tunables.Debug
	a.SetTunables(t)
}

// SetArena switches to a new arena size.
func (a *App) SetArena(width, height float64) {
	a.SetTunables(a.Tunables.WithArena(width, height))
}

// SetFullscreen switches between an arena sized to fill the terminal and
// the arena that was active before. Games started afterwards stretch the
// arena over the whole screen.
func (a *App) SetFullscreen(on bool) {
	if on == a.Fullscreen {
		return
	}
	if on {
		a.windowed = a.Tunables.Arena
		area := core.ArenaArea(a.Runtime.ScreenW, a.Runtime.ScreenH)
		a.SetArena(float64(area.W)*core.UnitsPerCol, float64(area.H)*core.UnitsPerCol*core.CellAspect)
	} else {
		a.SetArena(a.windowed.Width, a.windowed.Height)
	}
	a.Fullscreen = on
	a.Logger.Debug("fullscreen", "on", on, "arena", []float64{a.Tunables.Arena.Width, a.Tunables.Arena.Height})
}

// Arena returns the playfield box for the current tunables.
func (a *App) Arena() core.Box {
	return core.Box{W: a.Tunables.Arena.Width, H: a.Tunables.Arena.Height}
}

// NextSeed returns a fresh seed for a new game. Seeds are derived from
// the session seed so a fixed --seed replays the same games.
func (a *App) NextSeed() int64 {
	a.games++
	return a.seed + a.games
}

// BestScore returns the current player's high score.
func (a *App) BestScore() int {
	return a.Best[a.Player]
}

// RecordHighScore stores score if it beats the player's best and records
// the finished game in the history when the store keeps one. It reports
// whether a new best was set. Persistence errors are logged, never
// returned.
func (a *App) RecordHighScore(score int) bool {
	if rec, ok := a.store.(storage.Recorder); ok && a.Variant != "" {
		if _, err := rec.SaveScore(a.Variant, a.Player, score); err != nil {
			a.Logger.Warn("could not record game", "error", err)
		}
	}

	a.refreshBest()
	if prev, ok := a.Best[a.Player]; ok && score <= prev {
		return false
	}

	a.Best[a.Player] = score
	a.Logger.Info("new high score", "player", a.Player, "score", score)
	a.SaveHighScores()
	return true
}

// refreshBest merges entries other sessions sharing the store have written
// since this one loaded, keeping the higher score per player.
func (a *App) refreshBest() {
	if a.store == nil {
		return
	}
	fresh, err := a.store.LoadHighScores()
	if err != nil {
		return
	}
	for player, score := range fresh {
		if prev, ok := a.Best[player]; !ok || score > prev {
			a.Best[player] = score
		}
	}
}

// SaveHighScores writes the table to the store, best-effort. Entries
// written by other sessions are merged in first so they are not overwritten.
func (a *App) SaveHighScores() {
	if a.store == nil {
		return
	}
	a.refreshBest()
	if err := a.store.SaveHighScores(a.Best); err != nil {
		a.Logger.Warn("could not save high scores", "error", err)
	}
}

// ShowHitbox reports whether debug hitboxes are drawn.
func (a *App) ShowHitbox() bool {
	return a.Tunables.Debug.ShowHitbox
}

// ToggleHitbox flips hitbox and direction drawing.
func (a *App) ToggleHitbox() {
	t := a.Tunables
	t.Debug.ShowHitbox = !t.Debug.ShowHitbox
	t.Debug.ShowDirection = t.Debug.ShowHitbox
	a.SetTunables(t)
}
