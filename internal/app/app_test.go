package app

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

type nopScene struct{ updates int }

func (n *nopScene) Update(core.Input) { n.updates++ }
func (n *nopScene) Render(*core.Screen) {}

// memStore is an in-memory high-score table with history.
type memStore struct {
	scores   map[string]int
	history  []int
	failLoad bool
}

func (m *memStore) LoadHighScores() (map[string]int, error) {
	if m.failLoad {
		return nil, errors.New("boom")
	}
	out := make(map[string]int, len(m.scores))
	for k, v := range m.scores {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) SaveHighScores(s map[string]int) error {
	m.scores = make(map[string]int, len(s))
	for k, v := range s {
		m.scores[k] = v
	}
	return nil
}

func (m *memStore) SaveScore(variant, player string, score int) (int64, error) {
	m.history = append(m.history, score)
	return int64(len(m.history)), nil
}

func TestNewAppliesDefaults(t *testing.T) {
	a := New(Options{Tunables: config.DefaultTunables()})

	if a.Player != DefaultPlayer {
		t.Errorf("Player = %q, expected %q", a.Player, DefaultPlayer)
	}
	if a.Difficulty != config.DifficultyNormal {
		t.Errorf("Difficulty = %q, expected normal", a.Difficulty)
	}
	if !reflect.DeepEqual(a.Best, map[string]int{DefaultPlayer: 0}) {
		t.Errorf("Best = %v, expected the default table", a.Best)
	}
	if a.Running() {
		t.Error("app should not run before Start")
	}
}

func TestStartAndQuit(t *testing.T) {
	a := New(Options{Tunables: config.DefaultTunables()})
	root := &nopScene{}
	a.Start(root)

	if !a.Running() || a.Stack.Len() != 1 {
		t.Fatal("Start should push the root and mark the app running")
	}

	a.Update(core.Input{})
	if root.updates != 1 {
		t.Errorf("root updated %d times, expected 1", root.updates)
	}

	a.Quit()
	if a.Running() {
		t.Error("Quit should clear the running flag")
	}
}

func TestScoreCredit(t *testing.T) {
	var s Score
	s.Credit(physics.SideLeft)
	s.Credit(physics.SideLeft)
	s.Credit(physics.SideRight)
	s.Credit(physics.SideNone)

	if s.Left != 2 || s.Right != 1 {
		t.Errorf("Score = %+v, expected 2-1", s)
	}

	s.Total = 40
	s.Reset()
	if s != (Score{}) {
		t.Errorf("Reset left %+v", s)
	}
}

func TestRecordHighScore(t *testing.T) {
	store := &memStore{scores: map[string]int{"manu": 10}}
	a := New(Options{
		Tunables: config.DefaultTunables(),
		Store:    store,
		Player:   "manu",
		Variant:  "breakout",
	})

	if a.RecordHighScore(5) {
		t.Error("5 should not beat 10")
	}
	if !a.RecordHighScore(12) {
		t.Error("12 should beat 10")
	}
	if store.scores["manu"] != 12 {
		t.Errorf("stored best = %d, expected 12", store.scores["manu"])
	}
	if !reflect.DeepEqual(store.history, []int{5, 12}) {
		t.Errorf("history = %v, expected every game recorded", store.history)
	}

	// A new player gets an entry even with a zero score.
	a.Player = "ada"
	if !a.RecordHighScore(0) {
		t.Error("first score of a new player should be recorded")
	}
	if _, ok := store.scores["ada"]; !ok {
		t.Error("ada should be in the stored table")
	}
}

func TestRecordHighScoreKeepsOtherSessions(t *testing.T) {
	store := &memStore{scores: map[string]int{"manu": 3}}
	manu := New(Options{Tunables: config.DefaultTunables(), Store: store, Player: "manu"})
	ada := New(Options{Tunables: config.DefaultTunables(), Store: store, Player: "ada"})

	ada.RecordHighScore(9)
	manu.RecordHighScore(4)

	want := map[string]int{"manu": 4, "ada": 9}
	if !reflect.DeepEqual(store.scores, want) {
		t.Errorf("stored table = %v, expected %v", store.scores, want)
	}
}

func TestSaveHighScoresKeepsOtherSessions(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ada := New(Options{Tunables: config.DefaultTunables(), Store: store, Player: "ada"})
	manu := New(Options{Tunables: config.DefaultTunables(), Store: store, Player: "manu"})

	manu.RecordHighScore(9)
	ada.SaveHighScores() // on exit, with a table loaded before manu scored

	scores, err := store.LoadHighScores()
	if err != nil {
		t.Fatalf("LoadHighScores() error: %v", err)
	}
	if scores["manu"] != 9 {
		t.Errorf("manu's score = %d, expected 9 to survive ada's save", scores["manu"])
	}
}

func TestFailedLoadFallsBackToDefault(t *testing.T) {
	store := &memStore{failLoad: true}
	a := New(Options{Tunables: config.DefaultTunables(), Store: store, Player: "manu"})

	if !reflect.DeepEqual(a.Best, map[string]int{"manu": 0}) {
		t.Errorf("Best = %v, expected the default", a.Best)
	}
}

func TestRecordHighScoreWithBlobFile(t *testing.T) {
	blob := &storage.BlobFile{Path: filepath.Join(t.TempDir(), "highscore")}
	a := New(Options{Tunables: config.DefaultTunables(), Store: blob, Player: "manu"})

	a.RecordHighScore(7)

	reloaded := New(Options{Tunables: config.DefaultTunables(), Store: blob, Player: "manu"})
	if reloaded.BestScore() != 7 {
		t.Errorf("BestScore() after reload = %d, expected 7", reloaded.BestScore())
	}
}

func TestSetDifficultyKeepsArena(t *testing.T) {
	a := New(Options{Tunables: config.DefaultTunables()})
	a.SetArena(512, 256)
	a.SetDifficulty(config.DifficultyHard)

	if a.Tunables.Ball.Speed != 6 {
		t.Errorf("ball speed = %f, expected the hard preset", a.Tunables.Ball.Speed)
	}
	if a.Arena() != (core.Box{W: 512, H: 256}) {
		t.Errorf("Arena() = %+v, expected 512x256", a.Arena())
	}
	if a.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q", a.Difficulty)
	}
}

func TestNextSeedIsDeterministic(t *testing.T) {
	a := New(Options{Tunables: config.DefaultTunables(), Seed: 100})
	b := New(Options{Tunables: config.DefaultTunables(), Seed: 100})

	for i := 0; i < 3; i++ {
		if a.NextSeed() != b.NextSeed() {
			t.Fatal("same session seed should give the same game seeds")
		}
	}
}

func TestToggleHitbox(t *testing.T) {
	a := New(Options{Tunables: config.DefaultTunables()})
	a.ToggleHitbox()
	if !a.ShowHitbox() || !a.Tunables.Debug.ShowDirection {
		t.Error("ToggleHitbox should enable hitboxes and directions")
	}
	a.ToggleHitbox()
	if a.ShowHitbox() {
		t.Error("second toggle should disable hitboxes")
	}
}

func TestSetFullscreenFitsTerminal(t *testing.T) {
	a := New(Options{
		Tunables: config.DefaultTunables(),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24},
	})

	a.SetFullscreen(true)
	// 78x21 playable cells.
	if got := a.Arena(); got.W != 624 || got.H != 336 {
		t.Errorf("fullscreen arena = %vx%v, expected 624x336", got.W, got.H)
	}
	if !a.Fullscreen {
		t.Error("Fullscreen flag not set")
	}

	a.SetFullscreen(false)
	if got := a.Arena(); got.W != 1024 || got.H != 512 {
		t.Errorf("windowed arena = %vx%v, expected 1024x512", got.W, got.H)
	}
}
