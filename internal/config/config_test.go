package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTunables()) {
		t.Errorf("embedded YAML and DefaultTunables() disagree:\n%+v\n%+v", cfg, DefaultTunables())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultTunables().Validate(); err != nil {
		t.Errorf("default tunables invalid: %v", err)
	}
	for _, p := range Presets {
		if err := DefaultTunables().WithDifficulty(p).Validate(); err != nil {
			t.Errorf("%s preset invalid: %v", p, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tunables)
		want   string
	}{
		{"zero arena", func(c *Tunables) { c.Arena.Width = 0 }, "arena"},
		{"flat bounce", func(c *Tunables) { c.Bounce.MaxAngle = 90 }, "max_angle"},
		{"inverted goal", func(c *Tunables) { c.Goal.Top, c.Goal.Bottom = 0.9, 0.1 }, "goal"},
		{"chance over 100", func(c *Tunables) { c.PowerUp.GrowChance = 101 }, "chances"},
		{"no balls", func(c *Tunables) { c.PowerUp.MaxBalls = 0 }, "max_balls"},
		{"shrinking grow", func(c *Tunables) { c.PowerUp.GrowFactor = 0.5 }, "grow_factor"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTunables()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestWithDifficultyReturnsNewValue(t *testing.T) {
	base := DefaultTunables()
	hard := base.WithDifficulty(DifficultyHard)

	if base.Ball.Speed != 5 {
		t.Errorf("base tunables were mutated: ball speed %f", base.Ball.Speed)
	}
	if hard.Ball.Speed != 6 || hard.Paddle.Speed != 7 || hard.PowerUp.Multiplier != 1 {
		t.Errorf("hard preset not applied: %+v", hard)
	}
	if hard.Arena != base.Arena || hard.Match != base.Match {
		t.Error("presets should only touch difficulty values")
	}

	easy := base.WithDifficulty(DifficultyEasy)
	if easy.Bounce.MaxAngle != 45 || easy.PowerUp.GrowChance != 25 || easy.PowerUp.GrowFactor != 1.4 {
		t.Errorf("easy preset not applied: %+v", easy)
	}

	if got := base.WithDifficulty("insane"); !reflect.DeepEqual(got, base) {
		t.Error("unknown preset should leave tunables unchanged")
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficulty(hard) = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("ParseDifficulty(insane) should fail")
	}
}

func TestWithArenaKeepsGoalFractions(t *testing.T) {
	small := DefaultTunables().WithArena(512, 256)

	if small.Arena.Width != 512 || small.Arena.Height != 256 {
		t.Errorf("arena = %+v, expected 512x256", small.Arena)
	}
	if small.GoalTop() != 25.6 || small.GoalBottom() != 230.4 {
		t.Errorf("goal window = [%f, %f], expected [25.6, 230.4]", small.GoalTop(), small.GoalBottom())
	}
}

func TestFrames(t *testing.T) {
	cfg := DefaultTunables()
	if got := cfg.Frames(10); got != 600 {
		t.Errorf("Frames(10) = %d, expected 600", got)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ball:\n  speed: 9\nmatch:\n  win_score: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Ball.Speed != 9 || cfg.Match.WinScore != 3 {
		t.Errorf("overrides not applied: ball %f, win %d", cfg.Ball.Speed, cfg.Match.WinScore)
	}
	if cfg.Ball.Size != 16 || cfg.Arena.Width != 1024 {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid custom file should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTunables()) {
		t.Error("with no files around, Load should return the embedded defaults")
	}

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", ConfigFile), []byte("fps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ = Load(""); cfg.FPS != 30 {
		t.Errorf("local config not used, fps = %d", cfg.FPS)
	}

	if err := os.MkdirAll(filepath.Join(home, ".paddle"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".paddle", ConfigFile), []byte("fps: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ = Load(""); cfg.FPS != 50 {
		t.Errorf("user config should win over local config, fps = %d", cfg.FPS)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultTunables().WithDifficulty(DifficultyEasy))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Ball.Speed != 4 {
		t.Errorf("round trip lost values, ball speed %f", cfg.Ball.Speed)
	}
}

func TestSpeedRamp(t *testing.T) {
	ramp := NewSpeedRamp(RampConfig{
		Enabled:         true,
		Progression:     ProgressionConfig{Type: "score", MaxAt: 10},
		SpeedMultiplier: 0.5,
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 4},
		{5, 5},
		{10, 6},
		{100, 6}, // clamped
	}
	for _, tc := range tests {
		if got := ramp.Speed(4, tc.score, 0); got != tc.expected {
			t.Errorf("Speed(4, score=%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}

	off := NewSpeedRamp(DefaultTunables().Ramp)
	if off.IsEnabled() {
		t.Error("ramp should be disabled by default")
	}
	if got := off.Speed(4, 100, 100); got != 4 {
		t.Errorf("disabled ramp changed speed to %f", got)
	}

	timed := NewSpeedRamp(RampConfig{Enabled: true, Progression: ProgressionConfig{Type: "time", MaxAt: 0}, SpeedMultiplier: 1})
	if got := timed.Level(0, 5); got != 1 {
		t.Errorf("max_at 0 should saturate immediately, level %f", got)
	}
}
