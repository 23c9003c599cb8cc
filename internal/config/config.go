// Package config provides YAML-based tunables loading, difficulty presets
// and the optional ball speed ramp for the paddle arcade.
package config

import (
	"fmt"
	"strings"
)

// Tunables is the full set of named values the simulation reads.
// Scenes receive a copy at construction and never mutate it; difficulty
// and resolution changes produce a new value instead.
type Tunables struct {
	Arena   ArenaConfig   `yaml:"arena"`
	FPS     int           `yaml:"fps"`
	Ball    BallConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Bounce  BounceConfig  `yaml:"bounce"`
	PowerUp PowerUpConfig `yaml:"powerup"`
	Goal    GoalConfig    `yaml:"goal"`
	Match   MatchConfig   `yaml:"match"`
	Bricks  BrickConfig   `yaml:"bricks"`
	Ramp    RampConfig    `yaml:"ramp"`
	Debug   DebugConfig   `yaml:"debug"`
}

// ArenaConfig is the logical playfield size in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the moving body.
type BallConfig struct {
	Speed float64 `yaml:"speed"` // units per frame
	Size  float64 `yaml:"size"`  // side of the collision box
}

// PaddleConfig defines the controlled bodies.
type PaddleConfig struct {
	Speed     float64 `yaml:"speed"`     // units per frame
	Length    float64 `yaml:"length"`    // extent along the striking face
	Thickness float64 `yaml:"thickness"` // extent across the striking face
	Inset     float64 `yaml:"inset"`     // distance of the paddle center from its own edge, as a fraction of the arena
}

// BounceConfig defines paddle deflection.
type BounceConfig struct {
	MaxAngle float64 `yaml:"max_angle"` // degrees from perpendicular at the paddle edge
}

// PowerUpConfig defines the breakout power-ups.
type PowerUpConfig struct {
	Speed        float64 `yaml:"speed"`         // fall speed, units per frame
	Size         float64 `yaml:"size"`          // side of the pickup box
	GrowFactor   float64 `yaml:"grow_factor"`   // paddle length multiplier
	GrowDuration float64 `yaml:"grow_duration"` // seconds
	Multiplier   int     `yaml:"multiplier"`    // clones per live ball
	MaxBalls     int     `yaml:"max_balls"`     // global live ball cap
	GrowChance   int     `yaml:"grow_chance"`   // percent per broken brick
	MultiChance  int     `yaml:"multi_chance"`  // percent per broken brick
}

// GoalConfig is the goal window on the side boundaries, as fractions of
// the arena height.
type GoalConfig struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// MatchConfig defines match rules.
type MatchConfig struct {
	WinScore  int     `yaml:"win_score"` // points to win the two-paddle variant
	Countdown float64 `yaml:"countdown"` // serve delay in seconds
	Lives     int     `yaml:"lives"`     // breakout lives
}

// BrickConfig defines the breakout brick grid.
type BrickConfig struct {
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Gap    float64 `yaml:"gap"`
	Top    float64 `yaml:"top"` // y of the first row
	Points int     `yaml:"points"`
}

// RampConfig defines the optional ball speed progression.
type RampConfig struct {
	Enabled         bool              `yaml:"enabled"`
	Progression     ProgressionConfig `yaml:"progression"`
	SpeedMultiplier float64           `yaml:"speed_multiplier"` // Multiplier added to speed at the top of the ramp
}

// ProgressionConfig defines how the ramp advances.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which the ramp tops out
}

// DebugConfig holds the developer switches.
type DebugConfig struct {
	ShowHitbox    bool `yaml:"show_hitbox"`
	ShowDirection bool `yaml:"show_direction"`
	Cheats        bool `yaml:"cheats"`
	Stack         bool `yaml:"stack"` // log every scene push and pop
}

// GoalTop returns the top of the goal window in arena units.
func (t Tunables) GoalTop() float64 {
	return t.Arena.Height * t.Goal.Top
}

// GoalBottom returns the bottom of the goal window in arena units.
func (t Tunables) GoalBottom() float64 {
	return t.Arena.Height * t.Goal.Bottom
}

// Frames converts a duration in seconds to frames at the configured rate.
func (t Tunables) Frames(seconds float64) int {
	return int(seconds * float64(t.FPS))
}

// Validate checks that the tunables describe a playable game.
func (t Tunables) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(t.Arena.Width > 0 && t.Arena.Height > 0, "arena size must be positive")
	check(t.FPS > 0, "fps must be positive")
	check(t.Ball.Speed > 0, "ball.speed must be positive")
	check(t.Ball.Size > 0, "ball.size must be positive")
	check(t.Paddle.Speed >= 0, "paddle.speed must not be negative")
	check(t.Paddle.Length > 0 && t.Paddle.Thickness > 0, "paddle size must be positive")
	check(t.Paddle.Inset >= 0 && t.Paddle.Inset < 0.5, "paddle.inset must be in [0, 0.5)")
	check(t.Bounce.MaxAngle > 0 && t.Bounce.MaxAngle < 90, "bounce.max_angle must be in (0, 90)")
	check(t.PowerUp.GrowFactor >= 1, "powerup.grow_factor must be at least 1")
	check(t.PowerUp.MaxBalls >= 1, "powerup.max_balls must be at least 1")
	check(t.PowerUp.Multiplier >= 0, "powerup.multiplier must not be negative")
	check(inPercent(t.PowerUp.GrowChance) && inPercent(t.PowerUp.MultiChance), "powerup chances must be in [0, 100]")
	check(t.Goal.Top >= 0 && t.Goal.Top < t.Goal.Bottom && t.Goal.Bottom <= 1, "goal window must satisfy 0 <= top < bottom <= 1")
	check(t.Match.WinScore >= 1, "match.win_score must be at least 1")
	check(t.Match.Countdown >= 0, "match.countdown must not be negative")
	check(t.Match.Lives >= 1, "match.lives must be at least 1")
	check(t.Bricks.Rows >= 0 && t.Bricks.Cols >= 0, "brick grid must not be negative")

	if len(problems) > 0 {
		return fmt.Errorf("config: invalid tunables: %s", strings.Join(problems, "; "))
	}
	return nil
}

func inPercent(v int) bool {
	return v >= 0 && v <= 100
}

// WithArena returns a copy of t using the given arena size. Goal windows
// are fractions and follow the new height.
func (t Tunables) WithArena(width, height float64) Tunables {
	t.Arena = ArenaConfig{Width: width, Height: height}
	return t
}
