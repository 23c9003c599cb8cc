package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulties in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// presetValues are the values a difficulty replaces. Everything else in
// the tunables is left alone.
type presetValues struct {
	ballSpeed    float64
	paddleSpeed  float64
	powerUpSpeed float64
	growDuration float64
	multiplier   int
	maxAngle     float64
	growChance   int
	multiChance  int
	growFactor   float64
}

var presetTable = map[DifficultyPreset]presetValues{
	DifficultyEasy: {
		ballSpeed: 4, paddleSpeed: 8, powerUpSpeed: 1, growDuration: 15,
		multiplier: 3, maxAngle: 45, growChance: 25, multiChance: 15, growFactor: 1.4,
	},
	DifficultyNormal: {
		ballSpeed: 5, paddleSpeed: 8, powerUpSpeed: 2, growDuration: 10,
		multiplier: 2, maxAngle: 60, growChance: 10, multiChance: 10, growFactor: 1.2,
	},
	DifficultyHard: {
		ballSpeed: 6, paddleSpeed: 7, powerUpSpeed: 5, growDuration: 5,
		multiplier: 1, maxAngle: 75, growChance: 7, multiChance: 3, growFactor: 1.1,
	},
}

// ParseDifficulty converts a preset name.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(name)
	if _, ok := presetTable[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
	return p, nil
}

// WithDifficulty returns a copy of t with the preset's values applied.
// Unknown presets return t unchanged.
func (t Tunables) WithDifficulty(p DifficultyPreset) Tunables {
	v, ok := presetTable[p]
	if !ok {
		return t
	}

	t.Ball.Speed = v.ballSpeed
	t.Paddle.Speed = v.paddleSpeed
	t.PowerUp.Speed = v.powerUpSpeed
	t.PowerUp.GrowDuration = v.growDuration
	t.PowerUp.Multiplier = v.multiplier
	t.Bounce.MaxAngle = v.maxAngle
	t.PowerUp.GrowChance = v.growChance
	t.PowerUp.MultiChance = v.multiChance
	t.PowerUp.GrowFactor = v.growFactor
	return t
}
