package config

import (
	_ "embed"
)

//go:embed defaults/paddle.yaml
var defaultYAML []byte

// DefaultTunables returns the default (normal difficulty) tunables.
func DefaultTunables() Tunables {
	return Tunables{
		Arena: ArenaConfig{Width: 1024, Height: 512},
		FPS:   60,
		Ball:  BallConfig{Speed: 5, Size: 16},
		Paddle: PaddleConfig{
			Speed:     8,
			Length:    128,
			Thickness: 28,
			Inset:     0.1,
		},
		Bounce: BounceConfig{MaxAngle: 60},
		PowerUp: PowerUpConfig{
			Speed:        2,
			Size:         16,
			GrowFactor:   1.2,
			GrowDuration: 10,
			Multiplier:   2,
			MaxBalls:     10,
			GrowChance:   10,
			MultiChance:  10,
		},
		Goal: GoalConfig{Top: 0.1, Bottom: 0.9},
		Match: MatchConfig{
			WinScore:  10,
			Countdown: 3,
			Lives:     3,
		},
		Bricks: BrickConfig{
			Rows:   5,
			Cols:   14,
			Width:  64,
			Height: 32,
			Gap:    4,
			Top:    48,
			Points: 10,
		},
		Ramp: RampConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			SpeedMultiplier: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
