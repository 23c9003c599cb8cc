package config

import "math"

// SpeedRamp calculates the ball speed from score/time progress.
type SpeedRamp struct {
	cfg RampConfig
}

// NewSpeedRamp creates a new speed ramp.
func NewSpeedRamp(cfg RampConfig) *SpeedRamp {
	return &SpeedRamp{cfg: cfg}
}

// IsEnabled returns whether progression is active.
func (r *SpeedRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.Progression.Type != "none"
}

// Level returns the current ramp level (0.0 to 1.0) based on score/ticks.
func (r *SpeedRamp) Level(score int, ticks int) float64 {
	if !r.IsEnabled() {
		return 0
	}

	maxAt := float64(r.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch r.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return 0
	}

	return clampF(progress, 0.0, 1.0)
}

// Speed returns the ramped speed for a base speed.
func (r *SpeedRamp) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := r.Level(score, ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*r.cfg.SpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
