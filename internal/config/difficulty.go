package config

import "math"

// DifficultyManager calculates dynamic game parameters from game progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty scaling.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty (0.0 to 1.0) for a game at the given
// score and level number. Disabled scaling always yields 0.
func (d *DifficultyManager) Level(score, level int) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(level-1) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedFactor returns the centipede speed multiplier.
func (d *DifficultyManager) SpeedFactor(score, level int) float64 {
	return 1.0 + d.Level(score, level)*d.cfg.Scaling.SpeedMultiplier
}

// SpawnFactor returns the enemy spawn interval multiplier, never below 0.25.
func (d *DifficultyManager) SpawnFactor(score, level int) float64 {
	f := 1.0 - d.Level(score, level)*d.cfg.Scaling.SpawnReduction
	if f < 0.25 { // Keep spawns from flooding the field
		f = 0.25
	}
	return f
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
