// Package config provides YAML/TOML game configuration loading and
// difficulty management for the centipede game.
package config

// CentipedeConfig contains all tunable game parameters.
type CentipedeConfig struct {
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Centipede  ChainConfig      `yaml:"centipede" toml:"centipede"`
	Enemies    EnemyConfig      `yaml:"enemies" toml:"enemies"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed        float64 `yaml:"speed" toml:"speed"`                 // World units per second
	RespawnTicks int     `yaml:"respawn_ticks" toml:"respawn_ticks"` // Delay between death and respawn
}

// ChainConfig defines centipede chains and their growth across levels.
type ChainConfig struct {
	BaseSpeed     float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level" toml:"speed_per_level"`
	BaseSegments  int     `yaml:"base_segments" toml:"base_segments"`
	MinSegments   int     `yaml:"min_segments" toml:"min_segments"`
	MaxChains     int     `yaml:"max_chains" toml:"max_chains"`
	ChainEvery    int     `yaml:"chain_every" toml:"chain_every"` // Levels per extra chain
	ChainOffsetY  float64 `yaml:"chain_offset_y" toml:"chain_offset_y"`
}

// IntervalConfig holds one value per enemy kind, in milliseconds.
type IntervalConfig struct {
	Spider   float64 `yaml:"spider" toml:"spider"`
	Flea     float64 `yaml:"flea" toml:"flea"`
	Scorpion float64 `yaml:"scorpion" toml:"scorpion"`
}

// EnemyConfig defines enemy spawning.
type EnemyConfig struct {
	SpawnMS        IntervalConfig `yaml:"spawn_ms" toml:"spawn_ms"`
	FloorMS        IntervalConfig `yaml:"floor_ms" toml:"floor_ms"`
	LevelStep      float64        `yaml:"level_step" toml:"level_step"` // Interval reduction per level
	MinFactor      float64        `yaml:"min_factor" toml:"min_factor"` // Lowest interval multiplier
	SpiderChance   float64        `yaml:"spider_chance" toml:"spider_chance"`
	ScorpionChance float64        `yaml:"scorpion_chance" toml:"scorpion_chance"`
	FleaMaxBand    int            `yaml:"flea_max_band" toml:"flea_max_band"` // Fleas spawn while the bottom band holds fewer mushrooms
}

// ScoringConfig defines lives and bonuses.
type ScoringConfig struct {
	Lives          int `yaml:"lives" toml:"lives"`
	ExtraLifeEvery int `yaml:"extra_life_every" toml:"extra_life_every"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"` // 0.0 to 1.0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "level", "score", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to centipede speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction" toml:"spawn_reduction"`   // Fraction cut from spawn intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
