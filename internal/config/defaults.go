package config

import (
	_ "embed"
)

//go:embed defaults/centipede.yaml
var defaultCentipedeYAML []byte

// DefaultCentipedeConfig returns the default configuration.
func DefaultCentipedeConfig() CentipedeConfig {
	return CentipedeConfig{
		Player: PlayerConfig{
			Speed:        200,
			RespawnTicks: 60,
		},
		Centipede: ChainConfig{
			BaseSpeed:     60,
			SpeedPerLevel: 8,
			BaseSegments:  12,
			MinSegments:   6,
			MaxChains:     3,
			ChainEvery:    3,
			ChainOffsetY:  40,
		},
		Enemies: EnemyConfig{
			SpawnMS:        IntervalConfig{Spider: 8000, Flea: 12000, Scorpion: 20000},
			FloorMS:        IntervalConfig{Spider: 3000, Flea: 5000, Scorpion: 8000},
			LevelStep:      0.1,
			MinFactor:      0.5,
			SpiderChance:   0.7,
			ScorpionChance: 0.5,
			FleaMaxBand:    3,
		},
		Scoring: ScoringConfig{
			Lives:          3,
			ExtraLifeEvery: 10000,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  0.4,
			},
		},
	}
}
