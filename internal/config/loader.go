package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "centipede.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.centipede/configs/centipede.yaml -> ./configs/centipede.yaml -> embedded default.
// Files only need the fields they override. A custom path ending in .toml
// is decoded as TOML, anything else as YAML.
func Load(customPath string) (CentipedeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCentipedeConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg := DefaultCentipedeConfig()
		if err := decode(customPath, data, &cfg); err != nil {
			return DefaultCentipedeConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", FileName)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultCentipedeConfig()
	if err := yaml.Unmarshal(defaultCentipedeYAML, &cfg); err != nil {
		return DefaultCentipedeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile reads an optional config file. Missing or broken files are skipped.
func tryFile(path string) (CentipedeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CentipedeConfig{}, false
	}
	cfg := DefaultCentipedeConfig()
	if err := decode(path, data, &cfg); err != nil {
		return CentipedeConfig{}, false
	}
	return cfg, true
}

func decode(path string, data []byte, cfg *CentipedeConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".centipede", "configs", filename)
}

// ApplyCentipedePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyCentipedePreset(cfg *CentipedeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.Lives = 5
		cfg.Player.Speed = 240
		cfg.Enemies.SpawnMS = scaleIntervals(cfg.Enemies.SpawnMS, 1.5)
	case DifficultyHard:
		cfg.Scoring.Lives = 2
		cfg.Player.Speed = 180
		cfg.Enemies.SpawnMS = scaleIntervals(cfg.Enemies.SpawnMS, 0.75)
	}
}

func scaleIntervals(iv IntervalConfig, f float64) IntervalConfig {
	return IntervalConfig{Spider: iv.Spider * f, Flea: iv.Flea * f, Scorpion: iv.Scorpion * f}
}
