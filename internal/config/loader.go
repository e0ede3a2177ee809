package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSkyhop loads the game configuration.
// Search order: customPath -> ~/.skyhop/configs/skyhop.yaml -> ./configs/skyhop.yaml -> embedded default.
// Files only need to list the keys they override; everything else keeps its default.
func LoadSkyhop(customPath string) (SkyhopConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SkyhopConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseSkyhop(data)
		if err != nil {
			return SkyhopConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("skyhop.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSkyhop(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "skyhop.yaml")); err == nil {
		if cfg, err := parseSkyhop(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSkyhop(defaultSkyhopYAML)
	if err != nil {
		return DefaultSkyhopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSkyhop decodes data on top of the hardcoded defaults.
func parseSkyhop(data []byte) (SkyhopConfig, error) {
	cfg := DefaultSkyhopConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkyhopConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyhop", "configs", filename)
}

// ApplySkyhopPreset modifies the config based on a difficulty preset.
func ApplySkyhopPreset(cfg *SkyhopConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Platforms.SafePlatforms = 6
		cfg.Platforms.BaseWidth = 14
		cfg.Enemies.MinScore = 400
		cfg.Shield.Policy = ShieldPersistent
	case DifficultyHard:
		cfg.Platforms.SafePlatforms = 2
		cfg.Platforms.BaseWidth = 10
		cfg.Items.Chance = 0.2
		cfg.Enemies.MinScore = 50
		cfg.Shield.Policy = ShieldSingleHit
	}
}
