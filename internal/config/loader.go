package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadScroller loads scroller configuration. Fields missing from the file keep
// their default values.
// Search order: customPath -> ~/.scroller/configs/scroller.yaml -> ./configs/scroller.yaml -> embedded default
func LoadScroller(customPath string) (ScrollerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ScrollerConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parseScroller(data)
		if err != nil {
			return ScrollerConfig{}, fmt.Errorf("config: cannot load %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("scroller.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseScroller(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "scroller.yaml")); err == nil {
		if cfg, err := parseScroller(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseScroller(defaultScrollerYAML)
	if err != nil {
		return DefaultScrollerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseScroller decodes data over the defaults and validates the result.
func parseScroller(data []byte) (ScrollerConfig, error) {
	cfg := DefaultScrollerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ScrollerConfig{}, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ScrollerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scroller", "configs", filename)
}

// ApplyScrollerPreset modifies the config based on a difficulty preset.
func ApplyScrollerPreset(cfg *ScrollerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust generation based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Terrain.GapChance = 0.03
		cfg.Input.JumpBuffer = max(cfg.Input.JumpBuffer, 8)
	case DifficultyHard:
		cfg.Terrain.GapChance = 0.08
	}
}
