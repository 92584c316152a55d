// Package config provides YAML-based configuration loading and difficulty
// management for the scroller.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// ScrollerConfig contains all configuration for the scroller game.
type ScrollerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Player     PlayerConfig     `yaml:"player"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig sets the visible window in world columns and rows.
// Zero means "fit the terminal".
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines the kinematics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpHeight  float64 `yaml:"jump_height"`
	BaseSpeed   float64 `yaml:"base_speed"`
	SpeedFactor float64 `yaml:"speed_factor"`
	WalkSpeed   float64 `yaml:"walk_speed"`
	Lookback    float64 `yaml:"lookback"`
}

// TerrainConfig defines procedural generation.
type TerrainConfig struct {
	GapChance   float64 `yaml:"gap_chance"`
	WallRise    int     `yaml:"wall_rise"`
	StartDepth  int     `yaml:"start_depth"`
	SafeColumns int     `yaml:"safe_columns"`
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	StartColumn int     `yaml:"start_column"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

// InputConfig defines how long terminal key presses stay latched, in ticks.
type InputConfig struct {
	JumpBuffer int `yaml:"jump_buffer"`
	MoveHold   int `yaml:"move_hold"`
}

// DifficultyConfig defines the speed ramp.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // Ramp periods already elapsed at tick 0
	RampTicks    int     `yaml:"ramp_ticks"`    // Ticks for the speed to grow by one base speed
}

// Validate reports the first out-of-range field.
func (c ScrollerConfig) Validate() error {
	switch {
	case c.World.Width < 0 || c.World.Height < 0:
		return fmt.Errorf("%w: world size must not be negative", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidConfig, c.Physics.Gravity)
	case c.Physics.JumpHeight <= 0:
		return fmt.Errorf("%w: jump_height must be positive, got %v", ErrInvalidConfig, c.Physics.JumpHeight)
	case c.Physics.BaseSpeed <= 0:
		return fmt.Errorf("%w: base_speed must be positive, got %v", ErrInvalidConfig, c.Physics.BaseSpeed)
	case c.Physics.SpeedFactor <= 1:
		return fmt.Errorf("%w: speed_factor must be above 1, got %v", ErrInvalidConfig, c.Physics.SpeedFactor)
	case c.Physics.Lookback < 0:
		return fmt.Errorf("%w: lookback must not be negative", ErrInvalidConfig)
	case c.Terrain.GapChance < 0 || c.Terrain.GapChance > 1:
		return fmt.Errorf("%w: gap_chance must be in [0, 1], got %v", ErrInvalidConfig, c.Terrain.GapChance)
	case c.Terrain.WallRise < 0 || c.Terrain.StartDepth < 0 || c.Terrain.SafeColumns < 0:
		return fmt.Errorf("%w: terrain counts must not be negative", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Width > 1 || c.Player.Height <= 0 || c.Player.Height > 1:
		return fmt.Errorf("%w: player size must be in (0, 1]", ErrInvalidConfig)
	case c.Player.StartColumn < 0:
		return fmt.Errorf("%w: start_column must not be negative", ErrInvalidConfig)
	case c.Input.JumpBuffer < 0 || c.Input.MoveHold < 0:
		return fmt.Errorf("%w: input latches must not be negative", ErrInvalidConfig)
	case c.Difficulty.InitialLevel < 0:
		return fmt.Errorf("%w: initial_level must not be negative", ErrInvalidConfig)
	case c.Difficulty.RampTicks < 0:
		return fmt.Errorf("%w: ramp_ticks must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.25
	case DifficultyHard:
		return 1.0
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
