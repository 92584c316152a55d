package config

import (
	_ "embed"
)

//go:embed defaults/scroller.yaml
var defaultScrollerYAML []byte

// DefaultScrollerConfig returns the default scroller configuration.
func DefaultScrollerConfig() ScrollerConfig {
	return ScrollerConfig{
		World: WorldConfig{
			Width:  14,
			Height: 10,
		},
		Physics: PhysicsConfig{
			Gravity:     0.01,
			JumpHeight:  2.5,
			BaseSpeed:   0.04,
			SpeedFactor: 1.25,
			WalkSpeed:   0.1,
			Lookback:    4,
		},
		Terrain: TerrainConfig{
			GapChance:   0.05,
			WallRise:    2,
			StartDepth:  2,
			SafeColumns: 6,
		},
		Player: PlayerConfig{
			StartColumn: 2,
			Width:       0.75,
			Height:      0.75,
		},
		Input: InputConfig{
			JumpBuffer: 6,
			MoveHold:   8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			RampTicks:    3600, // one minute at 60 fps
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "scroller", "scroller_free":
		return defaultScrollerYAML
	default:
		return nil
	}
}
