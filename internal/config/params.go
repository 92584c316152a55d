package config

import (
	"github.com/vovakirdan/scroller/internal/core"
	"github.com/vovakirdan/scroller/internal/games/scroller/engine"
)

// EngineParams converts the config into simulation tuning.
func (c ScrollerConfig) EngineParams() engine.Params {
	return engine.Params{
		Gravity:     float32(c.Physics.Gravity),
		JumpHeight:  float32(c.Physics.JumpHeight),
		BaseSpeed:   float32(c.Physics.BaseSpeed),
		RampTicks:   float32(c.Difficulty.RampTicks),
		SpeedFactor: float32(c.Physics.SpeedFactor),
		WalkSpeed:   float32(c.Physics.WalkSpeed),
		Lookback:    float32(c.Physics.Lookback),
		PlayerSize:  core.V2(float32(c.Player.Width), float32(c.Player.Height)),
		StartColumn: c.Player.StartColumn,
		Terrain: engine.TerrainParams{
			GapChance:   c.Terrain.GapChance,
			WallRise:    c.Terrain.WallRise,
			StartDepth:  c.Terrain.StartDepth,
			SafeColumns: c.Terrain.SafeColumns,
		},
	}
}
