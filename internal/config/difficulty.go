package config

import (
	"math"

	"github.com/vovakirdan/scroller/internal/games/scroller/engine"
)

// DifficultyManager turns the difficulty section into the engine's speed ramp.
type DifficultyManager struct {
	cfg          DifficultyConfig
	baseSpeed    float64
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, baseSpeed float64) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		baseSpeed:    baseSpeed,
		initialLevel: math.Max(cfg.InitialLevel, 0),
	}
}

// SetInitialLevel overrides the initial difficulty level.
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = math.Max(level, 0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.RampTicks > 0
}

// StartTick returns how many ramp ticks are treated as already played.
func (d *DifficultyManager) StartTick() uint32 {
	if d.cfg.RampTicks <= 0 {
		return 0
	}
	return uint32(d.initialLevel * float64(d.cfg.RampTicks))
}

// Level returns the current difficulty level: the number of base speeds the
// feed has gained, including the initial level.
func (d *DifficultyManager) Level(ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	return d.initialLevel + float64(ticks)/float64(d.cfg.RampTicks)
}

// Ramp returns the feed speed schedule for a new run. With progression
// disabled the feed stays at the initial level's speed.
func (d *DifficultyManager) Ramp() engine.Ramp {
	if !d.IsEnabled() {
		return engine.ConstantRamp(float32(d.baseSpeed * (1 + d.initialLevel)))
	}
	return engine.LinearRamp{
		Base:    float32(d.baseSpeed),
		Stretch: float32(d.cfg.RampTicks),
		Offset:  d.StartTick(),
	}
}
