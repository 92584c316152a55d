package engine

import (
	"math"

	"github.com/vovakirdan/scroller/internal/core"
)

// Lookahead is how many columns past the visible window are generated each tick.
const Lookahead = 2

// MaxWorldWidth is the widest visible window the ring buffer can serve.
// The window, the look-ahead, a wall pair overshoot and the columns under a
// player straddling the camera edge must all fit in Capacity.
const MaxWorldWidth = Capacity - Lookahead - 5

// MinWorldHeight keeps room for a floor range of at least two heights.
const MinWorldHeight = 4

// Params holds the tuning of one run. Units are world columns/rows and ticks.
type Params struct {
	Gravity     float32   // Added to vertical velocity every tick
	JumpHeight  float32   // Apex height of a jump above the takeoff surface
	BaseSpeed   float32   // Feed speed at tick 0
	RampTicks   float32   // Ticks after which the feed speed has doubled
	SpeedFactor float32   // Player speed relative to the feed, > 1
	WalkSpeed   float32   // Horizontal speed in free mode
	Lookback    float32   // Max distance the camera trails the player's left edge
	PlayerSize  core.Vec2 // Each axis in (0, 1]
	StartColumn int
	Terrain     TerrainParams
}

// DefaultParams returns the canonical runner tuning.
func DefaultParams() Params {
	return Params{
		Gravity:     0.01,
		JumpHeight:  2.5,
		BaseSpeed:   0.04,
		RampTicks:   3600,
		SpeedFactor: 1.25,
		WalkSpeed:   0.1,
		Lookback:    4,
		PlayerSize:  core.V2(0.75, 0.75),
		StartColumn: 2,
		Terrain: TerrainParams{
			GapChance:   0.05,
			WallRise:    2,
			StartDepth:  2,
			SafeColumns: 6,
		},
	}
}

// sanitize forces params into the ranges the simulation relies on.
func (p Params) sanitize(width int) Params {
	def := DefaultParams()
	if p.PlayerSize.X <= 0 || p.PlayerSize.X > 1 {
		p.PlayerSize.X = def.PlayerSize.X
	}
	if p.PlayerSize.Y <= 0 || p.PlayerSize.Y > 1 {
		p.PlayerSize.Y = def.PlayerSize.Y
	}
	if p.Lookback < 0 {
		p.Lookback = 0
	}
	if maxLookback := float32(width - 2); p.Lookback > maxLookback {
		p.Lookback = max(maxLookback, 0)
	}
	p.StartColumn = core.Clamp(p.StartColumn, 0, max(width-2, 0))
	return p
}

// LaunchSpeed returns the upward speed that reaches height under gravity,
// from v² = 2gh.
func LaunchSpeed(height, gravity float32) float32 {
	return float32(math.Sqrt(float64(2 * height * gravity)))
}

// Ramp yields the forward feed speed for a tick.
type Ramp interface {
	Speed(tick uint32) float32
}

// LinearRamp grows the speed by Base every Stretch ticks: the increase never
// stops but its relative size keeps shrinking.
type LinearRamp struct {
	Base    float32
	Stretch float32
	Offset  uint32 // Ticks already "played" at tick 0
}

// Speed implements Ramp.
func (r LinearRamp) Speed(tick uint32) float32 {
	if r.Stretch <= 0 {
		return r.Base
	}
	return r.Base * (r.Stretch + float32(tick+r.Offset)) / r.Stretch
}

// ConstantRamp is a feed that never speeds up.
type ConstantRamp float32

// Speed implements Ramp.
func (r ConstantRamp) Speed(uint32) float32 {
	return float32(r)
}
