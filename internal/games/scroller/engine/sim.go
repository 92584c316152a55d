// Package engine implements the scroller simulation: kinematic integration,
// terrain generation, collision against the heightfield, camera scrolling and
// the difficulty ramp. It has no rendering, timing or I/O; a shell calls Step
// once per tick and reads state back.
package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/scroller/internal/core"
)

// edgeTolerance absorbs float drift when an edge sits on a column boundary.
const edgeTolerance = 1e-4

// Mode selects how the horizontal axis is driven.
type Mode int

const (
	ModeRunner Mode = iota // Auto-scroll; the camera is the kill line
	ModeFree               // Left/right movement, camera follows
)

// Death is the reason a run ended.
type Death int

const (
	Alive   Death = iota
	Crushed       // The scroll edge reached the player's right edge
	Fell          // The player left the playfield
)

// String returns the storage name of the cause.
func (d Death) String() string {
	switch d {
	case Crushed:
		return "crushed"
	case Fell:
		return "fell"
	default:
		return ""
	}
}

// Input is the per-tick control state.
type Input struct {
	Jump  bool
	Left  bool // Free mode only
	Right bool // Free mode only
}

// Player is the kinematic body the simulation advances.
type Player struct {
	Shape    core.Box
	Velocity core.Vec2
}

// Simulation is one run. It is not safe for concurrent use.
type Simulation struct {
	width    int
	height   int
	params   Params
	mode     Mode
	ramp     Ramp
	player   Player
	offset   float32 // World x of the left edge of the visible window
	terrain  *Terrain
	tick     uint32
	speed    float32 // Feed speed used by the last step
	grounded bool
	ground   float32 // Surface the player stood on after the last step
	death    Death
}

type options struct {
	src    Source
	params Params
	ramp   Ramp
	mode   Mode
}

// Option configures a Simulation.
type Option func(*options)

// WithSource sets the terrain randomness. Seeded sources make runs reproducible.
func WithSource(src Source) Option {
	return func(o *options) { o.src = src }
}

// WithSeed seeds a private *rand.Rand for the terrain.
func WithSeed(seed int64) Option {
	return WithSource(rand.New(rand.NewSource(seed)))
}

// WithParams replaces the default tuning.
func WithParams(p Params) Option {
	return func(o *options) { o.params = p }
}

// WithRamp replaces the default LinearRamp built from the params.
func WithRamp(r Ramp) Option {
	return func(o *options) { o.ramp = r }
}

// WithMode selects runner or free mode.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// New creates a simulation whose visible window is width columns by height
// rows. The width is clamped to [1, MaxWorldWidth] and the height to at least
// MinWorldHeight so the terrain ring can always serve the window.
func New(width, height int, opts ...Option) *Simulation {
	o := options{params: DefaultParams(), mode: ModeRunner}
	for _, opt := range opts {
		opt(&o)
	}

	width = core.Clamp(width, 1, MaxWorldWidth)
	height = core.Max(height, MinWorldHeight)
	p := o.params.sanitize(width)

	if o.src == nil {
		o.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.ramp == nil {
		o.ramp = LinearRamp{Base: p.BaseSpeed, Stretch: p.RampTicks}
	}

	s := &Simulation{
		width:   width,
		height:  height,
		params:  p,
		mode:    o.mode,
		ramp:    o.ramp,
		terrain: NewTerrain(height, o.src, p.Terrain),
	}
	s.terrain.ExtendTo(width + Lookahead)
	s.speed = s.ramp.Speed(0)

	x := float32(p.StartColumn)
	from, to := footprint(x, x+p.PlayerSize.X)
	s.ground = float32(s.terrain.MinHeightOver(from, to))
	s.grounded = true
	s.player.Shape = core.NewBox(x, s.ground-p.PlayerSize.Y, p.PlayerSize.X, p.PlayerSize.Y)
	if s.mode == ModeRunner {
		s.player.Velocity.X = s.speed * p.SpeedFactor
	}
	return s
}

// Step advances the run by one tick. It is a no-op once the run has ended.
// Vertical collision resolves before horizontal collision, which decides the
// corner case of landing and meeting a wall on the same tick.
func (s *Simulation) Step(in Input) {
	if s.death != Alive {
		return
	}

	s.terrain.ExtendTo(int(math.Floor(float64(s.offset))) + s.width + Lookahead)

	s.speed = s.ramp.Speed(s.tick)
	s.tick++

	p := &s.player
	switch s.mode {
	case ModeRunner:
		p.Velocity.X = s.speed * s.params.SpeedFactor
	case ModeFree:
		p.Velocity.X = 0
		if in.Left {
			p.Velocity.X -= s.params.WalkSpeed
		}
		if in.Right {
			p.Velocity.X += s.params.WalkSpeed
		}
	}
	p.Velocity.Y += s.params.Gravity

	s.resolveVertical(in.Jump)
	s.resolveHorizontal()

	p.Shape.Offset(p.Velocity)
	s.advanceCamera()

	if d := s.check(); d != Alive {
		s.death = d
	}
}

func (s *Simulation) resolveVertical(jump bool) {
	p := &s.player
	from, to := footprint(p.Shape.Left(), p.Shape.Right())
	under := float32(s.terrain.MinHeightOver(from, to))

	s.grounded = false
	if p.Shape.Bottom()+p.Velocity.Y < under {
		return
	}

	p.Velocity.Y = 0
	p.Shape.SetBottom(under)
	s.grounded = true
	s.ground = under
	if jump {
		p.Velocity.Y = -LaunchSpeed(s.params.JumpHeight, s.params.Gravity)
	}
}

func (s *Simulation) resolveHorizontal() {
	p := &s.player
	vx := p.Velocity.X
	if vx == 0 {
		return
	}

	from, to := footprint(p.Shape.Left()+vx, p.Shape.Right()+vx)
	under := float32(s.terrain.MinHeightOver(from, to))
	if p.Shape.Bottom() <= under {
		return
	}

	if vx > 0 {
		p.Shape.SetRight(ceilEdge(p.Shape.Right()))
	} else {
		p.Shape.SetLeft(floorEdge(p.Shape.Left()))
	}
	p.Velocity.X = 0
}

func (s *Simulation) advanceCamera() {
	p := &s.player
	switch s.mode {
	case ModeRunner:
		s.offset = max(s.offset+s.speed, p.Shape.Left()-s.params.Lookback)
	case ModeFree:
		s.offset = max(s.offset, p.Shape.Right()-float32(s.width)+s.params.Lookback)
		// Columns behind the camera may already be overwritten.
		if p.Shape.Left() < s.offset {
			p.Shape.SetLeft(s.offset)
		}
	}
}

func (s *Simulation) check() Death {
	p := s.player.Shape
	if s.mode == ModeRunner && !(s.offset < p.Right()) {
		return Crushed
	}
	if !(p.Top() < float32(s.height)) {
		return Fell
	}
	return Alive
}

// Alive reports whether the run is still going. Once false it stays false.
func (s *Simulation) Alive() bool {
	return s.death == Alive
}

// Death returns why the run ended, or Alive.
func (s *Simulation) Death() Death {
	return s.death
}

// Player returns a copy of the player body.
func (s *Simulation) Player() Player {
	return s.player
}

// Offset returns the camera offset in world columns.
func (s *Simulation) Offset() float32 {
	return s.offset
}

// Terrain returns the heightfield for read-only queries.
func (s *Simulation) Terrain() *Terrain {
	return s.terrain
}

// Ticks returns how many steps have run.
func (s *Simulation) Ticks() uint32 {
	return s.tick
}

// Speed returns the feed speed applied by the last step.
func (s *Simulation) Speed() float32 {
	return s.speed
}

// Grounded reports whether the last step ended with the player on a surface.
func (s *Simulation) Grounded() bool {
	return s.grounded
}

// Ground returns the surface height the player last stood on.
func (s *Simulation) Ground() float32 {
	return s.ground
}

// Distance returns how far the player has moved from the start column.
func (s *Simulation) Distance() float32 {
	return s.player.Shape.Left() - float32(s.params.StartColumn)
}

// Params returns the sanitized tuning in use.
func (s *Simulation) Params() Params {
	return s.params
}

// Mode returns the movement mode.
func (s *Simulation) Mode() Mode {
	return s.mode
}

// WorldWidth returns the visible window width in columns.
func (s *Simulation) WorldWidth() int {
	return s.width
}

// WorldHeight returns the playfield height in rows.
func (s *Simulation) WorldHeight() int {
	return s.height
}

// footprint returns the half-open column range a horizontal span overlaps.
func footprint(left, right float32) (from, to int) {
	return int(floorEdge(left)), int(ceilEdge(right))
}

func floorEdge(x float32) float32 {
	return float32(math.Floor(float64(x) + edgeTolerance))
}

func ceilEdge(x float32) float32 {
	return float32(math.Ceil(float64(x) - edgeTolerance))
}
