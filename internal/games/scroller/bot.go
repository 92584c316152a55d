package scroller

import (
	"math"

	"github.com/vovakirdan/scroller/internal/core"
	"github.com/vovakirdan/scroller/internal/games/scroller/engine"
)

// reactionTicks is how far ahead, in ticks of forward motion, the autopilot
// looks for a rise. A jump clears a two-row wall between roughly 12 and 32
// ticks after takeoff.
const reactionTicks = 20

// Autopilot returns the input a simple bot would press: jump when a higher
// surface is within reach ahead. In free mode it also walks right.
func Autopilot(s *engine.Simulation) engine.Input {
	in := engine.Input{Right: s.Mode() == engine.ModeFree}
	if !s.Alive() || !s.Grounded() {
		return in
	}

	p := s.Params()
	vx := p.WalkSpeed
	if s.Mode() == engine.ModeRunner {
		vx = s.Speed() * p.SpeedFactor
	}

	right := s.Player().Shape.Right()
	reach := right + vx*reactionTicks
	t := s.Terrain()
	from := int(math.Floor(float64(right)))
	to := min(int(math.Floor(float64(reach))), t.HighWater())
	for c := from; c <= to; c++ {
		if float32(t.HeightAt(c)) < s.Ground() {
			in.Jump = true
			break
		}
	}
	return in
}

// AutopilotFrame is Autopilot expressed as platform actions.
func (g *Game) AutopilotFrame() core.InputFrame {
	frame := core.NewInputFrame()
	if g.sim == nil {
		return frame
	}
	in := Autopilot(g.sim)
	if in.Jump {
		frame.Set(core.ActionJump)
	}
	if in.Right {
		frame.Set(core.ActionRight)
	}
	return frame
}
