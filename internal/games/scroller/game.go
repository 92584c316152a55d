// Package scroller adapts the runner simulation to the platform: it maps the
// config onto engine parameters, latches terminal key presses into per-tick
// input, and draws the visible window onto a screen buffer.
package scroller

import (
	"fmt"
	"math"

	"github.com/vovakirdan/scroller/internal/config"
	"github.com/vovakirdan/scroller/internal/core"
	"github.com/vovakirdan/scroller/internal/games/scroller/engine"
	"github.com/vovakirdan/scroller/internal/registry"
)

// Game IDs.
const (
	RunnerID = "scroller"
	FreeID   = "scroller_free"
)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	SurfaceChar = '▀'
	GroundChar  = '▓'
	BorderChar  = '│'
)

// PointsPerColumn converts distance travelled into score.
const PointsPerColumn = 10

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's difficulty.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements registry.Game on top of engine.Simulation.
type Game struct {
	mode       engine.Mode
	sim        *engine.Simulation
	cfg        config.ScrollerConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	layout     layout
	paused     bool

	jumpTicks  int // Remaining ticks a jump press stays armed
	leftTicks  int
	rightTicks int
}

// New creates a runner game.
func New() *Game {
	return &Game{mode: engine.ModeRunner}
}

// NewFree creates a free-movement game.
func NewFree() *Game {
	return &Game{mode: engine.ModeFree}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == engine.ModeFree {
		return FreeID
	}
	return RunnerID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == engine.ModeFree {
		return "Scroller: Free Run"
	}
	return "Scroller"
}

// Reset starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadScroller(configPath)
	if err != nil {
		cfg = config.DefaultScrollerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyScrollerPreset(&cfg, difficultyPreset)
	}
	g.resetWith(cfg)
}

// ResetWithConfig starts a new run from an explicit config, skipping the
// file search.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.ScrollerConfig) {
	g.runtime = runtime
	g.resetWith(cfg)
}

func (g *Game) resetWith(cfg config.ScrollerConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty, cfg.Physics.BaseSpeed)
	g.layout = fit(g.runtime.ScreenW, g.runtime.ScreenH, cfg.World.Width, cfg.World.Height)

	g.sim = engine.New(g.layout.w, g.layout.h,
		engine.WithSeed(g.runtime.Seed),
		engine.WithParams(cfg.EngineParams()),
		engine.WithRamp(g.difficulty.Ramp()),
		engine.WithMode(g.mode),
	)
	g.layout.w = g.sim.WorldWidth()
	g.layout.h = g.sim.WorldHeight()

	g.paused = false
	g.jumpTicks = 0
	g.leftTicks = 0
	g.rightTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil || !g.sim.Alive() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.latch(in)
	g.sim.Step(engine.Input{
		Jump:  g.jumpTicks > 0,
		Left:  g.leftTicks > 0,
		Right: g.rightTicks > 0,
	})

	// A jump that fired consumes the buffered press
	if g.sim.Grounded() && g.sim.Player().Velocity.Y < 0 {
		g.jumpTicks = 0
	}
	g.jumpTicks = max(g.jumpTicks-1, 0)
	g.leftTicks = max(g.leftTicks-1, 0)
	g.rightTicks = max(g.rightTicks-1, 0)

	return core.StepResult{State: g.State()}
}

// latch turns discrete key presses into short held states. Terminals deliver
// key repeats, not key releases.
func (g *Game) latch(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		g.jumpTicks = max(g.cfg.Input.JumpBuffer, 1)
	}
	if in.Has(core.ActionLeft) {
		g.leftTicks = max(g.cfg.Input.MoveHold, 1)
		g.rightTicks = 0
	}
	if in.Has(core.ActionRight) {
		g.rightTicks = max(g.cfg.Input.MoveHold, 1)
		g.leftTicks = 0
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.score(),
		GameOver: !g.sim.Alive(),
		Paused:   g.paused,
	}
}

// Summary describes the current run.
func (g *Game) Summary() core.RunSummary {
	if g.sim == nil {
		return core.RunSummary{Seed: g.runtime.Seed}
	}
	return core.RunSummary{
		Seed:     g.runtime.Seed,
		Ticks:    int(g.sim.Ticks()),
		Distance: math.Max(float64(g.sim.Distance()), 0),
		Score:    g.score(),
		Cause:    g.sim.Death().String(),
	}
}

// Sim exposes the underlying simulation for read-only inspection.
func (g *Game) Sim() *engine.Simulation {
	return g.sim
}

// Config returns the config the current run was built from.
func (g *Game) Config() config.ScrollerConfig {
	return g.cfg
}

func (g *Game) score() int {
	d := g.sim.Distance()
	if d <= 0 {
		return 0
	}
	return int(float64(d) * PointsPerColumn)
}

// Render draws the visible window, the player and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	l := g.layout

	g.drawTerrain(dst)
	g.drawPlayer(dst)

	// Frame the playfield when the screen is wider than the world
	for y := l.y; y < l.y+l.rows(); y++ {
		dst.SetColored(l.x-1, y, BorderChar, core.ColorGray)
		dst.SetColored(l.x+l.cols(), y, BorderChar, core.ColorGray)
	}

	// Draw HUD
	dst.DrawTextColored(l.x, 0, fmt.Sprintf(" Score: %d ", g.score()), core.ColorBrightWhite)
	if g.mode == engine.ModeFree {
		dst.DrawTextCentered(0, "FREE RUN")
	} else if g.difficulty.IsEnabled() {
		level := g.difficulty.Level(int(g.sim.Ticks()))
		levelText := fmt.Sprintf(" Spd x%.2f ", 1+level)
		dst.DrawTextColored(l.x+l.cols()-len(levelText), 0, levelText, core.ColorYellow)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if !g.sim.Alive() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score()))
	}
}

// drawTerrain fills every screen column with the height of the world column
// under its centre.
func (g *Game) drawTerrain(dst *core.Screen) {
	l := g.layout
	off := g.sim.Offset()
	t := g.sim.Terrain()

	for px := 0; px < l.cols(); px++ {
		wx := off + (float32(px)+0.5)/float32(l.sx)
		top := t.HeightAt(int(math.Floor(float64(wx)))) * l.sy
		for py := top; py < l.rows(); py++ {
			r, c := GroundChar, core.ColorDarkGray
			if py == top {
				r, c = SurfaceChar, core.ColorGreen
			}
			dst.SetColored(l.x+px, l.y+py, r, c)
		}
	}
}

// drawPlayer projects the player box onto the screen, clipped to the playfield.
func (g *Game) drawPlayer(dst *core.Screen) {
	l := g.layout
	b := g.sim.Player().Shape
	off := g.sim.Offset()

	x0 := core.Max(int(math.Floor(float64((b.Left()-off)*float32(l.sx)))), 0)
	x1 := core.Clamp(int(math.Ceil(float64((b.Right()-off)*float32(l.sx)))), 0, l.cols())
	y0 := core.Max(int(math.Floor(float64(b.Top()*float32(l.sy)))), 0)
	y1 := core.Clamp(int(math.Ceil(float64(b.Bottom()*float32(l.sy)))), 0, l.rows())

	color := core.ColorYellow
	if !g.sim.Grounded() {
		color = core.ColorCyan
	}
	if !g.sim.Alive() {
		color = core.ColorRed
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(l.x+x, l.y+y, PlayerChar, color)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the game with the registry
func init() {
	registry.Register(RunnerID, func() registry.Game {
		return New()
	})
	registry.Register(FreeID, func() registry.Game {
		return NewFree()
	})
}
