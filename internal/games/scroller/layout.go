package scroller

import (
	"github.com/vovakirdan/scroller/internal/core"
	"github.com/vovakirdan/scroller/internal/games/scroller/engine"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// layout maps world units onto screen cells. Terminal cells are about twice
// as tall as they are wide, so one world unit is twice as many cells across.
type layout struct {
	w, h   int // World size in columns and rows
	sx, sy int // Cells per world unit
	x, y   int // Screen position of the playfield's top-left cell
}

func (l layout) cols() int { return l.w * l.sx }
func (l layout) rows() int { return l.h * l.sy }

// fit picks the world size and scale for a screen. A zero world dimension
// is derived from the screen.
func fit(screenW, screenH, worldW, worldH int) layout {
	rows := core.Max(screenH-hudRows, 1)

	var l layout
	if worldH <= 0 {
		l.sy = core.Clamp(rows/10, 1, 4)
		l.h = core.Max(rows/l.sy, engine.MinWorldHeight)
	} else {
		l.h = core.Max(worldH, engine.MinWorldHeight)
		l.sy = core.Max(rows/l.h, 1)
	}
	l.sx = 2 * l.sy

	if worldW <= 0 {
		l.w = core.Clamp(screenW/l.sx, 1, engine.MaxWorldWidth)
	} else {
		l.w = core.Clamp(worldW, 1, engine.MaxWorldWidth)
		if l.cols() > screenW {
			l.sx = core.Max(screenW/l.w, 1)
		}
	}

	l.x = core.Max((screenW-l.cols())/2, 0)
	l.y = hudRows
	return l
}
