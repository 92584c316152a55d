package engine

import "github.com/vovakirdan/scroller/internal/core"

// Capacity is the number of columns the terrain ring buffer holds.
const Capacity = 30

// Source is the randomness terrain generation draws from.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// TerrainParams controls procedural generation.
type TerrainParams struct {
	GapChance   float64 // Probability per column of a wall pair obstacle
	WallRise    int     // How much higher (numerically smaller) wall columns are
	StartDepth  int     // Ground thickness of the first column, in world rows
	SafeColumns int     // Leading columns generated flat at the start height
}

// Terrain is a heightfield over an unbounded row of world columns, stored in
// a fixed ring of Capacity slots. Heights follow a top-left origin: a smaller
// height is a higher floor surface.
type Terrain struct {
	ceiling   int
	minFloor  int
	columns   [Capacity]int
	highWater int // Last generated world column, -1 before any generation
	src       Source
	params    TerrainParams
}

// NewTerrain creates an ungenerated terrain for a playfield ceiling rows tall.
// Every slot starts at the start height.
func NewTerrain(ceiling int, src Source, p TerrainParams) *Terrain {
	t := &Terrain{
		ceiling:   ceiling,
		minFloor:  ceiling / 2,
		highWater: -1,
		src:       src,
		params:    p,
	}
	start := t.clamp(ceiling - p.StartDepth)
	for i := range t.columns {
		t.columns[i] = start
	}
	return t
}

// Ceiling returns the playfield height, also the "no obstruction" height.
func (t *Terrain) Ceiling() int {
	return t.ceiling
}

// MinFloor returns the highest surface (smallest height) generation may produce.
func (t *Terrain) MinFloor() int {
	return t.minFloor
}

// HighWater returns the furthest generated world column.
func (t *Terrain) HighWater() int {
	return t.highWater
}

// HeightAt returns the floor height stored for a world column.
// Negative columns map into the ring with floor modulo.
func (t *Terrain) HeightAt(column int) int {
	return t.columns[core.FloorMod(column, Capacity)]
}

// MinHeightOver returns the highest surface over the world columns [from, to).
// An empty range returns the ceiling.
func (t *Terrain) MinHeightOver(from, to int) int {
	lowest := t.ceiling
	for c := from; c < to; c++ {
		if h := t.HeightAt(c); h < lowest {
			lowest = h
		}
	}
	return lowest
}

// ExtendTo generates columns up to and including target.
// Columns at or below the high-water mark are never regenerated. A wall pair
// writes three columns at once, so the mark may end up to two past target.
func (t *Terrain) ExtendTo(target int) {
	for t.highWater < target {
		prev := t.HeightAt(t.highWater)
		next := t.highWater + 1

		if next < t.params.SafeColumns {
			t.set(next, prev)
			t.highWater = next
			continue
		}

		if t.src.Float64() < t.params.GapChance {
			wall := t.clamp(prev - t.params.WallRise)
			t.set(next, wall)
			t.set(next+1, wall)
			t.set(next+2, prev)
			t.highWater = next + 2
			continue
		}

		t.set(next, t.clamp(prev+t.src.Intn(3)-1))
		t.highWater = next
	}
}

func (t *Terrain) set(column, height int) {
	t.columns[core.FloorMod(column, Capacity)] = height
}

func (t *Terrain) clamp(h int) int {
	return core.Clamp(h, t.minFloor, t.ceiling-1)
}
