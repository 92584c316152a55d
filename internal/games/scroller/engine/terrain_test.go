package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubSource replays fixed draws: every Intn returns step, every Float64 returns roll.
type stubSource struct {
	step int
	roll float64
}

func (s stubSource) Intn(n int) int {
	if s.step >= n {
		return n - 1
	}
	return s.step
}

func (s stubSource) Float64() float64 { return s.roll }

// flatSource never changes height and never places walls.
var flatSource = stubSource{step: 1, roll: 1}

func testTerrainParams() TerrainParams {
	return DefaultParams().Terrain
}

func TestTerrainHeightAtPeriodic(t *testing.T) {
	terrain := NewTerrain(10, rand.New(rand.NewSource(7)), testTerrainParams())
	terrain.ExtendTo(Capacity - 1)

	for c := -3 * Capacity; c < 3*Capacity; c++ {
		require.Equal(t, terrain.HeightAt(c), terrain.HeightAt(c+Capacity), "column %d", c)
	}
	require.Equal(t, terrain.HeightAt(Capacity-1), terrain.HeightAt(-1))
}

func TestTerrainExtendIdempotent(t *testing.T) {
	terrain := NewTerrain(10, rand.New(rand.NewSource(11)), testTerrainParams())
	terrain.ExtendTo(20)

	snapshot := terrain.columns
	mark := terrain.HighWater()

	terrain.ExtendTo(20)
	terrain.ExtendTo(5)
	terrain.ExtendTo(-10)

	require.Equal(t, snapshot, terrain.columns)
	require.Equal(t, mark, terrain.HighWater())
}

func TestTerrainHighWaterMonotonic(t *testing.T) {
	terrain := NewTerrain(10, rand.New(rand.NewSource(3)), testTerrainParams())
	require.Equal(t, -1, terrain.HighWater())

	last := terrain.HighWater()
	for target := 0; target < 500; target += 3 {
		terrain.ExtendTo(target)
		require.GreaterOrEqual(t, terrain.HighWater(), target)
		require.LessOrEqual(t, terrain.HighWater(), target+2, "wall pair overshoots by at most two")
		require.GreaterOrEqual(t, terrain.HighWater(), last)
		last = terrain.HighWater()
	}
}

func TestTerrainHeightsBounded(t *testing.T) {
	for _, ceiling := range []int{4, 10, 24} {
		terrain := NewTerrain(ceiling, rand.New(rand.NewSource(int64(ceiling))), testTerrainParams())
		for target := 0; target < 5000; target += 10 {
			terrain.ExtendTo(target)
			for c := terrain.HighWater() - Capacity + 1; c <= terrain.HighWater(); c++ {
				h := terrain.HeightAt(c)
				require.GreaterOrEqual(t, h, terrain.MinFloor(), "ceiling %d column %d", ceiling, c)
				require.Less(t, h, terrain.Ceiling(), "ceiling %d column %d", ceiling, c)
			}
		}
	}
}

func TestTerrainEmptyRangeIsCeiling(t *testing.T) {
	terrain := NewTerrain(10, flatSource, testTerrainParams())
	terrain.ExtendTo(40)

	for a := -50; a < 50; a++ {
		require.Equal(t, 10, terrain.MinHeightOver(a, a))
	}
	require.Equal(t, 10, terrain.MinHeightOver(5, 2), "reversed range is empty")
}

func TestTerrainMinHeightOver(t *testing.T) {
	terrain := NewTerrain(10, flatSource, testTerrainParams())
	terrain.ExtendTo(10)
	terrain.set(4, 6)
	terrain.set(5, 7)

	require.Equal(t, 8, terrain.MinHeightOver(0, 4))
	require.Equal(t, 6, terrain.MinHeightOver(3, 5))
	require.Equal(t, 7, terrain.MinHeightOver(5, 7))
}

func TestTerrainWallPair(t *testing.T) {
	p := testTerrainParams()
	p.SafeColumns = 0
	terrain := NewTerrain(10, stubSource{step: 1, roll: 0}, p)
	terrain.ExtendTo(0)

	start := 10 - p.StartDepth
	require.Equal(t, 2, terrain.HighWater())
	require.Equal(t, start-p.WallRise, terrain.HeightAt(0))
	require.Equal(t, start-p.WallRise, terrain.HeightAt(1))
	require.Equal(t, start, terrain.HeightAt(2))
}

func TestTerrainWallClampedToFloorRange(t *testing.T) {
	p := testTerrainParams()
	p.SafeColumns = 0
	p.WallRise = 100
	terrain := NewTerrain(10, stubSource{step: 1, roll: 0}, p)
	terrain.ExtendTo(30)

	for c := 0; c <= terrain.HighWater(); c++ {
		require.GreaterOrEqual(t, terrain.HeightAt(c), terrain.MinFloor())
	}
}

func TestTerrainSafeColumnsFlat(t *testing.T) {
	p := testTerrainParams()
	terrain := NewTerrain(10, stubSource{step: 0, roll: 0}, p)
	terrain.ExtendTo(p.SafeColumns - 1)

	for c := 0; c < p.SafeColumns; c++ {
		require.Equal(t, 10-p.StartDepth, terrain.HeightAt(c))
	}
}

func TestTerrainRandomWalkStep(t *testing.T) {
	terrain := NewTerrain(20, rand.New(rand.NewSource(99)), TerrainParams{StartDepth: 5})
	terrain.ExtendTo(2000)

	// Without walls, neighbours differ by at most one.
	for c := terrain.HighWater() - Capacity + 2; c <= terrain.HighWater(); c++ {
		diff := terrain.HeightAt(c) - terrain.HeightAt(c-1)
		require.True(t, diff >= -1 && diff <= 1, "column %d diff %d", c, diff)
	}
}
