package config

import (
	"math"
	"testing"

	"github.com/vovakirdan/scroller/internal/games/scroller/engine"
)

func TestDifficultyRampStartsAtInitialLevel(t *testing.T) {
	cfg := DefaultScrollerConfig()
	base := cfg.Physics.BaseSpeed

	dm := NewDifficultyManager(cfg.Difficulty, base)
	if dm.StartTick() != 0 {
		t.Errorf("Expected start tick 0, got %d", dm.StartTick())
	}
	if got := dm.Ramp().Speed(0); math.Abs(float64(got)-base) > 1e-7 {
		t.Errorf("Expected base speed %v at tick 0, got %v", base, got)
	}

	dm.SetInitialLevel(1)
	if dm.StartTick() != uint32(cfg.Difficulty.RampTicks) {
		t.Errorf("Expected start tick %d, got %d", cfg.Difficulty.RampTicks, dm.StartTick())
	}
	if got := dm.Ramp().Speed(0); math.Abs(float64(got)-2*base) > 1e-7 {
		t.Errorf("Expected doubled speed at level 1, got %v", got)
	}
}

func TestDifficultyRampGrows(t *testing.T) {
	cfg := DefaultScrollerConfig()
	ramp := NewDifficultyManager(cfg.Difficulty, cfg.Physics.BaseSpeed).Ramp()

	if _, ok := ramp.(engine.LinearRamp); !ok {
		t.Fatalf("Expected LinearRamp, got %T", ramp)
	}
	prev := ramp.Speed(0)
	for tick := uint32(600); tick < 36000; tick += 600 {
		if ramp.Speed(tick) <= prev {
			t.Fatalf("speed should keep growing at tick %d", tick)
		}
		prev = ramp.Speed(tick)
	}
}

func TestDifficultyDisabledIsConstant(t *testing.T) {
	cfg := DefaultScrollerConfig()
	ApplyScrollerPreset(&cfg, DifficultyFixed)

	dm := NewDifficultyManager(cfg.Difficulty, cfg.Physics.BaseSpeed)
	if dm.IsEnabled() {
		t.Fatal("fixed preset should disable progression")
	}
	ramp := dm.Ramp()
	if ramp.Speed(0) != ramp.Speed(100000) {
		t.Error("disabled ramp should not change speed")
	}
	if dm.Level(5000) != dm.Level(0) {
		t.Error("disabled level should not change")
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultScrollerConfig()
	cfg.Difficulty.InitialLevel = 0.5
	dm := NewDifficultyManager(cfg.Difficulty, cfg.Physics.BaseSpeed)

	if got := dm.Level(0); got != 0.5 {
		t.Errorf("Expected level 0.5, got %v", got)
	}
	if got := dm.Level(cfg.Difficulty.RampTicks); got != 1.5 {
		t.Errorf("Expected level 1.5, got %v", got)
	}
}

func TestDifficultyZeroRampTicks(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Enabled: true}, 0.04)
	if dm.IsEnabled() {
		t.Error("zero ramp_ticks should disable progression")
	}
	if dm.StartTick() != 0 {
		t.Error("zero ramp_ticks should start at tick 0")
	}
}

func TestEngineParams(t *testing.T) {
	cfg := DefaultScrollerConfig()
	p := cfg.EngineParams()
	def := engine.DefaultParams()

	if p != def {
		t.Errorf("default config should map to default params:\n got %+v\nwant %+v", p, def)
	}
}
