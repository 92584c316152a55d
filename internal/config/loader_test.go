package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded ScrollerConfig
	if err := yaml.Unmarshal(GetDefaultYAML("scroller"), &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if embedded != DefaultScrollerConfig() {
		t.Errorf("embedded defaults drifted from DefaultScrollerConfig():\n got %+v\nwant %+v", embedded, DefaultScrollerConfig())
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadScrollerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.02\nplayer:\n  start_column: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadScroller(path)
	if err != nil {
		t.Fatalf("LoadScroller() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.02 {
		t.Errorf("Expected gravity 0.02, got %v", cfg.Physics.Gravity)
	}
	if cfg.Player.StartColumn != 5 {
		t.Errorf("Expected start column 5, got %d", cfg.Player.StartColumn)
	}
	// Missing fields keep their defaults
	if cfg.Physics.JumpHeight != DefaultScrollerConfig().Physics.JumpHeight {
		t.Errorf("Expected default jump height, got %v", cfg.Physics.JumpHeight)
	}
}

func TestLoadScrollerCustomPathMissing(t *testing.T) {
	_, err := LoadScroller(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestLoadScrollerCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadScroller(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadScrollerSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", work)
	t.Cleanup(func() { _ = os.Chdir(oldwd) })

	// Nothing on disk: embedded default
	cfg, err := LoadScroller("")
	if err != nil {
		t.Fatalf("LoadScroller() failed: %v", err)
	}
	if cfg != DefaultScrollerConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}

	// Local configs directory
	writeConfig(t, filepath.Join(work, "configs", "scroller.yaml"), "terrain:\n  wall_rise: 3\n")
	cfg, _ = LoadScroller("")
	if cfg.Terrain.WallRise != 3 {
		t.Errorf("Expected local config wall_rise 3, got %d", cfg.Terrain.WallRise)
	}

	// User config wins over local
	writeConfig(t, filepath.Join(home, ".scroller", "configs", "scroller.yaml"), "terrain:\n  wall_rise: 1\n")
	cfg, _ = LoadScroller("")
	if cfg.Terrain.WallRise != 1 {
		t.Errorf("Expected user config wall_rise 1, got %d", cfg.Terrain.WallRise)
	}

	// Broken user config falls through to local
	writeConfig(t, filepath.Join(home, ".scroller", "configs", "scroller.yaml"), "terrain: [\n")
	cfg, _ = LoadScroller("")
	if cfg.Terrain.WallRise != 3 {
		t.Errorf("Expected fallback to local config, got wall_rise %d", cfg.Terrain.WallRise)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ScrollerConfig)
	}{
		{"zero gravity", func(c *ScrollerConfig) { c.Physics.Gravity = 0 }},
		{"negative jump", func(c *ScrollerConfig) { c.Physics.JumpHeight = -1 }},
		{"slow player", func(c *ScrollerConfig) { c.Physics.SpeedFactor = 1 }},
		{"gap chance", func(c *ScrollerConfig) { c.Terrain.GapChance = 1.5 }},
		{"player too wide", func(c *ScrollerConfig) { c.Player.Width = 1.5 }},
		{"negative world", func(c *ScrollerConfig) { c.World.Height = -3 }},
		{"negative buffer", func(c *ScrollerConfig) { c.Input.JumpBuffer = -1 }},
		{"negative ramp", func(c *ScrollerConfig) { c.Difficulty.RampTicks = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultScrollerConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestApplyScrollerPreset(t *testing.T) {
	cfg := DefaultScrollerConfig()
	ApplyScrollerPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != InitialLevelForPreset(DifficultyHard) {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}
	if cfg.Terrain.GapChance <= DefaultScrollerConfig().Terrain.GapChance {
		t.Errorf("hard preset should place more walls, got %v", cfg.Terrain.GapChance)
	}

	cfg = DefaultScrollerConfig()
	ApplyScrollerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable the ramp")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(name)
		if err != nil || string(p) != name {
			t.Errorf("ParsePreset(%q) = %q, %v", name, p, err)
		}
	}
	if p, _ := ParsePreset(""); p != DifficultyNormal {
		t.Errorf("empty preset should mean normal, got %q", p)
	}
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
