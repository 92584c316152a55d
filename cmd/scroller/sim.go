package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scroller/internal/config"
	"github.com/vovakirdan/scroller/internal/core"
	"github.com/vovakirdan/scroller/internal/games/scroller"
)

var (
	flagSimTicks     int
	flagSimAutopilot bool
	flagSimRecord    bool
	flagSimMode      string
	flagSimWidth     int
	flagSimHeight    int
	flagSimShow      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal UI and print a summary.

The same seed and flags always produce the same run, so a recorded run
can be replayed by passing its seed back in.

Examples:
  scroller sim --seed 42
  scroller sim --ticks 7200 --autopilot --seed 7
  scroller sim --mode free --autopilot --record
  scroller sim --autopilot --show --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Let the built-in bot play")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the finished run to the scores database")
	simCmd.Flags().StringVar(&flagSimMode, "mode", "runner", "Mode: runner or free")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Virtual screen width")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Virtual screen height")
	simCmd.Flags().BoolVar(&flagSimShow, "show", false, "Print the final frame")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simulate drives a game for up to ticks steps or until the run ends.
func simulate(game *scroller.Game, ticks int, autopilot bool) core.RunSummary {
	for i := 0; i < ticks; i++ {
		frame := core.NewInputFrame()
		if autopilot {
			frame = game.AutopilotFrame()
		}
		if game.Step(frame).State.GameOver {
			break
		}
	}
	return game.Summary()
}

// loadSimConfig loads the game config and applies the difficulty preset.
func loadSimConfig() (config.ScrollerConfig, error) {
	cfg, err := config.LoadScroller(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyScrollerPreset(&cfg, preset)
	}
	return cfg, nil
}

func runSim(_ *cobra.Command, _ []string) error {
	var game *scroller.Game
	switch flagSimMode {
	case "runner", scroller.RunnerID:
		game = scroller.New()
	case "free", scroller.FreeID:
		game = scroller.NewFree()
	default:
		return fmt.Errorf("unknown mode %q (want runner or free)", flagSimMode)
	}

	cfg, err := loadSimConfig()
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			logger.Error("invalid game config", "error", err)
		}
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{
		ScreenW:  flagSimWidth,
		ScreenH:  flagSimHeight,
		TickRate: flagFPS,
		Seed:     seed,
	}

	game.ResetWithConfig(runtime, cfg)
	logger.Debug("simulation started",
		"mode", game.ID(),
		"seed", seed,
		"world", fmt.Sprintf("%dx%d", game.Sim().WorldWidth(), game.Sim().WorldHeight()),
		"autopilot", flagSimAutopilot,
	)

	start := time.Now()
	sum := simulate(game, flagSimTicks, flagSimAutopilot)

	logger.Info("simulation finished",
		"mode", game.ID(),
		"seed", sum.Seed,
		"ticks", sum.Ticks,
		"distance", fmt.Sprintf("%.2f", sum.Distance),
		"score", sum.Score,
		"cause", sum.Cause,
		"elapsed", time.Since(start),
	)

	if flagSimShow {
		screen := core.NewScreen(runtime.ScreenW, runtime.ScreenH)
		game.Render(screen)
		fmt.Println(screen.String())
	}

	if flagSimRecord {
		store := openStore()
		if store == nil {
			return errors.New("cannot record run: scores database unavailable")
		}
		defer store.Close()

		id, err := store.SaveRunSummary(game.ID(), sum)
		if err != nil {
			return fmt.Errorf("cannot record run: %w", err)
		}
		if sum.Score > 0 {
			if _, err := store.SaveScore(game.ID(), sum.Score); err != nil {
				logger.Warn("could not save score", "error", err)
			}
		}
		logger.Info("run recorded", "id", id)
	}

	if sum.Cause == "" {
		fmt.Fprintf(os.Stdout, "survived %d ticks, distance %.2f, score %d (seed %d)\n", sum.Ticks, sum.Distance, sum.Score, sum.Seed)
	} else {
		fmt.Fprintf(os.Stdout, "%s after %d ticks, distance %.2f, score %d (seed %d)\n", sum.Cause, sum.Ticks, sum.Distance, sum.Score, sum.Seed)
	}
	return nil
}
