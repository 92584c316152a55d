package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/scroller/internal/core"
	"github.com/vovakirdan/scroller/internal/games/scroller"
	"github.com/vovakirdan/scroller/internal/platform/tui"
	"github.com/vovakirdan/scroller/internal/registry"
	"github.com/vovakirdan/scroller/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: scroller).

Modes:
  scroller       - The world scrolls on its own and speeds up over time
  scroller_free  - Walk at your own pace with A/D, no forced scrolling
  (runner and free are accepted as short names)

Controls:
  Space/W/Up - Jump
  A/D        - Walk (free run)
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Starts slow, wider jump buffer, fewer gaps
  normal - Starts at a quarter of the ramp
  hard   - Starts a full ramp ahead, more gaps
  fixed  - No speed growth

Examples:
  scroller play
  scroller play free
  scroller play --difficulty hard
  scroller play --config ./my-scroller.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// resolveMode maps short mode names onto registered game IDs.
func resolveMode(args []string) string {
	if len(args) == 0 {
		return scroller.RunnerID
	}
	switch args[0] {
	case "runner":
		return scroller.RunnerID
	case "free":
		return scroller.FreeID
	}
	return args[0]
}

// terminalSize returns the size of stdout, falling back to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the scores database, returning nil when it is unavailable.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := resolveMode(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'scroller list' to see available modes.")
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	scroller.SetConfigPath(flagConfig)
	scroller.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if the database is unavailable
	store := openStore()

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
