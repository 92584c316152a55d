// scroller is an endless side-scrolling platformer for the terminal.
//
// Usage:
//
//	scroller list              - List available modes
//	scroller play [mode]       - Play a mode (default: scroller)
//	scroller menu              - Start the title menu
//	scroller serve             - Start SSH server for remote play
//	scroller scores [mode]     - Show best scores and runs
//	scroller sim               - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.scroller/scores.db)
//	--log-level <level> - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/scroller/internal/games/scroller"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "scroller",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scroller",
	Short: "Scroller - an endless platformer in your terminal",
	Long: `Scroller is an endless side-scrolling platformer. The world scrolls
faster and faster; jump over gaps and climb walls for as long as you can.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive title menu
  serve    - Start SSH server for remote play
  scores   - View best scores and runs
  sim      - Run a headless simulation

Examples:
  scroller play
  scroller play free
  scroller menu
  scroller serve --ssh :2222
  scroller sim --ticks 3600 --autopilot --seed 42`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.scroller/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
