package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scroller/internal/registry"
	"github.com/vovakirdan/scroller/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRuns  bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best scores for a mode",
	Long: `Display the top scores for the given mode (default: scroller).

With --runs, show the best recorded runs with their seed, distance and
cause of death instead. A run's seed replays it with 'scroller sim --seed'.

Examples:
  scroller scores
  scroller scores free --runs
  scroller scores --limit 25
  scroller scores free --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "Show recorded runs instead of scores")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := resolveMode(args)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'scroller list' to see available modes.")
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	if flagScoresRuns {
		printRuns(store, gameID, title)
	} else {
		printScores(store, gameID, title)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Avg: %.0f  Runs: %d  Farthest: %.1f\n",
			stats.HighScore, stats.AvgScore, stats.GamesCount, stats.BestDistance)
	}
}

func printScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'scroller play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printRuns(store *storage.Store, gameID, title string) {
	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-20s  %-7s  %s\n", "Rank", "Score", "Distance", "Ticks", "Seed", "Cause", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-20s  %-7s  %s\n", "----", "-----", "--------", "-----", "----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8.1f  %-7d  %-20d  %-7s  %s\n",
			i+1, r.Score, r.Distance, r.Ticks, r.Seed, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
