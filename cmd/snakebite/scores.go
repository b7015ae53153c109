package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakebite/internal/games/snake"
	"github.com/vovakirdan/snakebite/internal/registry"
	"github.com/vovakirdan/snakebite/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best recorded runs",
	Long: `Display the best runs recorded for a variant (default: snakebite).

Examples:
  snakebite scores
  snakebite scores snakebite_walled --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := snake.IDTorus
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snakebite play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-16s  %s\n", "Rank", "Score", "Ticks", "Date", "Run")
	fmt.Printf("  %-4s  %-6s  %-6s  %-16s  %s\n", "----", "-----", "-----", "----", "---")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-16s  %s\n",
			i+1, r.Score, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"), shortID(r.RunID))
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Total ticks: %d\n",
		stats.Runs, stats.HighScore, stats.AvgScore, stats.TotalTicks)
	return nil
}

// shortID trims a run id to its first group for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
