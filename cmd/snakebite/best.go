package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakebite/internal/games/snake"
	"github.com/vovakirdan/snakebite/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the stored best score",
	Long: `Print the best score the game keeps between sessions.
With --reset the stored value is cleared; run history is left alone.`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the stored best score")
}

func runBest(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagReset {
		if err := store.Delete(snake.BestScoreKey); err != nil {
			return err
		}
		fmt.Println("Best score cleared.")
		return nil
	}

	best := snake.NewScoreKeeper(store, nil).Best()
	fmt.Printf("Best score: %d\n", best)
	return nil
}
