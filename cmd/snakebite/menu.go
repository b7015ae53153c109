package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakebite/internal/games/snake"
	"github.com/vovakirdan/snakebite/internal/platform/tui"
	"github.com/vovakirdan/snakebite/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty interactively",
	Long: `Start snakebite in interactive menu mode.

Pick a board, then a difficulty. When you quit a game you return to the
menu. Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - Scoreboard
  Esc          - Back
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStoreOrWarn(logger)
	if store != nil {
		defer store.Close()
	}

	snake.SetConfigPath(flagConfig)
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		preset, err := tui.RunDifficultySelector(result.Title, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if preset == nil {
			continue
		}
		snake.SetDifficultyPreset(string(*preset))

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		// Fresh seed per game unless the user pinned one.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting", "variant", result.GameID, "difficulty", *preset)
		if err := tui.Run(game, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
