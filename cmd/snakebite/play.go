package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakebite/internal/config"
	"github.com/vovakirdan/snakebite/internal/games/snake"
	"github.com/vovakirdan/snakebite/internal/platform/tui"
	"github.com/vovakirdan/snakebite/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: snakebite).

Controls:
  Arrows/WASD/HJKL - Steer
  Any key          - Start, or play again after game over
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 200 ms ticks, enemy turns rarely
  normal - 150 ms ticks (default)
  hard   - 100 ms ticks, enemy turns often

Examples:
  snakebite play
  snakebite play snakebite_walled
  snakebite play --difficulty hard
  snakebite play --config ./my-snake.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := snake.IDTorus
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'snakebite list' to see variants)", gameID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStoreOrWarn(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "variant", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
