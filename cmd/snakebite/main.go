// snakebite is a terminal snake game with an enemy snake on a toroidal board.
//
// Usage:
//
//	snakebite play [variant]   - Play a variant (default: snakebite)
//	snakebite menu             - Pick a variant interactively
//	snakebite list             - List available variants
//	snakebite scores [variant] - Show the best recorded runs
//	snakebite best [--reset]   - Show or clear the stored best score
//
// Global flags:
//
//	--fps <rate>        - Animation frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible runs
//	--db <path>         - Database path (default: ~/.snakebite/scores.db)
//	--log-file <path>   - Write logs to a file (the TUI owns the terminal)
//	--debug             - Log every tick
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakebite/internal/core"
	_ "github.com/vovakirdan/snakebite/internal/games/snake" // Registers the variants
	"github.com/vovakirdan/snakebite/internal/storage"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakebite",
	Short: "Snakebite - outrun the enemy snake in your terminal",
	Long: `Snakebite is a snake game for the terminal. You steer a snake around a
board whose edges wrap, eat food to grow, and stay clear of a second snake
that wanders at random. If its head touches any part of you, the run ends.

Available commands:
  play     - Play a variant directly
  menu     - Interactive variant picker and scoreboard
  list     - Show all variants
  scores   - View the best recorded runs
  best     - Show or reset the stored best score

Examples:
  snakebite play
  snakebite play snakebite_walled --difficulty hard
  snakebite menu
  snakebite scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Animation frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snakebite/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
}

// newLogger builds the process logger. Without --log-file logs are
// discarded, since the game owns the terminal. The returned closer is
// never nil.
func newLogger() (*log.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closer := func() error { return nil }

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakebite",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FPS = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStoreOrWarn opens the database. The game still runs without one.
func openStoreOrWarn(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without persistence", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}
