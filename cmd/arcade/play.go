package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/binary-arcade/internal/platform/tui"
	"github.com/vovakirdan/binary-arcade/internal/registry"
)

var (
	flagConfig string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter/Space - Start, or play again after game over
  R           - Reset to the start screen
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, more lives, slower snake and tetris
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, fewer lives, faster snake and tetris
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play snake
  arcade play breakout --difficulty easy
  arcade play flappy --difficulty hard
  arcade play tetris --fps 30
  arcade play flappy --config ./my-flappy.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, logCloser := fileLogger()
	defer logCloser.Close()

	custom := map[string]string{}
	if flagConfig != "" {
		custom[gameID] = flagConfig
	}
	set, err := loadConfigs(logger, custom)
	if err != nil && flagConfig != "" {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID, set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	bridge, store := openBridge(logger)
	defer store.Close()

	cfg := runtimeConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	opts := tui.Options{
		Bridge:  bridge,
		Logger:  logger,
		Configs: set,
	}

	if flagWatch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		updates, err := watchConfigs(ctx, logger, set, custom, []string{gameID})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: config watch disabled: %v\n", err)
		} else {
			opts.Updates = updates
		}
	}

	logger.Info("playing", "game", gameID, "seed", cfg.Seed, "fps", cfg.FrameRate)
	if err := tui.Run(game, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
