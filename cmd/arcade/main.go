// arcade is a terminal arcade of five binary-themed mini-games sharing one
// real-time game loop: clicker, snake, breakout, flappy and tetris.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Switch between all games in tabs
//	arcade serve             - Start SSH server for remote play
//	arcade scores            - Show or clear best scores
//
// Global flags:
//
//	--fps <rate>          - Frame rate of frame-driven games (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/logging"
	"github.com/vovakirdan/binary-arcade/internal/score"
	"github.com/vovakirdan/binary-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/binary-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/binary-arcade/internal/games/clicker"
	_ "github.com/vovakirdan/binary-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/binary-arcade/internal/games/snake"
	_ "github.com/vovakirdan/binary-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Binary Arcade - five mini-games in your terminal",
	Long: `Binary Arcade is a terminal port of a small web arcade: a binary
clicker, snake, breakout, flappy and tetris, all sharing one real-time
game loop.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - All games in tabs
  serve    - Start SSH server for remote play
  scores   - View or clear best scores

Examples:
  arcade list
  arcade play snake
  arcade play flappy --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagDifficulty == "" {
			return nil
		}
		_, err := config.ParsePreset(flagDifficulty)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate of frame-driven games")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultFile, "Log file of interactive sessions")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// fileLogger opens the log file of an interactive command. The alt screen
// owns the terminal, so nothing is logged to stderr. A file that cannot be
// opened discards logs.
func fileLogger() (*log.Logger, io.Closer) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	logger, closer, err := logging.OpenFile(flagLogFile, level, "arcade")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}

// openBridge opens the scores database behind a bridge. When the database
// is unavailable bests live in memory for this run.
func openBridge(logger *log.Logger) (*score.Bridge, io.Closer) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable, bests kept in memory", "err", err)
		return score.NewBridge(score.NewMemoryStore(), logger), io.NopCloser(nil)
	}
	return score.NewBridge(store, logger), store
}

// loadConfigs loads every game config and applies the difficulty preset,
// already validated by the root command. custom maps a game id to an
// explicit config file.
func loadConfigs(logger *log.Logger, custom map[string]string) (config.Set, error) {
	set, err := config.DefaultLoader().LoadSet(custom)
	if err != nil {
		logger.Warn("config problems, using defaults where needed", "err", err)
	}
	if preset, perr := config.ParsePreset(flagDifficulty); flagDifficulty != "" && perr == nil {
		set.ApplyPreset(preset)
	}
	return set, err
}

// runtimeConfig sizes the runtime config to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.FrameRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
