package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with every game in tabs",
	Long: `Start the arcade in tabbed mode.

Only the visible game runs. Switching away pauses its loop and switching
back resumes it where it was.

Controls:
  Tab/Shift+Tab - Next/previous game (or click a tab)
  Enter/Space   - Start the visible game
  R             - Reset the visible game
  Q             - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --watch
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload config files when they change")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, logCloser := fileLogger()
	defer logCloser.Close()

	set, _ := loadConfigs(logger, nil)

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
		updates, err := watchConfigs(ctx, logger, set, map[string]string{}, config.Games)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: config watch disabled: %v\n", err)
		} else {
			opts.Updates = updates
		}
	}

	if err := tui.RunArcade(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
