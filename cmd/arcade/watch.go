package main

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/platform/tui"
)

// watchConfigs reloads the config files of games as they change on disk
// and delivers each reloaded set. Games running on embedded defaults have
// no file and are skipped. The channel closes when ctx ends.
func watchConfigs(ctx context.Context, logger *log.Logger, set config.Set, custom map[string]string, games []string) (<-chan tui.ConfigMsg, error) {
	loader := config.DefaultLoader()

	w, err := config.NewWatcher(logger)
	if err != nil {
		return nil, err
	}

	watched := 0
	for _, game := range games {
		path := loader.Resolve(game, custom[game])
		if path == "" {
			logger.Debug("no config file to watch", "game", game)
			continue
		}
		if err := w.Add(game, path); err != nil {
			w.Close()
			return nil, err
		}
		watched++
	}
	if watched == 0 {
		logger.Warn("no config files to watch, using defaults")
	}

	updates := make(chan tui.ConfigMsg, 1)
	go w.Run(ctx)
	go func() {
		defer close(updates)
		defer w.Close()
		for game := range w.Changes() {
			if err := loader.Reload(&set, game, custom[game]); err != nil {
				logger.Warn("config reload failed, keeping previous values", "game", game, "err", err)
				continue
			}
			if flagDifficulty != "" {
				if preset, err := config.ParsePreset(flagDifficulty); err == nil {
					set.ApplyPreset(preset)
				}
			}
			logger.Info("config reloaded", "game", game)
			select {
			case updates <- tui.ConfigMsg{Game: game, Configs: set}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return updates, nil
}
