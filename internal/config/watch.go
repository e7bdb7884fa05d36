package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to config files as game ids on Changes.
// Parent directories are watched, so editors that replace the file on
// save are still seen.
type Watcher struct {
	fs      *fsnotify.Watcher
	logger  *log.Logger
	changes chan string

	mu     sync.Mutex
	files  map[string]string // cleaned absolute path -> game id
	dirs   map[string]bool
	closed bool
}

// NewWatcher creates an idle watcher. Call Add, then Run.
func NewWatcher(logger *log.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Watcher{
		fs:      fs,
		logger:  logger,
		changes: make(chan string, 8),
		files:   make(map[string]string),
		dirs:    make(map[string]bool),
	}, nil
}

// Changes delivers the id of each game whose config file changed.
// It is closed when Run returns.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Add starts watching path as the config file of game.
func (w *Watcher) Add(game, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New("config: watcher already closed")
	}
	if !w.dirs[dir] {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("config: cannot watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.files[filepath.Clean(abs)] = game
	return nil
}

// Run forwards relevant events until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.changes)
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			game, watched := w.files[filepath.Clean(e.Name)]
			w.mu.Unlock()
			if !watched {
				continue
			}
			w.logger.Debug("config changed", "game", game, "file", e.Name, "op", e.Op.String())
			select {
			case w.changes <- game:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher", "err", err)

		case <-ctx.Done():
			return
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.fs.Close()
}
