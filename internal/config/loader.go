package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Game ids with a config file.
const (
	GameSnake    = "snake"
	GameBreakout = "breakout"
	GameFlappy   = "flappy"
	GameTetris   = "tetris"
	GameClicker  = "clicker"
)

// Games lists every configurable game id.
var Games = []string{GameClicker, GameSnake, GameBreakout, GameFlappy, GameTetris}

var extensions = []string{".yaml", ".yml", ".toml"}

// Loader resolves config files.
// Search order: custom path -> UserDir/<game>.{yaml,yml,toml} ->
// LocalDir/<game>.{yaml,yml,toml} -> embedded default -> hardcoded default.
type Loader struct {
	UserDir  string // usually ~/.arcade/configs
	LocalDir string // usually ./configs
}

// DefaultLoader searches the user's home config directory and ./configs.
func DefaultLoader() Loader {
	l := Loader{LocalDir: "configs"}
	if home, err := os.UserHomeDir(); err == nil {
		l.UserDir = filepath.Join(home, ".arcade", "configs")
	}
	return l
}

// Resolve returns the file that would be loaded for game, or "" when the
// embedded default applies.
func (l Loader) Resolve(game, customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, dir := range []string{l.UserDir, l.LocalDir} {
		if dir == "" {
			continue
		}
		for _, ext := range extensions {
			p := filepath.Join(dir, game+ext)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

type validator interface {
	Validate() error
}

// load fills cfg, which holds hardcoded defaults on entry. Files found on
// the search path that fail to parse or validate are skipped; a bad custom
// path is an error.
func load[T validator](l Loader, game, customPath string, embedded []byte, embeddedName string, cfg T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		out, err := decode(customPath, data, cfg)
		if err != nil {
			return cfg, err
		}
		return out, nil
	}

	if p := l.Resolve(game, ""); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if out, err := decode(p, data, cfg); err == nil {
				return out, nil
			}
		}
	}

	if out, err := decode(embeddedName, embedded, cfg); err == nil {
		return out, nil
	}
	return cfg, nil
}

// decode parses data by file extension on top of base and validates the
// result.
func decode[T validator](name string, data []byte, base T) (T, error) {
	out := base
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).Decode(&out)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(data, &out)
	default:
		return base, fmt.Errorf("config: unsupported format %q", filepath.Ext(name))
	}
	if err != nil {
		return base, fmt.Errorf("config: cannot parse %s: %w", name, err)
	}
	if err := out.Validate(); err != nil {
		return base, fmt.Errorf("config: %s: %w", name, err)
	}
	return out, nil
}

// LoadSnake loads the Snake configuration.
func (l Loader) LoadSnake(customPath string) (SnakeConfig, error) {
	return load(l, GameSnake, customPath, defaultSnakeYAML, "snake.yaml", DefaultSnakeConfig())
}

// LoadBreakout loads the Breakout configuration.
func (l Loader) LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load(l, GameBreakout, customPath, defaultBreakoutYAML, "breakout.yaml", DefaultBreakoutConfig())
}

// LoadFlappy loads the Flappy configuration.
func (l Loader) LoadFlappy(customPath string) (FlappyConfig, error) {
	return load(l, GameFlappy, customPath, defaultFlappyYAML, "flappy.yaml", DefaultFlappyConfig())
}

// LoadTetris loads the Tetris configuration.
func (l Loader) LoadTetris(customPath string) (TetrisConfig, error) {
	return load(l, GameTetris, customPath, defaultTetrisYAML, "tetris.yaml", DefaultTetrisConfig())
}

// LoadClicker loads the Clicker configuration. A file without upgrades
// keeps the default upgrade list; a file with upgrades replaces it.
func (l Loader) LoadClicker(customPath string) (ClickerConfig, error) {
	base := DefaultClickerConfig()
	base.Upgrades = nil
	cfg, err := load(l, GameClicker, customPath, defaultClickerTOML, "clicker.toml", base)
	if len(cfg.Upgrades) == 0 {
		cfg.Upgrades = DefaultClickerConfig().Upgrades
	}
	return cfg, err
}

// LoadSet loads every game. custom maps a game id to an explicit file.
func (l Loader) LoadSet(custom map[string]string) (Set, error) {
	var s Set
	var errs []error
	var err error

	s.Snake, err = l.LoadSnake(custom[GameSnake])
	errs = append(errs, err)
	s.Breakout, err = l.LoadBreakout(custom[GameBreakout])
	errs = append(errs, err)
	s.Flappy, err = l.LoadFlappy(custom[GameFlappy])
	errs = append(errs, err)
	s.Tetris, err = l.LoadTetris(custom[GameTetris])
	errs = append(errs, err)
	s.Clicker, err = l.LoadClicker(custom[GameClicker])
	errs = append(errs, err)

	return s, errors.Join(errs...)
}

// Reload re-reads the configuration of a single game into s.
func (l Loader) Reload(s *Set, game, customPath string) error {
	var err error
	switch game {
	case GameSnake:
		s.Snake, err = l.LoadSnake(customPath)
	case GameBreakout:
		s.Breakout, err = l.LoadBreakout(customPath)
	case GameFlappy:
		s.Flappy, err = l.LoadFlappy(customPath)
	case GameTetris:
		s.Tetris, err = l.LoadTetris(customPath)
	case GameClicker:
		s.Clicker, err = l.LoadClicker(customPath)
	default:
		return fmt.Errorf("config: unknown game %q", game)
	}
	return err
}
