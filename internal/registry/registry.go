// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// BestKey is the persistent best-score key, or "" when the game keeps
	// no best.
	BestKey() string

	// Reset returns the game to idle with fresh entities and score 0.
	Reset(cfg core.RuntimeConfig)

	// Start begins a fresh running session from idle, over or won.
	// It is a no-op while running.
	Start()

	// Step advances the simulation by one fixed tick. It does nothing
	// unless the session is running and unpaused.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. It must not change the state.
	Render(dst core.Canvas)

	// State returns the current game state (score, status, paused).
	State() core.GameState

	// Stats returns HUD lines such as lives or level.
	Stats() []core.Stat

	// Interval is the fixed simulation step.
	Interval() time.Duration

	// Bounds is the logical canvas size in pixels.
	Bounds() (w, h float64)

	// Abort ends a running session as over without scoring side effects.
	// Used when a step faults.
	Abort()
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game from the loaded configuration.
type Factory func(cfg config.Set) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(config.DefaultSet()).Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, cfg config.Set) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(cfg), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
