package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Frame clock for frame-driven games (default 60)
	Seed      int64 // RNG seed for deterministic gameplay

	// Rand overrides the seeded source when set. Tests use it to script
	// spawn sequences.
	Rand *rand.Rand
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// NewRand returns the configured random source, seeding one if needed.
func (c RuntimeConfig) NewRand() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.New(rand.NewSource(c.Seed))
}

// FrameInterval is the fixed step of frame-driven games.
func (c RuntimeConfig) FrameInterval() time.Duration {
	fps := c.FrameRate
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// Stat is a labelled HUD value such as "Lives 3".
type Stat struct {
	Label string
	Value string
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int    // Current score
	Status Status // Session status
	Paused bool   // Whether the running session is paused
}

// Terminal reports whether the session has ended (over or won).
func (s GameState) Terminal() bool {
	return s.Status.Terminal()
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
