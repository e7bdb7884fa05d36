package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

func applyProgression(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyPreset adjusts every game in the set for a difficulty preset.
// Fixed leaves the loaded values untouched and disables progression.
func (s *Set) ApplyPreset(preset DifficultyPreset) {
	applyProgression(&s.Flappy.Difficulty, preset)
	applyProgression(&s.Breakout.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		s.Breakout.Lives = 5
		s.Breakout.Paddle.Width = 130
		s.Snake.TickMS = 130
		s.Tetris.BaseDropMS = 1200
	case DifficultyHard:
		s.Breakout.Lives = 2
		s.Breakout.Paddle.Width = 80
		s.Snake.TickMS = 70
		s.Tetris.BaseDropMS = 700
	}
}

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// With progression disabled the level is 0, so base values apply unchanged.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales baseSpeed up to base * (1 + speed_multiplier) at max level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	return baseSpeed * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize shrinks baseGap by up to gap_reduction, never below min_gap.
func (d *DifficultyManager) GapSize(baseGap float64, score int, ticks int) float64 {
	gap := baseGap - d.Level(score, ticks)*d.cfg.Scaling.GapReduction
	if d.cfg.Scaling.MinGap > 0 && gap < d.cfg.Scaling.MinGap {
		gap = math.Min(d.cfg.Scaling.MinGap, baseGap)
	}
	return gap
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
