package flappy

import (
	"github.com/vovakirdan/binary-arcade/internal/collide"
	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/spawn"
)

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X      float64 // Left edge
	Top    float64 // Height of the top section
	Bottom float64 // Y where the bottom section starts
	Scored bool    // Whether the player has passed this pipe
	Digit  rune
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect(width float64) core.RectF {
	return core.NewRectF(p.X, 0, width, p.Top)
}

// BottomRect returns the collision rectangle for the bottom portion of the pipe.
func (p Pipe) BottomRect(width, canvasH float64) core.RectF {
	return core.NewRectF(p.X, p.Bottom, width, canvasH-p.Bottom)
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes      []Pipe
	rng        spawn.Source
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
}

// NewPipeManager creates a pipe manager drawing gaps from rng.
func NewPipeManager(rng spawn.Source, cfg config.FlappyConfig, diff *config.DifficultyManager) *PipeManager {
	return &PipeManager{
		pipes:      make([]Pipe, 0, 8),
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
	}
}

// Clone returns an independent copy sharing the random source.
func (pm *PipeManager) Clone() *PipeManager {
	out := *pm
	out.pipes = append(make([]Pipe, 0, len(pm.pipes)+1), pm.pipes...)
	return &out
}

// Reset clears all pipes.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
}

// Spawn adds a pipe at the right edge every Interval frames. The top
// section height is uniform in [Margin, Margin + H - gap - Reserve).
func (pm *PipeManager) Spawn(frame, score int) bool {
	if frame%pm.cfg.Pipes.Interval != 0 {
		return false
	}
	h := pm.cfg.Canvas.Height
	gap := pm.difficulty.GapSize(pm.cfg.Pipes.Gap, score, frame)
	top := spawn.Between(pm.rng, pm.cfg.Pipes.Margin, h-gap-pm.cfg.Pipes.Reserve)
	pm.pipes = append(pm.pipes, Pipe{
		X:      pm.cfg.Canvas.Width,
		Top:    top,
		Bottom: top + gap,
		Digit:  spawn.Digit(pm.rng),
	})
	return true
}

// Update moves pipes left, drops those off-screen, and returns how many
// were passed this frame (right edge left of birdX).
func (pm *PipeManager) Update(birdX float64, score, frame int) int {
	speed := pm.difficulty.Speed(pm.cfg.Pipes.Speed, score, frame)
	width := pm.cfg.Pipes.Width
	passed := 0

	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= speed
		if !p.Scored && p.X+width < birdX {
			p.Scored = true
			passed++
		}
		if p.X+width < 0 {
			continue
		}
		kept = append(kept, p)
	}
	pm.pipes = kept
	return passed
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests whether the bird box overlaps the top or bottom
// section of any pipe. Touching an edge is not a hit.
func (pm *PipeManager) CheckCollision(bird core.RectF) bool {
	width, h := pm.cfg.Pipes.Width, pm.cfg.Canvas.Height
	for _, p := range pm.pipes {
		if collide.Overlap(bird, p.TopRect(width)) || collide.Overlap(bird, p.BottomRect(width, h)) {
			return true
		}
	}
	return false
}
