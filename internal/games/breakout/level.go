// Package breakout implements the brick breaker: a paddle, one ball, and a
// wall of binary-digit bricks.
package breakout

import (
	"github.com/vovakirdan/binary-arcade/internal/collide"
	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/spawn"
)

// Brick is a single brick of the wall.
type Brick struct {
	Rect    core.RectF
	Visible bool
	Digit   rune
}

// Wall is the brick layout, row-major.
type Wall struct {
	Bricks []Brick
	Points int // per brick
}

// NewWall lays out rows x cols bricks, each labelled with a random digit.
func NewWall(cfg config.BreakoutBricks, src spawn.Source) Wall {
	w := Wall{
		Bricks: make([]Brick, 0, cfg.Rows*cfg.Cols),
		Points: cfg.Points,
	}
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			w.Bricks = append(w.Bricks, Brick{
				Rect: core.NewRectF(
					float64(col)*(cfg.Width+cfg.Padding)+cfg.OffsetLeft,
					float64(row)*(cfg.Height+cfg.Padding)+cfg.OffsetTop,
					cfg.Width,
					cfg.Height,
				),
				Visible: true,
				Digit:   spawn.Digit(src),
			})
		}
	}
	return w
}

// Clone returns a deep copy of the wall.
func (w Wall) Clone() Wall {
	out := Wall{Bricks: make([]Brick, len(w.Bricks)), Points: w.Points}
	copy(out.Bricks, w.Bricks)
	return out
}

// CountVisible returns the number of bricks still standing.
func (w Wall) CountVisible() int {
	n := 0
	for _, b := range w.Bricks {
		if b.Visible {
			n++
		}
	}
	return n
}

// Cleared reports whether every brick has been hit.
func (w Wall) Cleared() bool {
	return w.CountVisible() == 0
}

// Hit hides every visible brick containing p and returns how many were
// hidden.
func (w *Wall) Hit(p core.Vec) int {
	n := 0
	for i := range w.Bricks {
		b := &w.Bricks[i]
		if b.Visible && collide.StrictlyInside(p, b.Rect) {
			b.Visible = false
			n++
		}
	}
	return n
}
