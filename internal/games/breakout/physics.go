package breakout

import (
	"github.com/vovakirdan/binary-arcade/internal/collide"
	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
)

// Ball is the ball in canvas pixels.
type Ball struct {
	Pos    core.Vec // center
	Vel    core.Vec // per tick
	Radius float64
}

func newBall(cfg config.BreakoutBall) Ball {
	return Ball{
		Pos:    core.Vec{X: cfg.X, Y: cfg.Y},
		Vel:    core.Vec{X: cfg.DX, Y: cfg.DY},
		Radius: cfg.Radius,
	}
}

// Move advances the ball by its velocity scaled by speed.
func (b *Ball) Move(speed float64) {
	b.Pos.X += b.Vel.X * speed
	b.Pos.Y += b.Vel.Y * speed
}

// Paddle is the player's paddle. X is the left edge.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

func newPaddle(cfg config.BreakoutPaddle) Paddle {
	return Paddle{X: cfg.X, Y: cfg.Y, Width: cfg.Width, Height: cfg.Height, Speed: cfg.Speed}
}

// Rect returns the paddle rectangle.
func (p Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Nudge moves the paddle one key step in dir, staying on the canvas.
func (p *Paddle) Nudge(dir int, canvasW float64) {
	p.X = core.ClampF(p.X+float64(dir)*p.Speed, 0, canvasW-p.Width)
}

// bounceWalls reflects the ball off the side walls and the ceiling and
// clamps it back inside the canvas.
func bounceWalls(b *Ball, w float64, refl *collide.Reflector) {
	if b.Pos.X+b.Radius > w || b.Pos.X-b.Radius < 0 {
		refl.FlipX(&b.Vel)
		b.Pos.X = core.ClampF(b.Pos.X, b.Radius, w-b.Radius)
	}
	if b.Pos.Y-b.Radius < 0 {
		refl.FlipY(&b.Vel)
		b.Pos.Y = b.Radius
	}
}

// bouncePaddle reflects a descending ball that reached the paddle's top
// while strictly within its horizontal span. The outgoing horizontal speed
// depends on where the ball hit.
func bouncePaddle(b *Ball, p Paddle, spin float64, refl *collide.Reflector) bool {
	if b.Vel.Y <= 0 || b.Pos.Y+b.Radius <= p.Y {
		return false
	}
	if !collide.SpanOverlap(b.Pos.X, b.Pos.X, p.X, p.X+p.Width) {
		return false
	}
	if !refl.FlipY(&b.Vel) {
		return false
	}
	hit := (b.Pos.X - p.X) / p.Width
	b.Vel.X = (hit - 0.5) * spin
	return true
}
