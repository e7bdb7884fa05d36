package breakout

import (
	"math"

	"github.com/vovakirdan/binary-arcade/internal/core"
)

// Snapshot contains the game state for determinism tests and debugging.
// Uses primitive types only.
type Snapshot struct {
	Tick    uint64
	Status  core.Status
	Score   int
	Lives   int
	PaddleX float64
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64

	// One entry per brick, row-major: 1 if visible.
	Bricks []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]int, len(g.wall.Bricks))
	for i, b := range g.wall.Bricks {
		if b.Visible {
			bricks[i] = 1
		}
	}
	return Snapshot{
		Tick:    g.tick,
		Status:  g.Status(),
		Score:   g.score,
		Lives:   g.lives,
		PaddleX: g.paddle.X,
		BallX:   g.ball.Pos.X,
		BallY:   g.ball.Pos.Y,
		BallDX:  g.ball.Vel.X,
		BallDY:  g.ball.Vel.Y,
		Bricks:  bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Status)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)

	for _, v := range snap.Bricks {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
