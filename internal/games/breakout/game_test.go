package breakout

import (
	"testing"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
)

func newStarted(seed int64) *Game {
	g := New(config.DefaultBreakoutConfig())
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	g.Start()
	return g
}

func place(g *Game, x, y, dx, dy float64) {
	g.ball.Pos = core.Vec{X: x, Y: y}
	g.ball.Vel = core.Vec{X: dx, Y: dy}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%7 < 3:
			inputs[i].Set(core.IntentMoveRight)
		case i%7 < 5:
			inputs[i].Set(core.IntentMoveLeft)
		}
	}

	run := func() Snapshot {
		g := newStarted(12345)
		for _, in := range inputs {
			if g.Step(in).State.Terminal() {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick || snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: tick %d/%d score %d/%d", snap1.Tick, snap2.Tick, snap1.Score, snap2.Score)
	}
}

func TestBrickHitFlipsOnceAndHidesOne(t *testing.T) {
	g := newStarted(1)
	before := g.wall.CountVisible()

	// Lands at (30,68), inside the first brick (10..65, 50..70).
	place(g, 30, 72, 0, -4)
	g.Step(core.NewInputFrame())

	if got := g.wall.CountVisible(); got != before-1 {
		t.Errorf("visible bricks = %d, expected %d", got, before-1)
	}
	if g.wall.Bricks[0].Visible {
		t.Error("first brick should be hidden")
	}
	if g.ball.Vel.Y != 4 {
		t.Errorf("dy = %v, expected 4", g.ball.Vel.Y)
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
}

func TestWallHitCountsEveryContainingBrick(t *testing.T) {
	w := Wall{Points: 10, Bricks: []Brick{
		{Rect: core.NewRectF(0, 0, 20, 20), Visible: true},
		{Rect: core.NewRectF(10, 10, 20, 20), Visible: true},
		{Rect: core.NewRectF(50, 50, 20, 20), Visible: true},
	}}
	if n := w.Hit(core.Vec{X: 15, Y: 15}); n != 2 {
		t.Errorf("Hit = %d, expected 2", n)
	}
	if w.CountVisible() != 1 {
		t.Errorf("visible = %d", w.CountVisible())
	}
}

func TestSideWallReflectsAndClamps(t *testing.T) {
	g := newStarted(1)
	place(g, 595, 300, 4, -4)
	g.Step(core.NewInputFrame())

	if g.ball.Vel.X != -4 {
		t.Errorf("dx = %v, expected -4", g.ball.Vel.X)
	}
	if g.ball.Pos.X != 592 {
		t.Errorf("x = %v, expected clamp to 592", g.ball.Pos.X)
	}
}

func TestCeilingReflects(t *testing.T) {
	g := newStarted(1)
	place(g, 300, 10, 0, -4)
	g.Step(core.NewInputFrame())

	if g.ball.Vel.Y != 4 || g.ball.Pos.Y != 8 {
		t.Errorf("ball = %+v", g.ball)
	}
}

func TestPaddleBounce(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		wantDX float64
	}{
		{"center", 300, 0},
		{"left quarter", 275, -2},
		{"right quarter", 325, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newStarted(1)
			place(g, tt.x, 550, 0, 4)
			g.Step(core.NewInputFrame())

			if g.ball.Vel.Y != -4 {
				t.Errorf("dy = %v, expected -4", g.ball.Vel.Y)
			}
			if g.ball.Vel.X != tt.wantDX {
				t.Errorf("dx = %v, expected %v", g.ball.Vel.X, tt.wantDX)
			}
		})
	}
}

func TestPaddleEdgeIsExclusive(t *testing.T) {
	g := newStarted(1)
	// Paddle spans 250..350; a ball exactly on the edge misses.
	place(g, 250, 550, 0, 4)
	g.Step(core.NewInputFrame())

	if g.ball.Vel.Y != 4 {
		t.Errorf("edge hit should not bounce, dy = %v", g.ball.Vel.Y)
	}
}

func TestFloorCostsLife(t *testing.T) {
	g := newStarted(1)
	place(g, 100, 595, 0, 4)
	g.Step(core.NewInputFrame())

	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
	if g.Status() != core.StatusRunning {
		t.Errorf("status = %v", g.Status())
	}
	if g.ball.Pos != (core.Vec{X: 300, Y: 300}) || g.ball.Vel != (core.Vec{X: 4, Y: -4}) {
		t.Errorf("ball not reset: %+v", g.ball)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newStarted(1)
	g.lives = 1
	place(g, 100, 595, 0, 4)
	g.Step(core.NewInputFrame())

	if g.Status() != core.StatusOver {
		t.Errorf("status = %v, expected over", g.Status())
	}

	rec := &core.Recorder{}
	g.Render(rec)
	texts := rec.Texts()
	if texts[len(texts)-1] != "GAME OVER" {
		t.Errorf("last text = %q", texts[len(texts)-1])
	}
}

func TestClearingWallWins(t *testing.T) {
	g := newStarted(1)
	for i := 1; i < len(g.wall.Bricks); i++ {
		g.wall.Bricks[i].Visible = false
	}
	place(g, 30, 72, 0, -4)
	g.Step(core.NewInputFrame())

	if g.Status() != core.StatusWon {
		t.Errorf("status = %v, expected won", g.Status())
	}
	if g.score != 10 {
		t.Errorf("score = %d", g.score)
	}
}

func TestPaddleMovement(t *testing.T) {
	g := newStarted(1)
	place(g, 300, 300, 0, 0)
	initialX := g.paddle.X

	right := core.NewInputFrame()
	right.Set(core.IntentMoveRight)
	g.Step(right)
	if g.paddle.X != initialX+8 {
		t.Errorf("paddle x = %v, expected %v", g.paddle.X, initialX+8)
	}

	left := core.NewInputFrame()
	left.Set(core.IntentMoveLeft)
	for i := 0; i < 100; i++ {
		g.Step(left)
	}
	if g.paddle.X != 0 {
		t.Errorf("paddle should stop at the left wall, x = %v", g.paddle.X)
	}
}

func TestPointerFollow(t *testing.T) {
	g := newStarted(1)
	place(g, 300, 300, 0, 0)

	in := core.NewInputFrame()
	in.PointTo(core.Vec{X: 590, Y: 500})
	g.Step(in)

	if g.paddle.X != 500 {
		t.Errorf("paddle x = %v, expected clamp to 500", g.paddle.X)
	}
}

func TestResetWhileRunning(t *testing.T) {
	g := newStarted(42)
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Reset(core.DefaultConfig())

	if g.Status() != core.StatusIdle || g.score != 0 || g.lives != 3 || g.tick != 0 {
		t.Errorf("after reset: status %v score %d lives %d tick %d", g.Status(), g.score, g.lives, g.tick)
	}
	if g.wall.CountVisible() != 50 {
		t.Errorf("wall not rebuilt: %d", g.wall.CountVisible())
	}
}
