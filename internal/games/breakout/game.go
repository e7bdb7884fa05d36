package breakout

import (
	"strconv"
	"time"

	"github.com/vovakirdan/binary-arcade/internal/collide"
	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/input"
	"github.com/vovakirdan/binary-arcade/internal/registry"
	"github.com/vovakirdan/binary-arcade/internal/spawn"
)

// Game implements Breakout.
type Game struct {
	core.Lifecycle

	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	rng        spawn.Source
	interval   time.Duration
	tick       uint64

	paddle Paddle
	ball   Ball
	wall   Wall
	score  int
	lives  int
}

// New creates a Breakout game from its configuration.
func New(cfg config.BreakoutConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		interval:   core.DefaultConfig().FrameInterval(),
	}
}

func init() {
	registry.Register("breakout", func(cfg config.Set) registry.Game {
		return New(cfg.Breakout)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name.
func (g *Game) Title() string { return "Binary Breakout" }

// BestKey returns "": breakout keeps no best score.
func (g *Game) BestKey() string { return "" }

// Interval returns the frame step.
func (g *Game) Interval() time.Duration { return g.interval }

// Bounds returns the logical canvas size.
func (g *Game) Bounds() (float64, float64) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

// Reset returns to idle with a fresh wall and full lives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = cfg.NewRand()
	g.interval = cfg.FrameInterval()
	g.Idle()
	g.fresh()
}

// Start begins a fresh session.
func (g *Game) Start() {
	if !g.Begin() {
		return
	}
	if g.rng == nil {
		g.rng = core.DefaultConfig().NewRand()
	}
	g.fresh()
}

func (g *Game) fresh() {
	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Lives
	g.paddle = newPaddle(g.cfg.Paddle)
	g.ball = newBall(g.cfg.Ball)
	g.wall = NewWall(g.cfg.Bricks, g.rng)
}

// Step advances one frame: paddle, ball, walls, paddle bounce, bricks,
// floor, then the win check.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.HandlePause(in) {
		return core.StepResult{State: g.State()}
	}

	w, h := g.Bounds()
	paddle := g.paddle
	ball := g.ball
	wall := g.wall.Clone()
	score := g.score
	lives := g.lives

	switch in.Last(core.IntentMoveLeft, core.IntentMoveRight) {
	case core.IntentMoveLeft:
		paddle.Nudge(-1, w)
	case core.IntentMoveRight:
		paddle.Nudge(1, w)
	}
	if in.HasPointer {
		paddle.X = input.PointerFollow(in.Pointer.X, paddle.Width, w)
	}

	var refl collide.Reflector
	ball.Move(g.difficulty.Speed(1, score, int(g.tick)))
	bounceWalls(&ball, w, &refl)
	bouncePaddle(&ball, paddle, g.cfg.Ball.Spin, &refl)

	if hit := wall.Hit(ball.Pos); hit > 0 {
		refl.FlipY(&ball.Vel)
		score += hit * wall.Points
	}

	status := core.StatusRunning
	if ball.Pos.Y+ball.Radius > h {
		lives--
		if lives <= 0 {
			status = core.StatusOver
		} else {
			ball = newBall(g.cfg.Ball)
		}
	}
	if status == core.StatusRunning && wall.Cleared() {
		status = core.StatusWon
	}

	g.tick++
	g.paddle = paddle
	g.ball = ball
	g.wall = wall
	g.score = score
	g.lives = lives
	g.End(status)

	return core.StepResult{State: g.State()}
}

// Render draws bricks, paddle, ball and the end-of-session overlay.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorDefault)

	for _, b := range g.wall.Bricks {
		if !b.Visible {
			continue
		}
		dst.FillRect(b.Rect, core.ColorWhite)
		dst.FillText(string(b.Digit), b.Rect.Center(), core.ColorGray)
	}

	dst.FillRect(g.paddle.Rect(), core.ColorBrightWhite)
	dst.FillCircle(g.ball.Pos, g.ball.Radius, core.ColorBrightWhite)

	w, h := g.Bounds()
	center := core.Vec{X: w / 2, Y: h / 2}
	switch g.Status() {
	case core.StatusOver:
		dst.FillText("GAME OVER", center, core.ColorBrightWhite)
	case core.StatusWon:
		dst.FillText("YOU WIN!", center, core.ColorBrightGreen)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.Status(), Paused: g.Paused()}
}

// Stats returns lives and remaining bricks.
func (g *Game) Stats() []core.Stat {
	return []core.Stat{
		{Label: "Lives", Value: strconv.Itoa(g.lives)},
		{Label: "Bricks", Value: strconv.Itoa(g.wall.CountVisible())},
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Ball returns the current ball.
func (g *Game) Ball() Ball { return g.ball }

// Paddle returns the current paddle.
func (g *Game) Paddle() Paddle { return g.paddle }
