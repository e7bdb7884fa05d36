// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"time"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/registry"
	"github.com/vovakirdan/binary-arcade/internal/score"
	"github.com/vovakirdan/binary-arcade/internal/spawn"
)

// Bird is the player box. Y grows downward.
type Bird struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64
}

// Rect returns the bird's collision rectangle.
func (b Bird) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// Game implements the Flappy Bird game logic.
type Game struct {
	core.Lifecycle

	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	rng        spawn.Source
	interval   time.Duration

	bird  Bird
	pipes *PipeManager
	score int
	frame int
}

// New creates a new Flappy game instance.
func New(cfg config.FlappyConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		interval:   core.DefaultConfig().FrameInterval(),
	}
}

func init() {
	registry.Register("flappy", func(cfg config.Set) registry.Game {
		return New(cfg.Flappy)
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Binary Flappy" }

// BestKey returns the persistent best-score key.
func (g *Game) BestKey() string { return score.KeyFlappy }

// Interval returns the frame step.
func (g *Game) Interval() time.Duration { return g.interval }

// Bounds returns the logical canvas size.
func (g *Game) Bounds() (float64, float64) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

// Reset initializes or restarts the game in idle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = cfg.NewRand()
	g.interval = cfg.FrameInterval()
	g.pipes = NewPipeManager(g.rng, g.cfg, g.difficulty)
	g.Idle()
	g.fresh()
}

// Start begins a fresh session.
func (g *Game) Start() {
	if !g.Begin() {
		return
	}
	if g.pipes == nil {
		g.rng = core.DefaultConfig().NewRand()
		g.pipes = NewPipeManager(g.rng, g.cfg, g.difficulty)
	}
	g.fresh()
}

func (g *Game) fresh() {
	b := g.cfg.Bird
	g.bird = Bird{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
	g.pipes.Reset()
	g.score = 0
	g.frame = 0
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.HandlePause(in) {
		return core.StepResult{State: g.State()}
	}

	frame := g.frame + 1
	bird := g.bird
	pipes := g.pipes.Clone()
	sc := g.score

	pipes.Spawn(frame, sc)

	if in.Has(core.IntentJump) || len(in.Clicks) > 0 {
		bird.Velocity = g.cfg.Physics.JumpImpulse
	}
	bird.Velocity += g.cfg.Physics.Gravity
	bird.Y += bird.Velocity

	sc += pipes.Update(bird.X, sc, frame)

	_, h := g.Bounds()
	dead := pipes.CheckCollision(bird.Rect()) ||
		bird.Y+bird.Height > h || bird.Y < 0

	g.frame = frame
	g.bird = bird
	g.pipes = pipes
	g.score = sc
	if dead {
		g.End(core.StatusOver)
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current game state.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorDefault)
	w, h := g.Bounds()
	pw := g.cfg.Pipes.Width

	for _, p := range g.pipes.Pipes() {
		dst.FillRect(p.TopRect(pw), core.ColorWhite)
		dst.FillRect(p.BottomRect(pw, h), core.ColorWhite)
		digit := string(p.Digit)
		dst.FillText(digit, core.Vec{X: p.X + pw/2, Y: p.Top - 20}, core.ColorGray)
		dst.FillText(digit, core.Vec{X: p.X + pw/2, Y: p.Bottom + 20}, core.ColorGray)
	}

	dst.FillRect(g.bird.Rect(), core.ColorBrightWhite)
	dst.FillText("B", g.bird.Rect().Center(), core.ColorGray)

	if g.Status() == core.StatusOver {
		dst.FillText("GAME OVER", core.Vec{X: w / 2, Y: h / 2}, core.ColorBrightWhite)
		dst.FillText(fmt.Sprintf("Score: %d", g.score), core.Vec{X: w / 2, Y: h/2 + 40}, core.ColorWhite)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.Status(), Paused: g.Paused()}
}

// Stats reports the difficulty level when progression is on.
func (g *Game) Stats() []core.Stat {
	if !g.difficulty.IsEnabled() {
		return nil
	}
	level := g.difficulty.Level(g.score, g.frame)
	return []core.Stat{{Label: "Level", Value: fmt.Sprintf("%.0f%%", level*100)}}
}

// Bird returns the current bird.
func (g *Game) Bird() Bird { return g.bird }

// Pipes returns the pipes on screen.
func (g *Game) Pipes() []Pipe { return g.pipes.Pipes() }
