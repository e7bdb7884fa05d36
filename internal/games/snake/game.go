package snake

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/binary-arcade/internal/collide"
	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/input"
	"github.com/vovakirdan/binary-arcade/internal/registry"
	"github.com/vovakirdan/binary-arcade/internal/score"
	"github.com/vovakirdan/binary-arcade/internal/spawn"
)

// Game implements Snake on a square grid.
type Game struct {
	core.Lifecycle

	cfg   config.SnakeConfig
	rng   spawn.Source
	tiles int
	tick  uint64

	body    []core.Cell // head at index 0
	dir     core.Dir
	food    core.Cell
	hasFood bool
	score   int
}

// New creates a Snake game from its configuration.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, tiles: cfg.TileCount()}
}

func init() {
	registry.Register("snake", func(cfg config.Set) registry.Game {
		return New(cfg.Snake)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Binary Snake" }

// BestKey returns the persistent best-score key.
func (g *Game) BestKey() string { return score.KeySnake }

// Interval returns the movement period.
func (g *Game) Interval() time.Duration {
	return time.Duration(g.cfg.TickMS) * time.Millisecond
}

// Bounds returns the logical canvas size.
func (g *Game) Bounds() (float64, float64) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

// Reset returns to idle: a single segment at the start cell, not moving.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = cfg.NewRand()
	g.Idle()
	g.tick = 0
	g.score = 0
	g.body = []core.Cell{g.startCell()}
	g.dir = core.DirNone
	g.hasFood = false
}

// Start begins a fresh session heading right.
func (g *Game) Start() {
	if !g.Begin() {
		return
	}
	if g.rng == nil {
		g.rng = core.DefaultConfig().NewRand()
	}
	g.tick = 0
	g.score = 0
	g.body = []core.Cell{g.startCell()}
	g.dir = core.DirRight
	g.spawnFood()
}

func (g *Game) startCell() core.Cell {
	return core.Cell{X: g.cfg.StartX, Y: g.cfg.StartY}
}

// spawnFood places food on a free cell. A full board leaves no food.
func (g *Game) spawnFood() {
	retries := g.cfg.FoodRetries
	if retries <= 0 {
		retries = spawn.DefaultRetries
	}
	g.food, g.hasFood = spawn.FreeCell(g.rng, g.tiles, g.tiles, spawn.Occupies(g.body), retries)
}

// Step moves the snake one cell.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.HandlePause(in) {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	g.steer(in)
	if g.dir.IsZero() {
		return core.StepResult{State: g.State()}
	}

	head := g.body[0].Add(g.dir)
	if collide.OutOfBounds(head, g.tiles, g.tiles) {
		g.End(core.StatusOver)
		return core.StepResult{State: g.State()}
	}
	// The whole body counts, tail included.
	if collide.HitsBody(head, g.body) {
		g.End(core.StatusOver)
		return core.StepResult{State: g.State()}
	}

	next := make([]core.Cell, 0, len(g.body)+1)
	next = append(next, head)
	next = append(next, g.body...)
	if g.hasFood && collide.SameCell(head, g.food) {
		g.body = next
		g.score++
		g.spawnFood()
	} else {
		g.body = next[:len(next)-1]
	}

	return core.StepResult{State: g.State()}
}

// steer applies movement intents in arrival order. Each one is checked
// against the direction of the last move; the last accepted one wins.
func (g *Game) steer(in core.InputFrame) {
	next := g.dir
	for _, intent := range in.Intents() {
		if !intent.IsMove() || input.AxisLocked(intent, g.dir) {
			continue
		}
		next = intent.Direction()
	}
	g.dir = next
}

// Render draws the grid contents and the game-over overlay.
func (g *Game) Render(dst core.Canvas) {
	gs := float64(g.cfg.GridSize)
	dst.Clear(core.ColorDefault)

	for i, seg := range g.body {
		x, y := float64(seg.X)*gs, float64(seg.Y)*gs
		if i == 0 {
			dst.FillRect(core.NewRectF(x+1, y+1, gs-2, gs-2), core.ColorBrightWhite)
			continue
		}
		dst.FillRect(core.NewRectF(x+2, y+2, gs-4, gs-4), core.ColorGray)
	}

	if g.hasFood {
		center := core.Vec{X: float64(g.food.X)*gs + gs/2, Y: float64(g.food.Y)*gs + gs/2}
		dst.FillText(foodDigit(g.food), center, core.ColorBrightGreen)
	}

	if g.Status() == core.StatusOver {
		w, h := g.Bounds()
		dst.FillText("GAME OVER", core.Vec{X: w / 2, Y: h / 2}, core.ColorBrightWhite)
		dst.FillText(fmt.Sprintf("Score: %d", g.score), core.Vec{X: w / 2, Y: h/2 + 40}, core.ColorWhite)
	}
}

// foodDigit is fixed by position so the glyph doesn't flicker.
func foodDigit(c core.Cell) string {
	if (c.X+c.Y)%2 == 0 {
		return "1"
	}
	return "0"
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.Status(), Paused: g.Paused()}
}

// Stats returns HUD lines.
func (g *Game) Stats() []core.Stat {
	return []core.Stat{
		{Label: "Length", Value: strconv.Itoa(len(g.body))},
	}
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []core.Cell {
	return append([]core.Cell(nil), g.body...)
}

// Direction returns the current heading.
func (g *Game) Direction() core.Dir {
	return g.dir
}

// Food returns the food cell and whether food is on the board.
func (g *Game) Food() (core.Cell, bool) {
	return g.food, g.hasFood
}
