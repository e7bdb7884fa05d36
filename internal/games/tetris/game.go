// Package tetris implements falling-block Tetris with binary-digit pieces.
package tetris

import (
	"strconv"
	"time"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/registry"
	"github.com/vovakirdan/binary-arcade/internal/spawn"
)

// Game implements Tetris.
type Game struct {
	core.Lifecycle

	cfg      config.TetrisConfig
	rng      spawn.Source
	interval time.Duration

	board        Board
	piece        Piece
	hasPiece     bool
	score        int
	lines        int
	level        int
	dropCounter  time.Duration
	dropInterval time.Duration
}

// New creates a Tetris game from its configuration.
func New(cfg config.TetrisConfig) *Game {
	g := &Game{cfg: cfg, interval: core.DefaultConfig().FrameInterval()}
	g.fresh()
	return g
}

func init() {
	registry.Register("tetris", func(cfg config.Set) registry.Game {
		return New(cfg.Tetris)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Binary Tetris" }

// BestKey returns "": tetris keeps no best score.
func (g *Game) BestKey() string { return "" }

// Interval returns the frame step.
func (g *Game) Interval() time.Duration { return g.interval }

// Bounds returns the logical canvas size derived from the board.
func (g *Game) Bounds() (float64, float64) {
	bs := float64(g.cfg.BlockSize)
	return float64(g.cfg.Cols) * bs, float64(g.cfg.Rows) * bs
}

// Reset returns to idle with an empty board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = cfg.NewRand()
	g.interval = cfg.FrameInterval()
	g.Idle()
	g.fresh()
}

// Start begins a fresh session with a new piece.
func (g *Game) Start() {
	if !g.Begin() {
		return
	}
	if g.rng == nil {
		g.rng = core.DefaultConfig().NewRand()
	}
	g.fresh()
	g.piece = g.newPiece()
	g.hasPiece = true
}

func (g *Game) fresh() {
	g.board = NewBoard(g.cfg.Rows, g.cfg.Cols)
	g.hasPiece = false
	g.score = 0
	g.lines = 0
	g.level = 1
	g.dropCounter = 0
	g.dropInterval = ms(g.cfg.BaseDropMS)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// newPiece picks a random shape centered at the top.
func (g *Game) newPiece() Piece {
	s := Shapes[g.rng.Intn(len(Shapes))]
	return Piece{
		Shape: s,
		X:     g.cfg.Cols/2 - s.Width()/2,
		Y:     0,
		Digit: spawn.Digit(g.rng),
	}
}

// Step applies player intents in arrival order, then gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.HandlePause(in) || !g.hasPiece {
		return core.StepResult{State: g.State()}
	}

	board := g.board.Clone()
	piece := g.piece
	sc := g.score
	lines, level := g.lines, g.level
	dropInterval := g.dropInterval
	counter := g.dropCounter
	over := false

	for _, intent := range in.Intents() {
		switch intent {
		case core.IntentMoveLeft:
			if !Collides(board, piece, -1, 0) {
				piece.X--
			}
		case core.IntentMoveRight:
			if !Collides(board, piece, 1, 0) {
				piece.X++
			}
		case core.IntentMoveDown:
			if !Collides(board, piece, 0, 1) {
				piece.Y++
				sc++
			}
		case core.IntentMoveUp, core.IntentRotate:
			if r := piece.Rotated(); !Collides(board, r, 0, 0) {
				piece = r
			}
		}
	}

	counter += g.interval
	if counter > dropInterval {
		if !Collides(board, piece, 0, 1) {
			piece.Y++
		} else {
			Merge(board, piece)
			var cleared int
			board, cleared = ClearLines(board)
			if cleared > 0 {
				lines += cleared
				sc += cleared * g.cfg.LinePoints * level
				level = lines/g.cfg.LinesPerLevel + 1
				dropInterval = max(ms(g.cfg.MinDropMS), ms(g.cfg.BaseDropMS-(level-1)*g.cfg.LevelStepMS))
			}
			piece = g.newPiece()
			over = Collides(board, piece, 0, 0)
		}
		counter = 0
	}

	g.board = board
	g.piece = piece
	g.score = sc
	g.lines, g.level = lines, level
	g.dropInterval = dropInterval
	g.dropCounter = counter
	if over {
		g.End(core.StatusOver)
	}
	return core.StepResult{State: g.State()}
}

// Render draws locked cells, the falling piece and the game-over overlay.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorDefault)

	for y, row := range g.board {
		for x, c := range row {
			if c != 0 {
				g.drawBlock(dst, x, y, c, core.ColorWhite)
			}
		}
	}
	if g.hasPiece && g.Status() == core.StatusRunning {
		g.piece.Cells(func(x, y int) {
			if y >= 0 {
				g.drawBlock(dst, x, y, g.piece.Digit, core.ColorBrightWhite)
			}
		})
	}

	if g.Status() == core.StatusOver {
		w, h := g.Bounds()
		dst.FillText("GAME OVER", core.Vec{X: w / 2, Y: h / 2}, core.ColorBrightWhite)
	}
}

func (g *Game) drawBlock(dst core.Canvas, x, y int, digit rune, color core.Color) {
	bs := float64(g.cfg.BlockSize)
	r := core.NewRectF(float64(x)*bs+1, float64(y)*bs+1, bs-2, bs-2)
	dst.FillRect(r, color)
	dst.FillText(string(digit), r.Center(), core.ColorGray)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.Status(), Paused: g.Paused()}
}

// Stats returns lines and level.
func (g *Game) Stats() []core.Stat {
	return []core.Stat{
		{Label: "Lines", Value: strconv.Itoa(g.lines)},
		{Label: "Level", Value: strconv.Itoa(g.level)},
	}
}

// Board returns a copy of the locked cells.
func (g *Game) Board() Board { return g.board.Clone() }

// Piece returns the falling piece and whether there is one.
func (g *Game) Piece() (Piece, bool) { return g.piece, g.hasPiece }

// Lines returns the number of cleared lines.
func (g *Game) Lines() int { return g.lines }

// Level returns the current level.
func (g *Game) Level() int { return g.level }

// DropInterval returns the current gravity period.
func (g *Game) DropInterval() time.Duration { return g.dropInterval }
