package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
)

func newGame(seed int64) *Game {
	g := New(config.DefaultSnakeConfig())
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func frame(intents ...core.Intent) core.InputFrame {
	in := core.NewInputFrame()
	for _, i := range intents {
		in.Set(i)
	}
	return in
}

// park moves the food out of the way so it can't be eaten by accident.
func park(g *Game) {
	g.food = core.Cell{X: 0, Y: 19}
}

func TestStartMovesRight(t *testing.T) {
	g := newGame(1)
	g.Start()
	park(g)

	for i := 0; i < 5; i++ {
		g.Step(frame())
	}

	snap := g.Snapshot()
	if snap.Head != (core.Cell{X: 15, Y: 10}) {
		t.Errorf("head = %v, expected (15,10)", snap.Head)
	}
	if snap.Score != 0 || snap.Status != core.StatusRunning {
		t.Errorf("score %d status %v", snap.Score, snap.Status)
	}
	if snap.Len != 1 {
		t.Errorf("len = %d", snap.Len)
	}
}

func TestIdleDoesNotMove(t *testing.T) {
	g := newGame(1)
	g.Step(frame(core.IntentMoveUp))

	if g.Direction() != core.DirNone {
		t.Errorf("idle snake has direction %v", g.Direction())
	}
	if g.Body()[0] != (core.Cell{X: 10, Y: 10}) {
		t.Errorf("idle snake moved to %v", g.Body()[0])
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newGame(42)
	g.Start()
	park(g)

	g.Step(frame(core.IntentMoveLeft))
	if g.Direction() != core.DirRight {
		t.Errorf("reversal accepted, direction %v", g.Direction())
	}
	if g.Status() != core.StatusRunning {
		t.Errorf("status = %v", g.Status())
	}
}

func TestQuickTurnCannotReverse(t *testing.T) {
	tests := []struct {
		name    string
		intents []core.Intent
		want    core.Dir
	}{
		{"up then left", []core.Intent{core.IntentMoveUp, core.IntentMoveLeft}, core.DirUp},
		{"left then up", []core.Intent{core.IntentMoveLeft, core.IntentMoveUp}, core.DirUp},
		{"up then down", []core.Intent{core.IntentMoveUp, core.IntentMoveDown}, core.DirDown},
		{"same axis only", []core.Intent{core.IntentMoveRight}, core.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(7)
			g.Start()
			park(g)
			g.Step(frame(tt.intents...))
			if g.Direction() != tt.want {
				t.Errorf("direction = %v, expected %v", g.Direction(), tt.want)
			}
		})
	}
}

func TestEatGrowsAndRespawns(t *testing.T) {
	g := newGame(3)
	g.Start()
	g.food = core.Cell{X: 11, Y: 10}

	g.Step(frame())

	if g.score != 1 {
		t.Errorf("score = %d, expected 1", g.score)
	}
	if len(g.body) != 2 {
		t.Errorf("len = %d, expected 2", len(g.body))
	}
	food, ok := g.Food()
	if !ok {
		t.Fatal("food should respawn")
	}
	for _, seg := range g.body {
		if seg == food {
			t.Errorf("food spawned on body at %v", food)
		}
	}
	if !food.In(g.tiles, g.tiles) {
		t.Errorf("food out of grid: %v", food)
	}
}

func TestWallEndsGame(t *testing.T) {
	g := newGame(5)
	g.Start()
	park(g)

	// Nine steps reach x=19, the tenth leaves the grid.
	for i := 0; i < 9; i++ {
		g.Step(frame())
	}
	if g.Status() != core.StatusRunning {
		t.Fatalf("died early at %v", g.Body()[0])
	}
	g.Step(frame())
	if g.Status() != core.StatusOver {
		t.Errorf("status = %v, expected over", g.Status())
	}
	if g.Body()[0].X != 19 {
		t.Errorf("body must not move on the fatal step, head %v", g.Body()[0])
	}

	rec := &core.Recorder{}
	g.Render(rec)
	texts := rec.Texts()
	if len(texts) < 2 || texts[len(texts)-2] != "GAME OVER" || texts[len(texts)-1] != "Score: 0" {
		t.Errorf("overlay texts = %v", texts)
	}
}

func TestSelfCollision(t *testing.T) {
	tests := []struct {
		name string
		body []core.Cell
		dir  core.Dir
		turn core.Intent
	}{
		{
			name: "into body",
			body: []core.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 6}, {X: 5, Y: 6}, {X: 6, Y: 6}},
			dir:  core.DirRight,
			turn: core.IntentMoveDown,
		},
		{
			name: "into tail",
			body: []core.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}},
			dir:  core.DirUp,
			turn: core.IntentMoveRight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(9)
			g.Start()
			park(g)
			g.body = tt.body
			g.dir = tt.dir

			g.Step(frame(tt.turn))
			if g.Status() != core.StatusOver {
				t.Errorf("status = %v, expected over", g.Status())
			}
		})
	}
}

func TestPauseFreezes(t *testing.T) {
	g := newGame(11)
	g.Start()
	park(g)

	g.Step(frame(core.IntentPause))
	g.Step(frame())
	if !g.State().Paused || g.Body()[0] != (core.Cell{X: 10, Y: 10}) {
		t.Errorf("paused snake moved: %v", g.Body()[0])
	}

	g.Step(frame(core.IntentPause))
	if g.State().Paused || g.Body()[0] != (core.Cell{X: 11, Y: 10}) {
		t.Errorf("unpause should step, head %v", g.Body()[0])
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newGame(13)
	g.Start()
	g.body = []core.Cell{{X: 19, Y: 0}}
	g.score = 4
	g.Step(frame())
	if g.Status() != core.StatusOver {
		t.Fatalf("status = %v", g.Status())
	}

	g.Start()
	snap := g.Snapshot()
	if snap.Status != core.StatusRunning || snap.Score != 0 || snap.Len != 1 || snap.Dir != core.DirRight {
		t.Errorf("restart snapshot = %+v", snap)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(12345)
	g2 := newGame(12345)
	g1.Start()
	g2.Start()

	for i := 0; i < 100; i++ {
		in := core.NewInputFrame()
		switch i {
		case 3:
			in.Set(core.IntentMoveDown)
		case 6:
			in.Set(core.IntentMoveLeft)
		case 9:
			in.Set(core.IntentMoveUp)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestFoodDigit(t *testing.T) {
	if foodDigit(core.Cell{X: 2, Y: 4}) != "1" || foodDigit(core.Cell{X: 1, Y: 4}) != "0" {
		t.Error("food digit should follow cell parity")
	}
}

// towardFood picks the intent that closes the larger gap to the food.
func towardFood(g *Game) core.Intent {
	food, ok := g.Food()
	if !ok {
		return core.IntentNone
	}
	head := g.Body()[0]
	dx, dy := food.X-head.X, food.Y-head.Y
	switch {
	case dx > 0 && dx >= dy && dx >= -dy:
		return core.IntentMoveRight
	case dx < 0 && -dx >= dy && -dx >= -dy:
		return core.IntentMoveLeft
	case dy > 0:
		return core.IntentMoveDown
	default:
		return core.IntentMoveUp
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	intents := []core.Intent{
		core.IntentNone, core.IntentMoveUp, core.IntentMoveDown,
		core.IntentMoveLeft, core.IntentMoveRight,
	}
	tiles := config.DefaultSnakeConfig().TileCount()

	for seed := int64(1); seed <= 60; seed++ {
		g := newGame(seed)
		rng := rand.New(rand.NewSource(seed))
		g.Start()
		sessions := 1

		for tick := 0; tick < 1500; tick++ {
			in := intents[rng.Intn(len(intents))]
			if rng.Intn(2) == 0 {
				in = towardFood(g)
			}
			prevScore := g.State().Score
			g.Step(frame(in))
			st := g.State()

			if st.Status != core.StatusRunning {
				if st.Status != core.StatusOver {
					t.Fatalf("seed %d tick %d: status %v", seed, tick, st.Status)
				}
				g.Start()
				sessions++
				continue
			}

			body := g.Body()
			if len(body) != st.Score+1 {
				t.Fatalf("seed %d tick %d: len %d score %d", seed, tick, len(body), st.Score)
			}
			if st.Score < prevScore {
				t.Fatalf("seed %d tick %d: score fell from %d to %d", seed, tick, prevScore, st.Score)
			}
			seen := make(map[core.Cell]bool, len(body))
			for _, c := range body {
				if !c.In(tiles, tiles) {
					t.Fatalf("seed %d tick %d: segment %v out of bounds", seed, tick, c)
				}
				if seen[c] {
					t.Fatalf("seed %d tick %d: segments overlap at %v", seed, tick, c)
				}
				seen[c] = true
			}
			if food, ok := g.Food(); ok && seen[food] {
				t.Fatalf("seed %d tick %d: food %v under the body", seed, tick, food)
			}
		}
		if sessions == 1 && g.State().Score == 0 {
			t.Errorf("seed %d: a long run should either eat or die", seed)
		}
	}
}
