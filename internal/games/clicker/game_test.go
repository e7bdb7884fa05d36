package clicker

import (
	"testing"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
)

func newStarted() *Game {
	g := New(config.DefaultClickerConfig())
	g.Reset(core.DefaultConfig())
	g.Start()
	return g
}

func click() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.IntentJump)
	return in
}

func TestIdleIgnoresClicks(t *testing.T) {
	g := New(config.DefaultClickerConfig())
	g.Reset(core.DefaultConfig())
	g.Step(click())
	if g.State().Score != 0 {
		t.Errorf("idle clicker scored %d", g.State().Score)
	}
}

func TestClickAddsPowerAndLabel(t *testing.T) {
	g := newStarted()
	g.Step(click())

	if g.Balance() != 1 || g.State().Score != 1 {
		t.Errorf("balance %v score %d", g.Balance(), g.State().Score)
	}
	if len(g.labels) != 1 || g.labels[0].text != "+1" {
		t.Fatalf("labels = %+v", g.labels)
	}

	for i := 0; i < 9; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.labels) != 1 {
		t.Fatalf("label should live 10 ticks, gone after %d", 9)
	}
	g.Step(core.NewInputFrame())
	if len(g.labels) != 0 {
		t.Errorf("label should expire, have %d", len(g.labels))
	}
}

func TestBuyKeepsScoreMonotonic(t *testing.T) {
	g := newStarted()
	for i := 0; i < 10; i++ {
		g.Step(click())
	}

	in := core.NewInputFrame()
	in.Select(0)
	g.Step(in)

	u := g.Upgrades()[0]
	if u.Owned != 1 || u.Price != 15 {
		t.Errorf("upgrade = %+v", u)
	}
	if g.autoPerSec != 1 {
		t.Errorf("auto = %v, expected 1", g.autoPerSec)
	}
	if g.State().Score < 10 {
		t.Errorf("spending lowered the score to %d", g.State().Score)
	}
	if g.Balance() >= 1 {
		t.Errorf("balance = %v, expected the cost deducted", g.Balance())
	}
}

func TestPriceGrowth(t *testing.T) {
	tests := []struct {
		slot int
		want []float64
	}{
		{0, []float64{15, 22, 33}},
		{1, []float64{90, 162}},
		{2, []float64{200, 400}},
		{3, []float64{1250}},
	}

	for _, tt := range tests {
		g := newStarted()
		g.balance = 1e6
		for i, want := range tt.want {
			if !g.Buy(tt.slot) {
				t.Fatalf("slot %d purchase %d failed", tt.slot, i)
			}
			if got := g.upgrades[tt.slot].Price; got != want {
				t.Errorf("slot %d price after %d buys = %v, expected %v", tt.slot, i+1, got, want)
			}
		}
	}
}

func TestCannotAfford(t *testing.T) {
	g := newStarted()
	g.balance = 9
	if g.Buy(0) {
		t.Error("bought with 9 bits")
	}
	if g.Buy(7) || g.Buy(-1) {
		t.Error("bought a missing upgrade")
	}
	if g.Balance() != 9 {
		t.Errorf("balance changed to %v", g.Balance())
	}
}

func TestAutoClicks(t *testing.T) {
	g := newStarted()
	g.autoPerSec = 20
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Score != 10 {
		t.Errorf("score = %d, expected 10", g.State().Score)
	}
}

func TestPointerClicks(t *testing.T) {
	g := newStarted()

	in := core.NewInputFrame()
	in.Click(buttonRect.Center())
	g.Step(in)
	if g.Balance() != 1 {
		t.Fatalf("button click: balance %v", g.Balance())
	}

	g.balance = 100
	in = core.NewInputFrame()
	in.Click(core.Vec{X: 200, Y: upgradeTop + 2*upgradeRowH + 10})
	g.Step(in)
	if g.clickPower != 2 {
		t.Errorf("clicking the third row should buy Overclock, power %v", g.clickPower)
	}
}

func TestPauseStopsAuto(t *testing.T) {
	g := newStarted()
	g.autoPerSec = 20

	pause := core.NewInputFrame()
	pause.Set(core.IntentPause)
	g.Step(pause)
	g.Step(core.NewInputFrame())
	if g.State().Score != 0 {
		t.Errorf("paused clicker earned %d", g.State().Score)
	}
}

func TestRenderShowsUpgrades(t *testing.T) {
	g := newStarted()
	rec := &core.Recorder{}
	g.Render(rec)

	found := false
	for _, s := range rec.Texts() {
		if s == "[1] Bit Flipper  10  x0" {
			found = true
		}
	}
	if !found {
		t.Errorf("upgrade line missing from %v", rec.Texts())
	}
}
