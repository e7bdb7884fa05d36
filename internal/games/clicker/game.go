// Package clicker implements the binary idle clicker: click for bits, buy
// upgrades that click for you.
package clicker

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/vovakirdan/binary-arcade/internal/collide"
	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/registry"
)

// Layout in canvas pixels.
var (
	buttonRect   = core.NewRectF(100, 70, 200, 110)
	upgradeTop   = 230.0
	upgradeRowH  = 40.0
	upgradeLeft  = 20.0
	upgradeWidth = 360.0
)

// Upgrade is a purchasable upgrade and its running price.
type Upgrade struct {
	config.Upgrade
	Price float64
	Owned int
}

// label is a floating "+N" that fades after a few ticks.
type label struct {
	text string
	ttl  int
}

// Game implements the clicker.
type Game struct {
	core.Lifecycle

	cfg config.ClickerConfig

	balance    float64 // spendable
	earned     float64 // lifetime total, never decreases
	clickPower float64
	autoPerSec float64
	upgrades   []Upgrade
	labels     []label
}

// New creates a clicker from its configuration.
func New(cfg config.ClickerConfig) *Game {
	g := &Game{cfg: cfg}
	g.fresh()
	return g
}

func init() {
	registry.Register("clicker", func(cfg config.Set) registry.Game {
		return New(cfg.Clicker)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "clicker" }

// Title returns the display name.
func (g *Game) Title() string { return "Binary Clicker" }

// BestKey returns "": the clicker keeps no best score.
func (g *Game) BestKey() string { return "" }

// Interval returns the auto-click period.
func (g *Game) Interval() time.Duration {
	return time.Duration(g.cfg.TickMS) * time.Millisecond
}

// Bounds returns the logical canvas size.
func (g *Game) Bounds() (float64, float64) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

// Reset returns to idle with nothing earned.
func (g *Game) Reset(core.RuntimeConfig) {
	g.Idle()
	g.fresh()
}

// Start begins a session. The clicker never ends on its own.
func (g *Game) Start() {
	if g.Begin() {
		g.fresh()
	}
}

func (g *Game) fresh() {
	g.balance = 0
	g.earned = 0
	g.clickPower = g.cfg.ClickPower
	g.autoPerSec = 0
	g.labels = nil
	g.upgrades = make([]Upgrade, len(g.cfg.Upgrades))
	for i, u := range g.cfg.Upgrades {
		g.upgrades[i] = Upgrade{Upgrade: u, Price: u.Cost}
	}
}

// Step handles clicks and purchases, then pays one tick of auto clicks.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.HandlePause(in) {
		return core.StepResult{State: g.State()}
	}

	g.age()

	if in.Has(core.IntentJump) {
		g.click()
	}
	for _, p := range in.Clicks {
		if collide.StrictlyInside(p, buttonRect) {
			g.click()
			continue
		}
		if i, ok := upgradeAt(p, len(g.upgrades)); ok {
			g.Buy(i)
		}
	}
	for _, i := range in.Selections {
		g.Buy(i)
	}

	if g.autoPerSec > 0 {
		g.add(g.autoPerSec * g.Interval().Seconds())
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) add(v float64) {
	g.balance += v
	g.earned += v
}

func (g *Game) click() {
	g.add(g.clickPower)
	g.labels = append(g.labels, label{
		text: "+" + strconv.FormatFloat(g.clickPower, 'f', -1, 64),
		ttl:  g.cfg.LabelTicks,
	})
}

func (g *Game) age() {
	kept := g.labels[:0]
	for _, l := range g.labels {
		l.ttl--
		if l.ttl > 0 {
			kept = append(kept, l)
		}
	}
	g.labels = kept
}

// Buy purchases upgrade i if affordable and reports whether it did.
// The price then grows by the upgrade's multiplier, rounded down.
func (g *Game) Buy(i int) bool {
	if i < 0 || i >= len(g.upgrades) || !g.Running() {
		return false
	}
	u := &g.upgrades[i]
	if g.balance < u.Price {
		return false
	}
	g.balance -= u.Price
	u.Owned++
	g.autoPerSec += u.Auto
	g.clickPower += u.Click
	u.Price = math.Floor(u.Price * u.Multiplier)
	return true
}

func upgradeAt(p core.Vec, n int) (int, bool) {
	for i := 0; i < n; i++ {
		r := core.NewRectF(upgradeLeft, upgradeTop+float64(i)*upgradeRowH, upgradeWidth, upgradeRowH-4)
		if collide.StrictlyInside(p, r) {
			return i, true
		}
	}
	return 0, false
}

// Render draws the button, counters, floating labels and upgrade list.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorDefault)
	w, _ := g.Bounds()

	dst.FillText(fmt.Sprintf("%d bits", int(math.Floor(g.balance))), core.Vec{X: w / 2, Y: 25}, core.ColorBrightWhite)
	dst.FillText(fmt.Sprintf("%s/click  %.1f/sec", trim(g.clickPower), g.autoPerSec), core.Vec{X: w / 2, Y: 50}, core.ColorGray)

	dst.FillRect(buttonRect, core.ColorWhite)
	center := buttonRect.Center()
	dst.FillText("0101", center, core.ColorGray)

	for _, l := range g.labels {
		rise := float64(g.cfg.LabelTicks-l.ttl) * 4
		dst.FillText(l.text, core.Vec{X: center.X, Y: buttonRect.Y - 10 - rise}, core.ColorBrightGreen)
	}

	for i, u := range g.upgrades {
		y := upgradeTop + float64(i)*upgradeRowH + (upgradeRowH-4)/2
		color := core.ColorGray
		if g.balance >= u.Price {
			color = core.ColorBrightGreen
		}
		text := fmt.Sprintf("[%d] %s  %s  x%d", i+1, u.Name, trim(u.Price), u.Owned)
		dst.FillText(text, core.Vec{X: w / 2, Y: y}, color)
	}
}

func trim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// State reports floor(earned) as the score so it never decreases when
// bits are spent.
func (g *Game) State() core.GameState {
	return core.GameState{Score: int(math.Floor(g.earned)), Status: g.Status(), Paused: g.Paused()}
}

// Stats returns the spendable balance and rates.
func (g *Game) Stats() []core.Stat {
	return []core.Stat{
		{Label: "Bits", Value: strconv.Itoa(int(math.Floor(g.balance)))},
		{Label: "Per click", Value: trim(g.clickPower)},
		{Label: "Per second", Value: strconv.FormatFloat(g.autoPerSec, 'f', 1, 64)},
	}
}

// Balance returns the spendable bits.
func (g *Game) Balance() float64 { return g.balance }

// Upgrades returns a copy of the upgrade states.
func (g *Game) Upgrades() []Upgrade {
	return append([]Upgrade(nil), g.upgrades...)
}
