package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
	_ "github.com/vovakirdan/binary-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/binary-arcade/internal/games/clicker"
	_ "github.com/vovakirdan/binary-arcade/internal/games/flappy"
	"github.com/vovakirdan/binary-arcade/internal/games/snake"
	_ "github.com/vovakirdan/binary-arcade/internal/games/tetris"
	"github.com/vovakirdan/binary-arcade/internal/registry"
	"github.com/vovakirdan/binary-arcade/internal/score"
)

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func runtimeConfig(w, h int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = w, h
	cfg.Seed = 1
	return cfg
}

func newSnakeModel(t *testing.T, w, h int, opts Options) Model {
	t.Helper()
	g, err := registry.Create("snake", config.DefaultSet())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return NewModel(g, runtimeConfig(w, h), opts)
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	return m.Update(msg)
}

func snakeOf(m Model) *snake.Game {
	return m.pane.game().(*snake.Game)
}

func TestModelStartTickReset(t *testing.T) {
	m := newSnakeModel(t, 80, 24, Options{})
	if m.pane.runner.State().Status != core.StatusIdle {
		t.Fatalf("new model should be idle")
	}

	next, cmd := update(t, m, enter)
	m = next.(Model)
	if cmd == nil {
		t.Fatal("start should schedule a tick")
	}
	if m.pane.runner.State().Status != core.StatusRunning {
		t.Fatalf("status = %v", m.pane.runner.State().Status)
	}

	gen := m.pane.runner.Generation()
	now := time.Now()
	next, cmd = update(t, m, TickMsg{Slot: 0, Gen: gen, At: now})
	m = next.(Model)
	if cmd == nil {
		t.Error("a running game should reschedule")
	}
	if head := snakeOf(m).Body()[0]; head != (core.Cell{X: 11, Y: 10}) {
		t.Errorf("head = %+v after one tick", head)
	}

	// Stale ticks are dropped.
	_, cmd = update(t, m, TickMsg{Slot: 0, Gen: gen - 1, At: now.Add(time.Second)})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if head := snakeOf(m).Body()[0]; head != (core.Cell{X: 11, Y: 10}) {
		t.Errorf("stale tick moved the snake to %+v", head)
	}

	next, _ = update(t, m, runes("r"))
	m = next.(Model)
	if m.pane.runner.State().Status != core.StatusIdle {
		t.Errorf("reset should return to idle")
	}
	if _, cmd = update(t, m, TickMsg{Slot: 0, Gen: gen, At: now.Add(200 * time.Millisecond)}); cmd != nil {
		t.Error("tick from before the reset should be dropped")
	}
}

func TestModelKeysReachGame(t *testing.T) {
	m := newSnakeModel(t, 80, 24, Options{})
	next, _ := update(t, m, enter)
	m = next.(Model)

	next, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	next, _ = update(t, m, TickMsg{Slot: 0, Gen: m.pane.runner.Generation(), At: time.Now()})
	m = next.(Model)

	if d := snakeOf(m).Direction(); d != core.DirDown {
		t.Errorf("direction = %v, expected down", d)
	}
	if len(m.pane.frame.Intents()) != 0 {
		t.Error("frame should be cleared after a tick")
	}
}

func TestModelSmallTerminalDisablesGame(t *testing.T) {
	m := newSnakeModel(t, 10, 5, Options{})
	if !errors.Is(m.pane.runner.Disabled(), core.ErrMissingSurface) {
		t.Fatalf("Disabled() = %v", m.pane.runner.Disabled())
	}
	if _, cmd := update(t, m, enter); cmd != nil {
		t.Error("a disabled game should not start")
	}

	next, _ := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	if m.pane.runner.Disabled() != nil {
		t.Errorf("resize should re-enable, got %v", m.pane.runner.Disabled())
	}
	if _, cmd := update(t, m, enter); cmd == nil {
		t.Error("re-enabled game should start")
	}
}

func TestModelResizeWhileRunning(t *testing.T) {
	m := newSnakeModel(t, 80, 24, Options{})
	next, _ := update(t, m, enter)
	m = next.(Model)
	oldGen := m.pane.runner.Generation()

	next, cmd := update(t, m, tea.WindowSizeMsg{Width: 6, Height: 3})
	m = next.(Model)
	if cmd != nil {
		t.Error("shrinking below the minimum should not schedule")
	}
	if m.pane.runner.Disabled() == nil || m.pane.runner.Armed() {
		t.Fatal("running game should be disabled while the terminal is too small")
	}
	if _, cmd = update(t, m, TickMsg{Slot: 0, Gen: oldGen, At: time.Now()}); cmd != nil {
		t.Error("tick from before the shrink should be dropped")
	}

	next, cmd = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("growing back should resume the tick chain")
	}
	if m.pane.runner.State().Status != core.StatusRunning || !m.pane.runner.Armed() {
		t.Fatalf("status %v armed %v after regrow", m.pane.runner.State().Status, m.pane.runner.Armed())
	}

	next, _ = update(t, m, TickMsg{Slot: 0, Gen: m.pane.runner.Generation(), At: time.Now()})
	m = next.(Model)
	if head := snakeOf(m).Body()[0]; head != (core.Cell{X: 11, Y: 10}) {
		t.Errorf("head = %+v, the snake should move after regrow", head)
	}

	// A resize that keeps the game enabled must not fork the chain.
	if _, cmd = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30}); cmd != nil {
		t.Error("resize of an enabled game should not schedule a second chain")
	}
}

func TestArcadeHiddenPaneSurvivesResize(t *testing.T) {
	m, err := NewArcadeModel(runtimeConfig(100, 40), Options{})
	if err != nil {
		t.Fatalf("NewArcadeModel: %v", err)
	}
	next, _ := update(t, m, enter)
	m = next.(ArcadeModel)
	next, _ = update(t, m, tab)
	m = next.(ArcadeModel)

	next, _ = update(t, m, tea.WindowSizeMsg{Width: 6, Height: 3})
	m = next.(ArcadeModel)
	next, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(ArcadeModel)
	if cmd != nil {
		t.Error("hidden and idle games should not be scheduled on regrow")
	}

	next, cmd = update(t, m, shiftTab)
	m = next.(ArcadeModel)
	if cmd == nil || !m.panes[0].runner.Armed() {
		t.Error("returning to the running clicker should resume its ticks")
	}
}

func TestModelViewShowsHUD(t *testing.T) {
	bridge := score.NewBridge(score.NewMemoryStore(), nil)
	bridge.Record(score.KeySnake, 7)

	m := newSnakeModel(t, 80, 24, Options{Bridge: bridge})
	view := m.View()
	for _, want := range []string{"Binary Snake", "Score 0", "Best 7", "enter to start"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if n := strings.Count(view, "\n"); n != 23 {
		t.Errorf("view has %d lines, expected 24", n+1)
	}
}

func TestModelConfigReload(t *testing.T) {
	m := newSnakeModel(t, 80, 24, Options{})

	set := config.DefaultSet()
	set.Snake.TickMS = 50
	next, _ := update(t, m, ConfigMsg{Game: "snake", Configs: set})
	m = next.(Model)

	if got := m.pane.runner.Interval(); got != 50*time.Millisecond {
		t.Errorf("interval = %v after reload, expected 50ms", got)
	}
}

func TestArcadeSwitchSuspends(t *testing.T) {
	m, err := NewArcadeModel(runtimeConfig(100, 40), Options{})
	if err != nil {
		t.Fatalf("NewArcadeModel: %v", err)
	}
	if len(m.panes) != 5 || m.Active() != "clicker" {
		t.Fatalf("panes %d, active %q", len(m.panes), m.Active())
	}

	next, cmd := update(t, m, enter)
	m = next.(ArcadeModel)
	if cmd == nil {
		t.Fatal("clicker should start")
	}
	clicker := m.panes[0]
	oldGen := clicker.runner.Generation()

	next, _ = update(t, m, tab)
	m = next.(ArcadeModel)
	if m.Active() != "snake" {
		t.Fatalf("active = %q after tab", m.Active())
	}
	if clicker.runner.Armed() {
		t.Error("hidden game should be suspended")
	}
	if _, cmd = update(t, m, TickMsg{Slot: 0, Gen: oldGen, At: time.Now()}); cmd != nil {
		t.Error("tick of a suspended game should be dropped")
	}
	if clicker.runner.State().Status != core.StatusRunning {
		t.Error("suspension should keep the session")
	}

	next, cmd = update(t, m, shiftTab)
	m = next.(ArcadeModel)
	if m.Active() != "clicker" {
		t.Fatalf("active = %q after shift+tab", m.Active())
	}
	if cmd == nil || !clicker.runner.Armed() {
		t.Error("returning to a running game should resume its ticks")
	}
}

func TestArcadeTabClick(t *testing.T) {
	m, err := NewArcadeModel(runtimeConfig(120, 40), Options{})
	if err != nil {
		t.Fatalf("NewArcadeModel: %v", err)
	}

	labels := m.tabLabels()
	x := 0
	for i := 0; i < 3; i++ {
		x += lipgloss.Width(labels[i]) + 1
	}
	next, _ := update(t, m, tea.MouseMsg{X: x + 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(ArcadeModel)
	if m.Active() != arcadeOrder()[3] {
		t.Errorf("active = %q, expected %q", m.Active(), arcadeOrder()[3])
	}
}
