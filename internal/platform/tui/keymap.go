package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/input"
)

// KeyMap holds the platform bindings. Game bindings live in Controls.
type KeyMap struct {
	Start      key.Binding
	Reset      key.Binding
	NextGame   key.Binding
	PrevGame   key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.Start, k.Reset}
	if k.NextGame.Enabled() {
		bindings = append(bindings, k.NextGame)
	}
	return append(bindings, k.Quit)
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Reset, k.Screenshot},
		{k.NextGame, k.PrevGame, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. The game switch keys are
// disabled; the arcade selector enables them.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "start"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next game"),
			key.WithDisabled(),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev game"),
			key.WithDisabled(),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PointerMode selects how mouse events reach a game.
type PointerMode int

const (
	// PointerClick turns presses into clicks (flappy, clicker).
	PointerClick PointerMode = iota
	// PointerFollow tracks the pointer position (breakout paddle).
	PointerFollow
	// PointerSwipe treats press, drag and release as a touch gesture.
	PointerSwipe
)

// Controls translates terminal events for one game into an input frame.
type Controls struct {
	Keys    input.Keymap
	Pointer PointerMode

	swipe *input.Swipe
	last  core.Vec
}

// ControlsFor returns the bindings of a game. Snake steers with
// continuous swipes, tetris classifies a swipe on release.
func ControlsFor(gameID string) *Controls {
	c := &Controls{Keys: input.DefaultKeymap(), Pointer: PointerClick}
	switch gameID {
	case "snake":
		c.Pointer = PointerSwipe
		c.swipe = input.NewSwipe(input.SwipeContinuous)
	case "tetris":
		c.Pointer = PointerSwipe
		c.swipe = input.NewSwipe(input.SwipeRelease)
	case "breakout":
		c.Pointer = PointerFollow
	}
	return c
}

// Key records a key press. It reports whether the key meant anything.
func (c *Controls) Key(k string, f *core.InputFrame) bool {
	return c.Keys.Apply(k, f)
}

// Mouse records a mouse event at screen position (x, y) of the canvas.
// Events outside the playfield are ignored, except a release that ends a
// swipe, which is classified at the last position seen inside.
func (c *Controls) Mouse(msg tea.MouseMsg, x, y int, canvas *core.ScreenCanvas, f *core.InputFrame) {
	if canvas == nil {
		return
	}
	p, inside := canvas.Unproject(x, y)
	if inside {
		c.last = p
	}

	switch c.Pointer {
	case PointerClick:
		if inside && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			f.Click(p)
		}

	case PointerFollow:
		if inside && (msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress) {
			f.PointTo(p)
		}

	case PointerSwipe:
		switch msg.Action {
		case tea.MouseActionPress:
			if inside && msg.Button == tea.MouseButtonLeft {
				c.swipe.Begin(p)
			}
		case tea.MouseActionMotion:
			if inside {
				f.Set(c.swipe.Move(p))
			}
		case tea.MouseActionRelease:
			f.Set(c.swipe.End(c.last))
		}
	}
}

// Cancel drops a gesture in progress.
func (c *Controls) Cancel() {
	if c.swipe != nil && c.swipe.Active() {
		c.swipe = input.NewSwipe(c.swipe.Mode)
	}
}
