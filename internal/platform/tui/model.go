package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/logging"
	"github.com/vovakirdan/binary-arcade/internal/registry"
	"github.com/vovakirdan/binary-arcade/internal/score"
	"github.com/vovakirdan/binary-arcade/internal/session"
)

// Rows of chrome around a playfield.
const (
	hudRows  = 1
	helpRows = 1
)

// Options configures the Bubble Tea models.
type Options struct {
	Bridge    *score.Bridge // nil disables best scores
	Logger    *log.Logger   // nil discards
	SessionID string
	Configs   config.Set

	// Updates delivers reloaded configs (play --watch).
	Updates <-chan ConfigMsg
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}

func (o Options) runnerOptions() session.Options {
	return session.Options{
		Bridge:    o.Bridge,
		Logger:    o.Logger,
		SessionID: o.SessionID,
	}
}

// ConfigMsg carries a reloaded configuration for one game.
type ConfigMsg struct {
	Game    string
	Configs config.Set
}

// waitConfig blocks until the next config update.
func waitConfig(ch <-chan ConfigMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// pane is one game on screen: its runner, input and projected canvas.
type pane struct {
	slot     int
	runner   *session.Runner
	controls *Controls
	frame    core.InputFrame
	screen   *core.Screen
	canvas   *core.ScreenCanvas
	top      int // terminal row of the playfield
	width    int
	height   int
}

func newPane(slot int, g registry.Game, cfg core.RuntimeConfig, opts session.Options) *pane {
	return &pane{
		slot:     slot,
		runner:   session.NewRunner(g, cfg, opts),
		controls: ControlsFor(g.ID()),
		frame:    core.NewInputFrame(),
		screen:   core.NewScreen(0, 0),
	}
}

func (p *pane) game() registry.Game {
	return p.runner.Game()
}

// layout fits the playfield into width x height cells starting at row top.
// A playfield that cannot fit disables the game until the next layout; a
// running game that fits again gets its tick chain back.
func (p *pane) layout(width, height, top int) tea.Cmd {
	p.width, p.height, p.top = max(width, 0), max(height, 0), top
	p.screen.Resize(p.width, p.height)

	w, h := p.game().Bounds()
	c, err := core.NewScreenCanvas(p.screen, core.NewRect(0, 0, p.width, p.height), w, h)
	p.canvas = c
	gen, ok := p.runner.Disable(err)
	if !ok {
		return nil
	}
	p.frame.Clear()
	p.controls.Cancel()
	return tickCmd(p.slot, gen, p.runner.Interval())
}

func (p *pane) relayout() tea.Cmd {
	return p.layout(p.width, p.height, p.top)
}

func (p *pane) running() bool {
	return p.runner.State().Status == core.StatusRunning
}

// start begins a session and schedules its first tick.
func (p *pane) start() tea.Cmd {
	gen, ok := p.runner.Start()
	if !ok {
		return nil
	}
	// A reloaded config may have changed the playfield.
	p.relayout()
	if p.runner.Disabled() != nil {
		return nil
	}
	p.frame.Clear()
	p.controls.Cancel()
	return tickCmd(p.slot, gen, p.runner.Interval())
}

func (p *pane) reset() {
	p.runner.Reset()
	p.relayout()
	p.frame.Clear()
	p.controls.Cancel()
}

func (p *pane) suspend() {
	p.runner.Suspend()
	p.frame.Clear()
	p.controls.Cancel()
}

func (p *pane) resume() tea.Cmd {
	gen, ok := p.runner.Resume()
	if !ok {
		return nil
	}
	return tickCmd(p.slot, gen, p.runner.Interval())
}

// tick feeds the collected input to the runner and reschedules.
func (p *pane) tick(msg TickMsg) tea.Cmd {
	if msg.Gen != p.runner.Generation() {
		return nil
	}
	more := p.runner.Advance(msg.Gen, msg.At, p.frame)
	p.frame.Clear()
	if !more {
		return nil
	}
	return tickCmd(p.slot, msg.Gen, p.runner.Interval())
}

func (p *pane) key(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Reset):
		p.reset()
		return nil
	case key.Matches(msg, keys.Start) && !p.running():
		return p.start()
	}
	if p.running() {
		p.controls.Key(msg.String(), &p.frame)
	}
	return nil
}

func (p *pane) mouse(msg tea.MouseMsg) tea.Cmd {
	if p.canvas == nil {
		return nil
	}
	y := msg.Y - p.top
	if !p.running() {
		_, inside := p.canvas.Unproject(msg.X, y)
		if inside && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return p.start()
		}
		return nil
	}
	p.controls.Mouse(msg, msg.X, y, p.canvas, &p.frame)
	return nil
}

// replace swaps in a game built from a reloaded config.
func (p *pane) replace(g registry.Game) tea.Cmd {
	p.runner.Replace(g)
	return p.relayout()
}

// hud renders the score line above the playfield.
func (p *pane) hud() string {
	g := p.game()
	st := p.runner.State()

	parts := []string{hudStyle.Render(g.Title()), fmt.Sprintf("Score %d", st.Score)}
	if g.BestKey() != "" {
		parts = append(parts, fmt.Sprintf("Best %d", p.runner.Best()))
	}
	for _, s := range g.Stats() {
		parts = append(parts, s.Label+" "+s.Value)
	}
	line := strings.Join(parts, "  ")
	if hint := p.hint(st); hint != "" {
		line += "  " + hint
	}
	return fitLine(line, p.width)
}

func (p *pane) hint(st core.GameState) string {
	switch {
	case p.runner.Disabled() != nil:
		return ""
	case st.Paused:
		return alertStyle.Render("PAUSED") + dimStyle.Render("  p to resume")
	case st.Status == core.StatusIdle:
		return dimStyle.Render("enter to start")
	case st.Terminal():
		again := dimStyle.Render("enter to play again")
		if out, ok := p.runner.Outcome(); ok && out.Improved {
			return alertStyle.Render("NEW BEST!") + "  " + again
		}
		return again
	}
	return ""
}

// body renders the playfield, or why there is none.
func (p *pane) body() string {
	if err := p.runner.Disabled(); err != nil {
		text := err.Error()
		if errors.Is(err, core.ErrMissingSurface) {
			text = fmt.Sprintf("%s needs a larger terminal", p.game().Title())
		}
		return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, alertStyle.Render(text))
	}
	p.screen.Clear()
	if err := p.runner.Render(p.canvas); err != nil {
		return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, alertStyle.Render("render failed"))
	}
	return RenderScreen(p.screen)
}

// saveScreenshot writes the playfield as plain text.
func (p *pane) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", p.game().ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(p.screen.String()), 0o600)
}

// Model is the Bubble Tea model for running a single game.
type Model struct {
	pane     *pane
	keys     KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for g. The game stays idle until started.
func NewModel(g registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	m := Model{
		pane:   newPane(0, g, cfg, opts.runnerOptions()),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		opts:   opts,
		logger: opts.logger(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.layout()
	return m
}

func (m Model) layout() tea.Cmd {
	return m.pane.layout(m.width, m.height-hudRows-helpRows, hudRows)
}

// Init waits for config updates, if any.
func (m Model) Init() tea.Cmd {
	return waitConfig(m.opts.Updates)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Screenshot):
			m.pane.saveScreenshot()
			return m, nil
		}
		return m, m.pane.key(msg, m.keys)

	case tea.MouseMsg:
		return m, m.pane.mouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, m.layout()

	case TickMsg:
		if msg.Slot != m.pane.slot {
			return m, nil
		}
		return m, m.pane.tick(msg)

	case ConfigMsg:
		cmds := []tea.Cmd{waitConfig(m.opts.Updates)}
		if msg.Game == m.pane.game().ID() {
			cmds = append(cmds, applyConfig(m.pane, msg, m.logger))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// applyConfig rebuilds the pane's game from a reloaded config.
func applyConfig(p *pane, msg ConfigMsg, logger *log.Logger) tea.Cmd {
	g, err := registry.Create(msg.Game, msg.Configs)
	if err != nil {
		logger.Error("cannot rebuild game", "game", msg.Game, "err", err)
		return nil
	}
	return p.replace(g)
}

// View renders the HUD, the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.pane.hud() + "\n" + m.pane.body() + "\n" + fitLine(dimStyle.Render(m.help.View(m.keys)), m.width)
}

// Run starts the Bubble Tea program for a single game.
func Run(g registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(g, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
