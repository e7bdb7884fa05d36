package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/registry"
)

// tabRows is the height of the tab bar.
const tabRows = 1

// ErrNoGames is returned when no game is registered.
var ErrNoGames = errors.New("tui: no games registered")

// ArcadeModel shows the five games as tabs, one at a time. Hidden games
// are suspended: their tick chain stops and their state is kept.
type ArcadeModel struct {
	panes    []*pane
	active   int
	keys     KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewArcadeModel builds a pane per registered game, in arcade order.
func NewArcadeModel(cfg core.RuntimeConfig, opts Options) (ArcadeModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := DefaultKeyMap()
	keys.NextGame.SetEnabled(true)
	keys.PrevGame.SetEnabled(true)

	m := ArcadeModel{
		keys:   keys,
		help:   help.New(),
		opts:   opts,
		logger: opts.logger(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}

	for _, id := range arcadeOrder() {
		g, err := registry.Create(id, opts.Configs)
		if err != nil {
			return m, err
		}
		p := newPane(len(m.panes), g, cfg, opts.runnerOptions())
		if len(m.panes) > 0 {
			p.suspend()
		}
		m.panes = append(m.panes, p)
	}
	if len(m.panes) == 0 {
		return m, ErrNoGames
	}

	m.layout()
	return m, nil
}

// arcadeOrder lists registered games: the configured games first in
// their fixed order, then anything else by id.
func arcadeOrder() []string {
	var ids []string
	seen := make(map[string]bool)
	for _, id := range config.Games {
		if registry.Exists(id) {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	for _, g := range registry.List() {
		if !seen[g.ID] {
			ids = append(ids, g.ID)
		}
	}
	return ids
}

func (m ArcadeModel) layout() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.panes {
		cmds = append(cmds, p.layout(m.width, m.height-tabRows-hudRows-helpRows, tabRows+hudRows))
	}
	return tea.Batch(cmds...)
}

// Active returns the id of the visible game.
func (m ArcadeModel) Active() string {
	return m.panes[m.active].game().ID()
}

// Init waits for config updates, if any.
func (m ArcadeModel) Init() tea.Cmd {
	return waitConfig(m.opts.Updates)
}

// Update handles messages for the selector and the visible game.
func (m ArcadeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			return m.switchTo((m.active + 1) % len(m.panes))
		case key.Matches(msg, m.keys.PrevGame):
			return m.switchTo((m.active + len(m.panes) - 1) % len(m.panes))
		case key.Matches(msg, m.keys.Screenshot):
			m.panes[m.active].saveScreenshot()
			return m, nil
		}
		return m, m.panes[m.active].key(msg, m.keys)

	case tea.MouseMsg:
		if msg.Y < tabRows {
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				if i, ok := m.tabAt(msg.X); ok {
					return m.switchTo(i)
				}
			}
			return m, nil
		}
		return m, m.panes[m.active].mouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, m.layout()

	case TickMsg:
		if msg.Slot < 0 || msg.Slot >= len(m.panes) {
			return m, nil
		}
		return m, m.panes[msg.Slot].tick(msg)

	case ConfigMsg:
		cmds := []tea.Cmd{waitConfig(m.opts.Updates)}
		for _, p := range m.panes {
			if p.game().ID() == msg.Game {
				cmds = append(cmds, applyConfig(p, msg, m.logger))
			}
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// switchTo suspends the visible game and resumes game i.
func (m ArcadeModel) switchTo(i int) (tea.Model, tea.Cmd) {
	if i == m.active {
		return m, nil
	}
	m.panes[m.active].suspend()
	m.active = i
	m.logger.Debug("switched game", "game", m.Active())
	return m, m.panes[i].resume()
}

func (m ArcadeModel) tabLabels() []string {
	labels := make([]string, len(m.panes))
	for i, p := range m.panes {
		title := p.game().Title()
		switch {
		case i == m.active:
			labels[i] = activeTabStyle.Render(title)
		case p.runner.Disabled() != nil:
			labels[i] = disabledTabStyle.Render(title)
		default:
			labels[i] = tabStyle.Render(title)
		}
	}
	return labels
}

// tabAt returns the tab under column x.
func (m ArcadeModel) tabAt(x int) (int, bool) {
	left := 0
	for i, label := range m.tabLabels() {
		w := lipgloss.Width(label)
		if x >= left && x < left+w {
			return i, true
		}
		left += w + 1
	}
	return 0, false
}

// View renders the tab bar above the visible game.
func (m ArcadeModel) View() string {
	if m.quitting {
		return ""
	}
	p := m.panes[m.active]

	var b strings.Builder
	b.WriteString(fitLine(strings.Join(m.tabLabels(), " "), m.width))
	b.WriteString("\n")
	b.WriteString(p.hud())
	b.WriteString("\n")
	b.WriteString(p.body())
	b.WriteString("\n")
	b.WriteString(fitLine(dimStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// RunArcade runs the five-game selector.
func RunArcade(cfg core.RuntimeConfig, opts Options) error {
	model, err := NewArcadeModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}
