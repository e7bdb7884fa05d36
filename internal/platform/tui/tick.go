// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick of the game in Slot.
// Gen is the runner generation the tick was scheduled with; a tick whose
// generation is stale is dropped.
type TickMsg struct {
	Slot int
	Gen  uint64
	At   time.Time
}

// tickCmd schedules the next tick of one game.
func tickCmd(slot int, gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Slot: slot, Gen: gen, At: t}
	})
}
