package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/binary-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade, in menu order.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", 16, "Title", "Controls")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", 16, "-----", "--------")

	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, 16, g.Title, controlsHelp[g.ID])
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game, or 'arcade menu' for all of them.")
}

// controlsHelp summarizes the controls of each game.
var controlsHelp = map[string]string{
	"clicker":  "click the coin or space; 1-9 buy upgrades",
	"snake":    "arrows/wasd or swipe",
	"breakout": "left/right or mouse",
	"flappy":   "space/up or click",
	"tetris":   "arrows, up/x rotate, swipe or tap",
}
