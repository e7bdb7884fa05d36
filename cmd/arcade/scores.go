package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/platform/tui"
	"github.com/vovakirdan/binary-arcade/internal/registry"
	"github.com/vovakirdan/binary-arcade/internal/score"
	"github.com/vovakirdan/binary-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best scores",
	Long: `Display the best score of every game.

In a terminal this opens an interactive table where x clears the selected
best. When output is piped the bests are printed as plain text.

Examples:
  arcade scores
  arcade scores > bests.txt
  arcade scores clear snake`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear <game|key>",
	Short: "Clear a stored best score",
	Long: `Delete the stored best of a game. Accepts a game id such as "snake"
or a raw best key such as "` + score.KeySnake + `".`,
	Args: cobra.ExactArgs(1),
	Run:  runScoresClear,
}

func init() {
	scoresCmd.AddCommand(scoresClearCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			w, h = 80, 24
		}
		if err := tui.RunScoreboard(store, w, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries, err := store.AllBest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No best scores yet.")
		return
	}

	titles := tui.BestKeyTitles()
	fmt.Printf("%-16s  %-14s  %8s  %s\n", "Game", "Key", "Best", "Updated")
	fmt.Printf("%-16s  %-14s  %8s  %s\n", "----", "---", "----", "-------")
	for _, e := range entries {
		title, ok := titles[e.Key]
		if !ok {
			title = "-"
		}
		updated := "-"
		if !e.UpdatedAt.IsZero() {
			updated = e.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("%-16s  %-14s  %8d  %s\n", title, e.Key, e.Value, updated)
	}
}

func runScoresClear(_ *cobra.Command, args []string) {
	key, err := bestKeyFor(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if err := store.ClearBest(key); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleared %s.\n", key)
}

// bestKeyFor resolves a game id to its best key. Anything that is not a
// registered game is taken as a raw key.
func bestKeyFor(arg string) (string, error) {
	if !registry.Exists(arg) {
		return arg, nil
	}
	g, err := registry.Create(arg, config.DefaultSet())
	if err != nil {
		return "", err
	}
	if g.BestKey() == "" {
		return "", fmt.Errorf("%s keeps no best score", g.Title())
	}
	return g.BestKey(), nil
}
