package snake

import "github.com/vovakirdan/binary-arcade/internal/core"

// Snapshot captures the game state for determinism tests and debugging.
type Snapshot struct {
	Tick   uint64
	Status core.Status
	Score  int
	Len    int
	Head   core.Cell
	Dir    core.Dir
	Food   core.Cell
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var head core.Cell
	if len(g.body) > 0 {
		head = g.body[0]
	}
	return Snapshot{
		Tick:   g.tick,
		Status: g.Status(),
		Score:  g.score,
		Len:    len(g.body),
		Head:   head,
		Dir:    g.dir,
		Food:   g.food,
	}
}
