// Package spawn places procedural content (food, pieces, pipe gaps) using an
// injectable random source so runs are reproducible from a seed.
package spawn

import "github.com/vovakirdan/binary-arcade/internal/core"

// Source is the subset of *rand.Rand the games draw from.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// DefaultRetries bounds how many uniform samples FreeCell draws before
// falling back to a scan.
const DefaultRetries = 64

// FreeCell picks a uniformly random cell in a w x h grid that is not
// occupied. After maxRetries collisions it scans row-major from a random
// start, so it always terminates. ok is false only when every cell is taken.
func FreeCell(src Source, w, h int, occupied func(core.Cell) bool, maxRetries int) (core.Cell, bool) {
	if w <= 0 || h <= 0 {
		return core.Cell{}, false
	}
	for i := 0; i < maxRetries; i++ {
		c := core.Cell{X: src.Intn(w), Y: src.Intn(h)}
		if !occupied(c) {
			return c, true
		}
	}

	total := w * h
	start := src.Intn(total)
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		c := core.Cell{X: idx % w, Y: idx / w}
		if !occupied(c) {
			return c, true
		}
	}
	return core.Cell{}, false
}

// Occupies returns an occupancy predicate over a list of cells.
func Occupies(cells []core.Cell) func(core.Cell) bool {
	return func(c core.Cell) bool {
		for _, x := range cells {
			if x == c {
				return true
			}
		}
		return false
	}
}

// Digit returns '0' or '1' with equal probability.
func Digit(src Source) rune {
	if src.Float64() > 0.5 {
		return '1'
	}
	return '0'
}

// Between returns a float in [lo, lo+span).
func Between(src Source, lo, span float64) float64 {
	return src.Float64()*span + lo
}
