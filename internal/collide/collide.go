// Package collide holds the pure collision predicates shared by the games.
// Nothing here mutates game state except Reflector, which only flips the
// velocity handed to it.
package collide

import "github.com/vovakirdan/binary-arcade/internal/core"

// SameCell reports whether two grid cells coincide.
func SameCell(a, b core.Cell) bool {
	return a == b
}

// HitsBody reports whether head lies on any segment of body.
func HitsBody(head core.Cell, body []core.Cell) bool {
	for _, seg := range body {
		if SameCell(head, seg) {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether c lies outside [0,w) x [0,h).
func OutOfBounds(c core.Cell, w, h int) bool {
	return !c.In(w, h)
}

// Overlap reports whether two rectangles overlap on open intervals.
// Rectangles that only touch along an edge do not collide.
func Overlap(a, b core.RectF) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// SpanOverlap reports whether the open intervals (a0,a1) and (b0,b1) overlap.
func SpanOverlap(a0, a1, b0, b1 float64) bool {
	return a0 < b1 && b0 < a1
}

// StrictlyInside reports whether p lies strictly inside r. Points on the
// border are outside.
func StrictlyInside(p core.Vec, r core.RectF) bool {
	return p.X > r.X && p.X < r.Right() && p.Y > r.Y && p.Y < r.Bottom()
}

// Reflector flips velocity components at most once per axis per tick, so
// hitting two bricks in the same tick does not cancel out.
type Reflector struct {
	flippedX bool
	flippedY bool
}

// FlipX negates v.X unless it was already flipped this tick.
func (r *Reflector) FlipX(v *core.Vec) bool {
	if r.flippedX {
		return false
	}
	v.X = -v.X
	r.flippedX = true
	return true
}

// FlipY negates v.Y unless it was already flipped this tick.
func (r *Reflector) FlipY(v *core.Vec) bool {
	if r.flippedY {
		return false
	}
	v.Y = -v.Y
	r.flippedY = true
	return true
}

