package input

import (
	"math"

	"github.com/vovakirdan/binary-arcade/internal/core"
)

// Gesture thresholds in logical canvas pixels.
const (
	SwipeThreshold = 30.0
	TapRadius      = 20.0
)

// SwipeMode selects when a swipe is classified.
type SwipeMode int

const (
	// SwipeContinuous emits an intent as soon as the finger travels past the
	// threshold, then re-anchors so a long drag can steer repeatedly.
	SwipeContinuous SwipeMode = iota
	// SwipeRelease classifies once on release. A short touch is a tap
	// (Rotate) and only downward vertical swipes count.
	SwipeRelease
)

// Swipe classifies touch gestures by their dominant axis.
type Swipe struct {
	Mode      SwipeMode
	Threshold float64
	Tap       float64

	anchor core.Vec
	active bool
}

// NewSwipe creates a classifier with the default thresholds.
func NewSwipe(mode SwipeMode) *Swipe {
	return &Swipe{Mode: mode, Threshold: SwipeThreshold, Tap: TapRadius}
}

// Begin anchors a new gesture at p.
func (s *Swipe) Begin(p core.Vec) {
	s.anchor = p
	s.active = true
}

// Active reports whether a gesture is in progress.
func (s *Swipe) Active() bool {
	return s.active
}

// Move feeds an intermediate position. Only continuous mode produces intents.
func (s *Swipe) Move(p core.Vec) core.Intent {
	if !s.active || s.Mode != SwipeContinuous {
		return core.IntentNone
	}
	intent := s.classify(p.X-s.anchor.X, p.Y-s.anchor.Y)
	if intent != core.IntentNone {
		s.anchor = p
	}
	return intent
}

// End finishes the gesture. Only release mode produces intents.
func (s *Swipe) End(p core.Vec) core.Intent {
	if !s.active {
		return core.IntentNone
	}
	s.active = false
	if s.Mode != SwipeRelease {
		return core.IntentNone
	}

	dx, dy := p.X-s.anchor.X, p.Y-s.anchor.Y
	if math.Abs(dx) < s.Tap && math.Abs(dy) < s.Tap {
		return core.IntentRotate
	}
	intent := s.classify(dx, dy)
	if intent == core.IntentMoveUp {
		return core.IntentNone
	}
	return intent
}

func (s *Swipe) classify(dx, dy float64) core.Intent {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax > ay {
		switch {
		case dx > s.Threshold:
			return core.IntentMoveRight
		case dx < -s.Threshold:
			return core.IntentMoveLeft
		}
		return core.IntentNone
	}
	switch {
	case dy > s.Threshold:
		return core.IntentMoveDown
	case dy < -s.Threshold:
		return core.IntentMoveUp
	}
	return core.IntentNone
}

// PointerFollow returns the left edge of a paddle of width w centered on
// pointerX, clamped to [0, canvasW-w].
func PointerFollow(pointerX, w, canvasW float64) float64 {
	return core.ClampF(pointerX-w/2, 0, canvasW-w)
}

// AxisLocked reports whether a movement intent must be rejected because it
// runs along the axis the entity is already moving on. This forbids a
// direct reversal into the body. A stationary entity accepts anything.
func AxisLocked(intent core.Intent, current core.Dir) bool {
	d := intent.Direction()
	if d.IsZero() || current.IsZero() {
		return false
	}
	if d.X != 0 && current.X != 0 {
		return true
	}
	return d.Y != 0 && current.Y != 0
}
