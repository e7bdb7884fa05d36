package core

// Intent is a validated, semantic directive derived from raw input.
// Games consume intents and never see key codes or mouse events.
type Intent int

const (
	IntentNone      Intent = iota
	IntentMoveUp           // W, Up arrow, swipe up
	IntentMoveDown         // S, Down arrow, swipe down (soft drop in tetris)
	IntentMoveLeft         // A, Left arrow, swipe left
	IntentMoveRight        // D, Right arrow, swipe right
	IntentRotate           // X, Z, tap (tetris)
	IntentJump             // Space, click - primary action (flap, click, launch)
	IntentPause            // P, Escape - pause/unpause
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveUp:
		return "MoveUp"
	case IntentMoveDown:
		return "MoveDown"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentRotate:
		return "Rotate"
	case IntentJump:
		return "Jump"
	case IntentPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Direction returns the grid direction for movement intents, or DirNone.
func (i Intent) Direction() Dir {
	switch i {
	case IntentMoveUp:
		return DirUp
	case IntentMoveDown:
		return DirDown
	case IntentMoveLeft:
		return DirLeft
	case IntentMoveRight:
		return DirRight
	default:
		return DirNone
	}
}

// IsMove reports whether the intent is one of the four movement intents.
func (i Intent) IsMove() bool {
	return !i.Direction().IsZero()
}

// InputFrame collects everything the player did between two ticks.
// Intents keep arrival order so that the most recent accepted intent wins.
type InputFrame struct {
	intents []Intent

	// Pointer is the last known pointer position in logical canvas
	// coordinates. Only meaningful when HasPointer is set.
	Pointer    Vec
	HasPointer bool

	// Clicks are pointer presses in logical canvas coordinates.
	Clicks []Vec

	// Selections are numbered choices (clicker upgrade slots, 0-based).
	Selections []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an intent to the frame. IntentNone is ignored.
func (f *InputFrame) Set(i Intent) {
	if i == IntentNone {
		return
	}
	f.intents = append(f.intents, i)
}

// Has returns true if the given intent was triggered this frame.
func (f InputFrame) Has(i Intent) bool {
	for _, x := range f.intents {
		if x == i {
			return true
		}
	}
	return false
}

// Intents returns the intents in arrival order.
func (f InputFrame) Intents() []Intent {
	return f.intents
}

// Last returns the most recent intent among the candidates, or IntentNone.
func (f InputFrame) Last(candidates ...Intent) Intent {
	for i := len(f.intents) - 1; i >= 0; i-- {
		for _, c := range candidates {
			if f.intents[i] == c {
				return c
			}
		}
	}
	return IntentNone
}

// PointTo records the pointer position.
func (f *InputFrame) PointTo(p Vec) {
	f.Pointer = p
	f.HasPointer = true
}

// Click records a pointer press.
func (f *InputFrame) Click(p Vec) {
	f.Clicks = append(f.Clicks, p)
}

// Select records a numbered choice.
func (f *InputFrame) Select(slot int) {
	f.Selections = append(f.Selections, slot)
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.intents = f.intents[:0]
	f.Clicks = f.Clicks[:0]
	f.Selections = f.Selections[:0]
	f.HasPointer = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{
		Pointer:    f.Pointer,
		HasPointer: f.HasPointer,
	}
	clone.intents = append(clone.intents, f.intents...)
	clone.Clicks = append(clone.Clicks, f.Clicks...)
	clone.Selections = append(clone.Selections, f.Selections...)
	return clone
}
