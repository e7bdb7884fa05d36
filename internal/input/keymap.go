// Package input turns raw terminal events (key names, pointer and touch
// positions) into core intents. Nothing here knows about Bubble Tea types;
// the platform layer passes key strings and canvas coordinates.
package input

import (
	"strconv"

	"github.com/vovakirdan/binary-arcade/internal/core"
)

// Keymap maps key names, as reported by tea.KeyMsg.String(), to intents.
type Keymap map[string]core.Intent

// DefaultKeymap returns the arcade-wide bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		"up":    core.IntentMoveUp,
		"w":     core.IntentMoveUp,
		"down":  core.IntentMoveDown,
		"s":     core.IntentMoveDown,
		"left":  core.IntentMoveLeft,
		"a":     core.IntentMoveLeft,
		"right": core.IntentMoveRight,
		"d":     core.IntentMoveRight,
		"x":     core.IntentRotate,
		"z":     core.IntentRotate,
		" ":     core.IntentJump,
		"space": core.IntentJump,
		"p":     core.IntentPause,
		"esc":   core.IntentPause,
	}
}

// MaxSelection is the highest numbered choice a key can select.
const MaxSelection = 9

// Apply records the effect of key on the frame. Digit keys 1..9 become
// 0-based selections. It reports whether the key was recognized.
func (k Keymap) Apply(key string, f *core.InputFrame) bool {
	if intent, ok := k[key]; ok {
		f.Set(intent)
		return true
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= MaxSelection {
		f.Select(n - 1)
		return true
	}
	return false
}

