package input

import (
	"testing"

	"github.com/vovakirdan/binary-arcade/internal/core"
)

func TestKeymapApply(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		key    string
		intent core.Intent
	}{
		{"up", core.IntentMoveUp},
		{"a", core.IntentMoveLeft},
		{"x", core.IntentRotate},
		{" ", core.IntentJump},
		{"esc", core.IntentPause},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			f := core.NewInputFrame()
			if !km.Apply(tc.key, &f) {
				t.Fatalf("key %q not recognized", tc.key)
			}
			if !f.Has(tc.intent) {
				t.Errorf("key %q should produce %v", tc.key, tc.intent)
			}
		})
	}

	f := core.NewInputFrame()
	if !km.Apply("3", &f) || len(f.Selections) != 1 || f.Selections[0] != 2 {
		t.Errorf("digit 3 should select slot 2, got %v", f.Selections)
	}
	if km.Apply("0", &f) || km.Apply("F5", &f) {
		t.Error("unbound keys should not be recognized")
	}
}

func TestSwipeContinuous(t *testing.T) {
	s := NewSwipe(SwipeContinuous)
	s.Begin(core.Vec{X: 100, Y: 100})

	if got := s.Move(core.Vec{X: 120, Y: 105}); got != core.IntentNone {
		t.Errorf("below threshold got %v", got)
	}
	if got := s.Move(core.Vec{X: 135, Y: 100}); got != core.IntentMoveRight {
		t.Errorf("expected MoveRight, got %v", got)
	}
	// Re-anchored at (135,100): a further 20px is not enough.
	if got := s.Move(core.Vec{X: 155, Y: 100}); got != core.IntentNone {
		t.Errorf("after re-anchor got %v", got)
	}
	if got := s.Move(core.Vec{X: 135, Y: 60}); got != core.IntentMoveUp {
		t.Errorf("expected MoveUp, got %v", got)
	}
	if got := s.End(core.Vec{}); got != core.IntentNone {
		t.Errorf("continuous End should not classify, got %v", got)
	}
}

func TestSwipeRelease(t *testing.T) {
	tests := []struct {
		name string
		to   core.Vec
		want core.Intent
	}{
		{"tap", core.Vec{X: 10, Y: -10}, core.IntentRotate},
		{"right", core.Vec{X: 40, Y: 5}, core.IntentMoveRight},
		{"left", core.Vec{X: -40, Y: 5}, core.IntentMoveLeft},
		{"down", core.Vec{X: 5, Y: 40}, core.IntentMoveDown},
		{"up ignored", core.Vec{X: 5, Y: -40}, core.IntentNone},
		{"dead zone", core.Vec{X: 25, Y: 0}, core.IntentNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSwipe(SwipeRelease)
			s.Begin(core.Vec{})
			if got := s.Move(tc.to); got != core.IntentNone {
				t.Errorf("release mode Move should not classify, got %v", got)
			}
			if got := s.End(tc.to); got != tc.want {
				t.Errorf("End = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestPointerFollow(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{300, 250},
		{10, 0},
		{590, 500},
	}
	for _, tc := range tests {
		if got := PointerFollow(tc.x, 100, 600); got != tc.want {
			t.Errorf("PointerFollow(%v) = %v, expected %v", tc.x, got, tc.want)
		}
	}
}

func TestAxisLocked(t *testing.T) {
	tests := []struct {
		intent  core.Intent
		current core.Dir
		locked  bool
	}{
		{core.IntentMoveLeft, core.DirRight, true},
		{core.IntentMoveRight, core.DirRight, true},
		{core.IntentMoveUp, core.DirRight, false},
		{core.IntentMoveDown, core.DirUp, true},
		{core.IntentMoveDown, core.DirNone, false},
		{core.IntentJump, core.DirRight, false},
	}
	for _, tc := range tests {
		if got := AxisLocked(tc.intent, tc.current); got != tc.locked {
			t.Errorf("AxisLocked(%v, %v) = %v, expected %v", tc.intent, tc.current, got, tc.locked)
		}
	}
}
