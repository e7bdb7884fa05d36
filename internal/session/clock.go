// Package session drives one game instance: it owns the fixed-step clock,
// arms and disarms the tick chain, isolates faults, and reports final
// scores to the persistence bridge exactly once per session.
package session

import "time"

// DefaultMaxCatchUp caps how many fixed steps one late tick may run.
const DefaultMaxCatchUp = 5

// Clock is a fixed-step accumulator. Wall time between ticks is banked and
// paid out in whole steps, so a late tick catches up and an early one waits.
type Clock struct {
	step     time.Duration
	maxSteps int

	last    time.Time
	acc     time.Duration
	started bool
}

// NewClock creates a clock with the given step and catch-up cap.
func NewClock(step time.Duration, maxSteps int) *Clock {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxCatchUp
	}
	return &Clock{step: step, maxSteps: maxSteps}
}

// Step returns the fixed step.
func (c *Clock) Step() time.Duration {
	return c.step
}

// SetStep changes the fixed step and drops banked time.
func (c *Clock) SetStep(step time.Duration) {
	c.step = step
	c.acc = 0
}

// Reset forgets the previous tick. The next Advance pays exactly one step.
func (c *Clock) Reset() {
	c.started = false
	c.acc = 0
}

// Advance returns how many fixed steps are due at now.
func (c *Clock) Advance(now time.Time) int {
	if c.step <= 0 {
		return 0
	}
	if !c.started {
		c.started = true
		c.last = now
		return 1
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed <= 0 {
		return 0
	}

	c.acc += elapsed
	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step
	if n > c.maxSteps {
		n = c.maxSteps
		c.acc = 0
	}
	return n
}
