package core

// Status is the session state shared by every game.
//
//	idle --Start--> running --terminate--> over
//	running --win--> won
//	over/won --Reset--> idle
//	running --Reset--> idle
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusOver
	StatusWon
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends a session.
func (s Status) Terminal() bool {
	return s == StatusOver || s == StatusWon
}

// Lifecycle holds the status and pause flag. Games embed it so the
// transitions are identical everywhere.
type Lifecycle struct {
	status Status
	paused bool
}

// Status returns the current status.
func (l *Lifecycle) Status() Status {
	return l.status
}

// Running reports whether the session is running (paused or not).
func (l *Lifecycle) Running() bool {
	return l.status == StatusRunning
}

// Active reports whether the simulator should advance this tick.
func (l *Lifecycle) Active() bool {
	return l.status == StatusRunning && !l.paused
}

// Paused reports whether a running session is paused.
func (l *Lifecycle) Paused() bool {
	return l.paused
}

// Begin moves to running. It returns false, changing nothing, when the
// session is already running.
func (l *Lifecycle) Begin() bool {
	if l.status == StatusRunning {
		return false
	}
	l.status = StatusRunning
	l.paused = false
	return true
}

// End moves a running session to a terminal status.
func (l *Lifecycle) End(s Status) {
	if l.status != StatusRunning || !s.Terminal() {
		return
	}
	l.status = s
	l.paused = false
}

// Idle returns to the idle status from anywhere.
func (l *Lifecycle) Idle() {
	l.status = StatusIdle
	l.paused = false
}

// TogglePause flips the pause flag of a running session.
func (l *Lifecycle) TogglePause() {
	if l.status == StatusRunning {
		l.paused = !l.paused
	}
}

// HandlePause applies a Pause intent and reports whether the tick should
// simulate.
func (l *Lifecycle) HandlePause(in InputFrame) bool {
	if in.Has(IntentPause) {
		l.TogglePause()
	}
	return l.Active()
}

// Abort ends a running session as over without any game side effects.
func (l *Lifecycle) Abort() {
	l.End(StatusOver)
}
