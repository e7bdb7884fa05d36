package session

import (
	"fmt"
	"io"
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binary-arcade/internal/core"
	"github.com/vovakirdan/binary-arcade/internal/registry"
	"github.com/vovakirdan/binary-arcade/internal/score"
)

// Options configures a Runner.
type Options struct {
	Bridge     *score.Bridge // nil disables best scores
	Logger     *log.Logger   // nil discards
	SessionID  string        // tags log lines, e.g. an SSH session
	MaxCatchUp int           // steps per tick cap, DefaultMaxCatchUp if 0
}

// Outcome is the result of a finished session.
type Outcome struct {
	Status   core.Status
	Score    int
	Best     int
	Improved bool
}

// Runner owns one game instance and its tick chain.
//
// Every Start arms a new generation. Ticks carry the generation they were
// scheduled with; Advance drops any tick whose generation is stale, so a
// Reset (which bumps the generation before touching state) cancels a tick
// already in flight.
type Runner struct {
	game   registry.Game
	next   registry.Game
	cfg    core.RuntimeConfig
	clock  *Clock
	bridge *score.Bridge
	logger *log.Logger
	id     string

	gen       uint64
	armed     bool
	suspended bool
	settled   bool
	outcome   *Outcome
	disabled  error
}

// NewRunner wraps g and resets it to idle.
func NewRunner(g registry.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	if cfg.Rand == nil {
		// One stream for the runner's lifetime so each session differs.
		cfg.Rand = rand.New(rand.NewSource(cfg.Seed))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Runner{
		game:   g,
		cfg:    cfg,
		clock:  NewClock(g.Interval(), opts.MaxCatchUp),
		bridge: opts.Bridge,
		logger: logger.With("game", g.ID()),
		id:     opts.SessionID,
	}
	if r.id != "" {
		r.logger = r.logger.With("session", r.id)
	}
	r.Reset()
	return r
}

// Game returns the wrapped game.
func (r *Runner) Game() registry.Game {
	return r.game
}

// Generation returns the current tick generation.
func (r *Runner) Generation() uint64 {
	return r.gen
}

// Armed reports whether the tick chain should be running.
func (r *Runner) Armed() bool {
	return r.armed && !r.suspended && r.disabled == nil
}

// Interval is the wrapped game's fixed step.
func (r *Runner) Interval() time.Duration {
	return r.clock.Step()
}

// State returns the wrapped game's state.
func (r *Runner) State() core.GameState {
	return r.game.State()
}

// Best returns the persisted best for the game, or 0 without a best key.
func (r *Runner) Best() int {
	if r.bridge == nil {
		return 0
	}
	return r.bridge.Best(r.game.BestKey())
}

// Outcome returns the result of the last finished session, if any.
func (r *Runner) Outcome() (Outcome, bool) {
	if r.outcome == nil {
		return Outcome{}, false
	}
	return *r.outcome, true
}

// Disable marks the game unusable, typically with core.ErrMissingSurface.
// Passing nil re-enables it. A running session keeps its state while
// disabled; on re-enable ok reports that its tick chain must be scheduled
// again with gen.
func (r *Runner) Disable(err error) (gen uint64, ok bool) {
	was := r.disabled
	r.disabled = err
	switch {
	case err != nil && was == nil:
		r.logger.Warn("game disabled", "err", err)
		r.gen++
	case err == nil && was != nil:
		r.logger.Info("game re-enabled")
		r.gen++
		r.clock.Reset()
		return r.gen, r.Armed()
	}
	return r.gen, false
}

// Disabled returns the reason the game is disabled, or nil.
func (r *Runner) Disabled() error {
	return r.disabled
}

// Replace installs g for the next Reset or Start from a non-running state.
// Used when the game's config changes on disk.
func (r *Runner) Replace(g registry.Game) {
	r.next = g
	if r.game.State().Status != core.StatusRunning {
		r.swap()
	}
}

func (r *Runner) swap() {
	if r.next == nil {
		return
	}
	r.game = r.next
	r.next = nil
	r.game.Reset(r.cfg)
	r.clock.SetStep(r.game.Interval())
	r.logger.Info("config reloaded")
}

// Start begins a session and returns the generation to schedule ticks
// with. ok is false when nothing was started: the game is disabled or
// already running.
func (r *Runner) Start() (gen uint64, ok bool) {
	if r.disabled != nil || r.game.State().Status == core.StatusRunning {
		return r.gen, false
	}
	r.swap()
	r.gen++
	r.armed = true
	r.settled = false
	r.outcome = nil
	r.clock.Reset()
	if err := r.guard("start", r.game.Start); err != nil {
		r.armed = false
		return r.gen, false
	}
	r.logger.Debug("session started", "gen", r.gen)
	return r.gen, true
}

// Reset disarms the tick chain, then returns the game to idle. A running
// session ends abruptly without a final score.
func (r *Runner) Reset() {
	r.gen++
	r.armed = false
	r.settled = false
	r.outcome = nil
	r.clock.Reset()
	if r.next != nil {
		r.swap()
		return
	}
	_ = r.guard("reset", func() { r.game.Reset(r.cfg) })
	r.clock.SetStep(r.game.Interval())
}

// Suspend stops the tick chain without changing game state.
func (r *Runner) Suspend() {
	if r.suspended {
		return
	}
	r.suspended = true
	r.gen++
}

// Resume restarts the tick chain of a suspended session. It returns the
// generation to schedule and whether a chain is needed at all.
func (r *Runner) Resume() (gen uint64, ok bool) {
	if !r.suspended {
		return r.gen, false
	}
	r.suspended = false
	r.gen++
	r.clock.Reset()
	return r.gen, r.Armed()
}

// Advance handles a tick scheduled with generation gen. It runs the due
// fixed steps, feeding frame to the first one only, and reports whether
// the next tick should be scheduled.
func (r *Runner) Advance(gen uint64, now time.Time, frame core.InputFrame) bool {
	if gen != r.gen || !r.Armed() {
		return false
	}

	n := r.clock.Advance(now)
	empty := core.NewInputFrame()
	for i := 0; i < n; i++ {
		in := empty
		if i == 0 {
			in = frame
		}
		if err := r.guard("step", func() { r.game.Step(in) }); err != nil {
			break
		}
		if r.game.State().Terminal() {
			break
		}
	}

	st := r.game.State()
	if st.Terminal() {
		r.settle(st)
		r.armed = false
		return false
	}
	return true
}

// Render draws the game; a panic inside Render is reported as an error.
func (r *Runner) Render(c core.Canvas) error {
	return r.guard("render", func() { r.game.Render(c) })
}

// settle reports a terminal session to the bridge exactly once.
func (r *Runner) settle(st core.GameState) {
	if r.settled {
		return
	}
	r.settled = true

	out := Outcome{Status: st.Status, Score: st.Score}
	if r.bridge != nil {
		out.Best, out.Improved = r.bridge.Record(r.game.BestKey(), st.Score)
	}
	r.outcome = &out
	r.logger.Info("session ended", "status", st.Status, "score", st.Score, "best", out.Best, "improved", out.Improved)
}

// guard runs fn and turns a panic into an aborted session. Faults never
// escape to the event loop and never touch other runners.
func (r *Runner) guard(op string, fn func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("session: %s panicked: %v", op, p)
			r.logger.Error("game fault", "op", op, "panic", p, "stack", string(debug.Stack()))
			r.gen++
			r.armed = false
			r.settled = true
			func() {
				defer func() { _ = recover() }()
				r.game.Abort()
			}()
		}
	}()
	fn()
	return nil
}
