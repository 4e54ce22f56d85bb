// Package timer provides frame-driven countdown timers.
package timer

import "time"

// Mode selects what a Timer does once it reaches its target.
type Mode int

const (
	Once      Mode = iota // Finishes once and stays finished
	Repeating             // Wraps around, keeping any overshoot
)

func (m Mode) String() string {
	switch m {
	case Once:
		return "once"
	case Repeating:
		return "repeating"
	default:
		return "unknown"
	}
}

// Timer accumulates frame time towards a target duration.
// It only advances through Tick, so it is deterministic for a given
// sequence of frame deltas.
type Timer struct {
	elapsed  time.Duration
	target   time.Duration
	mode     Mode
	finished bool
}

// New creates a timer that finishes after target has elapsed.
func New(target time.Duration, mode Mode) Timer {
	return Timer{target: target, mode: mode}
}

// FromSeconds creates a timer from a target in seconds.
func FromSeconds(seconds float64, mode Mode) Timer {
	return New(time.Duration(seconds*float64(time.Second)), mode)
}

// Tick advances the timer by dt. Negative deltas are ignored.
//
// A Once timer latches finished on the first tick where elapsed reaches the
// target. A Repeating timer subtracts the target on that tick so the overshoot
// counts towards the next period, and reports finished only for that tick.
func (t *Timer) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	if t.mode == Once && t.finished {
		t.elapsed += dt
		return
	}

	t.elapsed += dt
	t.finished = t.elapsed >= t.target
	if t.finished && t.mode == Repeating && t.target > 0 {
		t.elapsed -= t.target
	}
}

// Finished reports whether the timer reached its target on the last tick
// (Repeating) or at any point so far (Once).
func (t *Timer) Finished() bool {
	return t.finished
}

// Elapsed returns the time accumulated in the current period.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Target returns the timer's duration.
func (t *Timer) Target() time.Duration {
	return t.target
}

// Mode returns the timer mode.
func (t *Timer) Mode() Mode {
	return t.mode
}

// Remaining returns the time left until the next finish, never negative.
func (t *Timer) Remaining() time.Duration {
	return max(t.target-t.elapsed, 0)
}
