package engine

import "time"

// Frame is the clock's verdict for a single tick: the effective time the
// renderer must draw with, whether it should draw at all, and whether the
// frame-rate throttle must be bypassed for this one frame.
type Frame struct {
	Time           time.Duration
	Draw           bool
	BypassThrottle bool
}

// SuspendClock converts a stream of per-frame timestamps plus a
// should-animate signal into effective animation time: wall-clock elapsed
// time minus every suspended interval.
//
// While running, effective time advances monotonically. At the instant of
// suspension the effective time is cached by value; every tick during the
// suspension reports that exact cached value, and the first such tick is
// the one freeze frame. On resume the suspended interval is folded into
// the cumulative paused total so effective time continues from the frozen
// instant with no jump, and the throttle is bypassed for exactly one
// frame so the resumed frame paints immediately.
//
// A SuspendClock is owned by a single instance's frame loop and is not
// safe for concurrent use.
type SuspendClock struct {
	start       time.Time     // epoch, set lazily on the first tick
	totalPaused time.Duration // cumulative suspended time, never decreases
	pauseStart  time.Time     // start of the current suspension, zero while running
	frozenAt    time.Duration // effective time cached at suspension
	frozenDrawn bool          // freeze frame already painted this suspension
}

// NewSuspendClock creates a clock. The epoch is not set until the first
// Tick so a slow-starting first frame does not count as paused time.
func NewSuspendClock() *SuspendClock {
	return &SuspendClock{}
}

// Tick advances the clock state machine with the given timestamp and
// should-animate signal, and returns what the frame loop must do.
func (c *SuspendClock) Tick(now time.Time, animate bool) Frame {
	if c.start.IsZero() {
		c.start = now
	}

	if !animate {
		if c.pauseStart.IsZero() {
			// RUNNING -> SUSPENDED
			c.pauseStart = now
			c.frozenAt = now.Sub(c.start) - c.totalPaused
			c.frozenDrawn = false
		}
		if !c.frozenDrawn {
			c.frozenDrawn = true
			return Frame{Time: c.frozenAt, Draw: true, BypassThrottle: true}
		}
		// Freeze frame already painted, hold without redrawing
		return Frame{Time: c.frozenAt}
	}

	if !c.pauseStart.IsZero() {
		// SUSPENDED -> RUNNING
		c.totalPaused += now.Sub(c.pauseStart)
		c.pauseStart = time.Time{}
		c.frozenDrawn = false
		return Frame{Time: now.Sub(c.start) - c.totalPaused, Draw: true, BypassThrottle: true}
	}

	return Frame{Time: now.Sub(c.start) - c.totalPaused, Draw: true}
}

// EffectiveTime reports the effective time at the given timestamp without
// mutating clock state. During a suspension this is the frozen value.
func (c *SuspendClock) EffectiveTime(now time.Time) time.Duration {
	if c.start.IsZero() {
		return 0
	}
	if !c.pauseStart.IsZero() {
		return c.frozenAt
	}
	return now.Sub(c.start) - c.totalPaused
}

// Suspended reports whether the clock is currently suspended
func (c *SuspendClock) Suspended() bool {
	return !c.pauseStart.IsZero()
}

// TotalPaused returns cumulative paused time folded in so far, excluding
// any suspension still in progress
func (c *SuspendClock) TotalPaused() time.Duration {
	return c.totalPaused
}
