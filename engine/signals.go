package engine

import "sync/atomic"

// Signals holds the externally-owned inputs every mounted instance
// samples each tick: window focus and the global animation toggle.
// Writers are the host shell's event handlers; readers are instance
// frame loops. Reads and writes are atomic, no coordination needed.
type Signals struct {
	focused atomic.Bool
	enabled atomic.Bool
}

// NewSignals creates signals in the focused, animations-enabled state
func NewSignals() *Signals {
	s := &Signals{}
	s.focused.Store(true)
	s.enabled.Store(true)
	return s
}

// SetFocused records the window-focus state
func (s *Signals) SetFocused(focused bool) {
	s.focused.Store(focused)
}

// SetEnabled records the global animation-enabled flag
func (s *Signals) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}

// Enabled returns the global animation-enabled flag
func (s *Signals) Enabled() bool {
	return s.enabled.Load()
}

// Focused returns the window-focus state
func (s *Signals) Focused() bool {
	return s.focused.Load()
}

// ShouldAnimate is the logical AND of focus and the global toggle
func (s *Signals) ShouldAnimate() bool {
	return s.focused.Load() && s.enabled.Load()
}
