package engine

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestLazyEpoch(t *testing.T) {
	c := NewSuspendClock()

	// Epoch is the first tick's timestamp, not construction time
	fr := c.Tick(at(5000), true)
	if fr.Time != 0 {
		t.Errorf("Expected effective time 0 on first tick, got %v", fr.Time)
	}

	fr = c.Tick(at(5100), true)
	if fr.Time != 100*time.Millisecond {
		t.Errorf("Expected 100ms, got %v", fr.Time)
	}
}

func TestMonotonicWhileRunning(t *testing.T) {
	c := NewSuspendClock()
	var prev time.Duration
	for ms := 0; ms <= 2000; ms += 37 {
		fr := c.Tick(at(ms), true)
		if fr.Time < prev {
			t.Fatalf("Effective time went backwards: %v after %v at t=%dms", fr.Time, prev, ms)
		}
		prev = fr.Time
	}
}

func TestEffectiveTimeFrozenDuringSuspension(t *testing.T) {
	c := NewSuspendClock()
	c.Tick(at(0), true)
	c.Tick(at(500), true)

	// Suspend at t=500; every tick in the suspension reports the same value
	frozen := c.Tick(at(500), false).Time
	for _, ms := range []int{600, 1000, 2500, 9999} {
		fr := c.Tick(at(ms), false)
		if fr.Time != frozen {
			t.Errorf("Expected frozen time %v at t=%dms, got %v", frozen, ms, fr.Time)
		}
		if got := c.EffectiveTime(at(ms)); got != frozen {
			t.Errorf("EffectiveTime at t=%dms: expected %v, got %v", ms, frozen, got)
		}
	}
}

func TestNoJumpOnResume(t *testing.T) {
	c := NewSuspendClock()
	c.Tick(at(0), true)
	before := c.Tick(at(800), true).Time

	c.Tick(at(800), false)
	c.Tick(at(4000), false)

	after := c.Tick(at(4000), true)
	if after.Time != before {
		t.Errorf("Expected effective time %v immediately after resume, got %v", before, after.Time)
	}
	if !after.BypassThrottle {
		t.Error("Expected throttle bypass on the resume frame")
	}
}

func TestFreezeFrameDrawnOncePerSuspension(t *testing.T) {
	c := NewSuspendClock()
	c.Tick(at(0), true)

	draws := 0
	for _, ms := range []int{1000, 1100, 1200, 1300, 1400} {
		if c.Tick(at(ms), false).Draw {
			draws++
		}
	}
	if draws != 1 {
		t.Errorf("Expected exactly 1 freeze-frame draw, got %d", draws)
	}

	// A second suspension gets its own freeze frame
	c.Tick(at(2000), true)
	draws = 0
	for _, ms := range []int{3000, 3100, 3200} {
		if c.Tick(at(ms), false).Draw {
			draws++
		}
	}
	if draws != 1 {
		t.Errorf("Expected exactly 1 freeze-frame draw in second suspension, got %d", draws)
	}
}

func TestBasicPauseResumeScenario(t *testing.T) {
	// Runs to t=1000, suspends for 5000ms, resumes at t=6000
	c := NewSuspendClock()
	c.Tick(at(0), true)

	fr := c.Tick(at(1000), true)
	if fr.Time != 1000*time.Millisecond {
		t.Errorf("Expected 1000ms before suspension, got %v", fr.Time)
	}

	draws := 0
	for ms := 1000; ms < 6000; ms += 250 {
		if c.Tick(at(ms), false).Draw {
			draws++
		}
	}
	if draws != 1 {
		t.Errorf("Expected exactly one frame drawn during suspension, got %d", draws)
	}

	fr = c.Tick(at(6000), true)
	if fr.Time != 1000*time.Millisecond {
		t.Errorf("Expected 1000ms after resume at t=6000, got %v", fr.Time)
	}
	if c.TotalPaused() != 5000*time.Millisecond {
		t.Errorf("Expected 5000ms total paused, got %v", c.TotalPaused())
	}
}

func TestRepeatedSuspensionsAccumulate(t *testing.T) {
	c := NewSuspendClock()
	c.Tick(at(0), true)

	c.Tick(at(100), false)
	c.Tick(at(300), true) // paused 200ms
	c.Tick(at(400), false)
	c.Tick(at(900), true) // paused 500ms

	if c.TotalPaused() != 700*time.Millisecond {
		t.Errorf("Expected 700ms accumulated pause, got %v", c.TotalPaused())
	}
	fr := c.Tick(at(1000), true)
	if fr.Time != 300*time.Millisecond {
		t.Errorf("Expected 300ms effective, got %v", fr.Time)
	}
}

func TestSuspendedReporting(t *testing.T) {
	c := NewSuspendClock()
	c.Tick(at(0), true)
	if c.Suspended() {
		t.Error("Expected running after animate tick")
	}
	c.Tick(at(100), false)
	if !c.Suspended() {
		t.Error("Expected suspended after non-animate tick")
	}
	c.Tick(at(200), true)
	if c.Suspended() {
		t.Error("Expected running after resume")
	}
}
