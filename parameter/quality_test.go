package parameter

import (
	"testing"
	"time"
)

func TestTierTable(t *testing.T) {
	tests := []struct {
		tier       Tier
		countScale float64
		speedScale float64
		fps        int
	}{
		{TierLow, 0.30, 0.75, 15},
		{TierMedium, 0.60, 1.0, 30},
		{TierHigh, 1.0, 1.0, 60},
	}
	for _, tc := range tests {
		if tc.tier.CountScale != tc.countScale {
			t.Errorf("%s: expected count scale %v, got %v", tc.tier.Name, tc.countScale, tc.tier.CountScale)
		}
		if tc.tier.SpeedScale != tc.speedScale {
			t.Errorf("%s: expected speed scale %v, got %v", tc.tier.Name, tc.speedScale, tc.tier.SpeedScale)
		}
		if tc.tier.TargetFPS != tc.fps {
			t.Errorf("%s: expected %d fps, got %d", tc.tier.Name, tc.fps, tc.tier.TargetFPS)
		}
	}
}

func TestTierByName(t *testing.T) {
	if got := TierByName("low"); got.Name != "low" {
		t.Errorf("Expected low tier, got %s", got.Name)
	}
	if got := TierByName("high"); got.Name != "high" {
		t.Errorf("Expected high tier, got %s", got.Name)
	}
	// Unknown input defaults to medium
	for _, name := range []string{"", "ultra", "MEDIUM"} {
		if got := TierByName(name); got.Name != "medium" {
			t.Errorf("TierByName(%q): expected medium default, got %s", name, got.Name)
		}
	}
}

func TestScaleCountFloors(t *testing.T) {
	// Low tier: floor(requested * 0.3) exactly
	tests := []struct {
		requested int
		expected  int
	}{
		{40, 12},
		{50, 15},
		{33, 9},
		{1, 0},
		{0, 0},
	}
	for _, tc := range tests {
		if got := TierLow.ScaleCount(tc.requested); got != tc.expected {
			t.Errorf("ScaleCount(%d) at low: expected %d, got %d", tc.requested, tc.expected, got)
		}
	}
	if got := TierHigh.ScaleCount(40); got != 40 {
		t.Errorf("ScaleCount(40) at high: expected 40, got %d", got)
	}
}

func TestFrameInterval(t *testing.T) {
	if got := TierLow.FrameInterval(); got != time.Second/15 {
		t.Errorf("Expected %v, got %v", time.Second/15, got)
	}
	if got := TierHigh.FrameInterval(); got != time.Second/60 {
		t.Errorf("Expected %v, got %v", time.Second/60, got)
	}
	zero := Tier{}
	if got := zero.FrameInterval(); got != 0 {
		t.Errorf("Expected 0 interval for zero fps, got %v", got)
	}
}
