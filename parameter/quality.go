package parameter

import (
	"math"
	"time"
)

// Tier is one quality level of the static quality table.
// Multipliers apply to the per-effect requested values; the table is
// fixed configuration, never computed.
type Tier struct {
	Name string

	// CountScale multiplies requested entity/element counts
	CountScale float64

	// SpeedScale multiplies requested motion speed
	SpeedScale float64

	// TargetFPS is the frame-rate cap for the render throttle
	TargetFPS int
}

// The three quality tiers
var (
	TierLow    = Tier{Name: "low", CountScale: 0.30, SpeedScale: 0.75, TargetFPS: 15}
	TierMedium = Tier{Name: "medium", CountScale: 0.60, SpeedScale: 1.0, TargetFPS: 30}
	TierHigh   = Tier{Name: "high", CountScale: 1.0, SpeedScale: 1.0, TargetFPS: 60}
)

// TierByName resolves a tier name, defaulting to medium for unknown input
func TierByName(name string) Tier {
	switch name {
	case "low":
		return TierLow
	case "high":
		return TierHigh
	default:
		return TierMedium
	}
}

// FrameInterval returns the minimum interval between accepted frames
func (t Tier) FrameInterval() time.Duration {
	if t.TargetFPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(t.TargetFPS)
}

// ScaleCount applies the count multiplier with floor semantics
func (t Tier) ScaleCount(requested int) int {
	return int(math.Floor(float64(requested) * t.CountScale))
}
