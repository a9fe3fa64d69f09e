package effect

import (
	"math"
	"time"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
)

// GridField renders a perspective floor grid scrolling toward the
// viewer. Formula-driven, no entity state.
type GridField struct {
	spacing int
	speed   float64
	opacity float64
	accent  core.RGB
	tier    parameter.Tier

	w, h int
}

// Grid field options: "spacing" (cells between lines, default 6),
// "speed" (scroll rate multiplier, default 1), "opacity" (default 0.8).
func NewGridField(opts Options, env Env) *GridField {
	spacing := opts.GetInt("spacing", parameter.GridDefaultSpacing)
	if spacing < 2 {
		spacing = 2
	}
	return &GridField{
		spacing: spacing,
		speed:   opts.Get("speed", 1.0),
		opacity: opts.Get("opacity", 0.8),
		accent:  env.Accent,
		tier:    env.Tier,
	}
}

func (g *GridField) Init(w, h int) {
	g.w, g.h = w, h
}

func (g *GridField) Resize(w, h int) {
	g.w, g.h = w, h
}

func (g *GridField) Render(t time.Duration, buf *render.Buffer) {
	if g.w <= 0 || g.h <= 0 {
		return
	}
	sec := t.Seconds() * g.speed * g.tier.SpeedScale
	horizon := float64(g.h) * parameter.GridHorizonFloat
	cx := float64(g.w) / 2
	scroll := math.Mod(sec*parameter.GridScrollSpeedFloat, float64(g.spacing))

	// Horizontal lines: rows below the horizon map to depth, lines
	// scroll toward the viewer
	for y := int(horizon) + 1; y < g.h; y++ {
		dy := float64(y) - horizon
		depth := horizon / dy // large = far
		z := depth*float64(g.spacing) + scroll*depth/3

		dist := math.Mod(z, float64(g.spacing))
		if dist > float64(g.spacing)/2 {
			dist = float64(g.spacing) - dist
		}
		if dist > 0.8 {
			continue
		}

		fade := clamp01(1.0 - depth/float64(g.h)*2)
		color := g.accent.Scale(fade)
		for x := 0; x < g.w; x++ {
			buf.BlendBg(x, y, color, g.opacity*fade*(1.0-dist))
		}
	}

	// Vertical lines converge on the horizon center
	half := g.w / g.spacing
	for i := -half; i <= half; i++ {
		worldX := float64(i * g.spacing)
		for y := int(horizon) + 1; y < g.h; y++ {
			dy := float64(y) - horizon
			persp := dy / (float64(g.h) - horizon)
			x := cx + worldX*persp
			if x < 0 || x >= float64(g.w) {
				continue
			}
			fade := clamp01(persp * 1.2)
			buf.BlendBg(int(x), y, g.accent.Scale(fade), g.opacity*fade*0.7)
		}
	}

	// Horizon glow
	for x := 0; x < g.w; x++ {
		buf.BlendBg(x, int(horizon), g.accent, g.opacity*0.5)
		buf.BlendBg(x, int(horizon)-1, g.accent, g.opacity*0.2)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
