package effect

import (
	"math"
	"time"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
)

// LiquidChrome renders a flowing metallic interference field: stacked
// sinusoids per cell mapped through a dark-to-specular palette with the
// accent tinting the highlight band. Pure per-cell formula, no entities.
type LiquidChrome struct {
	speed   float64
	opacity float64
	scale   float64
	accent  core.RGB
	tier    parameter.Tier

	w, h int
}

// Liquid chrome options: "speed" (flow rate multiplier, default 1),
// "opacity" (default 0.85), "scale" (spatial frequency, default 0.11).
func NewLiquidChrome(opts Options, env Env) *LiquidChrome {
	return &LiquidChrome{
		speed:   opts.Get("speed", 1.0),
		opacity: opts.Get("opacity", 0.85),
		scale:   opts.Get("scale", parameter.ChromeScaleFloat),
		accent:  env.Accent,
		tier:    env.Tier,
	}
}

func (c *LiquidChrome) Init(w, h int) {
	c.w, c.h = w, h
}

func (c *LiquidChrome) Resize(w, h int) {
	c.w, c.h = w, h
}

func (c *LiquidChrome) Render(t time.Duration, buf *render.Buffer) {
	if c.w <= 0 || c.h <= 0 {
		return
	}
	sec := t.Seconds() * c.speed * c.tier.SpeedScale * parameter.ChromeFlowSpeedFloat
	cx, cy := float64(c.w)/2, float64(c.h)/2

	dark := core.RGB{R: 8, G: 9, B: 14}
	mid := core.RGB{R: 90, G: 96, B: 110}
	bright := core.RGB{R: 225, G: 230, B: 240}

	for y := 0; y < c.h; y++ {
		// Cells are taller than wide, stretch y to keep blobs round
		fy := float64(y) * 2
		for x := 0; x < c.w; x++ {
			fx := float64(x)
			dx, dy := fx-cx, fy-cy*2

			v := math.Sin(fx*c.scale + sec)
			v += math.Sin(fy*c.scale*1.3 - sec*0.7)
			v += math.Sin((fx+fy)*c.scale*0.7 + sec*1.3)
			v += math.Sin(math.Sqrt(dx*dx+dy*dy)*c.scale - sec)
			v = (v + 4) / 8 // normalize to [0,1]

			var col core.RGB
			switch {
			case v > parameter.ChromeHighlightThresholdFloat:
				// Specular band, tinted by the accent
				hi := (v - parameter.ChromeHighlightThresholdFloat) / (1 - parameter.ChromeHighlightThresholdFloat)
				col = core.Lerp(bright, c.accent, 0.35).Scale(0.7 + 0.3*hi)
			case v > 0.5:
				col = core.Lerp(mid, bright, (v-0.5)/(parameter.ChromeHighlightThresholdFloat-0.5))
			default:
				col = core.Lerp(dark, mid, v*2)
			}

			buf.BlendBg(x, y, col, c.opacity)
		}
	}
}
