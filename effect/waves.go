package effect

import (
	"math"
	"time"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
)

// WaveField renders stacked horizontal sine bands scrolling across the
// view. Fully formula-driven, so there is no entity state to preserve.
type WaveField struct {
	bands   int
	speed   float64
	opacity float64
	amp     float64
	accent  core.RGB
	tier    parameter.Tier

	w, h int
}

// Wave field options: "bands" (stacked bands, default 4), "speed"
// (scroll rate multiplier, default 1), "opacity" (default 0.7),
// "amplitude" (cell displacement, default 3).
func NewWaveField(opts Options, env Env) *WaveField {
	return &WaveField{
		bands:   opts.GetInt("bands", parameter.WaveDefaultBands),
		speed:   opts.Get("speed", 1.0),
		opacity: opts.Get("opacity", 0.7),
		amp:     opts.Get("amplitude", parameter.WaveBaseAmplitudeFloat),
		accent:  env.Accent,
		tier:    env.Tier,
	}
}

func (wf *WaveField) Init(w, h int) {
	wf.w, wf.h = w, h
}

func (wf *WaveField) Resize(w, h int) {
	wf.w, wf.h = w, h
}

func (wf *WaveField) Render(t time.Duration, buf *render.Buffer) {
	if wf.w <= 0 || wf.h <= 0 {
		return
	}
	sec := t.Seconds() * wf.speed * wf.tier.SpeedScale
	fw, fh := float64(wf.w), float64(wf.h)

	for b := 0; b < wf.bands; b++ {
		depth := float64(b) / float64(max(wf.bands-1, 1)) // 0 = front
		center := fh * (0.35 + 0.5*depth)
		freq := (2*math.Pi / fw) * (1.5 + depth)
		phase := sec*parameter.WaveScrollSpeedFloat*(1.0-0.4*depth) + float64(b)*1.7
		alpha := wf.opacity * (1.0 - 0.6*depth)
		color := wf.accent.Scale(1.0 - 0.5*depth)

		for x := 0; x < wf.w; x++ {
			fx := float64(x)
			y := center + wf.amp*(1.0+depth*0.5)*math.Sin(freq*fx+phase)
			cy := int(y)

			// Crest line plus a soft falloff below it
			buf.BlendBg(x, cy, color, alpha)
			buf.BlendBg(x, cy+1, color, alpha*0.45)
			buf.BlendBg(x, cy+2, color, alpha*0.18)

			frac := y - math.Floor(y)
			r := '~'
			if frac > 0.5 {
				r = '-'
			}
			buf.SetFg(x, cy, r, color.Scale(0.8+0.2*math.Sin(freq*fx*2+phase)), render.AttrNone)
		}
	}
}
