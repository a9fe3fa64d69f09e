package effect

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
)

// Lightning renders periodic jagged bolts that flash and fade. Each
// cycle's bolt geometry is derived from a generator seeded by the cycle
// index, so any effective time inside a cycle reproduces the same bolt.
type Lightning struct {
	speed   float64
	opacity float64
	jitter  float64
	accent  core.RGB
	tier    parameter.Tier
	seed    int64

	w, h int
}

// Lightning options: "speed" (cycle rate multiplier, default 1),
// "opacity" (default 0.9), "jitter" (segment displacement in cells,
// default 3), "seed" (bolt family, default 1).
func NewLightning(opts Options, env Env) *Lightning {
	return &Lightning{
		speed:   opts.Get("speed", 1.0),
		opacity: opts.Get("opacity", 0.9),
		jitter:  opts.Get("jitter", parameter.LightningJitterFloat),
		seed:    int64(opts.Get("seed", 1)),
		accent:  env.Accent,
		tier:    env.Tier,
	}
}

func (l *Lightning) Init(w, h int) {
	l.w, l.h = w, h
}

func (l *Lightning) Resize(w, h int) {
	l.w, l.h = w, h
}

func (l *Lightning) Render(t time.Duration, buf *render.Buffer) {
	if l.w <= 0 || l.h <= 0 {
		return
	}
	cycle := time.Duration(float64(parameter.LightningCycle) / (l.speed * l.tier.SpeedScale))
	if cycle <= 0 {
		cycle = parameter.LightningCycle
	}
	idx := int64(t / cycle)
	phase := float64(t%cycle) / float64(cycle)

	// Intensity: full during the flash, exponential fade after
	var alpha float64
	if phase < parameter.LightningFlashFraction {
		alpha = 1.0
	} else {
		alpha = math.Exp(-6 * (phase - parameter.LightningFlashFraction))
	}
	alpha *= l.opacity
	if alpha < 0.01 {
		return
	}

	rng := rand.New(rand.NewSource(l.seed + idx))
	l.drawBolt(buf, rng, rng.Intn(l.w), 0, alpha, 1.0, 0)
}

// drawBolt walks a jagged polyline downward from (startX, startY),
// blending light additively and occasionally forking
func (l *Lightning) drawBolt(buf *render.Buffer, rng *rand.Rand, startX, startY int, alpha, width float64, depth int) {
	if depth > 2 {
		return
	}
	x := float64(startX)
	white := core.RGB{R: 245, G: 248, B: 255}
	boltColor := white.Blend(l.accent, 0.3)

	for y := startY; y < l.h; y++ {
		x += (rng.Float64()*2 - 1) * l.jitter
		if x < 0 {
			x = 0
		}
		if x >= float64(l.w) {
			x = float64(l.w) - 1
		}
		cx := int(x)

		buf.AddBg(cx, y, boltColor.Scale(alpha*width))
		buf.AddBg(cx-1, y, l.accent.Scale(alpha*width*0.35))
		buf.AddBg(cx+1, y, l.accent.Scale(alpha*width*0.35))

		if depth == 0 && rng.Float64() < parameter.LightningBranchChanceFloat {
			l.drawBolt(buf, rng, cx, y, alpha*0.5, width*0.6, depth+1)
		}
	}
}
