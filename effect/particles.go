package effect

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
)

// particle is one drifting mote. Base position and velocity are fixed at
// init; the rendered position is derived from effective time, so motion
// is reproducible for any given time.
type particle struct {
	baseX, baseY float64
	vx           float64
	phase        float64
	size         float64
}

// ParticleField renders slow-drifting twinkling motes
type ParticleField struct {
	count   int
	speed   float64
	opacity float64
	accent  core.RGB
	tier    parameter.Tier
	seed    int64

	w, h      int
	particles []particle
}

// Particle field options: "count" (density, default 50), "speed" (motion
// rate multiplier, default 1), "opacity" (overall alpha, default 0.8),
// "seed" (entity layout, default 1).
func NewParticleField(opts Options, env Env) *ParticleField {
	return &ParticleField{
		count:   opts.GetInt("count", parameter.ParticleDefaultCount),
		speed:   opts.Get("speed", 1.0),
		opacity: opts.Get("opacity", 0.8),
		seed:    int64(opts.Get("seed", 1)),
		accent:  env.Accent,
		tier:    env.Tier,
	}
}

// Init populates the field. A populated field is left untouched so a
// remount cannot scramble an existing layout.
func (p *ParticleField) Init(w, h int) {
	p.w, p.h = w, h
	if len(p.particles) > 0 {
		return
	}
	rng := rand.New(rand.NewSource(p.seed))
	n := p.tier.ScaleCount(p.count)
	p.particles = make([]particle, n)
	for i := range p.particles {
		p.particles[i] = particle{
			baseX: rng.Float64() * float64(w),
			baseY: rng.Float64() * float64(h),
			vx:    parameter.ParticleDriftSpeedFloat * (0.4 + rng.Float64()*1.2),
			phase: rng.Float64() * 2 * math.Pi,
			size:  rng.Float64(),
		}
	}
}

// Resize records new bounds. Entities are preserved; positions wrap into
// the new bounds at render time.
func (p *ParticleField) Resize(w, h int) {
	p.w, p.h = w, h
}

// Count returns the active mote count after tier scaling
func (p *ParticleField) Count() int {
	return len(p.particles)
}

func (p *ParticleField) Render(t time.Duration, buf *render.Buffer) {
	if p.w <= 0 || p.h <= 0 {
		return
	}
	sec := t.Seconds() * p.speed * p.tier.SpeedScale
	fw, fh := float64(p.w), float64(p.h)

	for i := range p.particles {
		pt := &p.particles[i]

		x := math.Mod(pt.baseX+pt.vx*sec, fw)
		if x < 0 {
			x += fw
		}
		y := math.Mod(pt.baseY+parameter.ParticleBobAmplitudeFloat*math.Sin(sec*0.7+pt.phase), fh)
		if y < 0 {
			y += fh
		}

		twinkle := 0.5 + 0.5*math.Sin(2*math.Pi*parameter.ParticleTwinkleHz*sec+pt.phase)
		bright := p.opacity * (0.3 + 0.7*twinkle) * (0.4 + 0.6*pt.size)

		var r rune
		switch {
		case pt.size > 0.8:
			r = '✦'
		case pt.size > 0.5:
			r = '•'
		default:
			r = '·'
		}

		cx, cy := int(x), int(y)
		buf.SetFg(cx, cy, r, p.accent.Scale(bright), render.AttrNone)
		buf.BlendBg(cx, cy, p.accent, bright*0.15)
	}
}
