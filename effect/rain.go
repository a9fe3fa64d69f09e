package effect

import (
	"math"
	"time"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
)

var rainGlyphs = []rune("ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉ0123456789ACEFHKLNPRSTXZ=*+-<>")

// GlyphRain renders falling glyph streams. Per-column speed, trail
// length, and offset are derived from a hash of the column index, so
// columns are stable across resizes without any stored entity array.
// Glyph choice varies per pass; it is decorative noise, not motion.
type GlyphRain struct {
	density float64
	speed   float64
	opacity float64
	accent  core.RGB
	tier    parameter.Tier
	seed    int64

	w, h int
}

// Glyph rain options: "density" (active column fraction, default 0.7),
// "speed" (fall rate multiplier, default 1), "opacity" (default 0.85),
// "seed" (column layout, default 1).
func NewGlyphRain(opts Options, env Env) *GlyphRain {
	return &GlyphRain{
		density: opts.Get("density", parameter.RainDefaultColumnDensity),
		speed:   opts.Get("speed", 1.0),
		opacity: opts.Get("opacity", 0.85),
		seed:    int64(opts.Get("seed", 1)),
		accent:  env.Accent,
		tier:    env.Tier,
	}
}

func (g *GlyphRain) Init(w, h int) {
	g.w, g.h = w, h
}

func (g *GlyphRain) Resize(w, h int) {
	g.w, g.h = w, h
}

// hash64 is a splitmix64 step over the seed and value
func hash64(seed, v int64) uint64 {
	x := uint64(seed)*0x9e3779b97f4a7c15 + uint64(v)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// colRand returns a stable [0,1) value for (column, salt)
func (g *GlyphRain) colRand(col, salt int64) float64 {
	return float64(hash64(g.seed+salt*7919, col)%1_000_000) / 1_000_000
}

func (g *GlyphRain) Render(t time.Duration, buf *render.Buffer) {
	if g.w <= 0 || g.h <= 0 {
		return
	}
	sec := t.Seconds() * g.speed * g.tier.SpeedScale
	activeFraction := g.density * g.tier.CountScale

	head := core.RGB{R: 230, G: 255, B: 235}

	for x := 0; x < g.w; x++ {
		col := int64(x)
		if g.colRand(col, 1) >= activeFraction {
			continue
		}

		speed := parameter.RainMinSpeedFloat +
			g.colRand(col, 2)*(parameter.RainMaxSpeedFloat-parameter.RainMinSpeedFloat)
		trail := parameter.RainTrailMin +
			int(g.colRand(col, 3)*float64(parameter.RainTrailMax-parameter.RainTrailMin))
		offset := g.colRand(col, 4) * float64(g.h+trail)

		cycle := float64(g.h + trail)
		pos := offset + speed*sec
		headRow := math.Mod(pos, cycle)
		pass := int64(pos / cycle)

		for i := 0; i <= trail; i++ {
			y := int(headRow) - i
			if y < 0 || y >= g.h {
				continue
			}
			fade := 1.0 - float64(i)/float64(trail+1)

			glyph := rainGlyphs[hash64(g.seed, col*131071+int64(y)*31+pass)%uint64(len(rainGlyphs))]

			if i == 0 {
				buf.SetFg(x, y, glyph, head, render.AttrBold)
			} else {
				buf.SetFg(x, y, glyph, g.accent.Scale(fade*g.opacity), render.AttrNone)
			}
		}
	}
}
