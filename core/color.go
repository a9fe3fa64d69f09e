package core

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from any backend
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}

	// NeutralAccent is the fallback when an accent string fails to parse
	NeutralAccent = RGB{122, 162, 247}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Add performs additive blend with clamping (light accumulation)
func (c RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func (c RGB) Max(src RGB) RGB {
	return RGB{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Lerp interpolates between a and b with t clamped to [0,1]
func Lerp(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// ParseHex parses an accent color hex string ("#7aa2f7" or "7aa2f7").
// Malformed input falls back to NeutralAccent, never an error, since a
// bad theme value must not disable a decorative effect.
func ParseHex(s string) RGB {
	s = strings.TrimSpace(s)
	if s == "" {
		return NeutralAccent
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return NeutralAccent
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}
