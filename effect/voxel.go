package effect

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
)

// cube is one voxel. Coordinates are normalized to the unit cube so a
// surface resize rescales positions without touching entity state.
type cube struct {
	x, y, z float64 // [-1, 1]
	size    float64
	phase   float64
}

// VoxelField renders a pseudo-3D cloud of cubes orbiting the view
// center, depth-sorted and shaded by distance.
type VoxelField struct {
	count   int
	speed   float64
	opacity float64
	accent  core.RGB
	tier    parameter.Tier
	seed    int64

	w, h  int
	cubes []cube
	order []int // depth-sort scratch, avoids per-frame allocation
}

// Voxel field options: "count" (requested cubes before tier scaling,
// default 40), "speed" (orbit rate multiplier, default 1), "opacity"
// (default 0.9), "seed" (layout, default 1).
func NewVoxelField(opts Options, env Env) *VoxelField {
	return &VoxelField{
		count:   opts.GetInt("count", parameter.VoxelDefaultCount),
		speed:   opts.Get("speed", 1.0),
		opacity: opts.Get("opacity", 0.9),
		seed:    int64(opts.Get("seed", 1)),
		accent:  env.Accent,
		tier:    env.Tier,
	}
}

func (v *VoxelField) Init(w, h int) {
	v.w, v.h = w, h
	if len(v.cubes) > 0 {
		return
	}
	rng := rand.New(rand.NewSource(v.seed))
	n := v.tier.ScaleCount(v.count)
	v.cubes = make([]cube, n)
	v.order = make([]int, n)
	for i := range v.cubes {
		v.cubes[i] = cube{
			x:     rng.Float64()*2 - 1,
			y:     rng.Float64()*2 - 1,
			z:     rng.Float64()*2 - 1,
			size:  0.5 + rng.Float64()*0.5,
			phase: rng.Float64() * 2 * math.Pi,
		}
		v.order[i] = i
	}
}

// Resize records new bounds; normalized cube positions are untouched
func (v *VoxelField) Resize(w, h int) {
	v.w, v.h = w, h
}

// ActiveCount returns the cube count after tier scaling
func (v *VoxelField) ActiveCount() int {
	return len(v.cubes)
}

func (v *VoxelField) Render(t time.Duration, buf *render.Buffer) {
	if v.w <= 0 || v.h <= 0 || len(v.cubes) == 0 {
		return
	}
	sec := t.Seconds() * v.speed * v.tier.SpeedScale
	angle := sec * parameter.VoxelOrbitSpeedFloat
	sinA, cosA := math.Sin(angle), math.Cos(angle)

	depths := make([]float64, len(v.cubes))
	for i, c := range v.cubes {
		// Rotate around the vertical axis
		rz := c.x*sinA + c.z*cosA
		depths[i] = rz
	}

	sort.Slice(v.order, func(a, b int) bool {
		return depths[v.order[a]] > depths[v.order[b]] // far first
	})

	cx, cy := float64(v.w)/2, float64(v.h)/2
	scale := math.Min(float64(v.w), float64(v.h)*2) * 0.35

	for _, i := range v.order {
		c := v.cubes[i]
		rx := c.x*cosA - c.z*sinA
		rz := depths[i]

		// Perspective: z in [-1,1] mapped away from the camera
		zoff := rz + parameter.VoxelDepthRangeFloat/2
		if zoff <= 0.5 {
			continue
		}
		persp := parameter.VoxelDepthRangeFloat / 2 / zoff
		bob := 0.08 * math.Sin(sec*0.9+c.phase)
		px := cx + rx*scale*persp
		py := cy + (c.y+bob)*scale*persp*0.5 // cell aspect correction

		near := clamp01((1 - rz) / 2) // 1 = close to camera
		shade := 0.25 + 0.75*near
		var r rune
		switch {
		case near > 0.75:
			r = '█'
		case near > 0.5:
			r = '▓'
		case near > 0.25:
			r = '▒'
		default:
			r = '░'
		}

		color := v.accent.Scale(shade * c.size)
		side := int(math.Round(c.size * persp * 2))
		if side < 1 {
			side = 1
		}
		for dy := 0; dy < side; dy++ {
			for dx := 0; dx < side*2; dx++ {
				buf.SetFg(int(px)+dx, int(py)+dy, r, color, render.AttrNone)
				buf.BlendBg(int(px)+dx, int(py)+dy, color, v.opacity*0.25*shade)
			}
		}
	}
}
