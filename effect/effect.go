// Package effect implements the procedural background renderers: seven
// independent visual motifs sharing one contract. A renderer is a pure
// function of effective animation time plus its mount-time options;
// drawing the same time twice yields the same cells, and no renderer
// reads wall-clock time.
package effect

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
)

// Renderer draws one frame of a motif at a given effective time
type Renderer interface {
	Init(w, h int)
	Resize(w, h int)
	Render(t time.Duration, buf *render.Buffer)
}

// Env is the resolved theme and quality context, passed explicitly into
// each renderer at construction instead of read from globals.
type Env struct {
	Accent core.RGB
	Tier   parameter.Tier
}

// Options is the generic named-parameter set supplied at mount time.
// Recognized names are effect-specific; unknown names are ignored and
// missing names take the effect's documented default.
type Options map[string]float64

// Get returns the named option or the default
func (o Options) Get(name string, def float64) float64 {
	if v, ok := o[name]; ok {
		return v
	}
	return def
}

// GetInt returns the named option truncated to int, or the default
func (o Options) GetInt(name string, def int) int {
	if v, ok := o[name]; ok {
		return int(v)
	}
	return def
}

// Builder constructs a renderer from generic options
type Builder func(opts Options, env Env) Renderer

var builders = map[string]Builder{
	"particles": func(o Options, e Env) Renderer { return NewParticleField(o, e) },
	"waves":     func(o Options, e Env) Renderer { return NewWaveField(o, e) },
	"grid":      func(o Options, e Env) Renderer { return NewGridField(o, e) },
	"voxels":    func(o Options, e Env) Renderer { return NewVoxelField(o, e) },
	"lightning": func(o Options, e Env) Renderer { return NewLightning(o, e) },
	"chrome":    func(o Options, e Env) Renderer { return NewLiquidChrome(o, e) },
	"rain":      func(o Options, e Env) Renderer { return NewGlyphRain(o, e) },
}

// Names returns the registered effect names, sorted
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named effect
func Build(name string, opts Options, env Env) (Renderer, error) {
	b, ok := builders[name]
	if !ok {
		return nil, errors.Errorf("unknown effect %q", name)
	}
	return b(opts, env), nil
}
