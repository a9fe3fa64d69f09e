// Package config loads named effect presets: an effect plus its options,
// accent color, and quality tier bundled for one-flag selection.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/effect"
	"github.com/lixenwraith/backdrop/parameter"
)

// Preset is one named effect configuration
type Preset struct {
	Name    string             `yaml:"name"`
	Effect  string             `yaml:"effect"`
	Quality string             `yaml:"quality"`
	Accent  string             `yaml:"accent"`
	Options map[string]float64 `yaml:"options"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// Env resolves the preset's theme and quality context. A malformed
// accent string falls back to the neutral default inside ParseHex.
func (p Preset) Env() effect.Env {
	return effect.Env{
		Accent: core.ParseHex(p.Accent),
		Tier:   parameter.TierByName(p.Quality),
	}
}

// Build constructs the preset's renderer
func (p Preset) Build() (effect.Renderer, error) {
	r, err := effect.Build(p.Effect, effect.Options(p.Options), p.Env())
	if err != nil {
		return nil, errors.Wrapf(err, "preset %q", p.Name)
	}
	return r, nil
}

// Load reads presets from a YAML file
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading preset file")
	}
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing preset file %s", path)
	}
	for i, p := range f.Presets {
		if p.Name == "" {
			return nil, errors.Errorf("preset %d has no name", i)
		}
		if _, err := effect.Build(p.Effect, nil, effect.Env{Tier: parameter.TierMedium}); err != nil {
			return nil, errors.Wrapf(err, "preset %q", p.Name)
		}
	}
	return f.Presets, nil
}

// Find returns the named preset from the list
func Find(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Defaults returns the built-in presets, one per effect
func Defaults() []Preset {
	return []Preset{
		{Name: "starfield", Effect: "particles", Quality: "medium", Accent: "#7aa2f7"},
		{Name: "ocean", Effect: "waves", Quality: "medium", Accent: "#2ac3de"},
		{Name: "horizon", Effect: "grid", Quality: "medium", Accent: "#bb9af7"},
		{Name: "blocks", Effect: "voxels", Quality: "medium", Accent: "#7dcfff"},
		{Name: "storm", Effect: "lightning", Quality: "medium", Accent: "#c0caf5"},
		{Name: "mercury", Effect: "chrome", Quality: "medium", Accent: "#a9b1d6"},
		{Name: "cipher", Effect: "rain", Quality: "medium", Accent: "#9ece6a"},
	}
}
