package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/backdrop/core"
)

func writePresetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writePresetFile(t, `
presets:
  - name: night
    effect: rain
    quality: low
    accent: "#9ece6a"
    options:
      density: 0.5
      speed: 1.2
  - name: calm
    effect: waves
    quality: high
    accent: "2ac3de"
`)

	presets, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("Expected 2 presets, got %d", len(presets))
	}

	night, ok := Find(presets, "night")
	if !ok {
		t.Fatal("Expected to find preset night")
	}
	if night.Effect != "rain" {
		t.Errorf("Expected effect rain, got %q", night.Effect)
	}
	if night.Options["density"] != 0.5 {
		t.Errorf("Expected density 0.5, got %v", night.Options["density"])
	}

	env := night.Env()
	if env.Tier.Name != "low" {
		t.Errorf("Expected low tier, got %s", env.Tier.Name)
	}
	if env.Accent != (core.RGB{R: 158, G: 206, B: 106}) {
		t.Errorf("Unexpected accent %v", env.Accent)
	}

	r, err := night.Build()
	if err != nil {
		t.Fatalf("Unexpected build error: %v", err)
	}
	if r == nil {
		t.Fatal("Expected renderer")
	}
}

func TestLoadRejectsUnknownEffect(t *testing.T) {
	path := writePresetFile(t, `
presets:
  - name: broken
    effect: plasma
`)
	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown effect")
	}
}

func TestLoadRejectsUnnamedPreset(t *testing.T) {
	path := writePresetFile(t, `
presets:
  - effect: waves
`)
	if _, err := Load(path); err == nil {
		t.Error("Expected error for unnamed preset")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writePresetFile(t, "presets: [not: closed")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed yaml")
	}
}

func TestMalformedAccentFallsBack(t *testing.T) {
	p := Preset{Name: "x", Effect: "waves", Accent: "##bad"}
	if env := p.Env(); env.Accent != core.NeutralAccent {
		t.Errorf("Expected neutral accent fallback, got %v", env.Accent)
	}
}

func TestDefaultsBuild(t *testing.T) {
	for _, p := range Defaults() {
		if _, err := p.Build(); err != nil {
			t.Errorf("Default preset %q failed to build: %v", p.Name, err)
		}
	}
}
