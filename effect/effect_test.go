package effect

import (
	"testing"
	"time"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
)

func testEnv(tier parameter.Tier) Env {
	return Env{Accent: core.RGB{R: 122, G: 162, B: 247}, Tier: tier}
}

func TestRegistryNames(t *testing.T) {
	names := Names()
	expected := []string{"chrome", "grid", "lightning", "particles", "rain", "voxels", "waves"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d effects, got %d: %v", len(expected), len(names), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected %q at position %d, got %q", name, i, names[i])
		}
	}
}

func TestBuildUnknownEffect(t *testing.T) {
	_, err := Build("plasma", nil, testEnv(parameter.TierMedium))
	if err == nil {
		t.Error("Expected error for unknown effect")
	}
}

func TestBuildAll(t *testing.T) {
	for _, name := range Names() {
		r, err := Build(name, nil, testEnv(parameter.TierMedium))
		if err != nil {
			t.Fatalf("Build(%q): unexpected error %v", name, err)
		}
		if r == nil {
			t.Fatalf("Build(%q): nil renderer", name)
		}
	}
}

// Every effect must produce identical cells when rendered twice at the
// same effective time: this is what keeps the freeze frame stable while
// the host keeps invoking the render loop during a suspension.
func TestRenderDeterministicAtFixedTime(t *testing.T) {
	const w, h = 48, 16
	for _, name := range Names() {
		r, err := Build(name, Options{"seed": 7}, testEnv(parameter.TierHigh))
		if err != nil {
			t.Fatal(err)
		}
		r.Init(w, h)

		render1 := renderSnapshot(r, 1234*time.Millisecond, w, h)
		render2 := renderSnapshot(r, 1234*time.Millisecond, w, h)

		for i := range render1 {
			if render1[i] != render2[i] {
				t.Errorf("%s: cell %d differs across renders at the same time", name, i)
				break
			}
		}
	}
}

// Distinct times should not all collapse to one frame; guards against a
// renderer accidentally ignoring its time input
func TestRenderVariesOverTime(t *testing.T) {
	const w, h = 48, 16
	for _, name := range Names() {
		r, err := Build(name, Options{"seed": 7}, testEnv(parameter.TierHigh))
		if err != nil {
			t.Fatal(err)
		}
		r.Init(w, h)

		a := renderSnapshot(r, 500*time.Millisecond, w, h)
		b := renderSnapshot(r, 1700*time.Millisecond, w, h)

		same := true
		for i := range a {
			if a[i] != b[i] {
				same = false
				break
			}
		}
		if same {
			t.Errorf("%s: identical frames at different effective times", name)
		}
	}
}

func renderSnapshot(r Renderer, t time.Duration, w, h int) []render.Cell {
	buf := render.NewBuffer(w, h)
	r.Render(t, buf)
	return buf.Snapshot()
}
