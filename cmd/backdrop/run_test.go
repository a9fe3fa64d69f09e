package main

import (
	"testing"
	"time"
)

func TestUnsetSeedVariesLayoutPerRun(t *testing.T) {
	_, opts, _, err := resolveRenderer(runCmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts["seed"] == 0 {
		t.Error("Expected a run-specific seed when the flag is unset")
	}

	time.Sleep(time.Millisecond)
	_, again, _, err := resolveRenderer(runCmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	if again["seed"] == opts["seed"] {
		t.Errorf("Expected the seed to vary across runs, got %v twice", opts["seed"])
	}
}

func TestExplicitSeedPassesThrough(t *testing.T) {
	if err := runCmd.Flags().Set("seed", "42"); err != nil {
		t.Fatal(err)
	}
	defer runCmd.Flags().Set("seed", "0")

	_, opts, _, err := resolveRenderer(runCmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts["seed"] != 42 {
		t.Errorf("Expected seed 42, got %v", opts["seed"])
	}
}
