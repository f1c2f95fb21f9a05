package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	opts := Default()

	if opts.FigWidth != 15 || opts.FigHeight != 18 {
		t.Errorf("figure size = %gx%g in, want 15x18", opts.FigWidth, opts.FigHeight)
	}
	if opts.MeanLevels.Min != 34 || opts.MeanLevels.Max != 38 || opts.MeanLevels.Step != 0.25 {
		t.Errorf("unexpected mean levels: %+v", opts.MeanLevels)
	}
	if opts.BiasLevels.Min != -2 || opts.BiasLevels.Max != 2 {
		t.Errorf("unexpected bias levels: %+v", opts.BiasLevels)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	yml := "dpi: 150\nbias_levels:\n  min: -1\n  max: 1\n  step: 0.1\n"
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if opts.DPI != 150 {
		t.Errorf("dpi = %d, want 150", opts.DPI)
	}
	if opts.BiasLevels.Step != 0.1 {
		t.Errorf("bias step = %g, want 0.1", opts.BiasLevels.Step)
	}
	// Untouched fields keep their defaults.
	if opts.MeanLevels.Min != 34 {
		t.Errorf("mean min = %g, want default 34", opts.MeanLevels.Min)
	}
	if opts.FigWidth != 15 {
		t.Errorf("fig width = %g, want default 15", opts.FigWidth)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
