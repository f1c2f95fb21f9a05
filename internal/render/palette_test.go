package render

import (
	"image/color"
	"testing"
)

func TestSpectralReversed(t *testing.T) {
	colors := SpectralReversed(17)
	if len(colors) != 17 {
		t.Fatalf("expected 17 colors, got %d", len(colors))
	}

	// Reversed Spectral: cold (blue-ish) end first, warm (red) end last.
	first := colors[0].(color.NRGBA)
	last := colors[16].(color.NRGBA)
	if first.B <= first.R {
		t.Errorf("first color should be blue-dominant, got %+v", first)
	}
	if last.R <= last.B {
		t.Errorf("last color should be red-dominant, got %+v", last)
	}
}

func TestCoolWarm(t *testing.T) {
	colors := CoolWarm(17)
	if len(colors) != 17 {
		t.Fatalf("expected 17 colors, got %d", len(colors))
	}
	// Diverging map: ends differ, middle is pale.
	if colors[0] == colors[16] {
		t.Error("end colors should differ")
	}
}

func TestColorAt(t *testing.T) {
	levels := []float64{0, 1, 2, 3}
	colors := []color.Color{
		color.Gray{Y: 0}, color.Gray{Y: 1}, color.Gray{Y: 2},
		color.Gray{Y: 3}, color.Gray{Y: 4},
	}

	tests := []struct {
		v    float64
		want uint8
	}{
		{-5, 0},  // below range clamps to the low extend color
		{0, 1},   // first in-range band
		{0.5, 1},
		{1, 2},
		{2.9, 3},
		{3, 4},  // top level starts the high extend band
		{99, 4}, // above range clamps
	}

	for _, tt := range tests {
		got := colorAt(tt.v, levels, colors).(color.Gray)
		if got.Y != tt.want {
			t.Errorf("colorAt(%g) = band %d, want %d", tt.v, got.Y, tt.want)
		}
	}
}

func TestLevelMap(t *testing.T) {
	levels := []float64{34, 35, 36}
	cm := newLevelMap(levels, SpectralReversed(4))

	if cm.Min() != 34 || cm.Max() != 36 {
		t.Errorf("range = [%g,%g], want [34,36]", cm.Min(), cm.Max())
	}
	if got := len(cm.Palette(100).Colors()); got != 4 {
		t.Errorf("palette size = %d, want 4", got)
	}
	if _, err := cm.At(35.5); err != nil {
		t.Errorf("At failed: %v", err)
	}
}
