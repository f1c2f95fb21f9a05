package render

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/oceandiag/internal/config"
	"github.com/san-kum/oceandiag/internal/geo"
	"github.com/san-kum/oceandiag/internal/grid"
)

func testField() *grid.Field {
	lons := make([]float64, 36)
	lats := make([]float64, 18)
	for i := range lons {
		lons[i] = float64(i)*10 + 5
	}
	for i := range lats {
		lats[i] = float64(i)*10 - 85
	}
	f := grid.New("sos", "lon", "lat", lons, lats)
	for i, la := range lats {
		for j := range lons {
			f.Set(35+2*math.Sin(la*math.Pi/180), i, j)
		}
	}
	f.Set(math.NaN(), 0, 0) // a land cell
	return f
}

func TestFigureWritesPNG(t *testing.T) {
	opts := config.Default()
	opts.FigWidth, opts.FigHeight = 6, 7 // keep the test image small

	fld := testField()
	var panels [3][2]*Panel
	panels[0][0] = MeanPanel("Observation SSS Annual Mean", fld, opts.MeanLevels)
	panels[1][0] = MeanPanel("CMIP7 SSS Annual Mean", fld, opts.MeanLevels)
	panels[1][1] = BiasPanel("Bias (CMIP7 - Obs)", fld, opts.BiasLevels)

	path := filepath.Join(t.TempDir(), "out.png")
	err := Figure(path, panels, geo.NewPlateCarree(),
		Extent{LonMin: 0, LonMax: 360, LatMin: -90, LatMax: 90}, opts)
	if err != nil {
		t.Fatalf("figure failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("output is not a valid PNG: %v", err)
	}
}

func TestFigureRobinson(t *testing.T) {
	opts := config.Default()
	opts.FigWidth, opts.FigHeight = 6, 7

	fld := testField()
	var panels [3][2]*Panel
	panels[0][0] = MeanPanel("Observation SSS Annual Mean", fld, opts.MeanLevels)

	path := filepath.Join(t.TempDir(), "robinson.png")
	err := Figure(path, panels, geo.NewRobinson(),
		Extent{LonMin: 0, LonMax: 360, LatMin: -90, LatMax: 90}, opts)
	if err != nil {
		t.Fatalf("figure failed: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("expected non-empty PNG, err=%v", err)
	}
}
