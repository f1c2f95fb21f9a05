package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ctessum/cdf"
)

// writeTestFile creates a small NetCDF file with the given dimension
// names. data is laid out row-major over the full variable shape.
func writeTestFile(t *testing.T, path, varName string, dims []string, lens []int, data []float32, coords map[string][]float64) {
	t.Helper()

	h := cdf.NewHeader(dims, lens)
	h.AddVariable(varName, dims, []float32{0})
	h.AddAttribute(varName, "units", "psu")
	for name := range coords {
		h.AddVariable(name, []string{name}, []float64{0})
	}
	h.Define()

	ff, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer ff.Close()

	f, err := cdf.Create(ff, h)
	if err != nil {
		t.Fatalf("writing header: %v", err)
	}

	end := f.Header.Lengths(varName)
	w := f.Writer(varName, make([]int, len(end)), end)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("writing %s: %v", varName, err)
	}
	for name, vals := range coords {
		cw := f.Writer(name, []int{0}, []int{len(vals)})
		if _, err := cw.Write(vals); err != nil {
			t.Fatalf("writing coordinate %s: %v", name, err)
		}
	}
}

func TestFieldSelectsFirstTimeStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.nc")

	// 2 time steps, 2x3 grid; the second step must be ignored.
	data := []float32{
		1, 2, 3,
		4, 5, 6,
		// t=1
		-9, -9, -9,
		-9, -9, -9,
	}
	writeTestFile(t, path, "sos",
		[]string{"time", "lat", "lon"}, []int{2, 2, 3}, data,
		map[string][]float64{"lat": {-10, 10}, "lon": {0, 1, 2}})

	d, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer d.Close()

	f, err := d.Field("sos")
	if err != nil {
		t.Fatalf("field failed: %v", err)
	}

	if f.LonName != "lon" || f.LatName != "lat" {
		t.Errorf("coordinate names = %s/%s, want lon/lat", f.LonName, f.LatName)
	}
	if len(f.Lats) != 2 || len(f.Lons) != 3 {
		t.Fatalf("expected 2x3 field, got %dx%d", len(f.Lats), len(f.Lons))
	}
	want := [][]float64{{1, 2, 3}, {4, 5, 6}}
	for i := range want {
		for j := range want[i] {
			if got := f.At(i, j); got != want[i][j] {
				t.Errorf("field[%d][%d] = %f, want %f", i, j, got, want[i][j])
			}
		}
	}
	if f.Lats[0] != -10 || f.Lats[1] != 10 {
		t.Errorf("latitudes = %v", f.Lats)
	}
}

func TestFieldWithoutTimeDimension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.nc")
	writeTestFile(t, path, "sos",
		[]string{"yt_ocean", "xt_ocean"}, []int{2, 2},
		[]float32{1, 2, 3, 4},
		map[string][]float64{"yt_ocean": {-5, 5}, "xt_ocean": {100, 110}})

	d, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer d.Close()

	f, err := d.Field("sos")
	if err != nil {
		t.Fatalf("field failed: %v", err)
	}
	if f.LonName != "xt_ocean" || f.LatName != "yt_ocean" {
		t.Errorf("coordinate names = %s/%s, want xt_ocean/yt_ocean", f.LonName, f.LatName)
	}
	if f.At(1, 0) != 3 {
		t.Errorf("field[1][0] = %f, want 3", f.At(1, 0))
	}
}

func TestSurfaceFieldSelectsFirstDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obs.nc")

	// time=1, depth=2, 1x2 grid. Depth level 1 must be ignored.
	data := []float32{
		35, 36, // depth 0
		-1, -1, // depth 1
	}
	writeTestFile(t, path, "sss",
		[]string{"time", "depth", "lat", "lon"}, []int{1, 2, 1, 2}, data,
		map[string][]float64{"lat": {0}, "lon": {10, 20}})

	d, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer d.Close()

	f, err := d.SurfaceField("sss")
	if err != nil {
		t.Fatalf("surface field failed: %v", err)
	}
	if f.At(0, 0) != 35 || f.At(0, 1) != 36 {
		t.Errorf("surface values = %f,%f, want 35,36", f.At(0, 0), f.At(0, 1))
	}
}

func TestFieldMissingVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.nc")
	writeTestFile(t, path, "sos",
		[]string{"lat", "lon"}, []int{1, 1}, []float32{1},
		map[string][]float64{"lat": {0}, "lon": {0}})

	d, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer d.Close()

	if _, err := d.Field("nope"); err == nil {
		t.Error("expected error for missing variable")
	}
}

func TestFieldUnrecognizedCoords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.nc")
	writeTestFile(t, path, "sos",
		[]string{"y", "x"}, []int{2, 2}, []float32{1, 2, 3, 4}, nil)

	d, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer d.Close()

	_, err = d.Field("sos")
	if !errors.Is(err, ErrCoordsNotFound) {
		t.Errorf("expected ErrCoordsNotFound, got %v", err)
	}
}

func TestFieldMasksFillValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.nc")

	h := cdf.NewHeader([]string{"lat", "lon"}, []int{1, 2})
	h.AddVariable("sos", []string{"lat", "lon"}, []float32{0})
	h.AddAttribute("sos", "_FillValue", []float32{1e20})
	h.Define()

	ff, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	f, err := cdf.Create(ff, h)
	if err != nil {
		t.Fatalf("writing header: %v", err)
	}
	w := f.Writer("sos", []int{0, 0}, []int{1, 2})
	if _, err := w.Write([]float32{35, 1e20}); err != nil {
		t.Fatalf("writing data: %v", err)
	}
	ff.Close()

	d, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer d.Close()

	fld, err := d.Field("sos")
	if err != nil {
		t.Fatalf("field failed: %v", err)
	}
	if fld.At(0, 0) != 35 {
		t.Errorf("valid cell = %f, want 35", fld.At(0, 0))
	}
	if !math.IsNaN(fld.At(0, 1)) {
		t.Errorf("fill cell = %f, want NaN", fld.At(0, 1))
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.nc")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDescribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.nc")
	writeTestFile(t, path, "sos",
		[]string{"time", "lat", "lon"}, []int{1, 2, 3},
		make([]float32, 6),
		map[string][]float64{"lat": {-10, 10}, "lon": {0, 1, 2}})

	d, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer d.Close()

	var sb strings.Builder
	if err := d.Describe(&sb); err != nil {
		t.Fatalf("describe failed: %v", err)
	}
	out := sb.String()
	for _, want := range []string{"sos", "time,lat,lon", "psu"} {
		if !strings.Contains(out, want) {
			t.Errorf("describe output missing %q:\n%s", want, out)
		}
	}
}
