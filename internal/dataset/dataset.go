package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/ctessum/cdf"
	"github.com/san-kum/oceandiag/internal/grid"
)

// ErrCoordsNotFound indicates a variable whose spatial dimensions
// match neither of the recognized coordinate naming conventions.
var ErrCoordsNotFound = errors.New("dataset: longitude and latitude coordinates not found")

// Dataset is an open NetCDF file. Time values are never decoded; the
// tool only ever selects the first time step.
type Dataset struct {
	path string
	ff   *os.File
	f    *cdf.File
}

// Open opens a NetCDF classic file for reading.
func Open(path string) (*Dataset, error) {
	ff, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	f, err := cdf.Open(ff)
	if err != nil {
		ff.Close()
		return nil, fmt.Errorf("dataset: reading %s: %w", path, err)
	}
	return &Dataset{path: path, ff: ff, f: f}, nil
}

func (d *Dataset) Close() error { return d.ff.Close() }

// Path returns the file path the dataset was opened from.
func (d *Dataset) Path() string { return d.path }

// Field extracts the named variable as a 2-D field, selecting index 0
// along a "time" dimension when one is present.
func (d *Dataset) Field(name string) (*grid.Field, error) {
	return d.field(name, false)
}

// SurfaceField is Field but additionally selects index 0 along a
// "depth" dimension when one is present. Observation datasets carry
// the full water column; only the surface level is compared.
func (d *Dataset) SurfaceField(name string) (*grid.Field, error) {
	return d.field(name, true)
}

func (d *Dataset) field(name string, surface bool) (*grid.Field, error) {
	lens := d.f.Header.Lengths(name)
	if len(lens) == 0 {
		return nil, fmt.Errorf("dataset: variable %q not found in %s", name, d.path)
	}
	dims := d.f.Header.Dimensions(name)

	begin := make([]int, len(dims))
	end := make([]int, len(dims))
	var keep []int
	for i, dim := range dims {
		end[i] = lens[i]
		switch {
		case dim == "time", surface && dim == "depth":
			end[i] = 1 // first index only
		default:
			keep = append(keep, i)
		}
	}
	if len(keep) != 2 {
		return nil, fmt.Errorf("dataset: variable %q in %s has %d spatial dimensions (%v), want 2",
			name, d.path, len(keep), dims)
	}
	latDim, lonDim := dims[keep[0]], dims[keep[1]]

	lonName, latName, err := resolveCoords(lonDim, latDim)
	if err != nil {
		return nil, fmt.Errorf("%w (variable %q in %s has dimensions %v)",
			err, name, d.path, dims)
	}

	vals, err := d.read(name, begin, end)
	if err != nil {
		return nil, fmt.Errorf("dataset: reading %q from %s: %w", name, d.path, err)
	}
	d.maskFill(name, vals)

	lats, err := d.axis(latDim, lens[keep[0]])
	if err != nil {
		return nil, err
	}
	lons, err := d.axis(lonDim, lens[keep[1]])
	if err != nil {
		return nil, err
	}

	f := grid.New(name, lonName, latName, lons, lats)
	copy(f.Data.Elements, vals)
	return f, nil
}

// resolveCoords picks the recognized longitude/latitude naming
// convention, MOM tracer-grid names first.
func resolveCoords(lonDim, latDim string) (lonName, latName string, err error) {
	switch {
	case lonDim == "xt_ocean" && latDim == "yt_ocean":
		return "xt_ocean", "yt_ocean", nil
	case lonDim == "lon" && latDim == "lat":
		return "lon", "lat", nil
	}
	return "", "", ErrCoordsNotFound
}

// read reads the [begin,end) hyperslab of a variable as float64.
func (d *Dataset) read(name string, begin, end []int) ([]float64, error) {
	n := 1
	for i := range begin {
		n *= end[i] - begin[i]
	}
	r := d.f.Reader(name, begin, end)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	switch b := buf.(type) {
	case []float64:
		copy(out, b)
	case []float32:
		for i, v := range b {
			out[i] = float64(v)
		}
	case []int32:
		for i, v := range b {
			out[i] = float64(v)
		}
	case []int16:
		for i, v := range b {
			out[i] = float64(v)
		}
	case []int8:
		for i, v := range b {
			out[i] = float64(v)
		}
	case []uint8:
		for i, v := range b {
			out[i] = float64(v)
		}
	default:
		return nil, fmt.Errorf("unsupported type %T for variable %q", buf, name)
	}
	return out, nil
}

// maskFill replaces fill/missing values with NaN, following the
// _FillValue then missing_value attributes.
func (d *Dataset) maskFill(name string, vals []float64) {
	fill, ok := d.fillValue(name)
	if !ok {
		return
	}
	// Fill values are typically huge magnitudes (1e20); compare with a
	// relative tolerance to survive the float32 round trip.
	tol := math.Abs(fill) * 1e-5
	for i, v := range vals {
		if v == fill || (tol > 0 && math.Abs(v-fill) <= tol) {
			vals[i] = math.NaN()
		}
	}
}

func (d *Dataset) fillValue(name string) (float64, bool) {
	for _, attr := range []string{"_FillValue", "missing_value"} {
		switch v := d.f.Header.GetAttribute(name, attr).(type) {
		case []float64:
			if len(v) > 0 {
				return v[0], true
			}
		case []float32:
			if len(v) > 0 {
				return float64(v[0]), true
			}
		case []int32:
			if len(v) > 0 {
				return float64(v[0]), true
			}
		}
	}
	return 0, false
}

// axis reads a coordinate variable sharing its dimension's name, or
// falls back to 0..n-1 indices when the file carries none.
func (d *Dataset) axis(dim string, n int) ([]float64, error) {
	if !d.hasVariable(dim) {
		idx := make([]float64, n)
		for i := range idx {
			idx[i] = float64(i)
		}
		return idx, nil
	}
	vals, err := d.read(dim, []int{0}, []int{n})
	if err != nil {
		return nil, fmt.Errorf("dataset: reading coordinate %q from %s: %w", dim, d.path, err)
	}
	return vals, nil
}

func (d *Dataset) hasVariable(name string) bool {
	for _, v := range d.f.Header.Variables() {
		if v == name {
			return true
		}
	}
	return false
}

// Describe writes a variable inventory for the info command.
func (d *Dataset) Describe(out io.Writer) error {
	vars := append([]string(nil), d.f.Header.Variables()...)
	sort.Strings(vars)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIABLE\tDIMENSIONS\tSHAPE\tUNITS")
	for _, v := range vars {
		dims := d.f.Header.Dimensions(v)
		lens := d.f.Header.Lengths(v)
		shape := make([]string, len(lens))
		for i, l := range lens {
			shape[i] = fmt.Sprintf("%d", l)
		}
		units := ""
		if u, ok := d.f.Header.GetAttribute(v, "units").(string); ok {
			units = u
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			v, strings.Join(dims, ","), strings.Join(shape, "x"), units)
	}
	return w.Flush()
}
