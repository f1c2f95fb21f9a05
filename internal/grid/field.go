package grid

import (
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// CoordTol is the tolerance used when matching coordinate labels
// between two grids.
const CoordTol = 1e-6

// Field is a 2-D gridded scalar indexed by a latitude coordinate
// (rows) and a longitude coordinate (columns). Missing values are
// represented as NaN.
type Field struct {
	Var     string
	LonName string
	LatName string
	Lons    []float64
	Lats    []float64
	Data    *sparse.DenseArray // shape [len(Lats)][len(Lons)]
}

// New allocates a zero-filled field with the given coordinates.
func New(varName, lonName, latName string, lons, lats []float64) *Field {
	return &Field{
		Var:     varName,
		LonName: lonName,
		LatName: latName,
		Lons:    lons,
		Lats:    lats,
		Data:    sparse.ZerosDense(len(lats), len(lons)),
	}
}

func (f *Field) At(i, j int) float64 { return f.Data.Get(i, j) }

func (f *Field) Set(v float64, i, j int) { f.Data.Set(v, i, j) }

// Sub returns the elementwise difference a−b aligned by coordinate
// label: both axes are intersected by value and the subtraction runs
// over the common grid, matching xarray's label-based arithmetic. The
// result carries a's variable and coordinate names. An empty
// intersection on either axis is an error.
func Sub(a, b *Field) (*Field, error) {
	ai, bi := matchAxis(a.Lats, b.Lats)
	aj, bj := matchAxis(a.Lons, b.Lons)
	if len(ai) == 0 || len(aj) == 0 {
		return nil, fmt.Errorf("grid: fields %q and %q share no %s/%s coordinates",
			a.Var, b.Var, a.LatName, a.LonName)
	}
	out := &Field{
		Var:     a.Var,
		LonName: a.LonName,
		LatName: a.LatName,
		Lons:    make([]float64, len(aj)),
		Lats:    make([]float64, len(ai)),
		Data:    sparse.ZerosDense(len(ai), len(aj)),
	}
	for i, idx := range ai {
		out.Lats[i] = a.Lats[idx]
	}
	for j, idx := range aj {
		out.Lons[j] = a.Lons[idx]
	}
	for i := range ai {
		for j := range aj {
			out.Data.Set(a.Data.Get(ai[i], aj[j])-b.Data.Get(bi[i], bj[j]), i, j)
		}
	}
	return out, nil
}

// matchAxis intersects two coordinate axes by value, returning the
// matching index into each. Either axis may run ascending or
// descending; matches come back in ascending label order.
func matchAxis(a, b []float64) (ia, ib []int) {
	ka := sortedOrder(a)
	kb := sortedOrder(b)
	i, j := 0, 0
	for i < len(ka) && j < len(kb) {
		av, bv := a[ka[i]], b[kb[j]]
		switch {
		case math.Abs(av-bv) <= CoordTol:
			ia = append(ia, ka[i])
			ib = append(ib, kb[j])
			i++
			j++
		case av < bv:
			i++
		default:
			j++
		}
	}
	return ia, ib
}

// sortedOrder returns the index permutation that visits vals in
// ascending order.
func sortedOrder(vals []float64) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(p, q int) bool { return vals[idx[p]] < vals[idx[q]] })
	return idx
}

// ZonalMean averages the field over longitude at each latitude,
// skipping NaN cells. Latitudes with no valid cells yield NaN.
func (f *Field) ZonalMean() []float64 {
	out := make([]float64, len(f.Lats))
	for i := range f.Lats {
		sum, n := 0.0, 0
		for j := range f.Lons {
			v := f.Data.Get(i, j)
			if math.IsNaN(v) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(n)
		}
	}
	return out
}

// Levels generates contour levels from lo (inclusive) up to hi
// (exclusive) with the given step.
func Levels(lo, hi, step float64) []float64 {
	n := int(math.Ceil((hi - lo) / step))
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	floats.Span(out, lo, lo+float64(n-1)*step)
	return out
}
