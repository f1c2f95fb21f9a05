package render

import (
	"image/color"
	"math"

	"github.com/ctessum/geom"
	"github.com/san-kum/oceandiag/internal/geo"
	"github.com/san-kum/oceandiag/internal/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Extent is the geographic window a panel displays.
type Extent struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
}

// projectExtent returns the bounding box of the extent in projected
// coordinates, sampling the rim since projections curve it.
func projectExtent(p geo.Projection, e Extent) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	const steps = 64
	sample := func(lon, lat float64) {
		x, y := p.Forward(lon, lat)
		xmin = math.Min(xmin, x)
		xmax = math.Max(xmax, x)
		ymin = math.Min(ymin, y)
		ymax = math.Max(ymax, y)
	}
	for i := 0; i <= steps; i++ {
		f := float64(i) / steps
		lon := e.LonMin + (e.LonMax-e.LonMin)*f
		lat := e.LatMin + (e.LatMax-e.LatMin)*f
		sample(lon, e.LatMin)
		sample(lon, e.LatMax)
		sample(e.LonMin, lat)
		sample(e.LonMax, lat)
	}
	return xmin, xmax, ymin, ymax
}

// mapLayer draws a gridded field as filled cells, each cell quad
// projected through the panel projection. NaN cells (land) are left
// unfilled.
type mapLayer struct {
	field  *grid.Field
	levels []float64
	colors []color.Color
	proj   geo.Projection
}

func (m *mapLayer) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	lonEdges := cellEdges(m.field.Lons)
	latEdges := cellEdges(m.field.Lats)

	for i := range m.field.Lats {
		for j := range m.field.Lons {
			v := m.field.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			corners := [4][2]float64{
				{lonEdges[j], latEdges[i]},
				{lonEdges[j+1], latEdges[i]},
				{lonEdges[j+1], latEdges[i+1]},
				{lonEdges[j], latEdges[i+1]},
			}
			poly := make([]vg.Point, 4)
			for k, cr := range corners {
				x, y := m.proj.Forward(cr[0], cr[1])
				poly[k] = vg.Point{X: trX(x), Y: trY(y)}
			}
			clipped := c.ClipPolygonXY(poly)
			if len(clipped) == 0 {
				continue
			}
			c.FillPolygon(colorAt(v, m.levels, m.colors), clipped)
		}
	}
}

// cellEdges returns the n+1 cell boundaries for n cell centers,
// midpoints inside and half-step extrapolation at the ends.
func cellEdges(centers []float64) []float64 {
	n := len(centers)
	edges := make([]float64, n+1)
	if n == 1 {
		edges[0] = centers[0] - 0.5
		edges[1] = centers[0] + 0.5
		return edges
	}
	for i := 1; i < n; i++ {
		edges[i] = (centers[i-1] + centers[i]) / 2
	}
	edges[0] = centers[0] - (centers[1]-centers[0])/2
	edges[n] = centers[n-1] + (centers[n-1]-centers[n-2])/2
	return edges
}

// coastLayer overlays the generalized world coastline. Segments are
// drawn at -360, 0 and +360 degree shifts so both [-180,180] and
// [0,360] extent conventions pick them up; clipping discards the rest.
type coastLayer struct {
	segs []geom.LineString
	proj geo.Projection
	sty  draw.LineStyle
}

func newCoastLayer(proj geo.Projection) *coastLayer {
	return &coastLayer{
		segs: geo.Coastlines(),
		proj: proj,
		sty: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(0.6),
		},
	}
}

func (l *coastLayer) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, shift := range []float64{-360, 0, 360} {
		for _, seg := range l.segs {
			pts := make([]vg.Point, len(seg))
			for i, p := range seg {
				x, y := l.proj.Forward(p.X+shift, p.Y)
				pts[i] = vg.Point{X: trX(x), Y: trY(y)}
			}
			c.StrokeLines(l.sty, c.ClipLinesXY(pts)...)
		}
	}
}
