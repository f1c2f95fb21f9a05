package render

import (
	"fmt"
	"image/color"
	"os"

	"github.com/san-kum/oceandiag/internal/config"
	"github.com/san-kum/oceandiag/internal/geo"
	"github.com/san-kum/oceandiag/internal/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Panel is one map tile of the comparison figure.
type Panel struct {
	Title  string
	Field  *grid.Field
	Levels []float64
	Colors []color.Color
}

// MeanPanel builds a panel using the mean-state levels and colormap.
func MeanPanel(title string, f *grid.Field, spec config.LevelSpec) *Panel {
	levels := grid.Levels(spec.Min, spec.Max, spec.Step)
	return &Panel{Title: title, Field: f, Levels: levels, Colors: SpectralReversed(len(levels) + 1)}
}

// BiasPanel builds a panel using the bias levels and diverging colormap.
func BiasPanel(title string, f *grid.Field, spec config.LevelSpec) *Panel {
	levels := grid.Levels(spec.Min, spec.Max, spec.Step)
	return &Panel{Title: title, Field: f, Levels: levels, Colors: CoolWarm(len(levels) + 1)}
}

// Figure renders the fixed 3x2 comparison layout to a PNG file. Nil
// panels are left blank. Each populated panel carries its own
// horizontal colorbar beneath the map.
func Figure(path string, panels [3][2]*Panel, proj geo.Projection, extent Extent, opts config.Options) error {
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.FigWidth)*vg.Inch, vg.Length(opts.FigHeight)*vg.Inch),
		vgimg.UseDPI(opts.DPI),
	)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: 3, Cols: 2,
		PadX: vg.Millimeter * 6, PadY: vg.Millimeter * 6,
		PadTop: vg.Millimeter * 4, PadBottom: vg.Millimeter * 4,
		PadLeft: vg.Millimeter * 6, PadRight: vg.Millimeter * 4,
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 2; col++ {
			pn := panels[row][col]
			if pn == nil {
				continue
			}
			tc := tiles.At(dc, col, row)
			tileW := tc.Max.X - tc.Min.X
			tileH := tc.Max.Y - tc.Min.Y

			mapC := draw.Crop(tc, 0, 0, tileH*0.18, 0)
			barC := draw.Crop(tc, tileW*0.1, -tileW*0.1, 0, -tileH*0.86)

			drawPanel(mapC, pn, proj, extent)
			drawColorBar(barC, pn)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("render: writing %s: %w", path, err)
	}
	return f.Close()
}

func drawPanel(c draw.Canvas, pn *Panel, proj geo.Projection, extent Extent) {
	p := plot.New()
	p.Title.Text = pn.Title
	p.Title.TextStyle.Font.Size = vg.Points(13)

	xmin, xmax, ymin, ymax := projectExtent(proj, extent)
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax

	p.X.Tick.Marker = LonTicker{
		Min: extent.LonMin, Max: extent.LonMax,
		RefLat: (extent.LatMin + extent.LatMax) / 2,
		Proj:   proj,
	}
	p.Y.Tick.Marker = LatTicker{
		Min: extent.LatMin, Max: extent.LatMax,
		RefLon: (extent.LonMin + extent.LonMax) / 2,
		Proj:   proj,
	}
	p.X.Tick.Label.Font.Size = vg.Points(10)
	p.Y.Tick.Label.Font.Size = vg.Points(10)

	p.Add(&mapLayer{field: pn.Field, levels: pn.Levels, colors: pn.Colors, proj: proj})
	p.Add(newCoastLayer(proj))

	p.Draw(c)
}

func drawColorBar(c draw.Canvas, pn *Panel) {
	p := plot.New()
	p.HideY()
	p.X.Tick.Label.Font.Size = vg.Points(8)
	p.Add(&plotter.ColorBar{ColorMap: newLevelMap(pn.Levels, pn.Colors)})
	p.Draw(c)
}
