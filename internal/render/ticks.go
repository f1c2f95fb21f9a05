package render

import (
	"math"
	"strconv"

	"github.com/san-kum/oceandiag/internal/geo"
	"gonum.org/v1/plot"
)

const tickCount = 5

// LonTicker places evenly spaced longitude ticks across the requested
// extent, positioned through the panel projection. RefLat anchors the
// tick positions for projections whose meridians curve.
type LonTicker struct {
	Min, Max float64
	RefLat   float64
	Proj     geo.Projection
}

func (t LonTicker) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, tickCount)
	for i := 0; i < tickCount; i++ {
		lon := t.Min + (t.Max-t.Min)*float64(i)/(tickCount-1)
		x, _ := t.Proj.Forward(lon, t.RefLat)
		ticks = append(ticks, plot.Tick{Value: x, Label: FormatLon(lon)})
	}
	return ticks
}

// LatTicker is the latitude counterpart of LonTicker.
type LatTicker struct {
	Min, Max float64
	RefLon   float64
	Proj     geo.Projection
}

func (t LatTicker) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, tickCount)
	for i := 0; i < tickCount; i++ {
		lat := t.Min + (t.Max-t.Min)*float64(i)/(tickCount-1)
		_, y := t.Proj.Forward(t.RefLon, lat)
		ticks = append(ticks, plot.Tick{Value: y, Label: FormatLat(lat)})
	}
	return ticks
}

// FormatLon renders a longitude as a geographic tick label, e.g.
// "120°W". Values are normalized to [-180,180).
func FormatLon(lon float64) string {
	l := math.Mod(lon+180, 360)
	if l < 0 {
		l += 360
	}
	l -= 180
	switch {
	case l == 0:
		return "0°"
	case l == -180:
		return "180°"
	case l > 0:
		return trimFloat(l) + "°E"
	default:
		return trimFloat(-l) + "°W"
	}
}

// FormatLat renders a latitude as a geographic tick label, e.g. "45°S".
func FormatLat(lat float64) string {
	switch {
	case lat == 0:
		return "0°"
	case lat > 0:
		return trimFloat(lat) + "°N"
	default:
		return trimFloat(-lat) + "°S"
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
