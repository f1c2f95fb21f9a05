package render

import (
	"image/color"
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// ColorBrewer 11-class Spectral anchors, low to high.
var spectralAnchors = []color.NRGBA{
	{R: 158, G: 1, B: 66, A: 255},
	{R: 213, G: 62, B: 79, A: 255},
	{R: 244, G: 109, B: 67, A: 255},
	{R: 253, G: 174, B: 97, A: 255},
	{R: 254, G: 224, B: 139, A: 255},
	{R: 255, G: 255, B: 191, A: 255},
	{R: 230, G: 245, B: 152, A: 255},
	{R: 171, G: 221, B: 164, A: 255},
	{R: 102, G: 194, B: 165, A: 255},
	{R: 50, G: 136, B: 189, A: 255},
	{R: 94, G: 79, B: 162, A: 255},
}

// SpectralReversed returns n colors sampled from the reversed
// ColorBrewer Spectral ramp (blue for fresh, red for salty), the
// colormap used for the mean-state panels.
func SpectralReversed(n int) []color.Color {
	out := make([]color.Color, n)
	m := len(spectralAnchors)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		// reversed: t=0 maps to the last anchor
		pos := (1 - t) * float64(m-1)
		k := int(pos)
		if k >= m-1 {
			k = m - 2
		}
		frac := pos - float64(k)
		out[i] = lerpNRGBA(spectralAnchors[k], spectralAnchors[k+1], frac)
	}
	return out
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// CoolWarm returns n colors from the Moreland smooth blue-red
// diverging map, the colormap used for the bias panels.
func CoolWarm(n int) []color.Color {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	out := make([]color.Color, n)
	for i := range out {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c, err := cm.At(t)
		if err != nil {
			c = color.Black
		}
		out[i] = c
	}
	return out
}

// colorAt bins v into the discrete level bands. colors must have
// len(levels)+1 entries; values outside the level range take the end
// colors ("extend both" semantics).
func colorAt(v float64, levels []float64, colors []color.Color) color.Color {
	i := sort.SearchFloat64s(levels, v)
	if i < len(levels) && levels[i] == v {
		i++
	}
	return colors[i]
}

// levelMap exposes the discrete level binning as a palette.ColorMap so
// the panel colorbars show exactly the colors drawn in the map layer.
type levelMap struct {
	levels   []float64
	colors   []color.Color
	min, max float64
	alpha    float64
}

func newLevelMap(levels []float64, colors []color.Color) *levelMap {
	return &levelMap{
		levels: levels,
		colors: colors,
		min:    levels[0],
		max:    levels[len(levels)-1],
		alpha:  1,
	}
}

func (l *levelMap) At(v float64) (color.Color, error) { return colorAt(v, l.levels, l.colors), nil }
func (l *levelMap) Min() float64                      { return l.min }
func (l *levelMap) SetMin(v float64)                  { l.min = v }
func (l *levelMap) Max() float64                      { return l.max }
func (l *levelMap) SetMax(v float64)                  { l.max = v }
func (l *levelMap) Alpha() float64                    { return l.alpha }

func (l *levelMap) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("render: alpha out of range")
	}
	l.alpha = a
}

func (l *levelMap) Palette(int) palette.Palette { return bandPalette(l.colors) }

type bandPalette []color.Color

func (p bandPalette) Colors() []color.Color { return p }
