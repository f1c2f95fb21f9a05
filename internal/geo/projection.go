package geo

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownProjection indicates a projection name outside the
// recognized set.
var ErrUnknownProjection = errors.New("geo: unknown projection")

// Projection maps geographic coordinates (degrees) to map-plane
// coordinates for panel display. It is used only for drawing, never
// for data transformation.
type Projection interface {
	Name() string
	Forward(lon, lat float64) (x, y float64)
}

// Lookup resolves a projection by name, case-insensitively. Exactly
// two names are recognized: "platecarree" and "robinson".
func Lookup(name string) (Projection, error) {
	switch strings.ToLower(name) {
	case "platecarree":
		return NewPlateCarree(), nil
	case "robinson":
		return NewRobinson(), nil
	}
	return nil, fmt.Errorf("%w %q (available projections: %s)",
		ErrUnknownProjection, name, strings.Join(Names(), ", "))
}

// Names returns the recognized projection names.
func Names() []string { return []string{"platecarree", "robinson"} }

// PlateCarree is the equirectangular projection: longitude and
// latitude map directly to x and y.
type PlateCarree struct{}

func NewPlateCarree() PlateCarree { return PlateCarree{} }

func (PlateCarree) Name() string { return "platecarree" }

func (PlateCarree) Forward(lon, lat float64) (x, y float64) { return lon, lat }

// Robinson projection, implemented from the standard lookup table at
// 5-degree latitude intervals with linear interpolation between
// entries. The unit sphere is assumed; x and y are scaled so the
// equator spans ±0.8487π.
type Robinson struct{}

func NewRobinson() Robinson { return Robinson{} }

func (Robinson) Name() string { return "robinson" }

// Robinson table: parallel length multiplier (X) and parallel distance
// multiplier (Y) for latitudes 0, 5, ..., 90.
var (
	robinsonX = []float64{
		1.0000, 0.9986, 0.9954, 0.9900, 0.9822, 0.9730, 0.9600, 0.9427,
		0.9216, 0.8962, 0.8679, 0.8350, 0.7986, 0.7597, 0.7186, 0.6732,
		0.6213, 0.5722, 0.5322,
	}
	robinsonY = []float64{
		0.0000, 0.0620, 0.1240, 0.1860, 0.2480, 0.3100, 0.3720, 0.4340,
		0.4958, 0.5571, 0.6176, 0.6769, 0.7346, 0.7903, 0.8435, 0.8936,
		0.9394, 0.9761, 1.0000,
	}
)

func (Robinson) Forward(lon, lat float64) (x, y float64) {
	absLat := math.Abs(lat)
	if absLat > 90 {
		absLat = 90
	}
	idx := absLat / 5
	i := int(idx)
	if i >= len(robinsonX)-1 {
		i = len(robinsonX) - 2
	}
	frac := idx - float64(i)
	px := robinsonX[i] + (robinsonX[i+1]-robinsonX[i])*frac
	py := robinsonY[i] + (robinsonY[i+1]-robinsonY[i])*frac

	x = 0.8487 * px * (lon * math.Pi / 180)
	y = 1.3523 * py
	if lat < 0 {
		y = -y
	}
	return x, y
}
