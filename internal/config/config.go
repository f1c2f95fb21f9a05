package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFigWidth  = 15.0 // inches
	DefaultFigHeight = 18.0
	DefaultDPI       = 96
)

// Options control the rendered figure. The defaults reproduce the
// standard diagnostics figure; a yaml file can override them.
type Options struct {
	FigWidth   float64   `yaml:"fig_width"`  // inches
	FigHeight  float64   `yaml:"fig_height"` // inches
	DPI        int       `yaml:"dpi"`
	MeanLevels LevelSpec `yaml:"mean_levels"`
	BiasLevels LevelSpec `yaml:"bias_levels"`
}

// LevelSpec describes evenly spaced contour levels, min inclusive and
// max exclusive.
type LevelSpec struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

func Default() Options {
	return Options{
		FigWidth:  DefaultFigWidth,
		FigHeight: DefaultFigHeight,
		DPI:       DefaultDPI,
		// SSS climatology sits around 34-38 psu.
		MeanLevels: LevelSpec{Min: 34, Max: 38, Step: 0.25},
		BiasLevels: LevelSpec{Min: -2, Max: 2, Step: 0.25},
	}
}

// Load reads options from a yaml file over the defaults.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opts := Default()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}
