package compare

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/oceandiag/internal/config"
	"github.com/san-kum/oceandiag/internal/dataset"
	"github.com/san-kum/oceandiag/internal/geo"
	"github.com/san-kum/oceandiag/internal/grid"
	"github.com/san-kum/oceandiag/internal/render"
)

// Mode selects which figure variant a Job renders.
type Mode string

const (
	Annual   Mode = "annual"
	Seasonal Mode = "seasonal"
)

// ErrBadRange indicates a malformed coordinate range argument.
var ErrBadRange = errors.New(`compare: range must be "min,max"`)

// Range is a closed coordinate interval.
type Range struct {
	Min, Max float64
}

// ParseRange parses a "min,max" pair of floats.
func ParseRange(s string) (Range, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w, got %q", ErrBadRange, s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w, got %q", ErrBadRange, s)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w, got %q", ErrBadRange, s)
	}
	return Range{Min: lo, Max: hi}, nil
}

// Job is one comparison figure: up to three datasets in, one PNG out.
// Model2 may be empty, in which case only the observation, model-1 and
// model1-obs bias panels are drawn.
type Job struct {
	Mode       Mode
	Model1     string
	Model2     string
	Obs        string
	Var        string
	ObsVar     string
	OutDir     string
	Projection string
	LatRange   string
	LonRange   string
	Season     string
	Opts       config.Options

	Stdout io.Writer // defaults to os.Stdout
}

// OutputPath returns the figure path the job will write.
func (j *Job) OutputPath() string {
	name := fmt.Sprintf("%s_annual_comparison_sss_%s.png", j.Var, j.Projection)
	if j.Mode == Seasonal {
		name = fmt.Sprintf("%s_seasonal_comparison_sss_%s_%s.png", j.Var, j.Season, j.Projection)
	}
	return filepath.Join(j.OutDir, name)
}

// Run executes the pipeline: echo arguments, resolve the projection,
// parse the geographic window, load the datasets, compute biases,
// render and save. Any failure aborts the run with no output file.
func (j *Job) Run() (string, error) {
	if j.Stdout == nil {
		j.Stdout = os.Stdout
	}
	j.echo()

	proj, err := j.projection()
	if err != nil {
		return "", err
	}

	latr, err := ParseRange(j.LatRange)
	if err != nil {
		return "", fmt.Errorf("latitude %w", err)
	}
	lonr, err := ParseRange(j.LonRange)
	if err != nil {
		return "", fmt.Errorf("longitude %w", err)
	}

	m1, err := loadField(j.Model1, j.Var, false)
	if err != nil {
		return "", err
	}
	var m2 *grid.Field
	if j.Model2 != "" {
		if m2, err = loadField(j.Model2, j.Var, false); err != nil {
			return "", err
		}
	}
	obs, err := loadField(j.Obs, j.ObsVar, true)
	if err != nil {
		return "", err
	}

	bias1, err := grid.Sub(m1, obs)
	if err != nil {
		return "", err
	}
	var bias2, bias3 *grid.Field
	if m2 != nil {
		if bias2, err = grid.Sub(m2, obs); err != nil {
			return "", err
		}
		if bias3, err = grid.Sub(m1, m2); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(j.OutDir, 0755); err != nil {
		return "", fmt.Errorf("compare: creating output directory: %w", err)
	}

	out := j.OutputPath()
	extent := render.Extent{
		LonMin: lonr.Min, LonMax: lonr.Max,
		LatMin: latr.Min, LatMax: latr.Max,
	}
	if err := render.Figure(out, j.panels(m1, m2, obs, bias1, bias2, bias3), proj, extent, j.Opts); err != nil {
		return "", err
	}

	fmt.Fprintf(j.Stdout, "Plot saved to %s\n", out)
	return out, nil
}

// projection resolves the panel projection. The annual variant
// validates the requested name before any dataset is touched; the
// seasonal variant never validates it and always draws equirectangular
// panels, the name only feeding the output filename. Both behaviors
// are long-standing and kept as-is.
func (j *Job) projection() (geo.Projection, error) {
	if j.Mode == Seasonal {
		return geo.NewPlateCarree(), nil
	}
	return geo.Lookup(j.Projection)
}

// panels lays out the fixed 3x2 grid. Panels depending on model 2 stay
// blank when it was not supplied.
func (j *Job) panels(m1, m2, obs, bias1, bias2, bias3 *grid.Field) [3][2]*render.Panel {
	var p [3][2]*render.Panel
	p[0][0] = render.MeanPanel(j.meanTitle("Observation"), obs, j.Opts.MeanLevels)
	p[1][0] = render.MeanPanel(j.meanTitle("CMIP7"), m1, j.Opts.MeanLevels)
	p[1][1] = render.BiasPanel(j.biasTitle("CMIP7 - Obs"), bias1, j.Opts.BiasLevels)
	if m2 != nil {
		p[0][1] = render.BiasPanel(j.biasTitle("CMIP7 - CMIP6"), bias3, j.Opts.BiasLevels)
		p[2][0] = render.MeanPanel(j.meanTitle("CMIP6"), m2, j.Opts.MeanLevels)
		p[2][1] = render.BiasPanel(j.biasTitle("CMIP6 - Obs"), bias2, j.Opts.BiasLevels)
	}
	return p
}

func (j *Job) meanTitle(source string) string {
	if j.Mode == Seasonal {
		return fmt.Sprintf("%s SSS %s Mean", source, j.Season)
	}
	return fmt.Sprintf("%s SSS Annual Mean", source)
}

func (j *Job) biasTitle(pair string) string {
	if j.Mode == Seasonal {
		return fmt.Sprintf("Bias (%s) %s", pair, j.Season)
	}
	return fmt.Sprintf("Bias (%s)", pair)
}

func (j *Job) echo() {
	label := "Annual"
	if j.Mode == Seasonal {
		label = "Seasonal"
	}
	// Only the annual variant substitutes a fallback for a missing
	// model 2; the seasonal variant echoes the raw value.
	model2 := j.Model2
	if model2 == "" && j.Mode == Annual {
		model2 = "Not provided"
	}
	fmt.Fprintln(j.Stdout, "=== INPUT ARGUMENTS ===")
	fmt.Fprintf(j.Stdout, "Model 1 %s Mean: %s\n", label, j.Model1)
	fmt.Fprintf(j.Stdout, "Model 2 %s Mean: %s\n", label, model2)
	fmt.Fprintf(j.Stdout, "Observation %s: %s\n", label, j.Obs)
	fmt.Fprintf(j.Stdout, "Projection: %s\n", j.Projection)
	fmt.Fprintf(j.Stdout, "Latitude Range: %s\n", j.LatRange)
	fmt.Fprintf(j.Stdout, "Longitude Range: %s\n", j.LonRange)
	fmt.Fprintf(j.Stdout, "Variable: %s and Obs Variable: %s\n", j.Var, j.ObsVar)
	if j.Mode == Seasonal {
		fmt.Fprintf(j.Stdout, "Season: %s\n", j.Season)
	}
	fmt.Fprintln(j.Stdout, "========================")
}

// loadField opens one dataset and extracts its 2-D field. Observation
// files additionally reduce to the surface depth level.
func loadField(path, varName string, surface bool) (*grid.Field, error) {
	d, err := dataset.Open(path)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	if surface {
		return d.SurfaceField(varName)
	}
	return d.Field(varName)
}
