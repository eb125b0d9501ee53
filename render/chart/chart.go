/*package chart draws line, marker and bar plots of numerical results. Plots
can be rendered directly to PNG files with gonum/plot or written as a
matplotlib script through pyplot.
*/
package chart

import (
	"fmt"
	"image/color"
	"math"
)

// Range is a closed axis range.
type Range struct {
	Min, Max float64
}

// Config describes the decorations and geometry of a single plot.
type Config struct {
	Title, XLabel, YLabel string
	// Width and Height are in pixels.
	Width, Height int
	YLogScale     bool
	ShowLegend    bool
	// XRange and YRange fix the axis ranges. nil ranges are computed from
	// the data.
	XRange, YRange *Range
	// MarginFraction pads computed ranges by this fraction of their width.
	MarginFraction float64
	StrokeWidth    float64
}

// DefaultConfig returns an 800x600 config with a legend and a 5% margin.
func DefaultConfig() *Config {
	return &Config{
		Title: "Plot", XLabel: "x", YLabel: "y",
		Width: 800, Height: 600,
		ShowLegend:     true,
		MarginFraction: 0.05,
		StrokeWidth:    3,
	}
}

func (c *Config) WithXRange(min, max float64) *Config {
	c.XRange = &Range{min, max}
	return c
}

func (c *Config) WithYRange(min, max float64) *Config {
	c.YRange = &Range{min, max}
	return c
}

func (c *Config) WithMarginFraction(frac float64) *Config {
	c.MarginFraction = frac
	return c
}

func (c *Config) WithStrokeWidth(width float64) *Config {
	c.StrokeWidth = width
	return c
}

// Series is a labeled set of y values sharing x values with other series.
type Series struct {
	Label string
	Ys    []float64
}

// Marker is a highlighted point.
type Marker struct {
	X, Y float64
}

// Renderer writes plots to files. The file format is decided by the
// extension of fname.
type Renderer interface {
	// Line draws a single curve.
	Line(fname string, xs, ys []float64, c *Config) error
	// LineWithMarkers draws a curve with filled red circles at markers.
	LineWithMarkers(
		fname string, xs, ys []float64, markers []Marker, c *Config,
	) error
	// MultiLine draws several series over the same xs.
	MultiLine(fname string, xs []float64, series []Series, c *Config) error
	// GroupedBar draws one bar per group for every category.
	GroupedBar(
		fname string, categories []string, groups []Series, c *Config,
	) error
	// Close finishes any deferred rendering.
	Close() error
}

var (
	_ Renderer = &gonumRenderer{}
	_ Renderer = &pyplotRenderer{}
)

// NewRenderer returns the renderer for the named backend, either "gonum" or
// "pyplot".
func NewRenderer(backend string) (Renderer, error) {
	switch backend {
	case "gonum":
		return &gonumRenderer{}, nil
	case "pyplot":
		return newPyplotRenderer(), nil
	}
	return nil, fmt.Errorf(
		"Unrecognized plotting backend '%s'. Only 'gonum' and 'pyplot' "+
			"are supported.", backend,
	)
}

type paletteColor struct {
	hex string
	rgb color.RGBA
}

// The matplotlib "tab10" colors.
var palette = []paletteColor{
	{"#1f77b4", color.RGBA{31, 119, 180, 255}},
	{"#ff7f0e", color.RGBA{255, 127, 14, 255}},
	{"#2ca02c", color.RGBA{44, 160, 44, 255}},
	{"#d62728", color.RGBA{214, 39, 40, 255}},
	{"#9467bd", color.RGBA{148, 103, 189, 255}},
	{"#8c564b", color.RGBA{140, 86, 75, 255}},
	{"#e377c2", color.RGBA{227, 119, 194, 255}},
	{"#7f7f7f", color.RGBA{127, 127, 127, 255}},
}

func seriesColor(i int) paletteColor { return palette[i%len(palette)] }

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// finitePoints returns the (x, y) pairs which can be drawn: both coordinates
// are finite and, for log plots, y is positive.
func finitePoints(xs, ys []float64, logY bool) (outXs, outYs []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}

	outXs, outYs = make([]float64, 0, n), make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if !isFinite(xs[i]) || !isFinite(ys[i]) || (logY && ys[i] <= 0) {
			continue
		}
		outXs = append(outXs, xs[i])
		outYs = append(outYs, ys[i])
	}
	return outXs, outYs
}

func extrema(data []float64, positive bool) (min, max float64, ok bool) {
	min, max = math.Inf(+1), math.Inf(-1)
	for _, x := range data {
		if !isFinite(x) || (positive && x <= 0) {
			continue
		}
		min, max = math.Min(min, x), math.Max(max, x)
		ok = true
	}
	return min, max, ok
}

// findRange pads the range of the finite values in data by margin times its
// width.
func findRange(data []float64, margin float64) Range {
	min, max, ok := extrema(data, false)
	if !ok {
		return Range{0, 1}
	} else if min == max {
		return Range{min - 0.5, max + 0.5}
	}

	m := (max - min) * margin
	return Range{min - m, max + m}
}

// findRangeLinear is findRange, except that ranges of non-negative data never
// extend below zero.
func findRangeLinear(data []float64, margin float64) Range {
	r := findRange(data, margin)
	if min, _, ok := extrema(data, false); ok && min >= 0 && r.Min < 0 {
		r.Min = 0
	}
	return r
}

// findRangeBar is findRange widened to include zero, where bars start.
func findRangeBar(data []float64, margin float64) Range {
	r := findRange(data, margin)
	r.Min = math.Min(r.Min, 0)
	r.Max = math.Max(r.Max, 0)
	return r
}

// findRangeLog returns the smallest range of whole decades which contains all
// the positive values in data.
func findRangeLog(data []float64) Range {
	min, max, ok := extrema(data, true)
	if !ok {
		return Range{1e-10, 1}
	}

	lo, hi := math.Floor(math.Log10(min)), math.Ceil(math.Log10(max))
	if lo == hi {
		hi++
	}
	return Range{math.Pow(10, lo), math.Pow(10, hi)}
}

func (c *Config) xRange(xs []float64) Range {
	if c.XRange != nil {
		return *c.XRange
	}
	return findRange(xs, c.MarginFraction)
}

func (c *Config) yRange(ys []float64, linear func([]float64, float64) Range) Range {
	if c.YRange != nil {
		return *c.YRange
	} else if c.YLogScale {
		return findRangeLog(ys)
	}
	return linear(ys, c.MarginFraction)
}

func flatten(series []Series) []float64 {
	all := []float64{}
	for _, s := range series {
		all = append(all, s.Ys...)
	}
	return all
}
