package chart

import (
	plt "github.com/phil-mansfield/pyplot"
)

// pyplotRenderer accumulates a matplotlib script. Nothing is written to disk
// until Close is called. pyplot keeps global state, so only one
// pyplotRenderer should be in use at a time.
//
// Line widths and font sizes are fixed and legends are not drawn.
type pyplotRenderer struct{}

func newPyplotRenderer() *pyplotRenderer {
	plt.Reset()
	return &pyplotRenderer{}
}

func (r *pyplotRenderer) decorate(x, y Range, c *Config, fname string) {
	plt.Title(c.Title)
	plt.XLabel(c.XLabel, plt.FontSize(16))
	plt.YLabel(c.YLabel, plt.FontSize(16))
	if c.YLogScale {
		plt.YScale("log")
	}
	plt.XLim(x.Min, x.Max)
	plt.YLim(y.Min, y.Max)
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)
}

func (r *pyplotRenderer) Line(fname string, xs, ys []float64, c *Config) error {
	return r.LineWithMarkers(fname, xs, ys, nil, c)
}

func (r *pyplotRenderer) LineWithMarkers(
	fname string, xs, ys []float64, markers []Marker, c *Config,
) error {
	plt.Figure()

	pxs, pys := finitePoints(xs, ys, c.YLogScale)
	plt.Plot(pxs, pys, plt.LW(3), plt.C(seriesColor(0).hex))

	allXs := append([]float64{}, xs...)
	allYs := append([]float64{}, ys...)
	for _, m := range markers {
		if !isFinite(m.X) || !isFinite(m.Y) {
			continue
		}
		plt.Plot([]float64{m.X}, []float64{m.Y}, "or")
		allXs, allYs = append(allXs, m.X), append(allYs, m.Y)
	}

	r.decorate(c.xRange(allXs), c.yRange(allYs, findRange), c, fname)
	return nil
}

func (r *pyplotRenderer) MultiLine(
	fname string, xs []float64, series []Series, c *Config,
) error {
	plt.Figure()
	for i, s := range series {
		pxs, pys := finitePoints(xs, s.Ys, c.YLogScale)
		plt.Plot(pxs, pys, plt.LW(3), plt.C(seriesColor(i).hex))
	}

	r.decorate(c.xRange(xs), c.yRange(flatten(series), findRangeLinear), c, fname)
	return nil
}

// GroupedBar draws the outline of every bar. Category names are not drawn.
func (r *pyplotRenderer) GroupedBar(
	fname string, categories []string, groups []Series, c *Config,
) error {
	plt.Figure()

	y := c.yRange(flatten(groups), findRangeBar)
	base := 0.0
	if c.YLogScale {
		base = y.Min
	}

	width := barFill / float64(len(groups))
	center := float64(len(groups)-1) / 2
	for i, g := range groups {
		col := plt.C(seriesColor(i).hex)
		for j, val := range g.Ys {
			if !isFinite(val) || (c.YLogScale && val <= 0) {
				continue
			}
			x := float64(j) + (float64(i)-center)*width
			x0, x1 := x-width/2, x+width/2
			plt.Plot(
				[]float64{x0, x0, x1, x1}, []float64{base, val, val, base}, col,
			)
		}
	}

	r.decorate(Range{-0.5, float64(len(categories)) - 0.5}, y, c, fname)
	return nil
}

// Close writes out every figure drawn so far by running the generated
// script. pyplot does not report whether the script succeeded, so a failed
// python run is not detected here and Close always returns nil.
func (r *pyplotRenderer) Close() error {
	plt.Execute()
	return nil
}
