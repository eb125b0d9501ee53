package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	markerRadius = 8
	// Fraction of each category's width covered by bars.
	barFill = 0.8
)

var markerColor = color.RGBA{255, 0, 0, 255}

// gonumRenderer draws plots immediately with gonum/plot.
type gonumRenderer struct{}

// pixels converts a pixel count to a length at the 96 DPI gonum uses for
// raster output.
func pixels(n int) vg.Length { return vg.Length(n) * vg.Inch / 96 }

func newGonumPlot(c *Config) *plot.Plot {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())
	return p
}

func (r *gonumRenderer) save(p *plot.Plot, x, y Range, c *Config, fname string) error {
	p.X.Min, p.X.Max = x.Min, x.Max
	p.Y.Min, p.Y.Max = y.Min, y.Max
	if c.YLogScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	if err := p.Save(pixels(c.Width), pixels(c.Height), fname); err != nil {
		return fmt.Errorf("Could not save plot '%s': %w", fname, err)
	}
	return nil
}

func newGonumLine(
	xs, ys []float64, col color.Color, c *Config,
) (*plotter.Line, error) {
	xs, ys = finitePoints(xs, ys, c.YLogScale)
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(c.StrokeWidth)
	line.LineStyle.Color = col
	return line, nil
}

func (r *gonumRenderer) Line(fname string, xs, ys []float64, c *Config) error {
	return r.LineWithMarkers(fname, xs, ys, nil, c)
}

func (r *gonumRenderer) LineWithMarkers(
	fname string, xs, ys []float64, markers []Marker, c *Config,
) error {
	p := newGonumPlot(c)

	line, err := newGonumLine(xs, ys, seriesColor(0).rgb, c)
	if err != nil {
		return err
	}
	p.Add(line)

	allXs := append([]float64{}, xs...)
	allYs := append([]float64{}, ys...)
	if len(markers) > 0 {
		xys := make(plotter.XYs, 0, len(markers))
		for _, m := range markers {
			if !isFinite(m.X) || !isFinite(m.Y) {
				continue
			}
			xys = append(xys, plotter.XY{X: m.X, Y: m.Y})
			allXs, allYs = append(allXs, m.X), append(allYs, m.Y)
		}

		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(markerRadius)
		sc.GlyphStyle.Color = markerColor
		p.Add(sc)
	}

	return r.save(p, c.xRange(allXs), c.yRange(allYs, findRange), c, fname)
}

func (r *gonumRenderer) MultiLine(
	fname string, xs []float64, series []Series, c *Config,
) error {
	p := newGonumPlot(c)
	p.Legend.Top = true

	for i, s := range series {
		line, err := newGonumLine(xs, s.Ys, seriesColor(i).rgb, c)
		if err != nil {
			return fmt.Errorf("Series '%s': %w", s.Label, err)
		}
		p.Add(line)
		if c.ShowLegend {
			p.Legend.Add(s.Label, line)
		}
	}

	return r.save(
		p, c.xRange(xs), c.yRange(flatten(series), findRangeLinear), c, fname,
	)
}

func (r *gonumRenderer) GroupedBar(
	fname string, categories []string, groups []Series, c *Config,
) error {
	if c.YLogScale {
		return fmt.Errorf(
			"The gonum backend cannot draw log-scale bar charts ('%s').", fname,
		)
	} else if len(groups) == 0 {
		return fmt.Errorf("No groups given for bar chart '%s'.", fname)
	}

	p := newGonumPlot(c)
	p.Legend.Top = true

	perCategory := pixels(c.Width) * barFill / vg.Length(len(categories))
	width := perCategory * barFill / vg.Length(len(groups))
	center := float64(len(groups)-1) / 2

	for i, g := range groups {
		if len(g.Ys) != len(categories) {
			return fmt.Errorf(
				"Group '%s' has %d values, but there are %d categories.",
				g.Label, len(g.Ys), len(categories),
			)
		}

		bars, err := plotter.NewBarChart(plotter.Values(g.Ys), width)
		if err != nil {
			return fmt.Errorf("Group '%s': %w", g.Label, err)
		}
		bars.Color = seriesColor(i).rgb
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(i)-center) * width
		p.Add(bars)
		if c.ShowLegend {
			p.Legend.Add(g.Label, bars)
		}
	}
	p.NominalX(categories...)

	x := Range{-0.5, float64(len(categories)) - 0.5}
	return r.save(p, x, c.yRange(flatten(groups), findRangeBar), c, fname)
}

func (r *gonumRenderer) Close() error { return nil }
