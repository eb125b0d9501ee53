package main

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/optim1d/io"
	"github.com/phil-mansfield/optim1d/math/interpolate"
	"github.com/phil-mansfield/optim1d/render/chart"
)

var (
	tableXs = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	tableYs = []float64{3, 7, 13, 21, 31, 43, 57, 73, 91}

	sinReciprocalRanges = []struct {
		width float64
		fname string
	}{
		{1, "sin_reciprocal_wide.png"},
		{0.1, "sin_reciprocal_medium.png"},
		{0.01, "sin_reciprocal_narrow.png"},
	}
)

const (
	sinReciprocalPoints = 2000
	rationalPoints      = 2000
	rationalClamp       = 10.0
)

func sinReciprocal(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Sin(1 / x)
}

func nonSmooth(x float64) float64 {
	return math.Abs(x) * math.Abs(x-1) * math.Abs(x+1)
}

func piecewise(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x < 1:
		return 1
	default:
		return 0.6
	}
}

// rational is 1/(x^2 - x), clamped to +/- rationalClamp. It is NaN next to
// the poles at 0 and 1 so that the curve is broken there.
func rational(x float64) float64 {
	denom := x*x - x
	if math.Abs(denom) < 1e-12 {
		return math.NaN()
	}
	y := 1 / denom
	return math.Max(-rationalClamp, math.Min(rationalClamp, y))
}

// sample evaluates f at n evenly spaced points on [start, end].
func sample(f func(float64) float64, start, end float64, n int) (xs, ys []float64) {
	xs = interpolate.Linspace(start, end, n)
	ys = make([]float64, n)
	for i := range xs {
		ys[i] = f(xs[i])
	}
	return xs, ys
}

func graphingMain(env *Env) error {
	steps := []struct {
		name string
		f    func(env *Env) error
	}{
		{"demo_line", demoLine},
		{"demo_multi_line", demoMultiLine},
		{"demo_bar", demoBar},
		{"table_data", tableData},
		{"sin_reciprocal", sinReciprocalPlots},
		{"non_smooth", nonSmoothPlot},
		{"piecewise", piecewisePlot},
		{"rational", rationalPlot},
	}

	for _, s := range steps {
		f := s.f
		if err := env.step(s.name, func() error { return f(env) }); err != nil {
			return err
		}
	}
	return nil
}

func demoLine(env *Env) error {
	xs, ys := sample(math.Sin, 0, 2*math.Pi, env.con.Graphing.Points)
	c := env.plotConfig("y = sin(x)", "x", "sin(x)")
	return env.renderer.Line(env.file("demo_line.png"), xs, ys, c)
}

func demoMultiLine(env *Env) error {
	n := env.con.Graphing.Points
	xs, sin := sample(math.Sin, 0, 2*math.Pi, n)
	_, cos := sample(math.Cos, 0, 2*math.Pi, n)
	_, sin2 := sample(func(x float64) float64 { return math.Sin(2 * x) }, 0, 2*math.Pi, n)

	c := env.plotConfig("Trigonometric Functions", "x", "y")
	c.ShowLegend = true
	series := []chart.Series{
		{Label: "sin(x)", Ys: sin},
		{Label: "cos(x)", Ys: cos},
		{Label: "sin(2x)", Ys: sin2},
	}
	return env.renderer.MultiLine(env.file("demo_multi_line.png"), xs, series, c)
}

func demoBar(env *Env) error {
	categories := []string{"A", "B", "C", "D"}
	groups := []chart.Series{
		{Label: "Group 1", Ys: []float64{4, 7, 3, 8}},
		{Label: "Group 2", Ys: []float64{6, 2, 9, 5}},
	}
	c := env.plotConfig("Grouped Bar Chart Demo", "Category", "Value")
	c.ShowLegend = true
	return env.renderer.GroupedBar(env.file("demo_bar.png"), categories, groups, c)
}

func tableData(env *Env) error {
	pts := interpolate.Points(tableXs, tableYs)
	err := io.WriteCSV(env.file("table_data.csv"), []string{"x", "y"}, io.PointRows(pts))
	if err != nil {
		return err
	}

	markers := make([]chart.Marker, len(pts))
	for i := range pts {
		markers[i] = chart.Marker{X: pts[i].X, Y: pts[i].Y}
	}
	c := env.plotConfig("Tutorial Sheet 1: Table Data", "x", "y")
	return env.renderer.LineWithMarkers(
		env.file("table_data.png"), tableXs, tableYs, markers, c,
	)
}

func sinReciprocalPlots(env *Env) error {
	for _, r := range sinReciprocalRanges {
		w := r.width
		xs, ys := sample(sinReciprocal, -w, w, sinReciprocalPoints)
		c := env.plotConfig(
			fmt.Sprintf("sin(1/x) over [%g, %g]", -w, w), "x", "sin(1/x)",
		).WithXRange(-w, w)
		if err := env.renderer.Line(env.file(r.fname), xs, ys, c); err != nil {
			return err
		}
	}
	return nil
}

func nonSmoothPlot(env *Env) error {
	xs, ys := sample(nonSmooth, -1.5, 1.5, env.con.Graphing.Points)
	c := env.plotConfig("|x||x - 1||x + 1|", "x", "y")
	return env.renderer.Line(env.file("non_smooth.png"), xs, ys, c)
}

func piecewisePlot(env *Env) error {
	xs, ys := sample(piecewise, -1.5, 2.5, env.con.Graphing.Points)
	c := env.plotConfig("Piecewise Discontinuous Function", "x", "f(x)")
	return env.renderer.Line(env.file("piecewise.png"), xs, ys, c)
}

func rationalPlot(env *Env) error {
	xs, ys := sample(rational, -1, 2, rationalPoints)
	c := env.plotConfig("1/(x^2 - x)", "x", "y").
		WithYRange(-rationalClamp, rationalClamp)
	return env.renderer.Line(env.file("rational.png"), xs, ys, c)
}
