package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/sgostarter/i/l"

	"github.com/phil-mansfield/optim1d/io"
	"github.com/phil-mansfield/optim1d/math/interpolate"
	"github.com/phil-mansfield/optim1d/render/chart"
)

func nevilleMain(env *Env) error {
	names := env.con.DatasetNames()
	reports := []*io.TraceReport{}

	for _, name := range names {
		var rep *io.TraceReport
		err := env.step("neville_"+name, func() error {
			var err error
			rep, err = nevilleDataset(env, name)
			return err
		})
		if err != nil {
			return err
		}
		reports = append(reports, rep)
	}

	if env.format == "yaml" {
		if err := io.WriteYAML(env.out, reports); err != nil {
			return err
		}
	}

	return env.step("neville_deltas", func() error {
		return deltaPlot(env, reports)
	})
}

// nevilleDataset interpolates a single dataset at its target and writes its
// plots and table.
func nevilleDataset(env *Env, name string) (*io.TraceReport, error) {
	ds := env.con.Dataset[name]
	pts, err := ds.Samples()
	if err != nil {
		return nil, err
	}

	tr := interpolate.Neville(pts, ds.Target)
	rep := io.NewTraceReport(name, pts, ds.Target, tr)
	if poly, err := interpolate.Coefficients(pts); err != nil {
		env.logger.WithFields(l.ErrorField(err)).Error("no coefficients")
	} else {
		rep.Coefficients = poly
	}
	if env.format == "text" {
		fmt.Fprintf(env.out, "  Dataset %s:\n", name)
		io.PrintTrace(env.out, rep)
	}

	if len(pts) == 0 {
		env.logger.Error("dataset has no samples, skipping its plots")
		return rep, nil
	}

	withTarget := sortedByX(append(
		append([]interpolate.Point{}, pts...),
		interpolate.Point{X: ds.Target, Y: tr.Value},
	))
	fname := env.file(fmt.Sprintf("neville_%s.csv", name))
	if err := io.WriteCSV(fname, []string{"x", "y"}, io.PointRows(withTarget)); err != nil {
		return nil, err
	}

	marker := []chart.Marker{{X: ds.Target, Y: tr.Value}}
	xs, ys := splitPoints(withTarget)
	c := env.plotConfig(
		fmt.Sprintf("Dataset %s: Neville Interpolation", name), "x", "y",
	)
	err = env.renderer.LineWithMarkers(
		env.file(fmt.Sprintf("neville_dataset%s.png", name)), xs, ys, marker, c,
	)
	if err != nil {
		return nil, err
	}

	return rep, curvePlot(env, name, pts, marker)
}

// curvePlot draws the full interpolating polynomial across the span of the
// samples and the target.
func curvePlot(
	env *Env, name string, pts []interpolate.Point, marker []chart.Marker,
) error {
	xs, ys := splitPoints(pts)
	nev := interpolate.NewNeville(xs, ys)

	lo, hi := marker[0].X, marker[0].X
	for _, x := range xs {
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}

	curveXs := interpolate.Linspace(lo, hi, env.con.Graphing.Points)
	curveYs := nev.EvalAll(curveXs)

	markers := make([]chart.Marker, 0, len(pts)+1)
	for _, pt := range pts {
		markers = append(markers, chart.Marker{X: pt.X, Y: pt.Y})
	}
	markers = append(markers, marker...)

	c := env.plotConfig(
		fmt.Sprintf("Dataset %s: Interpolating Polynomial", name), "x", "y",
	)
	return env.renderer.LineWithMarkers(
		env.file(fmt.Sprintf("neville_curve%s.png", name)),
		curveXs, curveYs, markers, c,
	)
}

// deltaPlot draws the delta series of every dataset on a log axis. Shorter
// series are padded with NaN, which is never drawn.
func deltaPlot(env *Env, reports []*io.TraceReport) error {
	maxLen := 0
	for _, rep := range reports {
		if len(rep.Deltas) > maxLen {
			maxLen = len(rep.Deltas)
		}
	}
	if maxLen == 0 {
		env.logger.Error("no dataset has more than one sample, skipping delta plot")
		return nil
	}

	xs := make([]float64, maxLen)
	for i := range xs {
		xs[i] = float64(i + 1)
	}

	series := make([]chart.Series, len(reports))
	for i, rep := range reports {
		ys := make([]float64, maxLen)
		for j := range ys {
			if j < len(rep.Deltas) {
				ys[j] = rep.Deltas[j]
			} else {
				ys[j] = math.NaN()
			}
		}
		series[i] = chart.Series{Label: "Dataset " + rep.Dataset, Ys: ys}
	}

	c := env.plotConfig("Neville Delta Convergence", "Iteration", "|delta|")
	c.YLogScale, c.ShowLegend = true, true
	return env.renderer.MultiLine(env.file("neville_deltas.png"), xs, series, c)
}

func sortedByX(pts []interpolate.Point) []interpolate.Point {
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	return pts
}

func splitPoints(pts []interpolate.Point) (xs, ys []float64) {
	xs, ys = make([]float64, len(pts)), make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
	}
	return xs, ys
}
