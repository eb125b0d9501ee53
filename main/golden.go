package main

import (
	"fmt"

	"github.com/sgostarter/i/l"

	"github.com/phil-mansfield/optim1d/io"
	"github.com/phil-mansfield/optim1d/math/interpolate"
	"github.com/phil-mansfield/optim1d/math/minimize"
	"github.com/phil-mansfield/optim1d/render/chart"
)

const objectiveName = "x(x - 1)"

func objective(x float64) float64 { return x * (x - 1) }

func goldenMain(env *Env) error {
	g := &env.con.Golden
	crit := g.Criterion()
	label := crit.Label(g.Eps)

	if env.format == "text" {
		fmt.Fprintln(env.out, "Week 3: Golden Section Search")
		fmt.Fprintf(env.out, "  f(x) = %s on [%g, %g]\n", objectiveName, g.A, g.B)
		fmt.Fprintf(env.out, "  Stopping criterion: %s\n", label)
		fmt.Fprintf(env.out, "  Max iterations: %d\n", g.MaxIter)
		fmt.Fprintln(env.out)
	}

	var r minimize.Result
	err := env.step("golden_section", func() error {
		r = minimize.GoldenSection(objective, g.A, g.B, g.Eps, g.MaxIter, crit)
		return nil
	})
	if err != nil {
		return err
	}

	rep := io.NewResultReport(objectiveName, g.Eps, g.MaxIter, &r)
	if env.format == "text" {
		io.PrintResult(env.out, rep, label)
	} else if err := io.WriteYAML(env.out, rep); err != nil {
		return err
	}

	metric := r.IntervalWidth
	if crit == minimize.FunctionValueDiff {
		metric = r.FunctionValueDiff
	}
	if !(metric < g.Eps) {
		env.logger.WithFields(l.IntField("iterations", r.Iterations)).
			Error("stopping criterion not met before the iteration cap")
	}

	return env.step("golden_output", func() error {
		err := io.WriteCSV(
			env.file("golden.csv"), io.ResultHeaders, [][]float64{rep.Row()},
		)
		if err != nil {
			return err
		}
		return goldenPlot(env, &r)
	})
}

// goldenPlot draws the objective over the starting bracket with the final
// probe points marked.
func goldenPlot(env *Env, r *minimize.Result) error {
	g := &env.con.Golden
	xs := interpolate.Linspace(g.A, g.B, env.con.Graphing.Points)
	ys := make([]float64, len(xs))
	for i := range xs {
		ys[i] = objective(xs[i])
	}

	markers := []chart.Marker{{X: r.X1, Y: r.FX1}, {X: r.X2, Y: r.FX2}}
	c := env.plotConfig(
		fmt.Sprintf("Golden Section Search: f(x) = %s", objectiveName), "x", "f(x)",
	)
	return env.renderer.LineWithMarkers(env.file("golden.png"), xs, ys, markers, c)
}
