package io

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/optim1d/math/interpolate"
	"github.com/phil-mansfield/optim1d/math/minimize"
)

// TraceReport is the structured form of a Neville evaluation.
type TraceReport struct {
	Dataset string      `yaml:"dataset"`
	X       []float64   `yaml:"x"`
	Y       []float64   `yaml:"y"`
	Target  float64     `yaml:"target"`
	Value   float64     `yaml:"value"`
	Pyramid [][]float64 `yaml:"pyramid"`
	Deltas  []float64   `yaml:"deltas"`

	// Monomial coefficients of the interpolating polynomial, constant term
	// first. Left empty when they can't be found.
	Coefficients []float64 `yaml:"coefficients,omitempty"`
}

func NewTraceReport(
	name string, pts []interpolate.Point, target float64, tr *interpolate.Trace,
) *TraceReport {
	rep := &TraceReport{
		Dataset: name,
		X:       make([]float64, len(pts)),
		Y:       make([]float64, len(pts)),
		Target:  target,
		Value:   tr.Value,
		Pyramid: tr.Pyramid,
		Deltas:  tr.Deltas,
	}
	for i, pt := range pts {
		rep.X[i], rep.Y[i] = pt.X, pt.Y
	}
	return rep
}

// ResultReport is the structured form of a golden section search.
type ResultReport struct {
	Function          string  `yaml:"function"`
	Stop              string  `yaml:"stop"`
	Eps               float64 `yaml:"eps"`
	MaxIter           int     `yaml:"max_iter"`
	Iterations        int     `yaml:"iterations"`
	A                 float64 `yaml:"a"`
	B                 float64 `yaml:"b"`
	X1                float64 `yaml:"x1"`
	X2                float64 `yaml:"x2"`
	FX1               float64 `yaml:"fx1"`
	FX2               float64 `yaml:"fx2"`
	IntervalWidth     float64 `yaml:"interval_width"`
	FunctionValueDiff float64 `yaml:"function_value_diff"`
}

func NewResultReport(
	function string, eps float64, maxIter int, r *minimize.Result,
) *ResultReport {
	return &ResultReport{
		Function: function, Stop: r.Criterion.String(),
		Eps: eps, MaxIter: maxIter, Iterations: r.Iterations,
		A: r.A, B: r.B, X1: r.X1, X2: r.X2, FX1: r.FX1, FX2: r.FX2,
		IntervalWidth:     r.IntervalWidth,
		FunctionValueDiff: r.FunctionValueDiff,
	}
}

// Row returns the result fields in the order of ResultHeaders, for WriteCSV.
func (rep *ResultReport) Row() []float64 {
	return []float64{
		rep.A, rep.B, rep.X1, rep.X2, rep.FX1, rep.FX2,
		float64(rep.Iterations), rep.IntervalWidth, rep.FunctionValueDiff,
	}
}

var ResultHeaders = []string{
	"a", "b", "x1", "x2", "fx1", "fx2",
	"iterations", "interval_width", "function_value_diff",
}

// WriteYAML writes v to w as a YAML document.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// PrintTrace writes a human readable description of a Neville evaluation.
func PrintTrace(w io.Writer, rep *TraceReport) {
	fmt.Fprintf(w, "  Interpolating at x = %g\n", rep.Target)
	fmt.Fprintf(w, "  x = %v\n", rep.X)
	fmt.Fprintf(w, "  y = %v\n", rep.Y)
	fmt.Fprintf(w, "  Result: %.6f\n", rep.Value)

	fmt.Fprintln(w, "  Pyramid:")
	for k, row := range rep.Pyramid {
		fmt.Fprintf(w, "    col %d: [%s]\n", k, formatFloats("%.6f", row))
	}
	fmt.Fprintf(w, "  Deltas: [%s]\n", formatFloats("%.6e", rep.Deltas))
	if len(rep.Coefficients) > 0 {
		fmt.Fprintf(
			w, "  Coefficients: [%s]\n", formatFloats("%.6g", rep.Coefficients),
		)
	}
	fmt.Fprintln(w)
}

// PrintResult writes a human readable description of a golden section search.
func PrintResult(w io.Writer, rep *ResultReport, label string) {
	fmt.Fprintln(w, "Golden Section Search Results")
	fmt.Fprintf(w, "  Stopping criterion: %s\n", label)
	fmt.Fprintf(w, "  Iterations:         %d\n", rep.Iterations)
	fmt.Fprintf(w, "  Bracket:            [%.6f, %.6f]\n", rep.A, rep.B)
	fmt.Fprintf(w, "  x1 = %.6f,  f(x1) = %.6f\n", rep.X1, rep.FX1)
	fmt.Fprintf(w, "  x2 = %.6f,  f(x2) = %.6f\n", rep.X2, rep.FX2)
	fmt.Fprintf(w, "  Interval width:     %.6f\n", rep.IntervalWidth)
	fmt.Fprintf(w, "  |f(x1) - f(x2)|:    %.6f\n", rep.FunctionValueDiff)
}

func formatFloats(format string, xs []float64) string {
	strs := make([]string, len(xs))
	for i, x := range xs {
		strs[i] = fmt.Sprintf(format, x)
	}
	return strings.Join(strs, ", ")
}
