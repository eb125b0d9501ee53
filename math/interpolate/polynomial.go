package interpolate

import (
	"fmt"

	"github.com/phil-mansfield/optim1d/math/mat"
)

// Polynomial holds monomial coefficients, constant term first.
type Polynomial []float64

var _ Interpolator = Polynomial{}

// Coefficients returns the unique polynomial of degree len(pts) - 1 passing
// through every sample. It fails when two samples share an x value, since no
// such polynomial exists.
func Coefficients(pts []Point) (Polynomial, error) {
	if len(pts) == 0 {
		return Polynomial{}, nil
	}

	xs, ys := make([]float64, len(pts)), make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
	}

	cs, ok := mat.Vandermonde(xs).SolveVector(ys)
	if !ok {
		return nil, fmt.Errorf(
			"Cannot fit a polynomial to %d samples with repeated x values.",
			len(pts),
		)
	}
	return Polynomial(cs), nil
}

// Eval evaluates the polynomial at x with Horner's rule.
func (p Polynomial) Eval(x float64) float64 {
	sum := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		sum = sum*x + p[i]
	}
	return sum
}

// EvalAll evaluates the polynomial at every element of xs.
func (p Polynomial) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = p.Eval(x)
	}
	return out[0]
}
