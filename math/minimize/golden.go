/*package minimize implements derivative-free bracketing minimization of
unimodal scalar functions.
*/
package minimize

import (
	"fmt"
	"math"
)

// Tau is the golden ratio complement, (sqrt(5) - 1) / 2.
const Tau = 0.6180339887498949

// Func is an objective function.
type Func func(x float64) float64

// Result is the state of a golden section search when it stopped.
type Result struct {
	// Final bracket.
	A, B float64
	// Interior probe points, A < X1 < X2 < B, and their function values.
	X1, X2   float64
	FX1, FX2 float64

	Criterion  Criterion
	Iterations int

	// B - A and |FX1 - FX2|. Both are reported regardless of Criterion.
	IntervalWidth     float64
	FunctionValueDiff float64
}

// Midpoint is the center of the two probe points, the usual estimate of the
// minimizer.
func (r *Result) Midpoint() float64 { return (r.X1 + r.X2) / 2 }

// GoldenSection minimizes f on [a, b] with golden section search.
//
// The bracket shrinks by a factor of Tau every iteration. The search stops
// after the first iteration where crit is satisfied for eps, or after maxIter
// iterations, whichever comes first. Running out of iterations is not an
// error. a < b is assumed and f is assumed to be unimodal on [a, b]; neither
// is checked.
//
// When f(x1) == f(x2) the minimum is assumed to lie in [x1, b].
func GoldenSection(
	f Func, a, b, eps float64, maxIter int, crit Criterion,
) Result {
	x1 := b - Tau*(b-a)
	x2 := a + Tau*(b-a)
	fx1, fx2 := f(x1), f(x2)

	iter := 0
	for iter < maxIter {
		if fx1 < fx2 {
			b = x2
			x2, fx2 = x1, fx1
			x1 = b - Tau*(b-a)
			fx1 = f(x1)
		} else {
			a = x1
			x1, fx1 = x2, fx2
			x2 = a + Tau*(b-a)
			fx2 = f(x2)
		}
		iter++

		if converged(crit, eps, a, b, fx1, fx2) {
			break
		}
	}

	return Result{
		A: a, B: b,
		X1: x1, X2: x2,
		FX1: fx1, FX2: fx2,
		Criterion:         crit,
		Iterations:        iter,
		IntervalWidth:     b - a,
		FunctionValueDiff: math.Abs(fx1 - fx2),
	}
}

func converged(crit Criterion, eps, a, b, fx1, fx2 float64) bool {
	switch crit {
	case IntervalWidth:
		return b-a < eps
	case FunctionValueDiff:
		return math.Abs(fx1-fx2) < eps
	}
	panic(fmt.Sprintf("Unrecognized Criterion %d.", int(crit)))
}
