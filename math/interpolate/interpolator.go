/*package interpolate implements polynomial interpolation of tabulated 1D
functions with Neville's algorithm.
*/
package interpolate

// Interpolator is a 1D interpolator.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &NevilleInterpolator{}
)

// Point is a single (x, y) sample of a tabulated function.
type Point struct {
	X, Y float64
}

// Points zips xs and ys into a sample set. It panics if the two slices have
// different lengths.
func Points(xs, ys []float64) []Point {
	if len(xs) != len(ys) {
		panic("Length of input slices are not equal.")
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{xs[i], ys[i]}
	}
	return pts
}
