package interpolate

import (
	"math"
)

// Trace is the full record of a single Neville evaluation.
type Trace struct {
	// Value is the interpolated value at the target point.
	Value float64
	// Pyramid[k][i] is P(i, i+k) evaluated at the target point. Row 0 holds
	// the input y values and each following row is one element shorter.
	Pyramid [][]float64
	// Deltas[k] = |Pyramid[k+1][0] - Pyramid[k][0]|.
	Deltas []float64
}

// Neville evaluates the unique polynomial passing through pts at x and returns
// every intermediate approximation used along the way.
//
// pts is read in the given order and is not modified. Repeated x values give
// zero denominators, and the resulting Infs and NaNs are carried through the
// rest of the pyramid. An empty sample set gives a NaN value and an empty
// pyramid.
func Neville(pts []Point, x float64) *Trace {
	n := len(pts)
	if n == 0 {
		return &Trace{
			Value:   math.NaN(),
			Pyramid: [][]float64{},
			Deltas:  []float64{},
		}
	}

	pyramid := make([][]float64, n)
	pyramid[0] = make([]float64, n)
	for i, pt := range pts {
		pyramid[0][i] = pt.Y
	}

	for k := 1; k < n; k++ {
		prev := pyramid[k-1]
		row := make([]float64, n-k)
		for i := range row {
			row[i] = nevilleStep(pts[i].X, pts[i+k].X, prev[i], prev[i+1], x)
		}
		pyramid[k] = row
	}

	deltas := make([]float64, n-1)
	for k := range deltas {
		deltas[k] = math.Abs(pyramid[k+1][0] - pyramid[k][0])
	}

	return &Trace{
		Value:   pyramid[n-1][0],
		Pyramid: pyramid,
		Deltas:  deltas,
	}
}

// nevilleStep combines P(i, j-1) = left and P(i+1, j) = right into P(i, j).
func nevilleStep(xi, xj, left, right, x float64) float64 {
	return ((x-xi)*right - (x-xj)*left) / (xj - xi)
}

// NevilleInterpolator evaluates the interpolating polynomial of a fixed sample
// set at arbitrary points without keeping the pyramid around.
type NevilleInterpolator struct {
	xs, ys []float64
	buf    []float64
}

// NewNeville creates an interpolator for the points (xs[i], ys[i]). It panics
// if the two slices have different lengths. xs and ys are copied.
//
// A NevilleInterpolator reuses an internal buffer and is not safe for use by
// multiple goroutines at once.
func NewNeville(xs, ys []float64) *NevilleInterpolator {
	if len(xs) != len(ys) {
		panic("Length of input slices are not equal.")
	}
	nev := &NevilleInterpolator{
		xs:  make([]float64, len(xs)),
		ys:  make([]float64, len(ys)),
		buf: make([]float64, len(ys)),
	}
	copy(nev.xs, xs)
	copy(nev.ys, ys)
	return nev
}

// Eval returns the interpolated value at x. The result is identical to
// Neville(pts, x).Value.
func (nev *NevilleInterpolator) Eval(x float64) float64 {
	n := len(nev.ys)
	if n == 0 {
		return math.NaN()
	}

	p := nev.buf
	copy(p, nev.ys)
	// After pass k, p[i] holds P(i, i+k).
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			p[i] = nevilleStep(nev.xs[i], nev.xs[i+k], p[i], p[i+1], x)
		}
	}
	return p[0]
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (nev *NevilleInterpolator) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = nev.Eval(x)
	}
	return out[0]
}
