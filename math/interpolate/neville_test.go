package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-10

func sample(f func(float64) float64, xs ...float64) []Point {
	pts := make([]Point, len(xs))
	for i, x := range xs {
		pts[i] = Point{x, f(x)}
	}
	return pts
}

func TestNevillePolynomialsExact(t *testing.T) {
	table := []struct {
		name string
		f    func(float64) float64
		xs   []float64
	}{
		{"line", func(x float64) float64 { return 2*x + 1 }, []float64{0, 1}},
		{"square", func(x float64) float64 { return x * x }, []float64{-1, 0, 1}},
		{"square extra", func(x float64) float64 { return x * x }, []float64{-1, 0, 1, 2}},
		{"cube", func(x float64) float64 { return x * x * x }, []float64{-1, 0, 1, 2}},
		{"cube shuffled", func(x float64) float64 { return x * x * x }, []float64{2, -1, 1, 0}},
		{"quartic", func(x float64) float64 { return x*x*x*x - 3*x + 2 },
			[]float64{-2, -0.5, 0.3, 1, 1.7}},
	}

	targets := []float64{-1.5, -0.25, 0, 0.5, 1.3, 2.5}
	for _, test := range table {
		pts := sample(test.f, test.xs...)
		for _, x := range targets {
			tr := Neville(pts, x)
			assert.InDelta(t, test.f(x), tr.Value, eps, "%s at %g", test.name, x)
		}
	}
}

func TestNevilleExamples(t *testing.T) {
	square := []Point{{-1, 1}, {0, 0}, {1, 1}, {2, 4}}
	assert.InDelta(t, 0.25, Neville(square, 0.5).Value, eps)

	cube := []Point{{-1, -1}, {0, 0}, {1, 1}, {2, 8}}
	assert.InDelta(t, 0.125, Neville(cube, 0.5).Value, eps)

	known := []Point{{0, 1}, {1, 3}, {2, 7}}
	assert.InDelta(t, 3.0, Neville(known, 1).Value, eps)
}

func TestNevillePyramidShape(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {2, 4}, {3, 9}}
	tr := Neville(pts, 1.5)

	require.Len(t, tr.Pyramid, 4)
	for k, row := range tr.Pyramid {
		assert.Len(t, row, 4-k)
	}
	assert.Equal(t, []float64{0, 1, 4, 9}, tr.Pyramid[0])
	assert.Equal(t, tr.Value, tr.Pyramid[3][0])

	require.Len(t, tr.Deltas, 3)
	for k, d := range tr.Deltas {
		assert.Equal(t, math.Abs(tr.Pyramid[k+1][0]-tr.Pyramid[k][0]), d)
	}
}

func TestNevillePreservesInputOrder(t *testing.T) {
	xs := []float64{0.5, 0.7, 0.3, 0.9}
	ys := []float64{0.58813, 0.72210, 0.39646, 0.89608}
	pts := Points(xs, ys)
	tr := Neville(pts, 0.51)

	assert.Equal(t, ys, tr.Pyramid[0])
	// P(0, 1) is the line through the first two inputs, not the two
	// smallest x values.
	line := ys[0] + (ys[1]-ys[0])/(xs[1]-xs[0])*(0.51-xs[0])
	assert.InDelta(t, line, tr.Pyramid[1][0], eps)
	assert.Equal(t, []float64{0.5, 0.7, 0.3, 0.9}, xs)
}

func TestNevilleSinglePoint(t *testing.T) {
	for _, x := range []float64{-3, 1, 2, 1e9} {
		tr := Neville([]Point{{1, 5}}, x)
		assert.Equal(t, 5.0, tr.Value)
		assert.Equal(t, [][]float64{{5}}, tr.Pyramid)
		assert.Empty(t, tr.Deltas)
	}
}

func TestNevilleEmpty(t *testing.T) {
	tr := Neville(nil, 1)
	assert.True(t, math.IsNaN(tr.Value))
	assert.Empty(t, tr.Pyramid)
	assert.Empty(t, tr.Deltas)
}

func TestNevilleDuplicateXPropagates(t *testing.T) {
	pts := []Point{{1, 2}, {1, 3}, {2, 5}}
	tr := Neville(pts, 1.5)

	require.Len(t, tr.Pyramid, 3)
	assert.True(t, math.IsInf(tr.Pyramid[1][0], 0) || math.IsNaN(tr.Pyramid[1][0]))
	assert.False(t, isFinite(tr.Value))
}

func TestNevilleDeltasConverge(t *testing.T) {
	xs := make([]float64, 11)
	for i := range xs {
		xs[i] = float64(i-5) * 0.5
	}
	pts := sample(func(x float64) float64 { return x * x }, xs...)
	tr := Neville(pts, 0.25)

	last := tr.Deltas[len(tr.Deltas)-1]
	assert.Less(t, last, eps)
}

func TestNevilleInterpolatorMatchesTrace(t *testing.T) {
	xs := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	ys := []float64{10, 5, 3.33333, 2.5, 2}
	nev := NewNeville(xs, ys)
	pts := Points(xs, ys)

	evalXs := Linspace(0.1, 0.5, 17)
	vals := nev.EvalAll(evalXs)
	for i, x := range evalXs {
		assert.Equal(t, Neville(pts, x).Value, vals[i], "x = %g", x)
	}

	out := make([]float64, len(evalXs))
	ret := nev.EvalAll(evalXs, out)
	assert.Equal(t, vals, out)
	assert.Equal(t, out, ret)

	assert.True(t, math.IsNaN(NewNeville(nil, nil).Eval(1)))
	assert.Panics(t, func() { NewNeville([]float64{1, 2}, []float64{1}) })
}

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 1, 5)
	require.Len(t, xs, 5)
	assert.InDelta(t, 0.0, xs[0], 1e-12)
	assert.InDelta(t, 0.5, xs[2], 1e-12)
	assert.Equal(t, 1.0, xs[4])

	assert.Panics(t, func() { Linspace(0, 1, 1) })
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
