package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRange(t *testing.T) {
	r := findRange([]float64{1, 3, 2}, 0.05)
	assert.InDelta(t, 0.9, r.Min, 1e-12)
	assert.InDelta(t, 3.1, r.Max, 1e-12)

	r = findRange([]float64{math.NaN(), -1, math.Inf(+1), 1}, 0)
	assert.Equal(t, Range{-1, 1}, r)

	assert.Equal(t, Range{0, 1}, findRange(nil, 0.05))
	assert.Equal(t, Range{1.5, 2.5}, findRange([]float64{2, 2}, 0.05))
}

func TestFindRangeLinear(t *testing.T) {
	r := findRangeLinear([]float64{0, 10}, 0.1)
	assert.Equal(t, 0.0, r.Min)
	assert.InDelta(t, 11, r.Max, 1e-12)

	r = findRangeLinear([]float64{-1, 1}, 0.1)
	assert.InDelta(t, -1.2, r.Min, 1e-12)
}

func TestFindRangeBar(t *testing.T) {
	r := findRangeBar([]float64{4, 7, 3, 8}, 0.05)
	assert.Equal(t, 0.0, r.Min)
	assert.InDelta(t, 8.25, r.Max, 1e-12)
}

func TestFindRangeLog(t *testing.T) {
	r := findRangeLog([]float64{0, -3, 2e-5, 0.3, math.NaN()})
	assert.InEpsilon(t, 1e-5, r.Min, 1e-9)
	assert.InEpsilon(t, 1, r.Max, 1e-9)

	assert.Equal(t, Range{1e-10, 1}, findRangeLog([]float64{0, -1}))

	r = findRangeLog([]float64{10, 10})
	assert.InEpsilon(t, 10, r.Min, 1e-9)
	assert.InEpsilon(t, 100, r.Max, 1e-9)
}

func TestFinitePoints(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{1, math.NaN(), -1, math.Inf(-1), 0}

	pxs, pys := finitePoints(xs, ys, false)
	assert.Equal(t, []float64{1, 3, 5}, pxs)
	assert.Equal(t, []float64{1, -1, 0}, pys)

	pxs, pys = finitePoints(xs, ys, true)
	assert.Equal(t, []float64{1}, pxs)
	assert.Equal(t, []float64{1}, pys)

	pxs, _ = finitePoints(xs, ys[:2], false)
	assert.Equal(t, []float64{1}, pxs)
}

func TestConfigRanges(t *testing.T) {
	c := DefaultConfig().WithXRange(-2, 2).WithMarginFraction(0)
	assert.Equal(t, Range{-2, 2}, c.xRange([]float64{0, 100}))
	assert.Equal(t, Range{0, 100}, c.yRange([]float64{0, 100}, findRange))

	c.WithYRange(-10, 10)
	assert.Equal(t, Range{-10, 10}, c.yRange([]float64{0, 100}, findRange))

	c = DefaultConfig()
	c.YLogScale = true
	assert.Equal(t, Range{1e-10, 1}, c.yRange(nil, findRange))
	assert.Equal(t, 5.0, DefaultConfig().WithStrokeWidth(5).StrokeWidth)
}

func TestSeriesColorCycles(t *testing.T) {
	assert.Equal(t, "#1f77b4", seriesColor(0).hex)
	assert.Equal(t, seriesColor(1), seriesColor(1+len(palette)))
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer("gonum")
	require.NoError(t, err)
	assert.IsType(t, &gonumRenderer{}, r)

	_, err = NewRenderer("plotters")
	assert.Error(t, err)
}

func requireFile(t *testing.T, fname string) {
	info, err := os.Stat(fname)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGonumRenderer(t *testing.T) {
	dir := t.TempDir()
	r := &gonumRenderer{}
	c := DefaultConfig()
	c.Width, c.Height = 200, 150

	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 4, 9}

	fname := filepath.Join(dir, "line.png")
	require.NoError(t, r.Line(fname, xs, ys, c))
	requireFile(t, fname)

	fname = filepath.Join(dir, "markers.png")
	markers := []Marker{{1.5, 2.25}, {math.NaN(), 1}}
	require.NoError(t, r.LineWithMarkers(fname, xs, ys, markers, c))
	requireFile(t, fname)

	fname = filepath.Join(dir, "multi.png")
	series := []Series{
		{"a", []float64{1, 1e-3, 1e-6, math.NaN()}},
		{"b", []float64{1, 0.1, 0, 1e-2}},
	}
	logC := DefaultConfig()
	logC.YLogScale = true
	require.NoError(t, r.MultiLine(fname, xs, series, logC))
	requireFile(t, fname)

	fname = filepath.Join(dir, "bars.png")
	groups := []Series{
		{"Group 1", []float64{4, 7, 3, 8}},
		{"Group 2", []float64{6, 2, 9, 5}},
	}
	cats := []string{"A", "B", "C", "D"}
	require.NoError(t, r.GroupedBar(fname, cats, groups, c))
	requireFile(t, fname)

	assert.Error(t, r.GroupedBar(fname, cats[:2], groups, c))
	assert.Error(t, r.GroupedBar(fname, cats, groups, logC))
	assert.NoError(t, r.Close())
}

func TestGonumRendererBadPath(t *testing.T) {
	r := &gonumRenderer{}
	fname := filepath.Join(t.TempDir(), "missing", "line.png")
	assert.Error(t, r.Line(fname, []float64{0, 1}, []float64{0, 1}, DefaultConfig()))
}
