package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/optim1d/math/minimize"
)

func TestDefaultConfig(t *testing.T) {
	con, err := ReadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 1000, con.Graphing.Points)
	assert.Equal(t, []string{"1", "2"}, con.DatasetNames())
	assert.Equal(t, "1", con.Dataset["1"].Name())
	assert.Equal(t, 0.15, con.Dataset["2"].Target)
	assert.Equal(t, minimize.IntervalWidth, con.Golden.Criterion())
	assert.Equal(t, 10000, con.Golden.MaxIter)
	assert.Equal(t, "gonum", con.Plot.Backend)
	assert.True(t, con.Debug.Verbose)
	assert.True(t, con.Debug.ShowTimings)
}

func TestExampleConfigFile(t *testing.T) {
	con, err := ParseConfig(ExampleConfigFile)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "from_file"}, con.DatasetNames())
	ds := con.Dataset["1"]
	assert.Equal(t, []float64{0.5, 0.7, 0.3, 0.9}, ds.X)
	assert.Equal(t, []float64{0.58813, 0.72210, 0.39646, 0.89608}, ds.Y)
	assert.Equal(t, 0.51, ds.Target)
	assert.Equal(t, 2.0, con.Golden.B)
	assert.Equal(t, 800, con.Plot.Width)
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	con, err := ParseConfig(`
[Golden]
Eps = 1e-8
Stop = function

[Debug]
Verbose = false
`)
	require.NoError(t, err)

	assert.Equal(t, 1e-8, con.Golden.Eps)
	assert.Equal(t, 0.0, con.Golden.A)
	assert.Equal(t, 2.0, con.Golden.B)
	assert.Equal(t, minimize.FunctionValueDiff, con.Golden.Criterion())
	assert.False(t, con.Debug.Verbose)
	assert.True(t, con.Debug.ShowTimings)
	assert.Len(t, con.Dataset, 2)
}

func TestUserDatasetsReplaceDefaults(t *testing.T) {
	con, err := ParseConfig(`
[Dataset "square"]
X = -1
X = 0
X = 1
Y = 1
Y = 0
Y = 1
Target = 0.5
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"square"}, con.DatasetNames())

	pts, err := con.Dataset["square"].Samples()
	require.NoError(t, err)
	assert.Len(t, pts, 3)
	assert.Equal(t, -1.0, pts[0].X)
}

func TestInvalidConfigs(t *testing.T) {
	table := []struct {
		name, str string
	}{
		{"unknown criterion", "[Golden]\nStop = width"},
		{"reversed bracket", "[Golden]\nA = 3\nB = 1"},
		{"negative iterations", "[Golden]\nMaxIter = -1"},
		{"few points", "[Graphing]\nPoints = 1"},
		{"backend", "[Plot]\nBackend = plotters"},
		{"size", "[Plot]\nWidth = 0"},
		{"mismatched samples", "[Dataset \"a\"]\nX = 1\nX = 2\nY = 1"},
		{"no samples", "[Dataset \"a\"]\nTarget = 1"},
		{"input and values", "[Dataset \"a\"]\nInput = f.txt\nX = 1\nY = 1"},
		{"same columns", "[Dataset \"a\"]\nInput = f.txt\nXColumn = 1\nYColumn = 1"},
		{"unknown section", "[Week4]\nA = 1"},
		{"dataset name", "[Dataset \"a\"]\nName = b\nX = 1\nY = 1"},
	}

	for _, test := range table {
		_, err := ParseConfig(test.str)
		assert.Error(t, err, test.name)
	}
}

func TestReadConfigFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "optim1d.cfg")
	require.NoError(t, os.WriteFile(fname, []byte("[Golden]\nMaxIter = 5\n"), 0644))

	con, err := ReadConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, 5, con.Golden.MaxIter)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.cfg"))
	assert.Error(t, err)
}

func TestDebugQuiet(t *testing.T) {
	con := DefaultConfig()
	con.Debug.Quiet()
	assert.False(t, con.Debug.Verbose)
	assert.False(t, con.Debug.ShowTimings)
}
