package io

import (
	"fmt"
	"sort"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/optim1d/math/minimize"
)

const (
	ExampleConfigFile = `# Every section and every variable in this file is optional. Anything left
# out keeps its default value.

[Graphing]

# Number of samples used to draw each function curve.
Points = 1000

[Dataset "1"]
# Each Dataset section is interpolated with Neville's algorithm at Target. The
# section name is used in output file names. If no Dataset sections are given,
# the two datasets from the week 2 problem sheet are used.

# Samples are listed one value per line. Order matters: the pyramid rows follow
# the order given here.
X = 0.5
X = 0.7
X = 0.3
X = 0.9
Y = 0.58813
Y = 0.72210
Y = 0.39646
Y = 0.89608

Target = 0.51

[Dataset "from_file"]
# Alternatively, samples can be read from a whitespace-separated table. Column
# indices start at zero.
# Input = path/to/samples.txt
# XColumn = 0
# YColumn = 1
X = 0.1
X = 0.2
Y = 10
Y = 5
Target = 0.15

[Golden]
# Golden section search minimizes f(x) = x(x - 1) on [A, B]. All of these can
# also be set with the -a, -b, -eps, -max-iter and -stop flags.
A = 0
B = 2
Eps = 0.1
MaxIter = 10000

# Stop must be one of [ interval | function ]. interval stops once the bracket
# is narrower than Eps, function stops once |f(x1) - f(x2)| < Eps.
Stop = interval

[Plot]
# Directory that plots and tables are written to. A subdirectory is made for
# each week.
Output = output

# Backend must be one of [ gonum | pyplot ]. gonum writes PNG files directly.
# pyplot generates a matplotlib script and runs it, so it needs a working
# python installation.
Backend = gonum

Width = 800
Height = 600
StrokeWidth = 3
MarginFraction = 0.05

[Debug]
# Print progress messages.
Verbose = true
# Print how long each step took.
ShowTimings = true`
)

type GraphingConfig struct {
	Points int
}

func (con *GraphingConfig) CheckInit() error {
	if con.Points < 2 {
		return fmt.Errorf(
			"[Graphing] Points must be at least 2, but is %d.", con.Points,
		)
	}
	return nil
}

type DatasetConfig struct {
	// Required
	X, Y   []float64
	Target float64

	// Optional
	Input            string
	XColumn, YColumn int

	name string
}

func (con *DatasetConfig) CheckInit(name string) error {
	if con.Input != "" {
		if len(con.X) != 0 || len(con.Y) != 0 {
			return fmt.Errorf(
				"Dataset '%s' sets both Input and X/Y values.", name,
			)
		} else if con.XColumn < 0 || con.YColumn < 0 {
			return fmt.Errorf(
				"Dataset '%s' has negative column indices %d and %d.",
				name, con.XColumn, con.YColumn,
			)
		} else if con.XColumn == con.YColumn {
			return fmt.Errorf(
				"Dataset '%s' reads x and y from the same column, %d.",
				name, con.XColumn,
			)
		}
		con.name = name
		return nil
	}

	if len(con.X) == 0 {
		return fmt.Errorf("Need to specify at least one X value for Dataset '%s'.", name)
	} else if len(con.X) != len(con.Y) {
		return fmt.Errorf(
			"Dataset '%s' has %d X values but %d Y values.",
			name, len(con.X), len(con.Y),
		)
	}

	con.name = name
	return nil
}

// Name returns the section name of the dataset. It is set by CheckInit.
func (con *DatasetConfig) Name() string { return con.name }

type GoldenConfig struct {
	A, B, Eps float64
	MaxIter   int
	Stop      string
}

func (con *GoldenConfig) CheckInit() error {
	if !(con.A < con.B) {
		return fmt.Errorf(
			"[Golden] A must be less than B, but A = %g and B = %g.",
			con.A, con.B,
		)
	} else if con.MaxIter < 0 {
		return fmt.Errorf(
			"[Golden] MaxIter must be non-negative, but is %d.", con.MaxIter,
		)
	}

	_, err := minimize.ParseCriterion(con.Stop)
	return err
}

// Criterion returns the parsed Stop value. It must only be called after
// CheckInit has succeeded.
func (con *GoldenConfig) Criterion() minimize.Criterion {
	crit, err := minimize.ParseCriterion(con.Stop)
	if err != nil {
		panic(err.Error())
	}
	return crit
}

type PlotConfig struct {
	Output, Backend string
	Width, Height   int
	StrokeWidth     float64
	MarginFraction  float64
}

var backends = map[string]bool{"gonum": true, "pyplot": true}

func (con *PlotConfig) CheckInit() error {
	if con.Output == "" {
		return fmt.Errorf("[Plot] Output must be set.")
	} else if !backends[con.Backend] {
		return fmt.Errorf(
			"[Plot] Backend must be one of 'gonum' or 'pyplot', but is '%s'.",
			con.Backend,
		)
	} else if con.Width <= 0 || con.Height <= 0 {
		return fmt.Errorf(
			"[Plot] Width and Height must be positive, but are %d and %d.",
			con.Width, con.Height,
		)
	} else if con.StrokeWidth <= 0 {
		return fmt.Errorf(
			"[Plot] StrokeWidth must be positive, but is %g.", con.StrokeWidth,
		)
	} else if con.MarginFraction < 0 {
		return fmt.Errorf(
			"[Plot] MarginFraction must be non-negative, but is %g.",
			con.MarginFraction,
		)
	}
	return nil
}

type DebugConfig struct {
	Verbose, ShowTimings bool
}

// Quiet turns off all debugging output.
func (con *DebugConfig) Quiet() {
	con.Verbose, con.ShowTimings = false, false
}

type Config struct {
	Graphing GraphingConfig
	Dataset  map[string]*DatasetConfig
	Golden   GoldenConfig
	Plot     PlotConfig
	Debug    DebugConfig
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	con := &Config{}
	con.Graphing.Points = 1000
	con.Golden = GoldenConfig{
		A: 0, B: 2, Eps: 0.1, MaxIter: 10000, Stop: "interval",
	}
	con.Plot = PlotConfig{
		Output: "output", Backend: "gonum",
		Width: 800, Height: 600, StrokeWidth: 3, MarginFraction: 0.05,
	}
	con.Debug = DebugConfig{Verbose: true, ShowTimings: true}
	return con
}

// DefaultDatasets are the two problem sheet datasets.
func DefaultDatasets() map[string]*DatasetConfig {
	return map[string]*DatasetConfig{
		"1": {
			X:      []float64{0.5, 0.7, 0.3, 0.9},
			Y:      []float64{0.58813, 0.72210, 0.39646, 0.89608},
			Target: 0.51,
		},
		"2": {
			X:      []float64{0.1, 0.2, 0.3, 0.4, 0.5},
			Y:      []float64{10.0, 5.0, 3.33333, 2.5, 2.0},
			Target: 0.15,
		},
	}
}

// ReadConfig reads the config file fname on top of DefaultConfig and checks
// the result. An empty fname gives the defaults.
func ReadConfig(fname string) (*Config, error) {
	con := DefaultConfig()
	if fname != "" {
		if err := gcfg.ReadFileInto(con, fname); err != nil {
			return nil, err
		}
	}
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

// ParseConfig is identical to ReadConfig, but reads the config from a string.
func ParseConfig(str string) (*Config, error) {
	con := DefaultConfig()
	if err := gcfg.ReadStringInto(con, str); err != nil {
		return nil, err
	}
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

func (con *Config) CheckInit() error {
	if len(con.Dataset) == 0 {
		con.Dataset = DefaultDatasets()
	}

	if err := con.Graphing.CheckInit(); err != nil {
		return err
	}
	for _, name := range con.DatasetNames() {
		if err := con.Dataset[name].CheckInit(name); err != nil {
			return err
		}
	}
	if err := con.Golden.CheckInit(); err != nil {
		return err
	}
	return con.Plot.CheckInit()
}

// DatasetNames returns the names of all datasets in sorted order.
func (con *Config) DatasetNames() []string {
	names := make([]string, 0, len(con.Dataset))
	for name := range con.Dataset {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
