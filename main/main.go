package main

import (
	"flag"
	"fmt"
	goio "io"
	"log"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"

	"github.com/phil-mansfield/optim1d"
	"github.com/phil-mansfield/optim1d/io"
	"github.com/phil-mansfield/optim1d/render/chart"
)

type ModeFunc func(env *Env) error

var (
	Modes = map[string]ModeFunc{
		"graphing": graphingMain,
		"neville":  nevilleMain,
		"golden":   goldenMain,
	}
	// Modes can also be selected by the week they were set in.
	weekModes = []string{"", "graphing", "neville", "golden"}
	modeDirs  = map[string]string{
		"graphing": "week01", "neville": "week02", "golden": "week03",
	}
	formats = map[string]bool{"text": true, "yaml": true}
)

type options struct {
	configFile, format string
	exampleConfig     bool
	quiet             bool

	// Golden section overrides. Only the ones listed in set are applied.
	a, b, eps float64
	maxIter   int
	stop      string
	set       map[string]bool

	mode string
}

func parseArgs(args []string) (*options, error) {
	opt := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet("optim1d", flag.ContinueOnError)

	fs.StringVar(
		&opt.configFile, "Config", "",
		"Configuration file. Defaults are used for anything it doesn't set.",
	)
	fs.BoolVar(
		&opt.exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)
	fs.StringVar(
		&opt.format, "Format", "text",
		"Format used to print results. Must be 'text' or 'yaml'.",
	)
	fs.BoolVar(
		&opt.quiet, "Quiet", false,
		"Turns off progress messages and timings.",
	)
	fs.Float64Var(&opt.a, "a", 0, "Left end of the golden section bracket.")
	fs.Float64Var(&opt.b, "b", 2, "Right end of the golden section bracket.")
	fs.Float64Var(&opt.eps, "eps", 0.1, "Golden section tolerance.")
	fs.IntVar(&opt.maxIter, "max-iter", 10000, "Golden section iteration cap.")
	fs.StringVar(
		&opt.stop, "stop", "interval",
		"Golden section stopping criterion, 'interval' or 'function'.",
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opt.set[f.Name] = true })

	if !formats[opt.format] {
		return nil, fmt.Errorf(
			"Unrecognized -Format '%s'. Must be 'text' or 'yaml'.", opt.format,
		)
	}

	if opt.exampleConfig {
		return opt, nil
	}

	if fs.NArg() != 1 {
		return nil, fmt.Errorf(
			"Expected exactly one mode argument, but got %d.", fs.NArg(),
		)
	}
	mode, err := getModeName(fs.Arg(0))
	if err != nil {
		return nil, err
	}
	opt.mode = mode

	return opt, nil
}

// getModeName accepts either a mode name or the week number of a mode.
func getModeName(arg string) (string, error) {
	name := strings.ToLower(arg)
	if _, ok := Modes[name]; ok {
		return name, nil
	}

	week, err := cast.ToIntE(arg)
	if err == nil && week >= 1 && week < len(weekModes) {
		return weekModes[week], nil
	}

	names := []string{}
	for name := range Modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return "", fmt.Errorf(
		"Unrecognized mode '%s'. Accepted modes are %s, or weeks 1-%d.",
		arg, strings.Join(names, ", "), len(weekModes)-1,
	)
}

// applyGolden copies golden section flags which were explicitly set on the
// command line into con.
func (opt *options) applyGolden(con *io.GoldenConfig) error {
	if opt.set["a"] {
		con.A = opt.a
	}
	if opt.set["b"] {
		con.B = opt.b
	}
	if opt.set["eps"] {
		con.Eps = opt.eps
	}
	if opt.set["max-iter"] {
		con.MaxIter = opt.maxIter
	}
	if opt.set["stop"] {
		con.Stop = opt.stop
	}
	return con.CheckInit()
}

// Env is everything a mode needs to run.
type Env struct {
	con      *io.Config
	dir      string
	format   string
	out, err goio.Writer
	renderer chart.Renderer
	logger   l.Wrapper
}

func newEnv(con *io.Config, mode, format string) (*Env, error) {
	renderer, err := chart.NewRenderer(con.Plot.Backend)
	if err != nil {
		return nil, err
	}

	logger := newLogger(con.Debug.Verbose, format)
	env := &Env{
		con:      con,
		dir:      path.Join(con.Plot.Output, modeDirs[mode]),
		format:   format,
		out:      os.Stdout,
		err:      os.Stderr,
		renderer: renderer,
		logger:   logger.WithFields(l.StringField("mode", mode)),
	}

	if err := os.MkdirAll(env.dir, 0755); err != nil {
		return nil, err
	}
	return env, nil
}

// newLogger returns the diagnostics logger. The console logger writes to
// stdout, so it is only used when stdout carries plain text.
func newLogger(verbose bool, format string) l.Wrapper {
	if verbose && format == "text" {
		return l.NewConsoleLoggerWrapper()
	}
	return l.NewNopLoggerWrapper()
}

// file returns the path of an output file.
func (env *Env) file(name string) string { return path.Join(env.dir, name) }

// plotConfig returns a chart config with the [Plot] settings applied.
func (env *Env) plotConfig(title, xLabel, yLabel string) *chart.Config {
	c := chart.DefaultConfig()
	c.Title, c.XLabel, c.YLabel = title, xLabel, yLabel
	c.Width, c.Height = env.con.Plot.Width, env.con.Plot.Height
	c.StrokeWidth = env.con.Plot.StrokeWidth
	c.MarginFraction = env.con.Plot.MarginFraction
	return c
}

// step runs a single named step, reporting progress and timing.
func (env *Env) step(name string, f func() error) error {
	env.logger.WithFields(l.StringField("step", name)).Debug("running")

	var err error
	dt := optim1d.Timed(func() { err = f() })
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if env.con.Debug.ShowTimings {
		fmt.Fprintf(env.err, "  %s took %s\n", name, optim1d.FormatDuration(dt))
	}
	return nil
}

func main() {
	opt, err := parseArgs(os.Args[1:])
	if err == flag.ErrHelp {
		return
	} else if err != nil {
		log.Fatalf(
			"%s\nUsage: $ %s [flags] graphing|neville|golden", err.Error(),
			os.Args[0],
		)
	}

	if opt.exampleConfig {
		fmt.Println(io.ExampleConfigFile)
		return
	}

	con, err := io.ReadConfig(opt.configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	if err := opt.applyGolden(&con.Golden); err != nil {
		log.Fatal(err.Error())
	}
	if opt.quiet {
		con.Debug.Quiet()
	}

	env, err := newEnv(con, opt.mode, opt.format)
	if err != nil {
		log.Fatal(err.Error())
	}

	err = Modes[opt.mode](env)
	if closeErr := env.renderer.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Fatal(err.Error())
	}

	env.logger.WithFields(l.StringField("output", env.dir)).Debug("complete")
}
