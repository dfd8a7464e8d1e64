// Command cutstock is the command-line front end of the solver library.
//
// Usage:
//
//	cutstock gen   --stock 100 --items 20 --min-length 5 --max-length 40 \
//	               --min-demand 1 --max-demand 50 --seed 42 --out inst.csv
//	cutstock solve --in inst.csv --global-budget 10m --out plan.csv
//
// Every flag may also be supplied through the environment (prefix CUTSTOCK_,
// dashes replaced by underscores: CUTSTOCK_GLOBAL_BUDGET=5m) or through an
// optional config file passed via --config. Precedence: flag > env > file >
// default.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/cutstock/colgen"
	"github.com/katalvlaran/cutstock/cutio"
	"github.com/katalvlaran/cutstock/instgen"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "cutstock:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand: want gen or solve")
	}

	switch args[0] {
	case "gen":
		return runGen(args[1:])
	case "solve":
		return runSolve(args[1:])
	case "-h", "--help", "help":
		fmt.Println("usage: cutstock <gen|solve> [flags]")

		return nil
	default:
		return fmt.Errorf("unknown subcommand %q: want gen or solve", args[0])
	}
}

// newViper binds a parsed flag set to env vars and an optional config file,
// giving the flag > env > file > default precedence.
func newViper(fs *pflag.FlagSet, configFile string) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("CUTSTOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

// openOut resolves "" or "-" to stdout, anything else to a created file.
func openOut(path string) (*os.File, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { f.Close() }, nil
}

func runGen(args []string) error {
	fs := pflag.NewFlagSet("gen", pflag.ContinueOnError)
	fs.Int("stock", 100, "stock unit length")
	fs.Int("items", 10, "number of item types")
	fs.Int("min-length", 1, "minimum item length (inclusive)")
	fs.Int("max-length", 50, "maximum item length (inclusive)")
	fs.Int("min-demand", 1, "minimum item demand (inclusive)")
	fs.Int("max-demand", 100, "maximum item demand (inclusive)")
	fs.Int64("seed", 1, "PRNG seed; equal seeds generate equal instances")
	fs.String("out", "-", "output instance file (- for stdout)")
	fs.String("config", "", "optional config file")
	fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	configFile, _ := fs.GetString("config")
	v, err := newViper(fs, configFile)
	if err != nil {
		return err
	}

	inst, err := instgen.Generate(instgen.Config{
		StockLength: v.GetInt("stock"),
		Items:       v.GetInt("items"),
		MinLength:   v.GetInt("min-length"),
		MaxLength:   v.GetInt("max-length"),
		MinDemand:   v.GetInt("min-demand"),
		MaxDemand:   v.GetInt("max-demand"),
		Seed:        v.GetInt64("seed"),
	})
	if err != nil {
		return err
	}

	out, done, err := openOut(v.GetString("out"))
	if err != nil {
		return err
	}
	defer done()

	return cutio.WriteInstance(out, inst)
}

func runSolve(args []string) error {
	fs := pflag.NewFlagSet("solve", pflag.ContinueOnError)
	fs.String("in", "", "instance CSV file (required)")
	fs.String("out", "-", "output plan file (- for stdout)")
	fs.Duration("global-budget", 10*time.Minute, "wall-clock budget for the whole run")
	fs.Duration("master-budget", 10*time.Second, "budget per master LP solve")
	fs.Duration("pricing-budget", time.Minute, "budget per pricing solve")
	fs.Int("max-iterations", 0, "iteration cap (0 = unlimited)")
	fs.String("config", "", "optional config file")
	fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	configFile, _ := fs.GetString("config")
	v, err := newViper(fs, configFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(v.GetBool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	inPath := v.GetString("in")
	if inPath == "" {
		return fmt.Errorf("solve: --in is required")
	}
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	inst, err := cutio.ReadInstance(in)
	in.Close()
	if err != nil {
		return err
	}

	res, err := colgen.Solve(context.Background(), inst,
		colgen.WithGlobalBudget(v.GetDuration("global-budget")),
		colgen.WithMasterBudget(v.GetDuration("master-budget")),
		colgen.WithPricingBudget(v.GetDuration("pricing-budget")),
		colgen.WithMaxIterations(v.GetInt("max-iterations")),
		colgen.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Info("solve finished",
		zap.Stringer("state", res.State),
		zap.Int("iterations", res.Iterations),
		zap.Float64("objective", res.Objective),
		zap.Int("patterns", res.Patterns.Len()),
		zap.Duration("elapsed", res.Elapsed),
		zap.Bool("proven_optimal", res.ProvenOptimal()),
	)

	out, done, err := openOut(v.GetString("out"))
	if err != nil {
		return err
	}
	defer done()

	return cutio.WritePlan(out, inst, res.Patterns, res.Usage)
}
