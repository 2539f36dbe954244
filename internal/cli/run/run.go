// Package run implements the benchmark command.
package run

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aryankumar/execbench/internal/bench"
	"github.com/aryankumar/execbench/internal/config"
	"github.com/aryankumar/execbench/internal/executor"
	"github.com/aryankumar/execbench/internal/output"
	"github.com/aryankumar/execbench/internal/saxpy"
	"github.com/aryankumar/execbench/internal/util"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark SAXPY through every executor operation",
		Long: `Run the SAXPY benchmark.

Each selected case computes z = a*x + y once and is checked against a reference
result. A case whose output differs is reported as failed and the command exits
with a non-zero status. Cases that pass are warmed up and then timed for the
requested number of trials; bandwidth is 3*n*4 bytes per trial.`,
		Example: `  # Run every case with the configured defaults
  execbench run

  # Small problem, few trials, JSON output
  execbench run --size 4096 --trials 10 -o json

  # Compare the bulk operations with the plain loop
  execbench run --cases for_loop,bulk_sync_execute,bulk_async_execute --wide`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd)
		},
	}

	configureFlags(cmd.Flags())

	return cmd
}

// configureFlags sets up the run flags on the provided flag set
func configureFlags(flags *pflag.FlagSet) {
	// Problem flags
	flags.IntP("size", "n", config.DefaultSize, "number of elements in each vector")
	flags.Float64("a", config.DefaultA, "scalar multiplier a")
	flags.Float64("x", config.DefaultXFill, "value every element of x is filled with")
	flags.Float64("y", config.DefaultYFill, "value every element of y is filled with")

	// Run flags
	flags.IntP("trials", "t", config.DefaultTrials, "number of timed trials per case")
	flags.Int("warmup", config.DefaultWarmup, "number of untimed passes before timing")
	flags.StringSlice("cases", nil, fmt.Sprintf("cases to run (comma-separated, empty means all: %s)", strings.Join(saxpy.Names(), ", ")))

	// Output flags
	flags.Bool("wide", false, "show min, max, p50 and relative bandwidth columns")
	flags.String("baseline", saxpy.NameForLoop, "case the relative bandwidth column is computed against")
}

// applyFlagOverrides applies command-line flag values to the config, overriding
// values from the config file
func applyFlagOverrides(cfg *config.BenchConfig, fs *pflag.FlagSet) error {
	if fs.Changed("size") {
		val, err := fs.GetInt("size")
		if err != nil {
			return err
		}
		cfg.Problem.Size = val
	}
	if fs.Changed("a") {
		val, err := fs.GetFloat64("a")
		if err != nil {
			return err
		}
		cfg.Problem.A = val
	}
	if fs.Changed("x") {
		val, err := fs.GetFloat64("x")
		if err != nil {
			return err
		}
		cfg.Problem.XFill = val
	}
	if fs.Changed("y") {
		val, err := fs.GetFloat64("y")
		if err != nil {
			return err
		}
		cfg.Problem.YFill = val
	}
	if fs.Changed("trials") {
		val, err := fs.GetInt("trials")
		if err != nil {
			return err
		}
		cfg.Run.Trials = val
	}
	if fs.Changed("warmup") {
		val, err := fs.GetInt("warmup")
		if err != nil {
			return err
		}
		cfg.Run.Warmup = val
	}
	if fs.Changed("cases") {
		val, err := fs.GetStringSlice("cases")
		if err != nil {
			return err
		}
		cfg.Run.Cases = val
	}
	return nil
}

func runBench(cmd *cobra.Command) error {
	logger := slog.Default()

	manager := config.NewManager(viper.GetString("config"))
	cfg, err := manager.Load()
	if err != nil {
		return err
	}
	logger.Debug("loaded benchmark config", "path", manager.Path())

	if err := applyFlagOverrides(cfg, cmd.Flags()); err != nil {
		return err
	}
	if format := viper.GetString("output"); format != "" {
		cfg.Defaults.OutputFormat = format
	}
	if viper.GetBool("no-color") {
		cfg.Defaults.NoColor = true
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	kernels, err := saxpy.Select(cfg.Run.Cases)
	if err != nil {
		return err
	}

	problem, err := saxpy.NewProblem(cfg.Problem.Size,
		float32(cfg.Problem.A), float32(cfg.Problem.XFill), float32(cfg.Problem.YFill))
	if err != nil {
		return err
	}

	runner := bench.NewRunner(bench.Options{
		Trials:        cfg.Run.Trials,
		Warmup:        cfg.Run.Warmup,
		BytesPerTrial: saxpy.BytesMoved(problem.Len()),
		ProblemSize:   problem.Len(),
	}, logger)

	report := runner.Run(cmd.Context(), buildCases(problem, kernels))

	wide, _ := cmd.Flags().GetBool("wide")
	baseline, _ := cmd.Flags().GetString("baseline")

	formatter := output.NewFormatter(
		output.Format(cfg.Defaults.OutputFormat),
		output.WithNoColor(cfg.Defaults.NoColor),
		output.WithNoHeaders(viper.GetBool("no-headers")),
		output.WithWide(wide),
		output.WithBaseline(baseline),
	)
	if err := formatter.FormatReport(cmd.OutOrStdout(), report); err != nil {
		return util.WrapErrorf(err, "failed to format report")
	}

	return report.Err()
}

// buildCases turns kernels into benchmark cases sharing one problem
// Every case starts its verification pass from a zeroed output vector
func buildCases(problem *saxpy.Problem, kernels []saxpy.NamedKernel) []bench.Case {
	var ex executor.Inline
	reference := saxpy.Reference(problem)

	cases := make([]bench.Case, 0, len(kernels))
	for _, k := range kernels {
		cases = append(cases, bench.Case{
			Name:  k.Name,
			Setup: problem.Reset,
			Run: func() error {
				return k.Kernel(ex, problem)
			},
			Verify: func() error {
				return saxpy.Verify(problem.Z, reference)
			},
		})
	}
	return cases
}
