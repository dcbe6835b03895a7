// SPDX-License-Identifier: MIT

// Command adjcheck runs the dot-product test over the built-in operator
// catalogue and exits non-zero when any adjoint disagrees with its forward.
//
//	adjcheck list
//	adjcheck run --samples 500 --only smooth_stencil,weighted_stencil
//	adjcheck run --config adjcheck.yaml --verbose
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/adjoint/adjtest"
	"github.com/katalvlaran/adjoint/operators"
	"github.com/katalvlaran/adjoint/suite"
)

// errFailed marks a run whose report was printed but did not pass.
var errFailed = errors.New("adjcheck: adjoint check failed")

// cli holds flag values and the logger shared by the subcommands.
type cli struct {
	verbose    bool
	configPath string
	tolerance  float64
	sampleTol  float64
	samples    int
	seed       int64
	parallel   int
	only       []string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "adjcheck",
		Short: "Dot-product test for hand-written adjoint operators",
		Long: `adjcheck verifies that each adjoint operator in the catalogue is the
transpose of its forward operator: for a sample x it compares <Mx, Mx>
with <M^T(Mx), x> in float32 epsilon units.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			c.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log every individual check")

	run := &cobra.Command{
		Use:   "run",
		Short: "Run the dot-product test over the catalogue",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	defaults := suite.DefaultConfig()
	run.Flags().StringVarP(&c.configPath, "config", "c", "", "YAML file with suite settings")
	run.Flags().Float64Var(&c.tolerance, "tolerance", defaults.Tolerance, "Literal-sample threshold (epsilon units)")
	run.Flags().Float64Var(&c.sampleTol, "sample-tolerance", defaults.SampleTolerance, "Random-sample threshold (epsilon units)")
	run.Flags().IntVarP(&c.samples, "samples", "n", defaults.Samples, "Random samples per case (0 for literal only)")
	run.Flags().Int64Var(&c.seed, "seed", defaults.Seed, "Base random seed")
	run.Flags().IntVarP(&c.parallel, "parallel", "p", defaults.Parallel, "Cases checked concurrently")
	run.Flags().StringSliceVar(&c.only, "only", nil, "Comma-separated case names to run")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the built-in cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCases(cmd.OutOrStdout(), operators.Cases())
		},
	}

	root.AddCommand(run, list)

	return root
}

// config resolves the suite settings: defaults, then the file, then any
// flag given explicitly.
func (c *cli) config(cmd *cobra.Command) (suite.Config, error) {
	cfg := suite.DefaultConfig()
	if c.configPath != "" {
		var err error
		if cfg, err = suite.LoadConfig(c.configPath); err != nil {
			return suite.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("tolerance") {
		cfg.Tolerance = c.tolerance
	}
	if flags.Changed("sample-tolerance") {
		cfg.SampleTolerance = c.sampleTol
	}
	if flags.Changed("samples") {
		cfg.Samples = c.samples
	}
	if flags.Changed("seed") {
		cfg.Seed = c.seed
	}
	if flags.Changed("parallel") {
		cfg.Parallel = c.parallel
	}
	if flags.Changed("only") {
		cfg.Only = c.only
	}

	return cfg, cfg.Validate()
}

func (c *cli) run(cmd *cobra.Command, args []string) error {
	cfg, err := c.config(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c.logger.Debug("starting run",
		zap.Int("samples", cfg.Samples),
		zap.Int64("seed", cfg.Seed),
		zap.Strings("only", cfg.Only))

	reports, err := suite.Run(ctx, operators.Cases(), cfg, c.logger)
	if reports != nil {
		printReports(cmd.OutOrStdout(), reports)
	}
	switch {
	case errors.Is(err, suite.ErrCaseFailed):
		c.logger.Debug("run failed", zap.Error(err))
		return errFailed
	case err != nil:
		return err
	}

	return nil
}

func printCases(w io.Writer, cases []adjtest.Case) error {
	for _, c := range cases {
		if _, err := fmt.Fprintf(w, "%-28s n=%d hold=%v\n", c.Name, c.Sample.Len(), c.Hold); err != nil {
			return err
		}
	}
	return nil
}

func printReports(w io.Writer, reports []suite.Report) {
	passed := 0
	for _, r := range reports {
		if r.Case == "" {
			continue // never started
		}
		status := "ok"
		if r.Passed() {
			passed++
		} else {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%-4s %-28s literal=%.3f worst=%.3f samples=%d\n",
			status, r.Case, r.Literal.Discrepancy, r.Worst, len(r.Samples))
		if r.Err != nil {
			fmt.Fprintf(w, "     %v\n", r.Err)
		}
	}
	fmt.Fprintf(w, "%d/%d cases passed\n", passed, len(reports))
}

func main() {
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
