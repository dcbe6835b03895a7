// SPDX-License-Identifier: MIT

package suite

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/adjoint/adjtest"
)

// Report is the outcome of one case.
type Report struct {
	Case    string           // case name
	Literal adjtest.Result   // check on the literal sample
	Samples []adjtest.Result // checks on random samples, in draw order
	Worst   float64          // largest discrepancy seen, epsilon units
	Err     error            // nil when every check passed
}

// Passed reports whether every check of the case passed.
func (r Report) Passed() bool { return r.Err == nil }

// Select returns the cases named in only, in catalogue order, with their
// catalogue positions. An empty only selects everything.
func Select(cases []adjtest.Case, only []string) ([]adjtest.Case, []int, error) {
	if len(only) == 0 {
		idx := make([]int, len(cases))
		for i := range idx {
			idx[i] = i
		}
		return cases, idx, nil
	}

	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}

	var (
		out []adjtest.Case
		idx []int
	)
	for i, c := range cases {
		if want[c.Name] {
			out = append(out, c)
			idx = append(idx, i)
			delete(want, c.Name)
		}
	}
	for _, name := range only {
		if want[name] {
			return nil, nil, fmt.Errorf("suite.Select(%q): %w", name, ErrUnknownCase)
		}
	}

	return out, idx, nil
}

// Run executes the selected cases concurrently.
// MAIN DESCRIPTION:
//   - Each case: literal check at cfg.Tolerance, then cfg.Samples random
//     checks at cfg.SampleTolerance.
//
// Implementation:
//   - Stage 1: validate cfg; select cases.
//   - Stage 2: errgroup bounded by cfg.Parallel; each goroutine owns its
//     report slot and its random source (Seed + catalogue position).
//   - Stage 3: join case failures into one error.
//
// Behavior highlights:
//   - A failing case never cancels the others.
//   - Cancelling ctx stops cases that have not started; Run then returns ctx.Err().
//   - Reports come back in catalogue order.
//
// Errors:
//   - ErrBadConfig, ErrUnknownCase, context errors, and ErrCaseFailed joined
//     with each case's own error.
func Run(ctx context.Context, cases []adjtest.Case, cfg Config, logger *zap.Logger) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("suite.Run: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	selected, positions, err := Select(cases, cfg.Only)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, c := range selected {
		i, c := i, c
		seed := cfg.Seed + int64(positions[i])
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = runCase(c, cfg, seed, logger)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return reports, fmt.Errorf("suite.Run: %w", err)
	}

	var failed []error
	for _, r := range reports {
		if r.Err != nil {
			failed = append(failed, r.Err)
		}
	}
	if len(failed) > 0 {
		return reports, fmt.Errorf("suite.Run: %d of %d cases: %w", len(failed), len(reports), errors.Join(failed...))
	}

	return reports, nil
}

// runCase performs the literal and sampled checks of one case.
func runCase(c adjtest.Case, cfg Config, seed int64, logger *zap.Logger) Report {
	log := logger.With(zap.String("case", c.Name), zap.Int64("seed", seed))
	rep := Report{Case: c.Name}

	literal := adjtest.Options{Tolerance: cfg.Tolerance, Logger: log}
	res, err := c.Check(&literal)
	rep.Literal = res
	rep.Worst = res.Discrepancy
	if err != nil {
		rep.Err = fmt.Errorf("%q literal: %w: %w", c.Name, ErrCaseFailed, err)
		log.Error("case failed", zap.Error(err))
		return rep
	}

	if cfg.Samples > 0 {
		sampled := adjtest.Options{Tolerance: cfg.SampleTolerance, Logger: log}
		sm := adjtest.Sampler{Min: cfg.Min, Max: cfg.Max, Rand: rand.New(rand.NewSource(seed))}
		rep.Samples, err = c.CheckSamples(cfg.Samples, sm, &sampled)
		for _, r := range rep.Samples {
			rep.Worst = math.Max(rep.Worst, r.Discrepancy)
		}
		if err != nil {
			rep.Err = fmt.Errorf("%q sampled: %w: %w", c.Name, ErrCaseFailed, err)
			log.Error("case failed", zap.Error(err))
			return rep
		}
	}

	log.Info("case passed",
		zap.Float64("literal_eps", rep.Literal.Discrepancy),
		zap.Int("samples", len(rep.Samples)),
		zap.Float64("worst_eps", rep.Worst))

	return rep
}
