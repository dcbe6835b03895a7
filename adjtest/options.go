// Package adjtest defines the options of the dot-product test.
package adjtest

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Epsilon is the float32 machine epsilon (2^-23): the gap between 1 and the
// next representable float32. Discrepancies are reported in multiples of it.
const Epsilon = 1.0 / (1 << 23)

// DefaultTolerance is the pass threshold in Epsilon units.
const DefaultTolerance = 1.0

// Options configures Check and CheckSamples.
//
// Fields:
//   - Tolerance: largest accepted discrepancy, in Epsilon units.
//   - Logger   : receives one entry per evaluation; nil means no logging.
type Options struct {
	Tolerance float64
	Logger    *zap.Logger
}

// DefaultOptions returns Tolerance=1 and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		Logger:    zap.NewNop(),
	}
}

// resolve fills defaults for a nil *Options and validates the rest.
func resolve(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return Options{}, fmt.Errorf("tolerance %g: %w", o.Tolerance, ErrBadTolerance)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o, nil
}
