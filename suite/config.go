// SPDX-License-Identifier: MIT

package suite

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/adjoint/adjtest"
)

// DefaultSampleTolerance is the threshold for random samples. Two-term
// float32 sweeps round up to twice per output in each direction, which
// random inputs can push past one epsilon unit.
const DefaultSampleTolerance = 2.0

// Config controls a suite run. Zero values in a YAML file keep the defaults
// of the fields they leave out.
//
// Fields:
//   - Tolerance      : literal-sample threshold, epsilon units.
//   - SampleTolerance: random-sample threshold, epsilon units.
//   - Samples        : random samples per case; 0 runs literal samples only.
//   - Seed           : base seed; case i uses Seed+i.
//   - Parallel       : cases in flight at once (>= 1).
//   - Min, Max       : sampling range for free components.
//   - Only           : case names to run; empty runs all.
type Config struct {
	Tolerance       float64  `yaml:"tolerance"`
	SampleTolerance float64  `yaml:"sample_tolerance"`
	Samples         int      `yaml:"samples"`
	Seed            int64    `yaml:"seed"`
	Parallel        int      `yaml:"parallel"`
	Min             float32  `yaml:"min"`
	Max             float32  `yaml:"max"`
	Only            []string `yaml:"only"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Tolerance:       adjtest.DefaultTolerance,
		SampleTolerance: DefaultSampleTolerance,
		Samples:         100,
		Seed:            1,
		Parallel:        4,
		Min:             0,
		Max:             1,
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("suite.LoadConfig(%q): %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("suite.LoadConfig(%q): %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("suite.LoadConfig(%q): %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	switch {
	case !validTolerance(c.Tolerance):
		return fmt.Errorf("tolerance %g: %w", c.Tolerance, ErrBadConfig)
	case !validTolerance(c.SampleTolerance):
		return fmt.Errorf("sample_tolerance %g: %w", c.SampleTolerance, ErrBadConfig)
	case c.Samples < 0:
		return fmt.Errorf("samples %d: %w", c.Samples, ErrBadConfig)
	case c.Parallel < 1:
		return fmt.Errorf("parallel %d: %w", c.Parallel, ErrBadConfig)
	case !(c.Max > c.Min):
		return fmt.Errorf("range [%g, %g): %w", c.Min, c.Max, ErrBadConfig)
	}

	return nil
}

func validTolerance(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
