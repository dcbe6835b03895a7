// SPDX-License-Identifier: MIT

package adjtest

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/adjoint/state"
)

// Sampler draws random samples shaped like a template state.
//
// Fields:
//   - Min, Max: every free component is drawn uniformly from [Min, Max)
//     (float32 rounding may land on Max).
//   - Hold    : names of components that keep their template value
//     (inactive coefficients such as the A and B of a linear weighting).
//   - Rand    : source of randomness; nil means a fixed seed of 1.
type Sampler struct {
	Min, Max float32
	Hold     []string
	Rand     *rand.Rand
}

// DefaultSampler draws from [0, 1) with a deterministic source seeded by seed.
func DefaultSampler(seed int64) Sampler {
	return Sampler{Min: 0, Max: 1, Rand: rand.New(rand.NewSource(seed))}
}

// Sample returns a clone of template with every component not listed in
// Hold replaced by a random draw. Names are preserved.
//
// Errors: ErrBadSampler for Max <= Min, state.ErrUnknownName for a Hold
// entry the template does not define.
func (sm *Sampler) Sample(template *state.State) (*state.State, error) {
	if err := state.ValidateNotNil(template); err != nil {
		return nil, fmt.Errorf("Sampler.Sample: %w", err)
	}
	if !(sm.Max > sm.Min) {
		return nil, fmt.Errorf("Sampler.Sample: range [%g, %g): %w", sm.Min, sm.Max, ErrBadSampler)
	}
	if sm.Rand == nil {
		sm.Rand = rand.New(rand.NewSource(1))
	}

	held := make(map[int]bool, len(sm.Hold))
	for _, name := range sm.Hold {
		i, err := template.IndexOf(name)
		if err != nil {
			return nil, fmt.Errorf("Sampler.Sample: hold: %w", err)
		}
		held[i] = true
	}

	keep := template.Values()
	out := template.Clone()
	span := sm.Max - sm.Min
	out.Fill(func(i int) float32 {
		if held[i] {
			return keep[i]
		}
		return sm.Min + span*sm.Rand.Float32()
	})

	return out, nil
}

// CheckSamples runs Check on n random samples drawn from template.
// MAIN DESCRIPTION:
//   - Property form of the dot-product test: the operator pair is fixed
//     while the sample values vary.
//
// Behavior highlights:
//   - Stops at the first failing sample; the returned results end with it.
//   - Samples are named "<name>#<k>" in results and logs.
//
// Errors:
//   - ErrBadSampler for n <= 0 or a bad range, plus everything Check returns,
//     wrapped with the failing sample.
//
// Complexity:
//   - n times the cost of Check.
func CheckSamples(name string, forward, adjoint Operator, template *state.State, n int, sm *Sampler, opts *Options) ([]Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("adjtest.CheckSamples(%q): n=%d: %w", name, n, ErrBadSampler)
	}
	if sm == nil {
		d := DefaultSampler(1)
		sm = &d
	}

	results := make([]Result, 0, n)
	for k := 0; k < n; k++ {
		x, err := sm.Sample(template)
		if err != nil {
			return results, fmt.Errorf("adjtest.CheckSamples(%q): %w", name, err)
		}
		res, err := Check(fmt.Sprintf("%s#%d", name, k), forward, adjoint, x, opts)
		if res.Name != "" {
			results = append(results, res)
		}
		if err != nil {
			return results, fmt.Errorf("adjtest.CheckSamples(%q) sample %s: %w", name, x, err)
		}
	}

	return results, nil
}
