// SPDX-License-Identifier: MIT

// Package stencil - forward and adjoint cyclic sweeps.
//
// Purpose:
//   - Forward: out[i] = rule(in[i-1], in[i+1]) computed from ONE snapshot, then swapped in.
//   - Adjoint: x̄ = Mᵀ ȳ through a zeroed accumulator visited in strict reverse order.
//
// Determinism:
//   - Fixed loop orders; no map iteration; no allocation beyond two O(N) buffers.

package stencil

import (
	"fmt"

	"github.com/katalvlaran/adjoint/state"
)

const (
	ctxForward = "Forward"
	ctxAdjoint = "Adjoint"
)

// sweepErrorf wraps a sentinel with the sweep name.
func sweepErrorf(method string, err error) error {
	return fmt.Errorf("stencil.%s: %w", method, err)
}

// Neighbors returns the cyclic left and right neighbours of i in a domain of n.
// Only the index arithmetic wraps: Neighbors(0, n) = (n-1, 1) and
// Neighbors(n-1, n) = (n-2, 0).
// Complexity: O(1).
func Neighbors(i, n int) (left, right int) {
	left = (i - 1 + n) % n
	right = (i + 1) % n

	return left, right
}

// validate applies the shared guards of both sweeps.
func validate(method string, s *state.State, ruleIsNil bool) error {
	if err := state.ValidateNotNil(s); err != nil {
		return sweepErrorf(method, err)
	}
	if ruleIsNil {
		return sweepErrorf(method, ErrNilRule)
	}
	if s.Len() < MinSize {
		return fmt.Errorf("stencil.%s: N=%d < %d: %w", method, s.Len(), MinSize, ErrTooSmall)
	}

	return nil
}

// Forward replaces s with the stencil image of s.
// MAIN DESCRIPTION:
//   - For every i: out[i] = rule(in[i-1 mod N], in[i+1 mod N]).
//
// Implementation:
//   - Stage 1: validate (nil state, nil rule, N >= MinSize).
//   - Stage 2: snapshot in := s.Values().
//   - Stage 3: compute every out[i] from the snapshot into a fresh buffer.
//   - Stage 4: s.Replace(out) in one step.
//
// Behavior highlights:
//   - No output is ever read back as an input; coupled neighbours are safe.
//   - On error s is untouched.
//
// Errors:
//   - state.ErrNilState, ErrNilRule, ErrTooSmall.
//
// Complexity:
//   - Time O(N), Space O(N).
func Forward(s *state.State, rule Rule) error {
	if err := validate(ctxForward, s, rule == nil); err != nil {
		return err
	}

	in := s.Values()
	n := len(in)
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		l, r := Neighbors(i, n)
		out[i] = rule(in[l], in[r])
	}

	return s.Replace(out)
}

// Adjoint replaces s (holding ȳ, the adjoint of the forward output) with
// x̄ = Mᵀ ȳ, where M is the forward sweep of the matching Rule.
// MAIN DESCRIPTION:
//   - Each centre i hands (dl, dr) = rule(ȳ[i]) to its neighbours i-1 and i+1,
//     after which ȳ[i] is consumed.
//
// Implementation:
//   - Stage 1: validate (nil state, nil rule, N >= MinSize).
//   - Stage 2: seed := s.Values() (ȳ); acc := zeros(N) (x̄).
//   - Stage 3: for i = N-1 down to 0:
//     (dl, dr) = rule(seed[i]); acc[i-1] += dl; acc[i+1] += dr; seed[i] = 0.
//   - Stage 4: s.Replace(acc).
//
// Behavior highlights:
//   - Accumulation is additive: each acc slot receives exactly two
//     contributions, one from each neighbour acting as centre.
//   - The cleared seed slot is never read again, so a centre contributes once.
//   - seed and acc are distinct buffers; clearing a centre never erases a
//     contribution already scattered into acc.
//   - The adjoint of an all-zero state is all-zero.
//
// Errors:
//   - state.ErrNilState, ErrNilRule, ErrTooSmall.
//
// Complexity:
//   - Time O(N), Space O(N).
func Adjoint(s *state.State, rule AdjointRule) error {
	if err := validate(ctxAdjoint, s, rule == nil); err != nil {
		return err
	}

	seed := s.Values()
	n := len(seed)
	acc := make([]float32, n)
	for i := n - 1; i >= 0; i-- {
		l, r := Neighbors(i, n)
		dl, dr := rule(seed[i])
		acc[l] += dl
		acc[r] += dr
		seed[i] = 0 // consumed
	}

	return s.Replace(acc)
}

// ForwardOperator binds rule into an in-place operator.
func ForwardOperator(rule Rule) func(*state.State) error {
	return func(s *state.State) error { return Forward(s, rule) }
}

// AdjointOperator binds rule into an in-place adjoint operator.
func AdjointOperator(rule AdjointRule) func(*state.State) error {
	return func(s *state.State) error { return Adjoint(s, rule) }
}

// TransposeOperator returns the adjoint of w's forward sweep expressed as a
// forward sweep with transposed weights. For symmetric weights this is the
// forward sweep itself.
func TransposeOperator(w Weights) func(*state.State) error {
	return ForwardOperator(w.Transpose().Rule())
}
