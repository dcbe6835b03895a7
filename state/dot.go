// SPDX-License-Identifier: MIT

package state

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas32"
)

const ctxDot = "Dot"

// vector exposes the backing buffer as a unit-stride blas32 vector.
// The view aliases s.values; callers must not retain it.
func (s *State) vector() blas32.Vector {
	return blas32.Vector{N: len(s.values), Data: s.values, Inc: 1}
}

// Dot returns the Euclidean inner product <a, b> over every component.
// MAIN DESCRIPTION:
//   - Plain sum of elementwise products; names play no role.
//
// Implementation:
//   - Stage 1: ValidateSameLen (nil and length guards).
//   - Stage 2: blas32.DDot: float32 operands, float64 accumulation.
//
// Notes:
//   - Every component participates, including ones the caller regards as
//     inactive coefficients. Holding those at values that do not disturb
//     the sums is the caller's job.
//
// Complexity:
//   - Time O(N), Space O(1).
func Dot(a, b *State) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, fmt.Errorf("%s: %w", ctxDot, err)
	}

	return blas32.DDot(a.vector(), b.vector()), nil
}

// Dot is the method form of the package-level Dot.
func (s *State) Dot(other *State) (float64, error) {
	return Dot(s, other)
}

// SquaredNorm returns <s, s>.
func (s *State) SquaredNorm() float64 {
	v := s.vector()

	return blas32.DDot(v, v)
}
