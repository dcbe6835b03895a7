// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const ctxCirculant = "Circulant"

// Circulant materialises the n×n matrix M implied by the forward sweep of w:
// M[i][i-1 mod n] = w.Left and M[i][i+1 mod n] = w.Right.
//
// It exists for verification and debugging: the sweeps never build it.
// Mᵀ (m.T()) is what Adjoint applies.
//
// Errors: ErrTooSmall when n < MinSize.
// Complexity: O(n²) memory, O(n) writes.
func Circulant(n int, w Weights) (*mat.Dense, error) {
	if n < MinSize {
		return nil, fmt.Errorf("stencil.%s: n=%d < %d: %w", ctxCirculant, n, MinSize, ErrTooSmall)
	}

	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		l, r := Neighbors(i, n)
		m.Set(i, l, float64(w.Left))
		m.Set(i, r, float64(w.Right))
	}

	return m, nil
}
