// SPDX-License-Identifier: MIT

package stencil

// MinSize is the smallest domain whose positions have two distinct neighbours.
const MinSize = 3

// Rule computes one forward output from the left and right neighbour values.
// It must be pure: no access to anything but its two arguments.
type Rule func(left, right float32) float32

// AdjointRule maps the adjoint value sitting at a centre to the
// contributions owed to its left and right neighbours.
type AdjointRule func(center float32) (left, right float32)

// Weights describes the linear rule out[i] = Left*in[i-1] + Right*in[i+1].
type Weights struct {
	Left  float32 // weight of the left (i-1) neighbour
	Right float32 // weight of the right (i+1) neighbour
}

// Smooth is the averaging stencil 0.5*l + 0.5*r.
var Smooth = Weights{Left: 0.5, Right: 0.5}

// Rule returns the forward rule for w.
func (w Weights) Rule() Rule {
	return func(left, right float32) float32 {
		return w.Left*left + w.Right*right
	}
}

// AdjointRule returns the scatter for w: the left neighbour receives
// Left*center and the right neighbour Right*center.
func (w Weights) AdjointRule() AdjointRule {
	return func(center float32) (float32, float32) {
		return w.Left * center, w.Right * center
	}
}

// Transpose returns the weights whose forward sweep equals the adjoint sweep
// of w. Transposing the circulant swaps the roles of the two neighbours.
func (w Weights) Transpose() Weights {
	return Weights{Left: w.Right, Right: w.Left}
}

// Symmetric reports whether the implied circulant matrix equals its transpose,
// in which case the forward sweep is its own adjoint.
func (w Weights) Symmetric() bool {
	return w.Left == w.Right
}
