// Package operators holds small forward/adjoint pairs used to exercise the
// dot-product harness, and the catalogue of built-in cases.
//
// Each forward operator is written as straight-line code on named
// components; its adjoint is the hand-derived transpose. Comments list each
// component as in (read only) or inout (read and overwritten).
package operators

import (
	"github.com/katalvlaran/adjoint/state"
	"github.com/katalvlaran/adjoint/stencil"
)

// access reads and writes named components, remembering the first error so
// operator bodies stay readable.
type access struct {
	s   *state.State
	err error
}

func (a *access) get(name string) float32 {
	if a.err != nil {
		return 0
	}
	v, err := a.s.AtName(name)
	a.err = err

	return v
}

func (a *access) set(name string, v float32) {
	if a.err != nil {
		return
	}
	a.err = a.s.SetName(name, v)
}

func (a *access) add(name string, delta float32) {
	if a.err != nil {
		return
	}
	a.err = a.s.AddName(name, delta)
}

// Add computes r = a + b. a(in), b(in), r(inout).
func Add(s *state.State) error {
	a := access{s: s}
	a.set("r", a.get("a")+a.get("b"))

	return a.err
}

// AdAdd is the adjoint of Add.
func AdAdd(s *state.State) error {
	a := access{s: s}
	r := a.get("r")
	a.add("a", r)
	a.add("b", r)
	a.set("r", 0)

	return a.err
}

// Axpy computes y = a*x + y. a(in, inactive), x(in), y(inout).
func Axpy(s *state.State) error {
	a := access{s: s}
	a.set("y", a.get("a")*a.get("x")+a.get("y"))

	return a.err
}

// AdAxpy is the adjoint of Axpy: x += a*y, y unchanged.
func AdAxpy(s *state.State) error {
	a := access{s: s}
	a.add("x", a.get("a")*a.get("y"))

	return a.err
}

// LinearWeight computes r = A*x + B*y. r(inout), A(in, inactive),
// x(in), B(in, inactive), y(in).
func LinearWeight(s *state.State) error {
	a := access{s: s}
	a.set("r", a.get("A")*a.get("x")+a.get("B")*a.get("y"))

	return a.err
}

// AdLinearWeight is the adjoint of LinearWeight.
func AdLinearWeight(s *state.State) error {
	a := access{s: s}
	r := a.get("r")
	a.add("x", a.get("A")*r)
	a.add("y", a.get("B")*r)
	a.set("r", 0)

	return a.err
}

// SmoothStencil averages every point's two cyclic neighbours.
func SmoothStencil(s *state.State) error {
	return stencil.Forward(s, stencil.Smooth.Rule())
}

// AdSmoothStencil is the adjoint of SmoothStencil via the general reverse sweep.
func AdSmoothStencil(s *state.State) error {
	return stencil.Adjoint(s, stencil.Smooth.AdjointRule())
}

// AdSmoothStencilSymmetric is the adjoint of SmoothStencil exploiting that
// its circulant matrix is symmetric: the forward sweep is its own transpose.
func AdSmoothStencilSymmetric(s *state.State) error {
	return SmoothStencil(s)
}

// WeightStencil returns the forward sweep out[i] = w.Left*in[i-1] + w.Right*in[i+1].
func WeightStencil(w stencil.Weights) func(*state.State) error {
	return stencil.ForwardOperator(w.Rule())
}

// AdWeightStencil returns the adjoint of WeightStencil(w) via the reverse sweep.
func AdWeightStencil(w stencil.Weights) func(*state.State) error {
	return stencil.AdjointOperator(w.AdjointRule())
}
