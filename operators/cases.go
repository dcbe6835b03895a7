package operators

import (
	"github.com/katalvlaran/adjoint/adjtest"
	"github.com/katalvlaran/adjoint/state"
	"github.com/katalvlaran/adjoint/stencil"
)

// Weighted is the asymmetric stencil used by the weighted cases.
var Weighted = stencil.Weights{Left: 0.8, Right: 0.2}

// stencilSample is the anonymous five-point signal shared by the stencil cases.
func stencilSample() *state.State {
	return state.MustNew([]float32{0.2, 0.5, 0.6, 1.3, 2.3}, nil)
}

// Cases returns the built-in catalogue, freshly allocated on every call so
// callers may run cases concurrently.
//
//	name                       active components
//	add                        a b r
//	axpy                       x y        (a held)
//	linear_weight              r x y      (A, B held)
//	smooth_stencil             all five, reverse-sweep adjoint
//	smooth_stencil_symmetric   all five, forward sweep as adjoint
//	weighted_stencil           all five, reverse-sweep adjoint
//	weighted_stencil_transpose all five, transposed-weight forward as adjoint
func Cases() []adjtest.Case {
	return []adjtest.Case{
		{
			Name:    "add",
			Forward: Add,
			Adjoint: AdAdd,
			Sample:  state.MustNew([]float32{2, 3, 0}, []string{"a", "b", "r"}),
		},
		{
			Name:    "axpy",
			Forward: Axpy,
			Adjoint: AdAxpy,
			Sample:  state.MustNew([]float32{1, 2, 5}, []string{"a", "x", "y"}),
			Hold:    []string{"a"},
		},
		{
			Name:    "linear_weight",
			Forward: LinearWeight,
			Adjoint: AdLinearWeight,
			Sample:  state.MustNew([]float32{0, 0.8, 2.3, 0.2, 3.2}, []string{"r", "A", "x", "B", "y"}),
			Hold:    []string{"A", "B"},
		},
		{
			Name:    "smooth_stencil",
			Forward: SmoothStencil,
			Adjoint: AdSmoothStencil,
			Sample:  stencilSample(),
		},
		{
			Name:    "smooth_stencil_symmetric",
			Forward: SmoothStencil,
			Adjoint: AdSmoothStencilSymmetric,
			Sample:  stencilSample(),
		},
		{
			Name:    "weighted_stencil",
			Forward: WeightStencil(Weighted),
			Adjoint: AdWeightStencil(Weighted),
			Sample:  stencilSample(),
		},
		{
			Name:    "weighted_stencil_transpose",
			Forward: WeightStencil(Weighted),
			Adjoint: stencil.TransposeOperator(Weighted),
			Sample:  stencilSample(),
		},
	}
}

// Lookup returns the built-in case called name.
func Lookup(name string) (adjtest.Case, bool) {
	for _, c := range Cases() {
		if c.Name == name {
			return c, true
		}
	}

	return adjtest.Case{}, false
}
