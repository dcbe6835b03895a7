// Package adjoint is a small toolkit for writing adjoint operators by hand
// and proving them correct with the dot-product test.
//
// 🚀 What is adjoint?
//
//	A float32 state model plus the operators and harness around it:
//		• state:     named or anonymous float32 vectors with float64 dot products
//		• stencil:   cyclic two-neighbour stencils and their reverse-sweep adjoints
//		• adjtest:   the dot-product test <Mx, Mx> = <M^T(Mx), x>, literal and sampled
//		• operators: add, axpy, linear weighting and stencil operators with adjoints
//		• suite:     concurrent, configurable runs over a case catalogue
//		• cmd/adjcheck: command-line front end for the suite
//
// ✨ Why the dot-product test?
//
//   - Independent of the operator: only the forward and the adjoint are called.
//   - Sensitive: a wrong coefficient or a dropped term shows up as millions of
//     epsilon units, while correct pairs stay within a few.
//   - Cheap: two operator applications and two dot products per sample.
//
// Quick example (N = 5, cyclic smoothing out[i] = 0.5*in[i-1] + 0.5*in[i+1]):
//
//	in:   x0  x1  x2  x3  x4
//	out:  y0 = 0.5*x4 + 0.5*x1,  y1 = 0.5*x0 + 0.5*x2,  ...,  y4 = 0.5*x3 + 0.5*x0
//
//	go install github.com/katalvlaran/adjoint/cmd/adjcheck@latest
package adjoint
