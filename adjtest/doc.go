// Package adjtest checks hand-written adjoints with the dot-product test.
//
// 🚀 What is the dot-product test?
//
//	For a linear operator M and a sample x, set y = M·x. If A really is Mᵀ,
//
//	  <y, y> = <M·x, M·x> = <Mᵀ·M·x, x> = <A·y, x>
//
//	up to floating-point rounding. A wrong adjoint almost never satisfies
//	this identity by accident, so one evaluation per sample is a cheap and
//	general correctness check.
//
// ✨ Key features:
//   - Check: one deterministic evaluation; the sample x is never mutated
//   - discrepancy reported in float32 epsilon units (Tolerance, default 1)
//   - CheckSamples: the same identity over many random samples (property test)
//   - structured zap logging of both inner products and the discrepancy
//
// ⚙️ Usage:
//
//	res, err := adjtest.Check("axpy", axpy, adAxpy, x, nil)
//	if errors.Is(err, adjtest.ErrAdjointMismatch) {
//	  // res.MxMx and res.MtMxX tell how far apart the two sides are
//	}
//
// Active and inactive components:
//
//	Both inner products run over EVERY component of the state. Components
//	the operator only reads as fixed coefficients (inactive variables) must
//	pass through the operator pair unchanged, or be held at zero, otherwise
//	they distort the sums. The harness does not know which components are
//	active; that is the caller's contract. Sampler.Hold keeps chosen
//	components at their template values while the others are randomised.
package adjtest
