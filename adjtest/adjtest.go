// SPDX-License-Identifier: MIT

package adjtest

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/adjoint/state"
)

// Operator is an in-place transformation of a state with no other side
// effects. The same type serves as forward or adjoint depending on the slot
// it is passed in.
type Operator func(s *state.State) error

// Result carries the diagnostics of one dot-product evaluation.
type Result struct {
	Name        string  // human-readable operator name
	MxMx        float64 // <M x, M x>
	MtMxX       float64 // <Mᵀ M x, x>
	Discrepancy float64 // |MxMx - MtMxX| in Epsilon units (see Discrepancy)
	Tolerance   float64 // threshold the discrepancy was compared against
	Passed      bool    // Discrepancy <= Tolerance
}

// String formats r for logs and test output.
func (r Result) String() string {
	verdict := "ok"
	if !r.Passed {
		verdict = "MISMATCH"
	}

	return fmt.Sprintf("%q => <Mx,Mx>=%g <MᵀMx,x>=%g : %.3g eps (tol %g) %s",
		r.Name, r.MxMx, r.MtMxX, r.Discrepancy, r.Tolerance, verdict)
}

// Discrepancy expresses |a-b| in Epsilon units relative to the magnitude of
// the larger inner product. Below magnitude 1 the difference is taken as
// absolute, so two near-zero sums are not amplified.
func Discrepancy(a, b float64) float64 {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) / (Epsilon * scale)
}

// Check runs the dot-product test <M x, M x> = <Mᵀ M x, x> for one sample.
// MAIN DESCRIPTION:
//   - Validates that adjoint is the transpose of forward at sample x.
//
// Implementation:
//   - Stage 1: y := x.Clone() (x is never mutated).
//   - Stage 2: forward(y); dot1 := <y, y>.
//   - Stage 3: adjoint(y); dot2 := <y, x>.
//   - Stage 4: compare Discrepancy(dot1, dot2) with the tolerance.
//
// Behavior highlights:
//   - One deterministic evaluation, no retries.
//   - Every component participates in both sums (see package doc).
//   - On mismatch the returned Result is fully populated alongside the error.
//
// Errors:
//   - state.ErrNilState, ErrNilOperator, ErrBadTolerance.
//   - ErrOperator wrapping the operator's own error.
//   - ErrAdjointMismatch with the name and both inner products.
//
// Complexity:
//   - O(N) plus the cost of the two operators.
func Check(name string, forward, adjoint Operator, x *state.State, opts *Options) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, checkErrorf(name, err)
	}
	if err = state.ValidateNotNil(x); err != nil {
		return Result{}, checkErrorf(name, err)
	}
	if forward == nil || adjoint == nil {
		return Result{}, checkErrorf(name, ErrNilOperator)
	}

	y := x.Clone()

	// M x
	if err = forward(y); err != nil {
		return Result{}, fmt.Errorf("adjtest.Check(%q) forward: %w: %w", name, ErrOperator, err)
	}
	// <M x, M x>
	dot1 := y.SquaredNorm()

	// Mᵀ M x
	if err = adjoint(y); err != nil {
		return Result{}, fmt.Errorf("adjtest.Check(%q) adjoint: %w: %w", name, ErrOperator, err)
	}
	// <Mᵀ M x, x>
	dot2, err := state.Dot(y, x)
	if err != nil {
		// unreachable while Replace keeps N fixed
		return Result{}, checkErrorf(name, err)
	}

	res := Result{
		Name:        name,
		MxMx:        dot1,
		MtMxX:       dot2,
		Discrepancy: Discrepancy(dot1, dot2),
		Tolerance:   o.Tolerance,
	}
	res.Passed = res.Discrepancy <= res.Tolerance

	fields := []zap.Field{
		zap.String("operator", name),
		zap.Int("n", x.Len()),
		zap.Float64("mx_mx", dot1),
		zap.Float64("mt_mx_x", dot2),
		zap.Float64("discrepancy_eps", res.Discrepancy),
		zap.Float64("tolerance_eps", res.Tolerance),
	}
	if !res.Passed {
		o.Logger.Warn("adjoint mismatch", append(fields, zap.Stringer("sample", x))...)

		return res, fmt.Errorf("adjtest.Check(%q): <Mx,Mx>=%g <MᵀMx,x>=%g differ by %.3g eps > %g: %w",
			name, dot1, dot2, res.Discrepancy, res.Tolerance, ErrAdjointMismatch)
	}
	o.Logger.Debug("adjoint check passed", fields...)

	return res, nil
}

// checkErrorf wraps a guard failure with the operator name.
func checkErrorf(name string, err error) error {
	return fmt.Errorf("adjtest.Check(%q): %w", name, err)
}
