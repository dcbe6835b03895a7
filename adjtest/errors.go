// SPDX-License-Identifier: MIT

package adjtest

import "errors"

var (
	// ErrAdjointMismatch indicates <Mx, Mx> and <MᵀMx, x> differ by more than
	// the tolerance: the adjoint is not the transpose of the forward operator.
	ErrAdjointMismatch = errors.New("adjtest: adjoint does not match forward operator")

	// ErrOperator wraps an error returned by the forward or adjoint operator.
	ErrOperator = errors.New("adjtest: operator failed")

	// ErrNilOperator indicates a nil forward or adjoint operator.
	ErrNilOperator = errors.New("adjtest: nil operator")

	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("adjtest: tolerance must be a finite value >= 0")

	// ErrBadSampler indicates an empty or inverted sampling range, or a
	// non-positive sample count.
	ErrBadSampler = errors.New("adjtest: invalid sampler")
)
