// SPDX-License-Identifier: MIT
// Package: state
//
// Purpose:
//  - Single source of truth for the guards shared by Dot, the stencil sweeps and the harness.
//  - Return sentinels wrapped with a validator tag so call sites can wrap again uniformly.

package state

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the state reference is non-nil.
// Returns ErrNilState if s == nil.
func ValidateNotNil(s *State) error {
	if s == nil {
		return validatorErrorf("ValidateNotNil", ErrNilState)
	}

	return nil
}

// ValidateSameLen – Composite: NotNil(a) → NotNil(b) → equal N.
func ValidateSameLen(a, b *State) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameLen", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameLen", err)
	}
	if a.Len() != b.Len() {
		return validatorErrorf("ValidateSameLen", ErrDimensionMismatch)
	}

	return nil
}
