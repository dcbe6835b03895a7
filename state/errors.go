// SPDX-License-Identifier: MIT
// Package state: sentinel error set.
// Every accessor returns one of these sentinels, wrapped with the method name
// and the offending index or name. Match them with errors.Is.

package state

import "errors"

var (
	// ErrEmptyState is returned when a State would hold zero values.
	ErrEmptyState = errors.New("state: state must hold at least one value")

	// ErrOutOfRange indicates a positional index outside 0..N-1.
	ErrOutOfRange = errors.New("state: index out of range")

	// ErrUnknownName indicates a name that is not mapped, or a name lookup
	// on an anonymous state.
	ErrUnknownName = errors.New("state: unknown name")

	// ErrDuplicateName indicates two positions were given the same name.
	ErrDuplicateName = errors.New("state: duplicate name")

	// ErrEmptyName indicates an empty string was supplied as a name.
	ErrEmptyName = errors.New("state: empty name")

	// ErrNameCount indicates the number of names differs from the number of values.
	ErrNameCount = errors.New("state: names and values differ in length")

	// ErrDimensionMismatch indicates two states (or a state and a buffer)
	// of different length were combined.
	ErrDimensionMismatch = errors.New("state: dimension mismatch")

	// ErrNilState indicates a nil *State argument.
	ErrNilState = errors.New("state: nil state")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange
