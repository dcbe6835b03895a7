package stencil

import "errors"

var (
	// ErrTooSmall indicates a state shorter than MinSize.
	ErrTooSmall = errors.New("stencil: state too small for a two-neighbour stencil")

	// ErrNilRule indicates a nil Rule or AdjointRule.
	ErrNilRule = errors.New("stencil: nil rule")
)
