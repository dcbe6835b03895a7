package suite

import "errors"

var (
	// ErrBadConfig indicates a configuration value outside its domain.
	ErrBadConfig = errors.New("suite: invalid configuration")

	// ErrUnknownCase indicates Only names a case the catalogue lacks.
	ErrUnknownCase = errors.New("suite: unknown case")

	// ErrCaseFailed marks a case whose literal or sampled check failed.
	ErrCaseFailed = errors.New("suite: case failed")
)
