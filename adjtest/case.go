package adjtest

import "github.com/katalvlaran/adjoint/state"

// Case bundles one forward/adjoint pair with its literal sample.
type Case struct {
	Name    string
	Forward Operator
	Adjoint Operator
	Sample  *state.State
	// Hold lists inactive components kept at their Sample value when the
	// case is checked on random samples.
	Hold []string
}

// Check runs the dot-product test on the literal sample.
func (c Case) Check(opts *Options) (Result, error) {
	return Check(c.Name, c.Forward, c.Adjoint, c.Sample, opts)
}

// CheckSamples runs the dot-product test on n random samples shaped like
// the literal one. sm.Hold is replaced by c.Hold.
func (c Case) CheckSamples(n int, sm Sampler, opts *Options) ([]Result, error) {
	sm.Hold = c.Hold

	return CheckSamples(c.Name, c.Forward, c.Adjoint, c.Sample, n, &sm, opts)
}
