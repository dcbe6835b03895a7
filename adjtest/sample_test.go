package adjtest_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjoint/adjtest"
	"github.com/katalvlaran/adjoint/state"
	"github.com/katalvlaran/adjoint/stencil"
)

// TestSamplerHold ensures held components keep their template values.
func TestSamplerHold(t *testing.T) {
	tpl := state.MustNew([]float32{0, 0.8, 2.3, 0.2, 3.2}, []string{"r", "A", "x", "B", "y"})
	sm := adjtest.Sampler{Min: 10, Max: 20, Hold: []string{"A", "B"}, Rand: rand.New(rand.NewSource(5))}

	for k := 0; k < 50; k++ {
		x, err := sm.Sample(tpl)
		require.NoError(t, err)
		require.Equal(t, tpl.Names(), x.Names())

		v := x.Values()
		assert.Equal(t, float32(0.8), v[1])
		assert.Equal(t, float32(0.2), v[3])
		for _, i := range []int{0, 2, 4} {
			assert.GreaterOrEqual(t, v[i], float32(10))
			assert.LessOrEqual(t, v[i], float32(20))
		}
	}
	require.Equal(t, []float32{0, 0.8, 2.3, 0.2, 3.2}, tpl.Values()) // template untouched
}

// TestSamplerDeterministic ensures equal seeds give equal samples.
func TestSamplerDeterministic(t *testing.T) {
	tpl := state.MustNew([]float32{0, 0, 0, 0}, nil)
	a, b := adjtest.DefaultSampler(9), adjtest.DefaultSampler(9)

	for k := 0; k < 10; k++ {
		xa, err := a.Sample(tpl)
		require.NoError(t, err)
		xb, err := b.Sample(tpl)
		require.NoError(t, err)
		require.Equal(t, xa.Values(), xb.Values())
	}
}

// TestSamplerErrors covers bad ranges, unknown holds and nil templates.
func TestSamplerErrors(t *testing.T) {
	t.Parallel()

	anon := state.MustNew([]float32{1, 2, 3}, nil)

	bad := adjtest.Sampler{Min: 1, Max: 1}
	_, err := bad.Sample(anon)
	require.ErrorIs(t, err, adjtest.ErrBadSampler)

	hold := adjtest.Sampler{Min: 0, Max: 1, Hold: []string{"a"}}
	_, err = hold.Sample(anon)
	require.ErrorIs(t, err, state.ErrUnknownName)

	var zero adjtest.Sampler
	_, err = zero.Sample(nil)
	require.ErrorIs(t, err, state.ErrNilState)
}

// TestCheckSamples runs the property check over many random samples.
func TestCheckSamples(t *testing.T) {
	t.Parallel()

	w := stencil.Weights{Left: 0.8, Right: 0.2}
	tpl, err := state.Zeros(8)
	require.NoError(t, err)
	sm := adjtest.DefaultSampler(1)
	opts := adjtest.Options{Tolerance: 2}

	results, err := adjtest.CheckSamples("weighted", stencil.ForwardOperator(w.Rule()),
		stencil.AdjointOperator(w.AdjointRule()), tpl, 500, &sm, &opts)
	require.NoError(t, err)
	require.Len(t, results, 500)
	assert.Equal(t, "weighted#0", results[0].Name)
	assert.Equal(t, "weighted#499", results[499].Name)
}

// TestCheckSamplesStopsAtFirstFailure ensures a wrong adjoint ends the run.
func TestCheckSamplesStopsAtFirstFailure(t *testing.T) {
	w := stencil.Weights{Left: 0.8, Right: 0.2}
	tpl := state.MustNew([]float32{1, 1, 1, 1, 1}, nil)

	results, err := adjtest.CheckSamples("self", stencil.ForwardOperator(w.Rule()),
		stencil.ForwardOperator(w.Rule()), tpl, 100, nil, nil)
	require.ErrorIs(t, err, adjtest.ErrAdjointMismatch)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
}

// TestCheckSamplesBadCount covers n <= 0.
func TestCheckSamplesBadCount(t *testing.T) {
	tpl := state.MustNew([]float32{1, 2, 3}, nil)

	_, err := adjtest.CheckSamples("x", stencil.ForwardOperator(stencil.Smooth.Rule()),
		stencil.ForwardOperator(stencil.Smooth.Rule()), tpl, 0, nil, nil)
	require.ErrorIs(t, err, adjtest.ErrBadSampler)
}
