// Package adjtest_test contains unit tests for the dot-product harness.
package adjtest_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/adjoint/adjtest"
	"github.com/katalvlaran/adjoint/state"
	"github.com/katalvlaran/adjoint/stencil"
)

// scale returns an operator multiplying every component by k (self-adjoint).
func scale(k float32) adjtest.Operator {
	return func(s *state.State) error {
		v := s.Values()
		for i := range v {
			v[i] *= k
		}
		return s.Replace(v)
	}
}

// sample is a small anonymous fixture.
func sample() *state.State {
	return state.MustNew([]float32{0.2, 0.5, 0.6, 1.3, 2.3}, nil)
}

// TestCheckPasses covers a self-adjoint and a non-symmetric exact pair.
func TestCheckPasses(t *testing.T) {
	t.Parallel()

	rotate := stencil.Weights{Left: 0, Right: 1} // out[i] = in[i+1]
	tests := []struct {
		name     string
		fwd, adj adjtest.Operator
	}{
		{"scale by two", scale(2), scale(2)},
		{"rotation", stencil.ForwardOperator(rotate.Rule()), stencil.AdjointOperator(rotate.AdjointRule())},
		{"rotation via transpose", stencil.ForwardOperator(rotate.Rule()), stencil.TransposeOperator(rotate)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := adjtest.Check(tc.name, tc.fwd, tc.adj, sample(), nil)
			require.NoError(t, err)
			assert.True(t, res.Passed)
			assert.Equal(t, tc.name, res.Name)
			assert.InDelta(t, res.MxMx, res.MtMxX, 1e-12) // exact float32 values, float64 sums
			assert.Less(t, res.Discrepancy, 1e-6)
			assert.Equal(t, adjtest.DefaultTolerance, res.Tolerance)
		})
	}
}

// TestCheckDetectsMismatch ensures a wrong adjoint fails loudly with diagnostics.
func TestCheckDetectsMismatch(t *testing.T) {
	x := sample()
	res, err := adjtest.Check("scale", scale(2), scale(3), x, nil)

	require.ErrorIs(t, err, adjtest.ErrAdjointMismatch)
	require.Contains(t, err.Error(), `"scale"`)
	assert.False(t, res.Passed)
	assert.InEpsilon(t, 4*x.SquaredNorm(), res.MxMx, 1e-6)
	assert.InEpsilon(t, 6*x.SquaredNorm(), res.MtMxX, 1e-6)
	assert.Greater(t, res.Discrepancy, res.Tolerance)
	assert.Contains(t, res.String(), "MISMATCH")
}

// TestCheckLeavesSampleUntouched ensures the harness works on a clone.
func TestCheckLeavesSampleUntouched(t *testing.T) {
	x := sample()
	before := x.Values()

	_, err := adjtest.Check("scale", scale(2), scale(2), x, nil)
	require.NoError(t, err)
	require.Equal(t, before, x.Values())
}

// TestCheckGuards covers argument validation.
func TestCheckGuards(t *testing.T) {
	t.Parallel()

	neg := adjtest.Options{Tolerance: -1}
	nan := adjtest.Options{Tolerance: math.NaN()}
	inf := adjtest.Options{Tolerance: math.Inf(1)}

	tests := []struct {
		name string
		fwd  adjtest.Operator
		adj  adjtest.Operator
		x    *state.State
		opts *adjtest.Options
		want error
	}{
		{"nil sample", scale(1), scale(1), nil, nil, state.ErrNilState},
		{"nil forward", nil, scale(1), sample(), nil, adjtest.ErrNilOperator},
		{"nil adjoint", scale(1), nil, sample(), nil, adjtest.ErrNilOperator},
		{"negative tolerance", scale(1), scale(1), sample(), &neg, adjtest.ErrBadTolerance},
		{"NaN tolerance", scale(1), scale(1), sample(), &nan, adjtest.ErrBadTolerance},
		{"Inf tolerance", scale(1), scale(1), sample(), &inf, adjtest.ErrBadTolerance},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := adjtest.Check(tc.name, tc.fwd, tc.adj, tc.x, tc.opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestCheckOperatorError ensures operator failures are wrapped, not swallowed.
func TestCheckOperatorError(t *testing.T) {
	boom := errors.New("boom")
	failing := func(*state.State) error { return boom }

	_, err := adjtest.Check("fwd", failing, scale(1), sample(), nil)
	require.ErrorIs(t, err, adjtest.ErrOperator)
	require.ErrorIs(t, err, boom)

	_, err = adjtest.Check("adj", scale(1), failing, sample(), nil)
	require.ErrorIs(t, err, adjtest.ErrOperator)
	require.ErrorIs(t, err, boom)

	// a named operator on an anonymous state surfaces the lookup sentinel
	named := func(s *state.State) error { return s.SetName("r", 0) }
	_, err = adjtest.Check("named", named, named, sample(), nil)
	require.ErrorIs(t, err, state.ErrUnknownName)
}

// TestCheckTolerance shows the tolerance is a tunable threshold.
func TestCheckTolerance(t *testing.T) {
	// an adjoint off by a factor of float32(1.000001): a near miss of about 8 epsilon units
	nearly := scale(1.000001)

	loose := adjtest.Options{Tolerance: 1e9}
	res, err := adjtest.Check("loose", nearly, scale(1), sample(), &loose)
	require.NoError(t, err)
	require.True(t, res.Passed)

	strict := adjtest.Options{Tolerance: 0}
	_, err = adjtest.Check("strict", nearly, scale(1), sample(), &strict)
	require.ErrorIs(t, err, adjtest.ErrAdjointMismatch)
}

// TestCheckLogs verifies one structured entry per evaluation.
func TestCheckLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := adjtest.Options{Tolerance: 1, Logger: zap.New(core)}

	_, err := adjtest.Check("good", scale(2), scale(2), sample(), &opts)
	require.NoError(t, err)
	_, err = adjtest.Check("bad", scale(2), scale(3), sample(), &opts)
	require.Error(t, err)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "good", entries[0].ContextMap()["operator"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	ctx := entries[1].ContextMap()
	assert.Equal(t, "bad", ctx["operator"])
	assert.Contains(t, ctx, "mx_mx")
	assert.Contains(t, ctx, "mt_mx_x")
	assert.Contains(t, ctx, "sample")
}

// TestDiscrepancy pins the epsilon-unit normalisation.
func TestDiscrepancy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, adjtest.Discrepancy(38, 38))
	assert.InDelta(t, 0.5, adjtest.Discrepancy(0, adjtest.Epsilon/2), 1e-12)     // absolute below 1
	assert.InDelta(t, 1.0, adjtest.Discrepancy(1, 1+adjtest.Epsilon), 1e-6)      // one unit at magnitude 1
	assert.InDelta(t, 1.0, adjtest.Discrepancy(64, 64+64*adjtest.Epsilon), 1e-6) // relative above 1
	assert.Equal(t, adjtest.Discrepancy(2, 3), adjtest.Discrepancy(3, 2))
}
