package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range []string{"add", "axpy", "linear_weight", "smooth_stencil", "weighted_stencil"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "hold=[A B]")
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "--samples", "10", "--only", "add,smooth_stencil")
	require.NoError(t, err)
	assert.Contains(t, out, "ok   add")
	assert.Contains(t, out, "2/2 cases passed")
}

func TestRunStrictToleranceFails(t *testing.T) {
	// float32 rounding keeps weighted sweeps a fraction of a unit apart
	out, err := execute(t, "run", "--samples", "50", "--tolerance", "0", "--sample-tolerance", "0",
		"--only", "weighted_stencil")
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "FAIL weighted_stencil")
	assert.Contains(t, out, "0/1 cases passed")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adjcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 3\nonly: [axpy]\n"), 0o600))

	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "samples=3")
	assert.Contains(t, out, "1/1 cases passed")

	// flags win over the file
	out, err = execute(t, "run", "--config", path, "--samples", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "samples=5")
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := execute(t, "run", "--only", "nope")
	require.Error(t, err)

	_, err = execute(t, "run", "--parallel", "0")
	require.Error(t, err)
}
