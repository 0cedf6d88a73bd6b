package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arc-language/reldist/pkg/core"
)

func fakeInterpreter(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\nexit 0\n"), 0755))
}

func TestInterpreterOverride(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	py, err := Interpreter("/opt/py/bin/python3.12")
	require.NoError(t, err)
	require.Equal(t, "/opt/py/bin/python3.12", py)
}

func TestInterpreterPrefersPython3(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit lookup")
	}
	dir := t.TempDir()
	fakeInterpreter(t, dir, "python")
	fakeInterpreter(t, dir, "python3")
	t.Setenv("PATH", dir)

	p, err := Detect()
	require.NoError(t, err)
	require.Equal(t, []string{"python3", "python"}, p.Available)
	require.Equal(t, "python3", p.Preferred)

	py, err := Interpreter("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "python3"), py)
}

func TestDetectSkipsMissing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit lookup")
	}
	dir := t.TempDir()
	fakeInterpreter(t, dir, "python")
	t.Setenv("PATH", dir)

	p, err := Detect()
	require.NoError(t, err)
	require.Equal(t, []string{"python"}, p.Available)
	require.Equal(t, "python", p.Preferred)
}

func TestInterpreterNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Interpreter("")
	require.ErrorIs(t, err, core.ErrInterpreterNotFound)
}
