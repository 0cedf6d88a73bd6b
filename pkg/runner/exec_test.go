package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arc-language/reldist/pkg/core"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
}

func TestExecRunsInDir(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	var out bytes.Buffer

	err := New(false).Run(context.Background(), &core.Command{
		Name:   "sh",
		Args:   []string{"-c", "pwd -P"},
		Dir:    dir,
		Stdout: &out,
	})
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	require.Equal(t, want, strings.TrimSpace(out.String()))
}

func TestExecPropagatesExitCode(t *testing.T) {
	skipOnWindows(t)
	var stderr bytes.Buffer

	err := New(false).Run(context.Background(), &core.Command{
		Name:   "sh",
		Args:   []string{"-c", "echo boom >&2; exit 3"},
		Dir:    t.TempDir(),
		Stderr: &stderr,
	})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 3, exitErr.Code)
	require.True(t, errors.Is(err, core.ErrCommandFailed))
	require.Equal(t, "boom\n", stderr.String())
}

func TestExecMissingDir(t *testing.T) {
	skipOnWindows(t)
	err := New(false).Run(context.Background(), &core.Command{
		Name: "sh",
		Args: []string{"-c", "true"},
		Dir:  filepath.Join(t.TempDir(), "nope"),
	})
	require.Error(t, err)

	var exitErr *ExitError
	require.False(t, errors.As(err, &exitErr))
}

func TestExecEnv(t *testing.T) {
	skipOnWindows(t)
	var out bytes.Buffer
	err := New(false).Run(context.Background(), &core.Command{
		Name:   "sh",
		Args:   []string{"-c", "printf %s \"$RELDIST_TEST\""},
		Dir:    t.TempDir(),
		Env:    []string{"RELDIST_TEST=ok"},
		Stdout: &out,
	})
	require.NoError(t, err)
	require.Equal(t, "ok", out.String())
}

func TestExecDryRun(t *testing.T) {
	var out bytes.Buffer
	e := &Exec{DryRun: true, Out: &out}

	err := e.Run(context.Background(), &core.Command{
		Name: "python3",
		Args: []string{"setup.py", "sdist", "upload", "-r", "pypi"},
		Dir:  "/home/alice/PyCharmProjects/quantdsl",
	})
	require.NoError(t, err)
	require.Equal(t, "(cd /home/alice/PyCharmProjects/quantdsl && python3 setup.py sdist upload -r pypi)\n", out.String())
}

func TestExecEmptyCommand(t *testing.T) {
	require.Error(t, New(false).Run(context.Background(), &core.Command{}))
}

func TestSplitArgs(t *testing.T) {
	args, err := SplitArgs(`--sign --identity "Release Key"`)
	require.NoError(t, err)
	require.Equal(t, []string{"--sign", "--identity", "Release Key"}, args)

	args, err = SplitArgs("")
	require.NoError(t, err)
	require.Nil(t, args)

	_, err = SplitArgs(`"unterminated`)
	require.Error(t, err)
}

func TestRecorder(t *testing.T) {
	r := &Recorder{ExitCode: 2}
	err := r.Run(context.Background(), &core.Command{Name: "python", Args: []string{"setup.py"}, Dir: os.TempDir()})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Len(t, r.Commands(), 1)
	require.Equal(t, os.TempDir(), r.Commands()[0].Dir)
}
