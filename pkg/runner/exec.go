// pkg/runner/exec.go
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/arc-language/reldist/pkg/core"
)

// ExitError reports a command that ran and exited with a non-zero status
type ExitError struct {
	Argv []string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", shellquote.Join(e.Argv...), e.Code)
}

// Is makes errors.Is(err, core.ErrCommandFailed) match any exit failure.
func (e *ExitError) Is(target error) bool {
	return target == core.ErrCommandFailed
}

// Exec runs commands as child processes
type Exec struct {
	DryRun bool      // Print the command line instead of running it
	Out    io.Writer // Where dry-run lines go (default: os.Stdout)
}

// New returns a Runner backed by os/exec.
func New(dryRun bool) *Exec {
	return &Exec{DryRun: dryRun}
}

// Run starts cmd in cmd.Dir and waits for it. Output is streamed, not
// buffered, so the external tool's diagnostics reach the user as they happen.
func (e *Exec) Run(ctx context.Context, cmd *core.Command) error {
	if cmd == nil || cmd.Name == "" {
		return fmt.Errorf("empty command")
	}

	if e.DryRun {
		out := e.Out
		if out == nil {
			out = os.Stdout
		}
		_, err := fmt.Fprintf(out, "(cd %s && %s)\n", shellquote.Join(cmd.Dir), shellquote.Join(cmd.Argv()...))
		return err
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = os.Stdin
	c.Stdout = writerOr(cmd.Stdout, os.Stdout)
	c.Stderr = writerOr(cmd.Stderr, os.Stderr)
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return &ExitError{Argv: cmd.Argv(), Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", cmd.Name, err)
	}

	return nil
}

// SplitArgs splits a shell-quoted argument string such as
// `--sign --identity "Release Key"`.
func SplitArgs(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	args, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("parsing arguments %q: %w", s, err)
	}
	return args, nil
}

// Quote renders argv the way a user would type it.
func Quote(argv []string) string {
	return shellquote.Join(argv...)
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
