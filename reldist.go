// reldist.go
package reldist

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arc-language/reldist/pkg/core"
	"github.com/arc-language/reldist/pkg/dist"
	"github.com/arc-language/reldist/pkg/platform"
	"github.com/arc-language/reldist/pkg/release"
	"github.com/arc-language/reldist/pkg/runner"
	"github.com/arc-language/reldist/pkg/workdir"
)

// Re-export core types for convenience
type (
	Config   = core.Config
	Command  = core.Command
	Runner   = core.Runner
	Artifact = dist.Artifact
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Releaser builds and uploads the configured project
type Releaser struct {
	config    *Config
	dir       string
	trigger   *release.Trigger
	pythonErr error
	logger    *zap.Logger
}

// NewReleaser resolves the project directory, the interpreter and the extra
// arguments from config. The directory is resolved first, so an unset HOME
// fails before anything else is looked up or run. A missing interpreter is
// reported by Interpreter and Release, not here, so inspection still works
// without one.
func NewReleaser(config *Config, r Runner, logger *zap.Logger) (*Releaser, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dir, err := workdir.Resolve(config.ProjectPath...)
	if err != nil {
		return nil, err
	}

	python, pythonErr := platform.Interpreter(config.Python)
	if pythonErr != nil {
		pythonErr = fmt.Errorf("resolving interpreter: %w", pythonErr)
	}

	extra, err := runner.SplitArgs(config.ExtraArgs)
	if err != nil {
		return nil, fmt.Errorf("extra_args: %w", err)
	}

	if r == nil {
		r = runner.New(false)
	}

	return &Releaser{
		config:    config,
		dir:       dir,
		trigger:   release.FromConfig(config, r, python, extra, logger),
		pythonErr: pythonErr,
		logger:    logger,
	}, nil
}

// Dir returns the resolved project directory
func (r *Releaser) Dir() string {
	return r.dir
}

// Interpreter returns the Python executable a release runs
func (r *Releaser) Interpreter() (string, error) {
	return r.trigger.Python, r.pythonErr
}

// Command returns the invocation Release will run
func (r *Releaser) Command() *Command {
	return r.trigger.Command(r.dir)
}

// Release runs the build/upload command in the project directory
func (r *Releaser) Release(ctx context.Context) error {
	if r.pythonErr != nil {
		return r.pythonErr
	}
	if r.config.Debug {
		r.logger.Debug("releasing", zap.String("dir", r.dir), zap.String("python", r.trigger.Python))
	}
	return r.trigger.BuildAndRelease(ctx, r.dir)
}

// Artifacts inspects the archives in the project's dist/ directory. Archives
// that could be read are returned alongside the errors for the rest.
func (r *Releaser) Artifacts() ([]*Artifact, error) {
	return dist.Scan(r.dir)
}

// BuildAndRelease runs `<python> setup.py sdist upload -r pypi` in dir with
// the interpreter found on PATH.
func BuildAndRelease(ctx context.Context, dir string) error {
	python, err := platform.Interpreter("")
	if err != nil {
		return err
	}
	t := &release.Trigger{Runner: runner.New(false), Python: python}
	return t.BuildAndRelease(ctx, dir)
}

// ExitCode maps err to a process exit status: the external command's own
// status when it exited non-zero, 1 for any other error, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}
