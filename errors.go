// errors.go
package reldist

import (
	"github.com/arc-language/reldist/pkg/core"
	"github.com/arc-language/reldist/pkg/dist"
	"github.com/arc-language/reldist/pkg/runner"
)

var (
	// ErrHomeNotSet indicates $HOME is unset or empty
	ErrHomeNotSet = core.ErrHomeNotSet

	// ErrWorkDirMissing indicates the project directory does not exist
	ErrWorkDirMissing = core.ErrWorkDirMissing

	// ErrInterpreterNotFound indicates no Python interpreter was found
	ErrInterpreterNotFound = core.ErrInterpreterNotFound

	// ErrCommandFailed indicates the build/upload command exited non-zero
	ErrCommandFailed = core.ErrCommandFailed

	// ErrNoDist indicates the project has not been built yet
	ErrNoDist = dist.ErrNoDist
)

// Error wraps an error with additional context
type Error = core.Error

// ExitError carries the exit status of a failed command
type ExitError = runner.ExitError
