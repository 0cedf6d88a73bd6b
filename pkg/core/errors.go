// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrHomeNotSet indicates the home directory variable is unset or empty
	ErrHomeNotSet = errors.New("home directory not set")

	// ErrWorkDirMissing indicates the working directory does not exist
	ErrWorkDirMissing = errors.New("working directory not found")

	// ErrNotDirectory indicates the working directory path is not a directory
	ErrNotDirectory = errors.New("not a directory")

	// ErrInterpreterNotFound indicates no Python interpreter is available
	ErrInterpreterNotFound = errors.New("python interpreter not found")

	// ErrCommandFailed indicates the external build/upload command failed
	ErrCommandFailed = errors.New("command failed")
)

// Error wraps an error with additional context
type Error struct {
	Op  string // Operation that failed
	Dir string // Working directory if applicable
	Err error  // Underlying error
}

func (e *Error) Error() string {
	if e.Dir != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Dir, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
