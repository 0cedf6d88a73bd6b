// pkg/core/interface.go
package core

import (
	"context"
	"io"
)

// Runner executes external commands. The release trigger only talks to this
// interface so tests can substitute a fake.
type Runner interface {
	// Run starts the command and blocks until it exits. A non-zero exit
	// status must be reported as an error.
	Run(ctx context.Context, cmd *Command) error
}

// Command describes a single external process invocation
type Command struct {
	Name   string    // Executable name or path
	Args   []string  // Arguments, not including Name
	Dir    string    // Working directory for the process
	Env    []string  // Extra KEY=VALUE pairs appended to the parent environment
	Stdout io.Writer // Defaults to os.Stdout when nil
	Stderr io.Writer // Defaults to os.Stderr when nil
}

// Argv returns Name followed by Args.
func (c *Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}
