// pkg/runner/recorder.go
package runner

import (
	"context"
	"sync"

	"github.com/arc-language/reldist/pkg/core"
)

// Recorder is a Runner that records commands instead of running them.
// ExitCode is returned as an *ExitError when non-zero.
type Recorder struct {
	ExitCode int

	mu       sync.Mutex
	commands []core.Command
}

// Run records a copy of cmd.
func (r *Recorder) Run(ctx context.Context, cmd *core.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	c := *cmd
	c.Args = append([]string(nil), cmd.Args...)
	r.commands = append(r.commands, c)
	r.mu.Unlock()

	if r.ExitCode != 0 {
		return &ExitError{Argv: cmd.Argv(), Code: r.ExitCode}
	}
	return nil
}

// Commands returns everything recorded so far
func (r *Recorder) Commands() []core.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Command(nil), r.commands...)
}
