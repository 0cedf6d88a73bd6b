// Package release builds a source distribution and uploads it to a package
// index by running the project's setup script.
package release

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/arc-language/reldist/pkg/core"
	"github.com/arc-language/reldist/pkg/workdir"
)

// Trigger runs `<python> <script> <commands...> -r <repository>`.
type Trigger struct {
	Runner     core.Runner
	Python     string   // Interpreter executable
	Script     string   // Default: setup.py
	Commands   []string // Default: sdist upload
	Repository string   // Default: pypi
	ExtraArgs  []string // Appended after the repository flag
	Env        []string // Extra KEY=VALUE pairs for the process
	Logger     *zap.Logger
}

// FromConfig builds a Trigger from cfg. extra holds the already-split
// extra_args value.
func FromConfig(cfg *core.Config, r core.Runner, python string, extra []string, logger *zap.Logger) *Trigger {
	return &Trigger{
		Runner:     r,
		Python:     python,
		Script:     cfg.Script,
		Commands:   cfg.Commands,
		Repository: cfg.Repository,
		ExtraArgs:  extra,
		Env:        cfg.Env,
		Logger:     logger,
	}
}

// Args returns the arguments passed to the interpreter.
func (t *Trigger) Args() []string {
	script := t.Script
	if script == "" {
		script = core.DefaultScript
	}
	commands := t.Commands
	if len(commands) == 0 {
		commands = core.DefaultCommands
	}
	repo := t.Repository
	if repo == "" {
		repo = core.DefaultRepository
	}

	args := make([]string, 0, len(commands)+len(t.ExtraArgs)+3)
	args = append(args, script)
	args = append(args, commands...)
	args = append(args, "-r", repo)
	return append(args, t.ExtraArgs...)
}

// Command returns the process invocation for dir.
func (t *Trigger) Command(dir string) *core.Command {
	return &core.Command{
		Name: t.Python,
		Args: t.Args(),
		Dir:  dir,
		Env:  t.Env,
	}
}

// BuildAndRelease runs the build/upload command with dir as its working
// directory. The directory is checked first; a failed check means the runner
// is never called. A failing command is returned wrapped, with the runner's
// error still reachable through errors.As.
func (t *Trigger) BuildAndRelease(ctx context.Context, dir string) error {
	log := t.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if err := workdir.Check(dir); err != nil {
		return err
	}
	if t.Python == "" {
		return &core.Error{Op: "release", Dir: dir, Err: core.ErrInterpreterNotFound}
	}

	cmd := t.Command(dir)
	log.Info("building and uploading",
		zap.String("dir", dir),
		zap.Strings("argv", cmd.Argv()),
	)

	start := time.Now()
	if err := t.Runner.Run(ctx, cmd); err != nil {
		log.Error("release failed", zap.String("dir", dir), zap.Error(err))
		return &core.Error{Op: "release", Dir: dir, Err: err}
	}

	log.Info("release finished", zap.String("dir", dir), zap.Duration("took", time.Since(start)))
	return nil
}
