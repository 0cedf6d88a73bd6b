// internal/cli/info.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/reldist"
	"github.com/arc-language/reldist/pkg/platform"
	"github.com/arc-language/reldist/pkg/runner"
	"github.com/arc-language/reldist/pkg/workdir"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show what a release would run",
	Long:  `Display the project directory, interpreter and command line a release uses.`,
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	r, err := reldist.NewReleaser(config, nil, logger)
	if err != nil {
		return err
	}
	dir := r.Dir()

	plat, err := platform.Detect()
	if err != nil {
		return fmt.Errorf("detecting platform: %w", err)
	}

	c := r.Command()
	python, err := r.Interpreter()
	if err != nil {
		python = "(not found)"
		c.Name = platform.Interpreters[0]
	}

	// Display info
	fmt.Fprintf(out, "Platform:    %s/%s\n", plat.OS, plat.Arch)
	fmt.Fprintf(out, "Directory:   %s\n", dir)
	if err := workdir.Check(dir); err != nil {
		fmt.Fprintf(out, "             %v\n", err)
	}
	fmt.Fprintf(out, "Interpreter: %s\n", python)
	fmt.Fprintf(out, "Command:     %s\n", runner.Quote(c.Argv()))
	fmt.Fprintf(out, "Script:      %s (present: %t)\n", config.Script, workdir.HasScript(dir, config.Script))
	fmt.Fprintf(out, "Repository:  %s\n", config.Repository)
	for _, kv := range c.Env {
		fmt.Fprintf(out, "Env:         %s\n", kv)
	}

	return nil
}
