// internal/cli/check.go
package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arc-language/reldist"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Inspect built source distributions",
	Long:  `List the archives in the project's dist/ directory with their metadata and digests.`,
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	r, err := reldist.NewReleaser(config, nil, logger)
	if err != nil {
		return err
	}

	// scanErr may report unreadable archives next to readable ones
	artifacts, scanErr := r.Artifacts()
	if len(artifacts) == 0 && scanErr == nil {
		fmt.Fprintf(out, "No source distributions in %s\n", r.Dir())
		return nil
	}

	for _, a := range artifacts {
		fmt.Fprintf(out, "%s\n", a.Filename())
		fmt.Fprintf(out, "  Name:    %s\n", a.Name)
		fmt.Fprintf(out, "  Version: %s\n", a.Version)
		fmt.Fprintf(out, "  Format:  %s\n", a.Format)
		fmt.Fprintf(out, "  Size:    %s\n", humanize.Bytes(uint64(a.Size)))
		fmt.Fprintf(out, "  SHA256:  %s\n", a.SHA256)
		fmt.Fprintf(out, "  Nix:     %s\n", a.NixHash)
	}

	return scanErr
}
