// internal/cli/release.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arc-language/reldist"
)

func runRelease(cmd *cobra.Command, args []string) error {
	defer func() { _ = logger.Sync() }()

	r, err := reldist.NewReleaser(config, newRunner(dryRun), logger)
	if err != nil {
		return err
	}

	return r.Release(cmd.Context())
}
