// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "reldist version %s\n", rootCmd.Version)
		fmt.Fprintln(cmd.OutOrStdout(), "Source distribution release trigger")
		fmt.Fprintln(cmd.OutOrStdout(), "https://github.com/arc-language/reldist")
	},
}
