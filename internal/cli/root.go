// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arc-language/reldist/internal/logging"
	"github.com/arc-language/reldist/pkg/core"
	"github.com/arc-language/reldist/pkg/runner"
)

var (
	cfgFile string
	debug   bool
	dryRun  bool
	config  *core.Config
	logger  *zap.Logger

	// configErr is returned before any command runs; a config that fails
	// to load never falls back to the defaults.
	configErr error
)

// newRunner is replaced in tests.
var newRunner = func(dry bool) core.Runner {
	return runner.New(dry)
}

// rootCmd represents the base command. Run without a subcommand it builds
// the project's source distribution and uploads it.
var rootCmd = &cobra.Command{
	Use:   "reldist",
	Short: "Build and upload a source distribution",
	Long: `reldist - source distribution release trigger

Runs "setup.py sdist upload -r pypi" in $HOME/PyCharmProjects/quantdsl
and exits with the status of that command.`,
	Version:       "0.1.0",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
	RunE: runRelease,
}

// Execute executes the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/reldist/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print the command instead of running it")

	// Add commands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	configErr = nil
	if err != nil {
		configErr = fmt.Errorf("loading config: %w", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}

	logger, err = logging.New(config.Debug, config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		logger = zap.NewNop()
	}
}
