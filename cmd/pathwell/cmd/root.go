// Package cmd provides the CLI commands for pathwell.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathwell/ignore/internal/config"
	"github.com/pathwell/ignore/internal/logging"
	"github.com/pathwell/ignore/pkg/version"
)

// rootOptions carries state shared by all subcommands, populated by the
// persistent flags and config file in PersistentPreRunE.
type rootOptions struct {
	configPath string
	debug      bool

	cfg *config.Config
}

// NewRootCmd creates the root command for the pathwell CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pathwell",
		Short: "Answer gitignore exclusion queries without a git checkout",
		Long: `Pathwell decides whether paths are excluded by gitignore-style rules.

It needs no version-control tool: given a directory tree and the ignore
files found in it, it answers per-path exclusion queries (check) and lists
the paths that are not excluded (tree).`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			logCfg := logging.Config{Level: cfg.LogLevel}
			if opts.debug {
				logCfg = logging.DebugConfig()
			}
			logging.SetupDefault(logCfg)
			return nil
		},
	}

	cmd.SetVersionTemplate("pathwell version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default: .pathwell.yaml if present)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newTreeCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
