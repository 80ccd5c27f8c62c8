package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sz-Ltc/CICD-Test-v2/cmd/cicheck/internal/clierr"
	"github.com/Sz-Ltc/CICD-Test-v2/internal/config"
)

// NewRootCmd constructs the cicheck root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("CICHECK_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "cicheck",
		Short:         "cicheck - CI helpers for commit, format and typing checks",
		Long:          "cicheck validates merge request commit messages and runs the project's code formatters and static type checker over changed files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags. Verbose defaults on: CI logs are the primary
	// consumer and they want the full tool invocations.
	cmd.PersistentFlags().BoolP("verbose", "v", true, "print tool invocations and their output")
	cmd.PersistentFlags().String("config", ".cicheck.yml", "path to the cicheck configuration file")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of cicheck",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cicheck version %s\n", version)
		},
	})

	cmd.AddCommand(newCommitsCmd())
	cmd.AddCommand(newFormatCmd())
	cmd.AddCommand(newTypingCmd())
	cmd.AddCommand(newReportCmd())

	return cmd
}

// loadConfig resolves the effective configuration for a command. A
// failure here means the checks cannot run at all, hence exit code 2.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, clierr.Wrap(2, "loading configuration", err)
	}
	return cfg, nil
}
