package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sz-Ltc/CICD-Test-v2/cmd/cicheck/internal/clierr"
	"github.com/Sz-Ltc/CICD-Test-v2/internal/checker"
)

func newTypingCmd() *cobra.Command {
	var changedFiles string

	cmd := &cobra.Command{
		Use:   "typing",
		Short: "Run the Python static type checker over changed files",
		Long: `Runs mypy over changed Python files.

Exit codes:
  0 - static typing for python completed successfully
  1 - mypy is unavailable, or it found type errors`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			verbose, _ := cmd.Flags().GetBool("verbose")
			out := cmd.OutOrStdout()

			files := cfg.WithoutExcluded(splitChangedFiles(changedFiles))
			tool := &checker.Mypy{Path: cfg.MypyPath, Verbose: verbose, Out: out}

			// The type checker is required CI infrastructure; its
			// absence is fatal, unlike a formatter reporting issues.
			if !tool.Probe(cmd.Context()) {
				fmt.Fprintf(out, "error: %s is not installed or not found in PATH\n", tool.Name())
				return clierr.Newf(1, "%s is not available", tool.Name())
			}

			r := checker.NewRunner([]checker.Tool{tool}, checker.NewStateStore(cfg.StateDir), out)
			_, failed, err := r.RunAll(cmd.Context(), files)
			if err != nil {
				return clierr.Wrap(2, "recording run results", err)
			}
			if len(failed) > 0 {
				fmt.Fprintln(out, "error: static typing for python failed")
				return clierr.New(1, "static typing for python failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&changedFiles, "changed-files", "", "Comma separated list of files that has been changed")

	return cmd
}
