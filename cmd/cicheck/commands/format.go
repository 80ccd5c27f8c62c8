package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sz-Ltc/CICD-Test-v2/cmd/cicheck/internal/clierr"
	"github.com/Sz-Ltc/CICD-Test-v2/internal/checker"
)

func newFormatCmd() *cobra.Command {
	var startRev, endRev, changedFiles, pyStyleConfig string

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Run code formatters over changed files",
		Long: `Runs ruff over changed Python files and git-clang-format over changed
C/C++ files, in diff mode. Every formatter runs even if an earlier one
reported problems.

Exit codes:
  0 - all code formatters completed successfully
  1 - at least one code formatter completed with failure`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			verbose, _ := cmd.Flags().GetBool("verbose")
			out := cmd.OutOrStdout()

			files := splitChangedFiles(changedFiles)
			tools := []checker.Tool{
				&checker.Ruff{
					Path:        cfg.RuffPath,
					StyleConfig: pyStyleConfig,
					Verbose:     verbose,
					Out:         out,
				},
				&checker.ClangFormat{
					Path:     cfg.ClangFormatPath,
					StartRev: startRev,
					EndRev:   endRev,
					Verbose:  verbose,
					Out:      out,
				},
			}

			r := checker.NewRunner(tools, checker.NewStateStore(cfg.StateDir), out)
			_, failed, err := r.RunAll(cmd.Context(), files)
			if err != nil {
				return clierr.Wrap(2, "recording run results", err)
			}
			if len(failed) > 0 {
				fmt.Fprintf(out, "error: some formatters failed: %s\n", strings.Join(failed, " "))
				return clierr.Newf(1, "%d formatter(s) failed", len(failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startRev, "start-rev", "", "Compute changes from this revision.")
	cmd.Flags().StringVar(&endRev, "end-rev", "", "Compute changes to this revision")
	cmd.Flags().StringVar(&changedFiles, "changed-files", "", "Comma separated list of files that has been changed")
	cmd.Flags().StringVar(&pyStyleConfig, "py-style-config", "", "Path to the python style configuration file (ruff.toml)")
	_ = cmd.MarkFlagRequired("start-rev")
	_ = cmd.MarkFlagRequired("end-rev")
	_ = cmd.MarkFlagRequired("py-style-config")

	return cmd
}

func splitChangedFiles(csv string) []string {
	if csv == "" {
		return nil
	}
	return strings.Split(csv, ",")
}
