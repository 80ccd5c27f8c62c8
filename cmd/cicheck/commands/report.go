package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sz-Ltc/CICD-Test-v2/cmd/cicheck/internal/clierr"
	"github.com/Sz-Ltc/CICD-Test-v2/internal/checker"
)

func newReportCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the outcome of the last check run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			store := checker.NewStateStore(cfg.StateDir)
			last, err := store.ReadLastRun()
			if err != nil {
				return clierr.Wrap(2, "reading run state", err)
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(last)
			}

			if last == nil {
				fmt.Fprintln(out, "No run state found.")
				return nil
			}

			fmt.Fprintf(out, "Status: %s\n", last.Status)
			if len(last.Failed) > 0 {
				fmt.Fprintln(out, "Failed:")
				for _, name := range last.Failed {
					fmt.Fprintf(out, "  - %s\n", name)
				}
			} else {
				fmt.Fprintln(out, "All checks passed.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output the report as JSON")

	return cmd
}
