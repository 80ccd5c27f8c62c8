package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Sz-Ltc/CICD-Test-v2/cmd/cicheck/internal/clierr"
	"github.com/Sz-Ltc/CICD-Test-v2/internal/commitmsg"
	"github.com/Sz-Ltc/CICD-Test-v2/internal/gitlog"
)

func newCommitsCmd() *cobra.Command {
	var startRev, endRev string

	cmd := &cobra.Command{
		Use:   "commits",
		Short: "Validate commit messages in a revision range",
		Long: `Checks every commit message between --start-rev and --end-rev against
the merge request template: a "<type>[<SCOPE>]: <short-summary>" header
plus Problem/Task, Solution, Test, JIRA and Author sections.

Exit codes:
  0 - all commit messages match the template
  1 - at least one commit message doesn't match the template
  2 - error occurred during execution`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := gitlog.New("", "")
			return checkCommits(cmd.Context(), cmd.OutOrStdout(), log, startRev, endRev)
		},
	}

	cmd.Flags().StringVar(&startRev, "start-rev", "", "Compute changes from this revision.")
	cmd.Flags().StringVar(&endRev, "end-rev", "", "Compute changes to this revision")
	_ = cmd.MarkFlagRequired("start-rev")
	_ = cmd.MarkFlagRequired("end-rev")

	return cmd
}

type commitError struct {
	hash   string
	reason string
}

// checkCommits validates every commit in startRev..endRev, printing
// each (commit, reason) pair. Commits are checked independently; a
// bad one never stops the scan.
func checkCommits(ctx context.Context, out io.Writer, log *gitlog.Log, startRev, endRev string) error {
	hashes, err := log.Commits(ctx, startRev, endRev)
	if err != nil {
		fmt.Fprintf(out, "Error getting commit history: %v\n", err)
		return clierr.Wrap(2, "getting commit history", err)
	}

	var errCommits []commitError
	for _, hash := range hashes {
		msg, err := log.Message(ctx, hash)
		if err != nil || msg == "" {
			fmt.Fprintf(out, "Could not get log for commit %s\n", hash)
			return clierr.Newf(1, "could not get log for commit %s", hash)
		}

		if ok, reasons := commitmsg.Validate(msg); !ok {
			for _, reason := range reasons {
				errCommits = append(errCommits, commitError{hash: hash, reason: reason})
			}
		}
	}

	if len(errCommits) > 0 {
		fmt.Fprintf(out, "Found %d commits that don't match the template:\n", len(errCommits))
		for _, ec := range errCommits {
			fmt.Fprintf(out, "- Commit %s: %s\n", ec.hash, ec.reason)
		}
		return clierr.Newf(1, "%d commit message problem(s) found", len(errCommits))
	}

	fmt.Fprintln(out, "All commits match the template!")
	return nil
}
