package checker

import (
	"context"
	"fmt"
	"io"
)

// Runner dispatches tools in a fixed order, accumulating failures
// instead of stopping at the first one.
type Runner struct {
	tools []Tool
	store *StateStore
	out   io.Writer
}

// NewRunner creates a runner. store may be nil to skip persisting
// results.
func NewRunner(tools []Tool, store *StateStore, out io.Writer) *Runner {
	return &Runner{tools: tools, store: store, out: out}
}

// RunAll dispatches every tool over the changed-file list, sequential
// and in order. It returns the per-tool results plus the names of the
// tools that were not Clean; execution always continues past a
// failing tool. The returned error only reports problems persisting
// results, never a tool outcome.
func (r *Runner) RunAll(ctx context.Context, changedFiles []string) ([]Result, []string, error) {
	var results []Result
	var failed []string
	var names []string

	for _, tool := range r.tools {
		names = append(names, tool.Name())
		res := tool.Check(ctx, changedFiles)

		if r.store != nil {
			if err := r.store.WriteResult(res); err != nil {
				return nil, nil, fmt.Errorf("writing result for %s: %w", tool.Name(), err)
			}
		}

		switch res.Outcome {
		case NeedsChanges:
			fmt.Fprintf(r.out, "Warning: %s, %s detected some issues with your code %s...\n",
				tool.FriendlyName(), tool.Name(), tool.Category())
			if res.Command != "" {
				fmt.Fprintf(r.out, "To reproduce locally, run:\n  %s\n", res.Command)
			}
			failed = append(failed, tool.Name())
		case InfraFailure:
			fmt.Fprintf(r.out, "Warning: The %s failed without printing a diff. "+
				"Check the logs for stderr output. :warning:\n", tool.FriendlyName())
			if res.Note != "" {
				fmt.Fprintln(r.out, res.Note)
			}
			failed = append(failed, tool.Name())
		}

		results = append(results, res)
	}

	if r.store != nil {
		last := LastRun{Status: "pass", Tools: names, Failed: failed}
		if len(failed) > 0 {
			last.Status = "fail"
		}
		if err := r.store.WriteLastRun(last); err != nil {
			return nil, nil, fmt.Errorf("writing last run: %w", err)
		}
	}

	return results, failed, nil
}
