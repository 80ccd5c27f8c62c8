// Package checker dispatches external formatting and type-checking
// tools over a changed-file list and classifies their results.
package checker

import "context"

// Outcome classifies a single tool dispatch.
type Outcome string

const (
	// Clean means the tool found nothing to change, or had no files
	// to look at.
	Clean Outcome = "clean"
	// NeedsChanges means the tool exited non-zero and printed output
	// describing what to change.
	NeedsChanges Outcome = "needs-changes"
	// InfraFailure means the tool exited non-zero without any usable
	// output, or could not be started at all.
	InfraFailure Outcome = "infra-failure"
)

// Result is the recorded outcome of one tool dispatch.
// Matches the .cicheck/run/tools/<tool>.json schema.
type Result struct {
	Tool    string  `json:"tool"`
	Outcome Outcome `json:"outcome"`
	// Output is the tool's stdout when it reported problems: a
	// unified diff for the formatters, an error listing for mypy.
	Output string `json:"output,omitempty"`
	// Command is the invocation that produced this result, suitable
	// for reproducing it locally.
	Command string `json:"command,omitempty"`
	Note    string `json:"note,omitempty"`
}

// Tool is one external formatter or type checker.
type Tool interface {
	// Name is the binary's short name, e.g. "ruff".
	Name() string
	// FriendlyName describes the tool in warnings.
	FriendlyName() string
	// Category is the kind of issue the tool reports, e.g.
	// "formatting"; it completes the standard warning sentence.
	Category() string
	// Filter returns the subset of paths the tool applies to,
	// preserving input order. Duplicates propagate; the tools are
	// idempotent per file.
	Filter(paths []string) []string
	// Probe reports whether the tool can be invoked at all.
	Probe(ctx context.Context) bool
	// Check filters changedFiles, runs the tool over the remainder
	// and classifies the result. An empty remainder is trivially
	// Clean.
	Check(ctx context.Context, changedFiles []string) Result
}
