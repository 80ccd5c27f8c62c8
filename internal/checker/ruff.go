package checker

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Ruff wraps "ruff format" in check/diff mode over the Python subset
// of the changed files.
type Ruff struct {
	Path        string
	StyleConfig string
	Verbose     bool
	Out         io.Writer
}

func (r *Ruff) Name() string { return "ruff" }

func (r *Ruff) FriendlyName() string { return "Python code formatter" }

func (r *Ruff) Category() string { return "formatting" }

func (r *Ruff) Filter(paths []string) []string {
	return pythonFiles(paths)
}

func (r *Ruff) Probe(ctx context.Context) bool {
	res, err := runTool(ctx, r.Path, "--version")
	return err == nil && res.exitCode == 0
}

func (r *Ruff) Check(ctx context.Context, changedFiles []string) Result {
	pyFiles := r.Filter(changedFiles)
	if len(pyFiles) == 0 {
		return Result{Tool: r.Name(), Outcome: Clean, Note: "no Python files changed"}
	}

	args := []string{"format", "--check", "--diff"}
	if r.StyleConfig != "" {
		args = append(args, "--config", r.StyleConfig)
	}
	args = append(args, "--")
	args = append(args, pyFiles...)

	command := r.Path + " " + strings.Join(args, " ")
	if r.Verbose {
		fmt.Fprintf(r.Out, "Running: %s\n", command)
	}

	res, err := runTool(ctx, r.Path, args...)
	if err != nil {
		return Result{
			Tool:    r.Name(),
			Outcome: InfraFailure,
			Command: command,
			Note:    fmt.Sprintf("starting %s: %v", r.Path, err),
		}
	}
	if r.Verbose {
		fmt.Fprint(r.Out, res.stderr)
	}

	if res.exitCode != 0 {
		if r.Verbose {
			fmt.Fprintf(r.Out, "error: %s exited with code %d\n", r.Name(), res.exitCode)
			fmt.Fprintln(r.Out, res.stdout)
		}
		if res.stdout == "" {
			return Result{
				Tool:    r.Name(),
				Outcome: InfraFailure,
				Command: command,
				Note:    fmt.Sprintf("%s exited with code %d and no diff", r.Name(), res.exitCode),
			}
		}
		return Result{Tool: r.Name(), Outcome: NeedsChanges, Output: res.stdout, Command: command}
	}

	// Ruff prints a summary on success; surface it as informational.
	fmt.Fprint(r.Out, res.stdout)
	return Result{Tool: r.Name(), Outcome: Clean, Command: command}
}

func pythonFiles(paths []string) []string {
	var filtered []string
	for _, p := range paths {
		if filepath.Ext(p) == ".py" {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
