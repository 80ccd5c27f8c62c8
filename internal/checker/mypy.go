package checker

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Mypy wraps the mypy static type checker over the Python subset of
// the changed files.
type Mypy struct {
	Path    string
	Verbose bool
	Out     io.Writer
}

func (m *Mypy) Name() string { return "mypy" }

func (m *Mypy) FriendlyName() string { return "Static Typing for Python" }

func (m *Mypy) Category() string { return "typing" }

func (m *Mypy) Filter(paths []string) []string {
	return pythonFiles(paths)
}

func (m *Mypy) Probe(ctx context.Context) bool {
	res, err := runTool(ctx, m.Path, "--version")
	return err == nil && res.exitCode == 0
}

func (m *Mypy) Check(ctx context.Context, changedFiles []string) Result {
	pyFiles := m.Filter(changedFiles)
	if len(pyFiles) == 0 {
		fmt.Fprintln(m.Out, "No python files changed, skipping static typing...")
		return Result{Tool: m.Name(), Outcome: Clean, Note: "no Python files changed"}
	}

	command := m.Path + " " + strings.Join(pyFiles, " ")
	if m.Verbose {
		fmt.Fprintf(m.Out, "Running: %s\n", command)
	}

	res, err := runTool(ctx, m.Path, pyFiles...)
	if err != nil {
		return Result{
			Tool:    m.Name(),
			Outcome: InfraFailure,
			Command: command,
			Note:    fmt.Sprintf("starting %s: %v", m.Path, err),
		}
	}
	if m.Verbose {
		fmt.Fprint(m.Out, res.stderr)
	}

	if res.exitCode != 0 {
		if m.Verbose {
			fmt.Fprintf(m.Out, "error: %s exited with code %d\n", m.Name(), res.exitCode)
			fmt.Fprintln(m.Out, res.stdout)
		}
		if res.stdout == "" {
			return Result{
				Tool:    m.Name(),
				Outcome: InfraFailure,
				Command: command,
				Note:    fmt.Sprintf("%s exited with code %d and no report", m.Name(), res.exitCode),
			}
		}
		return Result{Tool: m.Name(), Outcome: NeedsChanges, Output: res.stdout, Command: command}
	}

	fmt.Fprint(m.Out, res.stdout)
	return Result{Tool: m.Name(), Outcome: Clean, Command: command}
}
