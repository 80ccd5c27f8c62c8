package checker

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// execResult carries the captured streams and exit code of one tool
// invocation.
type execResult struct {
	stdout   string
	stderr   string
	exitCode int
}

// runTool invokes an external tool and captures both streams in full.
// A non-zero exit is not an error here; the caller classifies it. The
// returned error means the process could not run at all.
//
// No timeout is applied: the context handed down from the CLI is
// never cancelled, so a hung tool hangs the run. That matches what CI
// has always done with these tools.
func runTool(ctx context.Context, name string, args ...string) (execResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := execResult{stdout: stdout.String(), stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.exitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}
