// Package gitlog reads commit history by shelling out to the git CLI.
package gitlog

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Log queries commit history for a repository.
type Log struct {
	gitPath string
	dir     string
}

// New returns a Log backed by the given git binary. An empty gitPath
// falls back to "git" from PATH; an empty dir means the current
// working directory.
func New(gitPath, dir string) *Log {
	if gitPath == "" {
		gitPath = "git"
	}
	return &Log{gitPath: gitPath, dir: dir}
}

// Commits returns the hashes of all commits in startRev..endRev, in
// the order git log emits them (newest first). An empty range is not
// an error.
func (l *Log) Commits(ctx context.Context, startRev, endRev string) ([]string, error) {
	out, err := l.git(ctx, "log", "--pretty=format:%H", fmt.Sprintf("%s..%s", startRev, endRev))
	if err != nil {
		return nil, fmt.Errorf("getting commit history: %w", err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// Message returns the full message of a commit with an appended
// "Author: <name> <email>" line taken from the commit metadata, so
// the validator can cross-check it against the body.
func (l *Log) Message(ctx context.Context, hash string) (string, error) {
	out, err := l.git(ctx, "show", "-s", "--format=%B%nAuthor: %an <%ae>", hash)
	if err != nil {
		return "", fmt.Errorf("getting log for commit %s: %w", hash, err)
	}
	return strings.TrimSpace(out), nil
}

func (l *Log) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, l.gitPath, args...)
	cmd.Dir = l.dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}
