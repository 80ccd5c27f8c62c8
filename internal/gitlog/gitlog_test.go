package gitlog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGitStub creates a fake git executable running the given shell
// body.
func writeGitStub(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "git")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestCommits(t *testing.T) {
	git := writeGitStub(t, `printf 'aaa\nbbb\n'`)
	log := New(git, "")

	hashes, err := log.Commits(context.Background(), "r1", "r2")
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "bbb"}, hashes)
}

func TestCommits_EmptyRange(t *testing.T) {
	git := writeGitStub(t, `exit 0`)
	log := New(git, "")

	hashes, err := log.Commits(context.Background(), "r1", "r1")
	require.NoError(t, err)
	assert.Empty(t, hashes)
}

func TestCommits_QueryFailure(t *testing.T) {
	git := writeGitStub(t, `echo "fatal: bad revision" >&2; exit 128`)
	log := New(git, "")

	_, err := log.Commits(context.Background(), "r1", "r2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting commit history")
	assert.Contains(t, err.Error(), "fatal: bad revision")
}

func TestMessage(t *testing.T) {
	git := writeGitStub(t, `printf 'feat[CORE]: add x\n\nAuthor: jdoe <jdoe@is.ic>\n'`)
	log := New(git, "")

	msg, err := log.Message(context.Background(), "aaa")
	require.NoError(t, err)
	assert.Equal(t, "feat[CORE]: add x\n\nAuthor: jdoe <jdoe@is.ic>", msg)
}

func TestMessage_Failure(t *testing.T) {
	git := writeGitStub(t, `exit 128`)
	log := New(git, "")

	_, err := log.Message(context.Background(), "aaa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting log for commit aaa")
}
