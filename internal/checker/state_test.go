package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_LastRunRoundTrip(t *testing.T) {
	store := NewStateStore(t.TempDir())

	last, err := store.ReadLastRun()
	require.NoError(t, err)
	assert.Nil(t, last, "missing state is clean state")

	want := LastRun{Status: "fail", Tools: []string{"ruff", "clang-format"}, Failed: []string{"ruff"}}
	require.NoError(t, store.WriteLastRun(want))

	got, err := store.ReadLastRun()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStateStore_ResultRoundTrip(t *testing.T) {
	store := NewStateStore(t.TempDir())

	got, err := store.ReadResult("ruff")
	require.NoError(t, err)
	assert.Nil(t, got)

	want := Result{Tool: "ruff", Outcome: NeedsChanges, Output: "diff", Command: "ruff format --check"}
	require.NoError(t, store.WriteResult(want))

	got, err = store.ReadResult("ruff")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStateStore_Reset(t *testing.T) {
	store := NewStateStore(t.TempDir())
	require.NoError(t, store.WriteLastRun(LastRun{Status: "pass"}))
	require.NoError(t, store.Reset())

	last, err := store.ReadLastRun()
	require.NoError(t, err)
	assert.Nil(t, last)
}
