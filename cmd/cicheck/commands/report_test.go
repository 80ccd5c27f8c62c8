package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sz-Ltc/CICD-Test-v2/internal/checker"
)

func TestReportCommand_NoState(t *testing.T) {
	cfgPath, _ := writeConfigFile(t)

	out, err := runRoot(t, "report", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No run state found.")
}

func TestReportCommand_ShowsLastRun(t *testing.T) {
	cfgPath, stateDir := writeConfigFile(t)
	store := checker.NewStateStore(stateDir)
	require.NoError(t, store.WriteLastRun(checker.LastRun{
		Status: "fail",
		Tools:  []string{"ruff", "clang-format"},
		Failed: []string{"ruff"},
	}))

	out, err := runRoot(t, "report", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Status: fail")
	assert.Contains(t, out, "- ruff")
}

func TestReportCommand_JSON(t *testing.T) {
	cfgPath, stateDir := writeConfigFile(t)
	store := checker.NewStateStore(stateDir)
	require.NoError(t, store.WriteLastRun(checker.LastRun{Status: "pass", Tools: []string{"mypy"}}))

	out, err := runRoot(t, "report", "--config", cfgPath, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "pass"`)
	assert.Contains(t, out, `"mypy"`)
}
