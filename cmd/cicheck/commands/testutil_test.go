package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runRoot executes the CLI with the given arguments, capturing all
// output.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeToolStub creates a fake external tool running the given shell
// body.
func writeToolStub(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

// writeConfigFile writes a .cicheck.yml with the state dir anchored
// in a temp dir, returning the config path and the state dir.
func writeConfigFile(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	stateDir := filepath.Join(dir, "run")
	cfgPath := filepath.Join(dir, "cicheck.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("state_dir: "+stateDir+"\n"), 0o644))
	return cfgPath, stateDir
}
