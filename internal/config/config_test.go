package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "git-clang-format", cfg.ClangFormatPath)
	assert.Equal(t, "ruff", cfg.RuffPath)
	assert.Equal(t, "mypy", cfg.MypyPath)
	assert.Equal(t, []string{"test/unittests/lit.cfg.py"}, cfg.ExcludeFiles)
	assert.Equal(t, ".cicheck/run", cfg.StateDir)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "cicheck.yml")
	require.NoError(t, os.WriteFile(path, []byte("ruff_path: /opt/ruff\nstate_dir: /tmp/run\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/ruff", cfg.RuffPath)
	assert.Equal(t, "/tmp/run", cfg.StateDir)
	// Untouched fields keep their defaults.
	assert.Equal(t, "mypy", cfg.MypyPath)
	assert.Equal(t, "git-clang-format", cfg.ClangFormatPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "cicheck.yml")
	require.NoError(t, os.WriteFile(path, []byte("mypy_path: /from/file\n"), 0o644))
	t.Setenv(EnvMypyPath, "/from/env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.MypyPath)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cicheck.yml")
	require.NoError(t, os.WriteFile(path, []byte("{ unclosed: flow"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWithoutExcluded(t *testing.T) {
	cfg := Default()
	got := cfg.WithoutExcluded([]string{"a.py", "test/unittests/lit.cfg.py", "b.py"})
	assert.Equal(t, []string{"a.py", "b.py"}, got)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvClangFormatPath, EnvRuffPath, EnvMypyPath} {
		t.Setenv(key, "")
	}
}
