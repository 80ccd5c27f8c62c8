// Package config resolves the cicheck configuration from defaults, an
// optional YAML file, and environment variables, in that order.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the external tool paths. They
// win over both the defaults and the config file.
const (
	EnvClangFormatPath = "CLANG_FORMAT_PATH"
	EnvRuffPath        = "RUFF_FORMAT_PATH"
	EnvMypyPath        = "MYPY_PATH"
)

// Config carries everything the checks need to know about their
// environment. It is populated once at startup and passed down;
// nothing re-reads the environment after that.
type Config struct {
	// ClangFormatPath is the git-clang-format binary to invoke.
	ClangFormatPath string `yaml:"clang_format_path"`
	// RuffPath is the ruff binary to invoke.
	RuffPath string `yaml:"ruff_path"`
	// MypyPath is the mypy binary to invoke.
	MypyPath string `yaml:"mypy_path"`
	// ExcludeFiles are paths dropped from the changed-file list before
	// the type checker filters it.
	ExcludeFiles []string `yaml:"exclude_files"`
	// StateDir is where run results are persisted.
	StateDir string `yaml:"state_dir"`
}

// Default returns the configuration used when no file and no
// environment overrides are present.
func Default() Config {
	return Config{
		ClangFormatPath: "git-clang-format",
		RuffPath:        "ruff",
		MypyPath:        "mypy",
		// Generated by lit at test time; never expected to typecheck.
		ExcludeFiles: []string{"test/unittests/lit.cfg.py"},
		StateDir:     ".cicheck/run",
	}
}

// Load builds the effective configuration. A missing file at path is
// not an error; the file is optional.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Optional file.
		case err != nil:
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// WithoutExcluded returns paths minus the configured exclusions,
// preserving input order.
func (c Config) WithoutExcluded(paths []string) []string {
	if len(c.ExcludeFiles) == 0 {
		return paths
	}
	excluded := make(map[string]bool, len(c.ExcludeFiles))
	for _, p := range c.ExcludeFiles {
		excluded[p] = true
	}
	var kept []string
	for _, p := range paths {
		if !excluded[p] {
			kept = append(kept, p)
		}
	}
	return kept
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvClangFormatPath); v != "" {
		c.ClangFormatPath = v
	}
	if v := os.Getenv(EnvRuffPath); v != "" {
		c.RuffPath = v
	}
	if v := os.Getenv(EnvMypyPath); v != "" {
		c.MypyPath = v
	}
}
