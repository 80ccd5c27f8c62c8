package checker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StateStore persists per-tool results and the last-run summary so CI
// steps and `cicheck report` can read back what happened.
type StateStore struct {
	baseDir string
}

// NewStateStore creates a store at the given base directory, e.g.
// .cicheck/run.
func NewStateStore(baseDir string) *StateStore {
	return &StateStore{baseDir: baseDir}
}

// LastRun summarizes one runner invocation.
// Matches the .cicheck/run/last-run.json schema.
type LastRun struct {
	Status string   `json:"status"` // "pass" or "fail"
	Tools  []string `json:"tools"`  // ordered list of tools dispatched
	Failed []string `json:"failed"` // tools that were not Clean
}

func (s *StateStore) lastRunPath() string {
	return filepath.Join(s.baseDir, "last-run.json")
}

// ReadLastRun loads the last run summary. A missing file is clean
// state, not an error.
func (s *StateStore) ReadLastRun() (*LastRun, error) {
	f, err := os.Open(s.lastRunPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening last run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var last LastRun
	if err := json.NewDecoder(f).Decode(&last); err != nil {
		return nil, fmt.Errorf("decoding last run: %w", err)
	}
	return &last, nil
}

// ReadResult loads the persisted result for one tool, or nil if none
// was recorded.
func (s *StateStore) ReadResult(tool string) (*Result, error) {
	f, err := os.Open(filepath.Join(s.baseDir, "tools", tool+".json"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var res Result
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WriteLastRun saves the run summary.
func (s *StateStore) WriteLastRun(last LastRun) error {
	return s.writeJSON(s.lastRunPath(), last)
}

// WriteResult saves one tool's result.
func (s *StateStore) WriteResult(res Result) error {
	return s.writeJSON(filepath.Join(s.baseDir, "tools", res.Tool+".json"), res)
}

// Reset clears all recorded state.
func (s *StateStore) Reset() error {
	return os.RemoveAll(s.baseDir)
}

func (s *StateStore) writeJSON(path string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
