package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIContract_Help(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}

	out := b.String()
	for _, sub := range []string{"commits", "format", "typing", "report", "version"} {
		if !strings.Contains(out, sub) {
			t.Errorf("expected %q in root help output", sub)
		}
	}
}

func TestCLIContract_Version(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(b.String(), "cicheck version") {
		t.Errorf("expected version banner, got %q", b.String())
	}
}

func TestCLIContract_CommitsRequiresRevs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(bytes.NewBufferString(""))
	cmd.SetErr(bytes.NewBufferString(""))
	cmd.SetArgs([]string{"commits"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error when --start-rev/--end-rev are missing")
	}
}
