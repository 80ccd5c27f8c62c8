package checker

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// clangFormatExts are the suffixes git-clang-format is responsible
// for.
var clangFormatExts = map[string]bool{
	".cpp":  true,
	".c":    true,
	".cc":   true,
	".h":    true,
	".hpp":  true,
	".hxx":  true,
	".cxx":  true,
	".inc":  true,
	".cppm": true,
	".cl":   true,
}

// Extensionless files under this prefix are headers without a
// conventional suffix.
const extensionlessHeaderPrefix = "libcxx/include"

// ClangFormat wraps git-clang-format in diff mode over the C/C++
// subset of the changed files.
type ClangFormat struct {
	Path     string
	StartRev string
	EndRev   string
	Verbose  bool
	Out      io.Writer
}

func (c *ClangFormat) Name() string { return "clang-format" }

func (c *ClangFormat) FriendlyName() string { return "C/C++ code formatter" }

func (c *ClangFormat) Category() string { return "formatting" }

func (c *ClangFormat) Filter(paths []string) []string {
	var filtered []string
	for _, p := range paths {
		ext := filepath.Ext(p)
		switch {
		case clangFormatExts[ext]:
			filtered = append(filtered, p)
		case ext == "" && strings.HasPrefix(p, extensionlessHeaderPrefix):
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (c *ClangFormat) Probe(ctx context.Context) bool {
	res, err := runTool(ctx, c.Path, "-h")
	return err == nil && res.exitCode == 0
}

func (c *ClangFormat) Check(ctx context.Context, changedFiles []string) Result {
	cppFiles := c.Filter(changedFiles)
	if len(cppFiles) == 0 {
		return Result{Tool: c.Name(), Outcome: Clean, Note: "no C/C++ files changed"}
	}

	args := []string{"--diff"}
	if c.StartRev != "" && c.EndRev != "" {
		args = append(args, c.StartRev, c.EndRev)
	}

	// Pass the extension set explicitly so git-clang-format does not
	// re-apply its own filtering rules on top of ours.
	args = append(args, "--extensions", strings.Join(distinctExtensions(cppFiles), ","))
	args = append(args, "--")
	args = append(args, cppFiles...)

	command := c.Path + " " + strings.Join(args, " ")
	if c.Verbose {
		fmt.Fprintf(c.Out, "Running: %s\n", command)
	}

	res, err := runTool(ctx, c.Path, args...)
	if err != nil {
		return Result{
			Tool:    c.Name(),
			Outcome: InfraFailure,
			Command: command,
			Note:    fmt.Sprintf("starting %s: %v", c.Path, err),
		}
	}
	fmt.Fprint(c.Out, res.stderr)

	if res.exitCode != 0 {
		// Formatting needed, or the command otherwise failed.
		if c.Verbose {
			fmt.Fprintf(c.Out, "error: %s exited with code %d\n", c.Name(), res.exitCode)
			// Put the diff in the log so that it is viewable there.
			fmt.Fprintln(c.Out, res.stdout)
		}
		if res.stdout == "" {
			return Result{
				Tool:    c.Name(),
				Outcome: InfraFailure,
				Command: command,
				Note:    fmt.Sprintf("%s exited with code %d and no diff", c.Name(), res.exitCode),
			}
		}
		return Result{Tool: c.Name(), Outcome: NeedsChanges, Output: res.stdout, Command: command}
	}
	return Result{Tool: c.Name(), Outcome: Clean, Command: command}
}

// distinctExtensions returns the sorted set of extensions among
// files, without the leading period, since git-clang-format takes
// extensions without it.
func distinctExtensions(files []string) []string {
	seen := make(map[string]bool)
	for _, f := range files {
		seen[strings.TrimPrefix(filepath.Ext(f), ".")] = true
	}
	exts := make([]string, 0, len(seen))
	for ext := range seen {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
