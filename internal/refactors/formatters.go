package refactors

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"path/filepath"
	"slices"
)

// ReturnCodeNotFound is reported when a formatter executable is not on PATH.
const ReturnCodeNotFound = -1

// Formatter describes an external tool run over the project root.
type Formatter struct {
	Name      string
	Command   []string
	Languages []string // run when any of these languages is present
}

// Result is the outcome of running one formatter.
// A non-zero ReturnCode is data, not an error.
type Result struct {
	Command    []string
	ReturnCode int
	Stdout     string
	Stderr     string
}

// ToolResult pairs a formatter name with its result. A nil Result marks
// an entry that could not be produced; renderers skip it.
type ToolResult struct {
	Name   string
	Result *Result
}

// DefaultFormatters returns the built-in formatters in run order.
func DefaultFormatters() []Formatter {
	return []Formatter{
		{
			Name:      "ruff",
			Command:   []string{"ruff", "check", ".", "--fix"},
			Languages: []string{"python"},
		},
		{
			Name:      "biome",
			Command:   []string{"biome", "check", ".", "--apply"},
			Languages: []string{"javascript", "typescript", "html", "css", "json"},
		},
	}
}

// Run executes, in order, each formatter whose languages intersect the
// detected ones. Formatters are best effort: failures are captured in
// the returned results rather than returned as errors.
func Run(ctx context.Context, root string, languages map[string][]string, formatters []Formatter) []ToolResult {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	var results []ToolResult
	for _, f := range formatters {
		if !applies(f, languages) {
			continue
		}
		res := runCmd(ctx, f.Command, absRoot)
		slog.Debug("formatter finished", "formatter", f.Name, "returncode", res.ReturnCode)
		results = append(results, ToolResult{Name: f.Name, Result: res})
	}
	return results
}

func applies(f Formatter, languages map[string][]string) bool {
	return slices.ContainsFunc(f.Languages, func(lang string) bool {
		_, ok := languages[lang]
		return ok
	})
}

// runCmd executes cmd in dir and captures its output.
func runCmd(ctx context.Context, command []string, dir string) *Result {
	result := &Result{Command: command}

	if len(command) == 0 {
		result.ReturnCode = ReturnCodeNotFound
		result.Stderr = "command not found"
		return result
	}

	// Check if the tool is available
	if _, err := exec.LookPath(command[0]); err != nil {
		result.ReturnCode = ReturnCodeNotFound
		result.Stderr = "command not found"
		return result
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ReturnCode = 0
	case errors.As(err, &exitErr):
		result.ReturnCode = exitErr.ExitCode()
	default:
		// Start failures (permissions, bad dir) look like a missing tool
		result.ReturnCode = ReturnCodeNotFound
		if result.Stderr == "" {
			result.Stderr = err.Error()
		}
	}

	return result
}
