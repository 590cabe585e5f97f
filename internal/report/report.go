// Package report renders scan results as a Markdown document.
//
// The rendered text is the tool's only output format, so its headings and
// line shapes are stable: CI jobs grep for them.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vibe-sweeper/vibe-sweeper/internal/refactors"
	"github.com/vibe-sweeper/vibe-sweeper/internal/types"
)

// NoIssuesMessage is printed in place of the findings list when nothing was found.
const NoIssuesMessage = "No issues detected. Looking clean. ✨"

// Stats are the summary counts shown at the top of a report.
type Stats struct {
	FileCount  int
	IssueCount int
}

// BasicStats counts scanned files and findings.
func BasicStats(files []string, findings []types.Finding) Stats {
	return Stats{
		FileCount:  len(files),
		IssueCount: len(findings),
	}
}

// Build renders the Markdown report. Findings are listed in the order
// given; nothing is sorted, grouped or deduplicated. formatters may be nil,
// in which case no Formatters section is written.
func Build(root string, files []string, findings []types.Finding, formatters []refactors.ToolResult) string {
	stats := BasicStats(files, findings)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("# vibe-sweeper report")
	add("")
	add("Root: `%s`", root)
	add("")
	add("## Summary")
	add("")
	add("- Files scanned: **%d**", stats.FileCount)
	add("- Issues detected: **%d**", stats.IssueCount)
	add("")

	if len(formatters) > 0 {
		add("## Formatters")
		add("")
		for _, tr := range formatters {
			if tr.Result == nil {
				continue
			}
			add("- **%s**: return code `%d`", tr.Name, tr.Result.ReturnCode)
		}
		add("")
	}

	add("## Findings")
	add("")

	if len(findings) == 0 {
		add("%s", NoIssuesMessage)
		return strings.Join(lines, "\n")
	}

	for _, f := range findings {
		lines = append(lines, formatFinding(f))
	}

	return strings.Join(lines, "\n")
}

// formatFinding renders one findings-list entry.
func formatFinding(f types.Finding) string {
	switch f := f.(type) {
	case types.AIPhraseFinding:
		return fmt.Sprintf("- `%s`: line %d – AI phrase: `%s`", f.Path, f.Line, f.Phrase)
	case types.LongCommentBlockFinding:
		return fmt.Sprintf("- `%s`: lines %d-%d – long comment block (%d lines)", f.Path, f.StartLine, f.EndLine, f.Lines)
	default:
		return fmt.Sprintf("- `%s`: %s", f.File(), f.Kind())
	}
}
