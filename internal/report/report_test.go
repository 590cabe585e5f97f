package report

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-sweeper/vibe-sweeper/internal/refactors"
	"github.com/vibe-sweeper/vibe-sweeper/internal/types"
)

func TestBuild_NoFindings(t *testing.T) {
	root := t.TempDir()

	report := Build(root, []string{"test1.py", "test2.py"}, nil, nil)

	assert.Contains(t, report, "# vibe-sweeper report")
	assert.Contains(t, report, "Files scanned: **2**")
	assert.Contains(t, report, "Issues detected: **0**")
	assert.Contains(t, report, "Looking clean")
	assert.True(t, strings.HasSuffix(report, NoIssuesMessage))
	assert.NotContains(t, report, "## Formatters")
}

func TestBuild_ExactLayout(t *testing.T) {
	root := t.TempDir()
	findings := []types.Finding{
		types.AIPhraseFinding{Path: "a.py", Line: 5, Phrase: "as an ai language model"},
		types.LongCommentBlockFinding{Path: "b.js", StartLine: 10, EndLine: 35, Lines: 26, Preview: "// x"},
	}

	report := Build(root, []string{"a.py", "b.js"}, findings, nil)

	want := strings.Join([]string{
		"# vibe-sweeper report",
		"",
		"Root: `" + root + "`",
		"",
		"## Summary",
		"",
		"- Files scanned: **2**",
		"- Issues detected: **2**",
		"",
		"## Findings",
		"",
		"- `a.py`: line 5 – AI phrase: `as an ai language model`",
		"- `b.js`: lines 10-35 – long comment block (26 lines)",
	}, "\n")
	assert.Equal(t, want, report)
}

func TestBuild_PreservesFindingOrder(t *testing.T) {
	findings := []types.Finding{
		types.AIPhraseFinding{Path: "z.py", Line: 10, Phrase: "in this code snippet"},
		types.AIPhraseFinding{Path: "a.py", Line: 2, Phrase: "as an ai language model"},
		types.AIPhraseFinding{Path: "a.py", Line: 2, Phrase: "as an ai language model"},
	}

	report := Build(t.TempDir(), []string{"a.py", "z.py"}, findings, nil)

	z := strings.Index(report, "`z.py`: line 10")
	a := strings.Index(report, "`a.py`: line 2")
	require.NotEqual(t, -1, z)
	require.NotEqual(t, -1, a)
	assert.Less(t, z, a)
	assert.Equal(t, 2, strings.Count(report, "`a.py`: line 2"))
	assert.Contains(t, report, "Issues detected: **3**")
}

func TestBuild_UnknownKindFallback(t *testing.T) {
	findings := []types.Finding{
		types.UnknownFinding{Path: "c.ts", KindName: "todo_marker"},
	}

	report := Build(t.TempDir(), []string{"c.ts"}, findings, nil)

	assert.True(t, strings.HasSuffix(report, "- `c.ts`: todo_marker"))
}

func TestBuild_Formatters(t *testing.T) {
	formatters := []refactors.ToolResult{
		{Name: "ruff", Result: &refactors.Result{ReturnCode: 0}},
		{Name: "broken", Result: nil},
		{Name: "biome", Result: &refactors.Result{ReturnCode: -1, Stderr: "command not found"}},
	}

	report := Build(t.TempDir(), []string{"test.py"}, nil, formatters)

	assert.Contains(t, report, "## Formatters\n\n- **ruff**: return code `0`\n- **biome**: return code `-1`\n\n## Findings")
	assert.NotContains(t, report, "broken")
}

func TestBuild_AllFormattersSkippedKeepsHeading(t *testing.T) {
	formatters := []refactors.ToolResult{
		{Name: "ruff", Result: nil},
		{Name: "biome", Result: nil},
	}

	report := Build(t.TempDir(), []string{"test.py"}, nil, formatters)

	assert.Contains(t, report, "- Issues detected: **0**\n\n## Formatters\n\n\n## Findings\n\n"+NoIssuesMessage)
	assert.NotContains(t, report, "ruff")
	assert.NotContains(t, report, "biome")
}

func TestBuild_EmptyFormattersOmitsSection(t *testing.T) {
	report := Build(t.TempDir(), nil, nil, []refactors.ToolResult{})
	assert.NotContains(t, report, "## Formatters")
}

func TestBuild_RootIsAbsolute(t *testing.T) {
	report := Build(".", nil, nil, nil)

	abs, err := filepath.Abs(".")
	require.NoError(t, err)
	assert.Contains(t, report, "Root: `"+abs+"`")
}

func TestBuild_Idempotent(t *testing.T) {
	root := t.TempDir()
	files := []string{"a.py"}
	findings := []types.Finding{
		types.AIPhraseFinding{Path: "a.py", Line: 1, Phrase: "i'm sorry, but"},
		types.LongCommentBlockFinding{Path: "a.py", StartLine: 2, EndLine: 30, Lines: 29},
	}
	formatters := []refactors.ToolResult{{Name: "ruff", Result: &refactors.Result{ReturnCode: 1}}}

	assert.Equal(t,
		Build(root, files, findings, formatters),
		Build(root, files, findings, formatters))
}

func TestBasicStats(t *testing.T) {
	stats := BasicStats([]string{"a", "b", "c"}, []types.Finding{types.UnknownFinding{}})
	assert.Equal(t, Stats{FileCount: 3, IssueCount: 1}, stats)
}
