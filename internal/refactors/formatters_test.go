package refactors

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormatters(t *testing.T) {
	fs := DefaultFormatters()

	require.Len(t, fs, 2)
	assert.Equal(t, "ruff", fs[0].Name)
	assert.Equal(t, []string{"ruff", "check", ".", "--fix"}, fs[0].Command)
	assert.Equal(t, "biome", fs[1].Name)
	assert.Contains(t, fs[1].Languages, "typescript")
}

func TestRun_SelectsByLanguage(t *testing.T) {
	formatters := []Formatter{
		{Name: "py", Command: []string{"vibe-sweeper-missing-tool"}, Languages: []string{"python"}},
		{Name: "web", Command: []string{"vibe-sweeper-missing-tool"}, Languages: []string{"css", "html"}},
	}

	tests := []struct {
		name      string
		languages map[string][]string
		want      []string
	}{
		{"none", map[string][]string{}, nil},
		{"python only", map[string][]string{"python": {"a.py"}}, []string{"py"}},
		{"web only", map[string][]string{"html": {"a.html"}}, []string{"web"}},
		{"both keep order", map[string][]string{"css": {"a.css"}, "python": {"a.py"}}, []string{"py", "web"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Run(context.Background(), t.TempDir(), tt.languages, formatters)

			var names []string
			for _, r := range results {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestRun_MissingExecutable(t *testing.T) {
	formatters := []Formatter{
		{Name: "ghost", Command: []string{"vibe-sweeper-missing-tool", "--fix"}, Languages: []string{"python"}},
	}

	results := Run(context.Background(), t.TempDir(), map[string][]string{"python": nil}, formatters)

	require.Len(t, results, 1)
	require.NotNil(t, results[0].Result)
	assert.Equal(t, ReturnCodeNotFound, results[0].Result.ReturnCode)
	assert.Equal(t, "command not found", results[0].Result.Stderr)
	assert.Equal(t, []string{"vibe-sweeper-missing-tool", "--fix"}, results[0].Result.Command)
}

func TestRunCmd_CapturesExitCodeAndOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0644))

	res := runCmd(context.Background(), []string{"sh", "-c", "ls; echo oops >&2; exit 3"}, dir)

	assert.Equal(t, 3, res.ReturnCode)
	assert.Contains(t, res.Stdout, "marker.txt")
	assert.Contains(t, res.Stderr, "oops")

	res = runCmd(context.Background(), []string{"sh", "-c", "true"}, dir)
	assert.Equal(t, 0, res.ReturnCode)
}

func TestRunCmd_EmptyCommand(t *testing.T) {
	res := runCmd(context.Background(), nil, t.TempDir())
	assert.Equal(t, ReturnCodeNotFound, res.ReturnCode)
}
