package detectors

import (
	"strings"

	"github.com/vibe-sweeper/vibe-sweeper/internal/types"
)

// previewLines caps how many block lines are copied into a finding.
const previewLines = 5

// CommentPrefixes are the tokens that mark a trimmed line as a comment.
var CommentPrefixes = []string{"#", "//", "/*", "*"}

// numberedLine is a raw source line and its 1-based position.
type numberedLine struct {
	num  int
	text string
}

// DetectLongCommentBlocks groups consecutive comment lines into blocks and
// reports each block with strictly more than maxLines lines. Any
// non-comment line, including a blank one, ends the current block.
// A block still open at end of text is evaluated too.
func DetectLongCommentBlocks(path, text string, maxLines int) []types.Finding {
	var blocks [][]numberedLine
	var current []numberedLine

	for i, line := range splitLines(text) {
		if isCommentLine(line) {
			current = append(current, numberedLine{num: i + 1, text: line})
			continue
		}
		if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	var results []types.Finding
	for _, block := range blocks {
		if len(block) <= maxLines {
			continue
		}
		results = append(results, types.LongCommentBlockFinding{
			Path:      path,
			StartLine: block[0].num,
			EndLine:   block[len(block)-1].num,
			Lines:     len(block),
			Preview:   preview(block),
		})
	}

	return results
}

func isCommentLine(line string) bool {
	stripped := strings.TrimSpace(line)
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(stripped, prefix) {
			return true
		}
	}
	return false
}

// preview joins the first previewLines raw lines of a block.
func preview(block []numberedLine) string {
	n := min(len(block), previewLines)
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = block[i].text
	}
	return strings.Join(parts, "\n")
}
