package detectors

import (
	"strings"

	"github.com/vibe-sweeper/vibe-sweeper/internal/types"
)

// DefaultAIPhrases is used when no phrase list is configured.
var DefaultAIPhrases = []string{
	"as an ai language model",
	"in this code snippet",
	"this function is responsible for",
	"in this function, we will",
	"i'm sorry, but",
	"as a large language model",
}

// DetectAIPhrases reports every (line, phrase) pair where phrase is a
// substring of the lowercased line. A phrase repeated on one line is
// reported once; two different phrases on one line are reported twice.
// Findings are ordered by line, then by position in phrases.
//
// A nil phrases slice selects DefaultAIPhrases. An empty, non-nil slice
// matches nothing.
func DetectAIPhrases(path, text string, phrases []string) []types.Finding {
	if phrases == nil {
		phrases = DefaultAIPhrases
	}

	var results []types.Finding
	for i, line := range splitLines(strings.ToLower(text)) {
		for _, phrase := range phrases {
			if strings.Contains(line, phrase) {
				results = append(results, types.AIPhraseFinding{
					Path:   path,
					Line:   i + 1,
					Phrase: phrase,
				})
			}
		}
	}

	return results
}
