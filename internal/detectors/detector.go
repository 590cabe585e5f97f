package detectors

import "github.com/vibe-sweeper/vibe-sweeper/internal/types"

// Detector inspects the text of one file and returns what it found.
type Detector interface {
	// Name returns the unique identifier for this detector.
	Name() string

	// Detect scans text belonging to path. It must not retain text.
	Detect(path, text string) []types.Finding
}

// PhraseDetector adapts DetectAIPhrases to the Detector interface.
type PhraseDetector struct {
	// Phrases to look for. Nil means DefaultAIPhrases.
	Phrases []string
}

// Name implements Detector.
func (d *PhraseDetector) Name() string {
	return "ai_phrase_detector"
}

// Detect implements Detector.
func (d *PhraseDetector) Detect(path, text string) []types.Finding {
	return DetectAIPhrases(path, text, d.Phrases)
}

// CommentBlockDetector adapts DetectLongCommentBlocks to the Detector interface.
type CommentBlockDetector struct {
	// MaxLines is the longest block allowed; longer blocks are reported.
	MaxLines int
}

// Name implements Detector.
func (d *CommentBlockDetector) Name() string {
	return "comment_block_detector"
}

// Detect implements Detector.
func (d *CommentBlockDetector) Detect(path, text string) []types.Finding {
	return DetectLongCommentBlocks(path, text, d.MaxLines)
}

// Default returns the detectors in the order their findings are reported:
// phrases first, then comment blocks.
func Default(phrases []string, maxCommentLines int) []Detector {
	return []Detector{
		&PhraseDetector{Phrases: phrases},
		&CommentBlockDetector{MaxLines: maxCommentLines},
	}
}
