// Package detectors provides the line-oriented heuristics vibe-sweeper runs
// over each scanned file.
//
// # Detectors
//
// Current detectors:
//   - PhraseDetector: flags lines containing phrasing typical of
//     machine-generated text ("as an ai language model", ...)
//   - CommentBlockDetector: flags runs of consecutive comment lines longer
//     than a configured limit
//
// Both are pure functions of (path, text). They perform no I/O, hold no
// state between calls, and never fail: empty text yields no findings.
//
// # Line Classification
//
// Comment lines are recognized by prefix only. A line counts as a comment
// when its trimmed form starts with one of CommentPrefixes. There is no
// lexer, so a string literal starting with "#" is a comment here and a
// block comment body without a leading "*" is not.
//
//	// counted
//	# counted
//	 * counted
//	x := 1 // not counted, does not start with a prefix
package detectors
