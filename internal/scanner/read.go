package scanner

import (
	"log/slog"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadFileText returns the file content as UTF-8 text. Content that is not
// valid UTF-8 is decoded as Latin-1. Any failure yields "", which the
// detectors treat as a file with nothing to report.
func ReadFileText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("reading file failed", "path", path, "error", err)
		return ""
	}

	if utf8.Valid(data) {
		return string(data)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		slog.Debug("decoding file failed", "path", path, "error", err)
		return ""
	}
	return string(decoded)
}
