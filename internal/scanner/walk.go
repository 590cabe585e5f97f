// Package scanner finds the files vibe-sweeper inspects, reads them, and
// runs the detectors over each one.
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIgnores are directory names never descended into.
var DefaultIgnores = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	".idea":        true,
	".vscode":      true,
	"__pycache__":  true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
}

// ExtLanguages maps the lowercase file extensions that are scanned to a language name.
var ExtLanguages = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".html": "html",
	".css":  "css",
	".json": "json",
}

// LanguageOf returns the language for path, or "unknown".
func LanguageOf(path string) string {
	if lang, ok := ExtLanguages[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return "unknown"
}

// WalkProject returns the absolute paths of all scannable files under root,
// in lexical order. exclude holds doublestar globs matched against the
// slash-separated path relative to root.
func WalkProject(ctx context.Context, root string, exclude []string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root path %q: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", absRoot)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal
			slog.Debug("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() && path != absRoot {
				return filepath.SkipDir
			}
			return nil
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			if path != absRoot && DefaultIgnores[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if _, ok := ExtLanguages[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		if excluded(filepath.ToSlash(relPath), exclude) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", absRoot, err)
	}

	return files, nil
}

func excluded(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

// DetectLanguages groups files by language, keeping input order within each group.
func DetectLanguages(files []string) map[string][]string {
	byLang := make(map[string][]string)
	for _, f := range files {
		lang := LanguageOf(f)
		byLang[lang] = append(byLang[lang], f)
	}
	return byLang
}
