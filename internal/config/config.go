// Package config loads vibe-sweeper rules: built-in defaults overlaid by an
// optional project YAML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ProjectFileName is looked up in the scan root when no config path is given.
const ProjectFileName = "vibe.yaml"

//go:embed default_rules.yaml
var defaultRules []byte

// Config holds the rules used by a scan.
type Config struct {
	// AIPhrases are matched case-insensitively as literal substrings.
	// Stored lowercase.
	AIPhrases []string `yaml:"ai_phrases"`

	// MaxCommentBlockLines is the longest comment block allowed.
	// Blocks with more lines are reported.
	// Default: 20, must be >= 1
	MaxCommentBlockLines int `yaml:"max_comment_block_lines"`

	// Exclude holds doublestar globs matched against root-relative,
	// slash-separated paths, e.g. "testdata/**" or "**/*.min.js".
	Exclude []string `yaml:"exclude"`
}

// Overrides is the partial form of Config read from a user file.
// Nil fields keep the current value.
type Overrides struct {
	AIPhrases            *[]string `yaml:"ai_phrases"`
	MaxCommentBlockLines *int      `yaml:"max_comment_block_lines"`
	Exclude              *[]string `yaml:"exclude"`
}

// Default returns the built-in rules.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultRules, &cfg); err != nil {
		return nil, fmt.Errorf("parsing default rules: %w", err)
	}
	cfg.AIPhrases = lowerAll(cfg.AIPhrases)
	return &cfg, nil
}

// Apply overlays every field set in o onto c.
func (c *Config) Apply(o Overrides) {
	if o.AIPhrases != nil {
		c.AIPhrases = lowerAll(*o.AIPhrases)
	}
	if o.MaxCommentBlockLines != nil {
		c.MaxCommentBlockLines = *o.MaxCommentBlockLines
	}
	if o.Exclude != nil {
		c.Exclude = *o.Exclude
	}
}

// Validate checks if the configuration has valid values
func (c *Config) Validate() error {
	if c.MaxCommentBlockLines < 1 {
		return fmt.Errorf("max_comment_block_lines must be at least 1 (got %d)", c.MaxCommentBlockLines)
	}
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// String returns a human-readable representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{AIPhrases: %d, MaxCommentBlockLines: %d, Exclude: %v}",
		len(c.AIPhrases), c.MaxCommentBlockLines, c.Exclude)
}

// Load returns the defaults overlaid by the YAML file at path.
// An empty path, or an empty file, yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		var o Overrides
		if err := yaml.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.Apply(o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ResolvePath picks the config file for a scan of root. An explicit path
// always wins and must exist; otherwise root/vibe.yaml is used when
// present. Returns "" when the defaults should be used.
func ResolvePath(root, explicit string) (string, error) {
	if explicit != "" {
		path, err := expandTilde(explicit)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file %s: %w", path, err)
		}
		return path, nil
	}

	candidate := filepath.Join(root, ProjectFileName)
	info, err := os.Stat(candidate)
	if err == nil && !info.IsDir() {
		return candidate, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("checking %s: %w", candidate, err)
	}
	return "", nil
}

func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func lowerAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
