package scanner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vibe-sweeper/vibe-sweeper/internal/config"
	"github.com/vibe-sweeper/vibe-sweeper/internal/detectors"
	"github.com/vibe-sweeper/vibe-sweeper/internal/types"
)

// Result is everything a scan produced.
type Result struct {
	// Files are all scanned files, including ones with no readable text.
	Files []string

	// Findings from every file, in file order, and within a file in
	// detector order.
	Findings []types.Finding
}

// Collect walks root, reads each file and runs the default detectors
// configured by cfg over it.
func Collect(ctx context.Context, root string, cfg *config.Config) (*Result, error) {
	slog.Debug("scan config", "root", root, "config", cfg.String())
	return CollectWith(ctx, root, cfg.Exclude, detectors.Default(cfg.AIPhrases, cfg.MaxCommentBlockLines))
}

// CollectWith is Collect with an explicit detector list.
func CollectWith(ctx context.Context, root string, exclude []string, ds []detectors.Detector) (*Result, error) {
	log := slog.With("scan_id", uuid.NewString())
	startTime := time.Now()

	files, err := WalkProject(ctx, root, exclude)
	if err != nil {
		return nil, err
	}
	log.Debug("walked project", "root", root, "files", len(files))

	result := &Result{Files: files}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text := ReadFileText(path)
		if text == "" {
			continue
		}

		for _, d := range ds {
			found := d.Detect(path, text)
			if len(found) > 0 {
				log.Debug("detector reported findings", "detector", d.Name(), "path", path, "count", len(found))
			}
			result.Findings = append(result.Findings, found...)
		}
	}

	log.Info("scan complete",
		"files", len(result.Files),
		"findings", len(result.Findings),
		"duration", time.Since(startTime))

	return result, nil
}
