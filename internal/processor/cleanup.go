package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a processed transcript out of the watched folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}
