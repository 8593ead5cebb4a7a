package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/caption-studio/internal/export"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

// Process orchestrates conversion of a single transcript dump
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "Starting transcript conversion: %s", transcriptPath)

	artifacts, err := p.Convert(ctx, transcriptPath, p.cfg.Paths.Output)
	if err != nil {
		return err
	}

	if err := p.moveToArchived(ctx, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to move transcript to archived folder: %v", err)
	}

	p.logger.Info(ctx, "Conversion completed in %s: %s", time.Since(startTime).Round(time.Millisecond), strings.Join(artifacts.Paths(), ", "))
	return nil
}

// Convert reads transcriptPath and writes .srt (plus .txt/.docx per config) into outDir.
func (p *implProcessor) Convert(ctx context.Context, transcriptPath, outDir string) (export.Artifacts, error) {
	cues, err := ReadTranscript(transcriptPath)
	if err != nil {
		return export.Artifacts{}, err
	}
	p.logger.Debug(ctx, "Loaded %d cues from %s", len(cues), transcriptPath)

	base := strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))
	report := export.Report{
		Title:    base,
		Params:   models.DefaultParams(),
		Cues:     cues,
		Selected: -1,
	}
	if params, err := p.cfg.Captions.Params(); err == nil {
		report.Params = params
	}

	artifacts, err := export.WriteSession(outDir, base, report, export.Options{
		Subtitle: p.cfg.Subtitle.Options(),
		Txt:      p.cfg.Export.Txt,
		Docx:     p.cfg.Export.Docx,
	})
	if err != nil {
		return artifacts, fmt.Errorf("convert %s: %w", filepath.Base(transcriptPath), err)
	}
	return artifacts, nil
}
