package processor

import (
	"context"

	"github.com/nguyentantai21042004/caption-studio/internal/export"
)

// Processor turns transcript dumps into subtitle artifacts.
type Processor interface {
	// Process converts a dropped transcript into paths.output and archives the source.
	Process(ctx context.Context, transcriptPath string) error
	// Convert writes the artifacts for transcriptPath into outDir and leaves the source alone.
	Convert(ctx context.Context, transcriptPath, outDir string) (export.Artifacts, error)
}
