package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

// TranscriptService turns a video URL into transcript cues.
type TranscriptService interface {
	GenerateTranscript(ctx context.Context, url string) ([]models.Cue, error)
}

// CaptionService generates caption candidates from transcript cues.
type CaptionService interface {
	GenerateCaptions(ctx context.Context, cues []models.Cue, params models.GenerationParams) ([]string, error)
}

// Orchestrator sequences one transcript request followed by any number of
// caption requests for a single session.
type Orchestrator interface {
	SubmitTranscript(ctx context.Context, url string) error
	SubmitCaptions(ctx context.Context, params models.GenerationParams) error
	UpdateParams(update models.ParamsUpdate) error
	SelectCandidate(index int) error
	Reset()
	Snapshot() Snapshot
}
