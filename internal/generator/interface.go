package generator

import (
	"context"

	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

// Generator produces transcripts and caption candidates with Gemini.
type Generator interface {
	GenerateTranscript(ctx context.Context, videoURL string) ([]models.Cue, error)
	GenerateCaptions(ctx context.Context, cues []models.Cue, params models.GenerationParams) ([]string, error)
}
