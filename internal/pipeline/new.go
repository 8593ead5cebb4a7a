package pipeline

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/caption-studio/internal/logger"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

type implOrchestrator struct {
	transcripts TranscriptService
	captions    CaptionService
	logger      logger.Logger

	mu          sync.Mutex
	state       State
	failedStage Stage
	epoch       uint64
	cancel      context.CancelFunc
	cues        []models.Cue
	candidates  []string
	selected    int
	params      models.GenerationParams
	err         error
}

// New creates an idle Orchestrator with default generation params.
func New(transcripts TranscriptService, captions CaptionService, log logger.Logger) Orchestrator {
	return &implOrchestrator{
		transcripts: transcripts,
		captions:    captions,
		logger:      log,
		state:       StateIdle,
		selected:    NoSelection,
		params:      models.DefaultParams(),
	}
}
