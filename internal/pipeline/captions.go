package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/caption-studio/pkg/apperr"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

const opSubmitCaptions = "submit captions"

// SubmitCaptions requests caption candidates for the stored transcript.
func (o *implOrchestrator) SubmitCaptions(ctx context.Context, params models.GenerationParams) error {
	params, err := params.Normalize()
	if err != nil {
		return err
	}

	o.mu.Lock()
	if !o.captionsAllowedLocked() {
		state := o.state
		o.mu.Unlock()
		return apperr.Validation(opSubmitCaptions, "no transcript available (state %s)", state)
	}
	cues := models.CloneCues(o.cues)
	o.params = params
	o.clearCandidatesLocked()
	o.err = nil
	o.failedStage = ""
	o.state = StateFetchingCaptions
	epoch, reqCtx := o.beginLocked(ctx)
	o.mu.Unlock()

	o.logger.Info(ctx, "Requesting %d %s captions in %s", params.Count, params.Style, params.Language)
	candidates, err := o.captions.GenerateCaptions(reqCtx, cues, params)

	o.mu.Lock()
	defer o.mu.Unlock()
	if epoch != o.epoch {
		o.logger.Debug(ctx, "Discarding caption response from epoch %d", epoch)
		return ErrStaleResponse
	}
	o.endLocked()

	if err != nil {
		o.failLocked(StageCaptions, err)
		o.logger.Error(ctx, "Caption request failed: %v", err)
		return err
	}

	if len(candidates) > params.Count {
		candidates = candidates[:params.Count]
	}
	o.candidates = append([]string(nil), candidates...)
	if len(o.candidates) > 0 {
		o.selected = 0
	}
	o.state = StateCaptionsReady
	o.logger.Info(ctx, "Captions ready: %d candidates", len(o.candidates))
	return nil
}

func (o *implOrchestrator) captionsAllowedLocked() bool {
	if len(o.cues) == 0 {
		return false
	}
	switch o.state {
	case StateTranscriptReady, StateCaptionsReady:
		return true
	case StateFailed:
		return o.failedStage == StageCaptions
	}
	return false
}
