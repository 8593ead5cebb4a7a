package pipeline

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/caption-studio/pkg/apperr"
)

const opSubmitTranscript = "submit transcript"

// SubmitTranscript fetches the transcript for url, replacing any previous
// session content. It blocks until the transcript service answers.
func (o *implOrchestrator) SubmitTranscript(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return apperr.Validation(opSubmitTranscript, "video url is required")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return apperr.Validation(opSubmitTranscript, "video url must start with http:// or https://")
	}

	o.mu.Lock()
	if o.fetchingLocked() {
		o.mu.Unlock()
		return apperr.Validation(opSubmitTranscript, "a request is already in progress")
	}
	o.cues = nil
	o.clearCandidatesLocked()
	o.err = nil
	o.failedStage = ""
	o.state = StateFetchingTranscript
	epoch, reqCtx := o.beginLocked(ctx)
	o.mu.Unlock()

	o.logger.Info(ctx, "Requesting transcript: %s", url)
	cues, err := o.transcripts.GenerateTranscript(reqCtx, url)

	o.mu.Lock()
	defer o.mu.Unlock()
	if epoch != o.epoch {
		o.logger.Debug(ctx, "Discarding transcript response from epoch %d", epoch)
		return ErrStaleResponse
	}
	o.endLocked()

	if err != nil {
		o.failLocked(StageTranscript, err)
		o.cues = nil
		o.logger.Error(ctx, "Transcript request failed: %v", err)
		return err
	}

	o.cues = cues
	o.state = StateTranscriptReady
	o.logger.Info(ctx, "Transcript ready: %d cues", len(cues))
	return nil
}
