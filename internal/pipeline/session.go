package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/caption-studio/pkg/apperr"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

// UpdateParams changes the params used by the next caption request. Changing
// a value while captions are shown discards them.
func (o *implOrchestrator) UpdateParams(update models.ParamsUpdate) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.fetchingLocked() {
		return apperr.Validation("update params", "a request is already in progress")
	}

	next, err := update.Apply(o.params).Normalize()
	if err != nil {
		return err
	}
	if next == o.params {
		return nil
	}

	o.params = next
	if o.state == StateCaptionsReady {
		o.clearCandidatesLocked()
		o.state = StateTranscriptReady
	}
	return nil
}

// SelectCandidate marks the candidate at index as the chosen caption.
func (o *implOrchestrator) SelectCandidate(index int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if index < 0 || index >= len(o.candidates) {
		return apperr.Validation("select candidate", "index %d out of range [0,%d)", index, len(o.candidates))
	}
	o.selected = index
	return nil
}

// Reset abandons the session. An outstanding request is canceled and its
// response will be discarded.
func (o *implOrchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.epoch++
	o.endLocked()
	o.state = StateIdle
	o.failedStage = ""
	o.cues = nil
	o.clearCandidatesLocked()
	o.params = models.DefaultParams()
	o.err = nil
}

// Snapshot returns a copy of the session state.
func (o *implOrchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	return Snapshot{
		State:       o.state,
		FailedStage: o.failedStage,
		Epoch:       o.epoch,
		Cues:        models.CloneCues(o.cues),
		Candidates:  append([]string(nil), o.candidates...),
		Selected:    o.selected,
		Params:      o.params,
		Err:         o.err,
	}
}

func (o *implOrchestrator) fetchingLocked() bool {
	return o.state == StateFetchingTranscript || o.state == StateFetchingCaptions
}

// beginLocked starts a new request epoch and returns a context canceled by Reset.
func (o *implOrchestrator) beginLocked(ctx context.Context) (uint64, context.Context) {
	o.epoch++
	reqCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	return o.epoch, reqCtx
}

func (o *implOrchestrator) endLocked() {
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

func (o *implOrchestrator) failLocked(stage Stage, err error) {
	o.state = StateFailed
	o.failedStage = stage
	o.err = err
	o.clearCandidatesLocked()
}

func (o *implOrchestrator) clearCandidatesLocked() {
	o.candidates = nil
	o.selected = NoSelection
}
