package pipeline

import (
	"errors"

	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

// State is the orchestrator lifecycle position.
type State string

const (
	StateIdle               State = "idle"
	StateFetchingTranscript State = "fetching_transcript"
	StateTranscriptReady    State = "transcript_ready"
	StateFetchingCaptions   State = "fetching_captions"
	StateCaptionsReady      State = "captions_ready"
	StateFailed             State = "failed"
)

// Stage tells which request a failure belongs to.
type Stage string

const (
	StageTranscript Stage = "transcript"
	StageCaptions   Stage = "captions"
)

// NoSelection marks an empty candidate selection.
const NoSelection = -1

// ErrStaleResponse is returned to a caller whose response arrived after the
// session moved on. The response is discarded.
var ErrStaleResponse = errors.New("pipeline: response discarded, session changed")

// Snapshot is a point-in-time copy of the orchestrator state.
type Snapshot struct {
	State       State
	FailedStage Stage
	Epoch       uint64
	Cues        []models.Cue
	Candidates  []string
	Selected    int
	Params      models.GenerationParams
	Err         error
}

// Fetching reports whether a remote call is outstanding.
func (s Snapshot) Fetching() bool {
	return s.State == StateFetchingTranscript || s.State == StateFetchingCaptions
}

// SelectedCaption returns the selected candidate, if any.
func (s Snapshot) SelectedCaption() (string, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Candidates) {
		return "", false
	}
	return s.Candidates[s.Selected], true
}
