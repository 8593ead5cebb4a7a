package processor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/caption-studio/pkg/apperr"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

// ReadTranscript loads cues from a JSON file holding either a bare cue array
// or a {"transcript": [...]} envelope as returned by the transcript service.
func ReadTranscript(path string) ([]models.Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return DecodeTranscript(data)
}

// DecodeTranscript is ReadTranscript for in-memory data.
func DecodeTranscript(data []byte) ([]models.Cue, error) {
	const op = "decode transcript"

	var cues []models.Cue
	if err := json.Unmarshal(data, &cues); err == nil && cues != nil {
		return cues, nil
	}

	var envelope models.TranscriptResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, apperr.Format(op, fmt.Errorf("not a cue list or transcript envelope: %w", err))
	}
	if envelope.Error != "" {
		return nil, apperr.Service(op, 0, envelope.Error)
	}
	if envelope.Transcript == nil {
		return nil, apperr.Format(op, errors.New(`missing "transcript" list`))
	}
	return envelope.Transcript, nil
}
