package generator

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/caption-studio/pkg/apperr"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

const videoMIMEType = "video/mp4"

var transcriptSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"timestamp": {Type: genai.TypeString},
			"subtitle":  {Type: genai.TypeString},
		},
		Required: []string{"timestamp", "subtitle"},
	},
}

// GenerateTranscript asks Gemini to watch the video at videoURL and return
// timestamped subtitles.
func (g *implGenerator) GenerateTranscript(ctx context.Context, videoURL string) ([]models.Cue, error) {
	const op = "generate transcript"

	if !strings.HasPrefix(videoURL, "http") {
		return nil, apperr.Validation(op, "invalid video url %q", videoURL)
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{Text: transcriptPrompt},
			{FileData: &genai.FileData{FileURI: videoURL, MIMEType: videoMIMEType}},
		},
	}}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   transcriptSchema,
		Temperature:      genai.Ptr[float32](1.0),
	}

	g.logger.Info(ctx, "Starting transcript generation for: %s", videoURL)
	text, err := g.callGemini(ctx, op, contents, cfg)
	if err != nil {
		return nil, err
	}

	cues, err := parseTranscript(text)
	if err != nil {
		return nil, apperr.Format(op, err)
	}
	g.logger.Info(ctx, "Transcript generated: %d cues", len(cues))
	return cues, nil
}

// parseTranscript requires a list of objects that all carry timestamp and subtitle.
func parseTranscript(text string) ([]models.Cue, error) {
	var items []map[string]any
	if err := decodeJSON(text, &items); err != nil {
		return nil, fmt.Errorf("failed to decode transcript JSON: %w", err)
	}
	if items == nil {
		return nil, fmt.Errorf("transcript response is not a list")
	}

	cues := make([]models.Cue, 0, len(items))
	for i, item := range items {
		ts, okTS := item["timestamp"].(string)
		sub, okSub := item["subtitle"].(string)
		if !okTS || !okSub {
			return nil, fmt.Errorf("invalid transcript item format at index %d", i)
		}
		cues = append(cues, models.Cue{Timestamp: ts, Subtitle: sub})
	}
	return cues, nil
}
