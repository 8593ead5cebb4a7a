package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/caption-studio/pkg/apperr"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

var captionSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

// GenerateCaptions asks Gemini for params.Count caption variations.
func (g *implGenerator) GenerateCaptions(ctx context.Context, cues []models.Cue, params models.GenerationParams) ([]string, error) {
	const op = "generate captions"

	if err := params.Validate(); err != nil {
		return nil, err
	}
	text := transcriptText(cues)
	if text == "" {
		return nil, apperr.Validation(op, "transcript is empty, cannot generate captions")
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   captionSchema,
		Temperature:      genai.Ptr[float32](0.9),
	}

	g.logger.Info(ctx, "Starting caption generation (style: %s, language: %s, count: %d)", params.Style, params.Language, params.Count)
	out, err := g.callGemini(ctx, op, genai.Text(buildCaptionPrompt(text, params)), cfg)
	if err != nil {
		return nil, err
	}

	captions, err := parseCaptions(out, params.Count)
	if err != nil {
		return nil, apperr.Format(op, err)
	}
	g.logger.Info(ctx, "Generated %d captions", len(captions))
	return captions, nil
}

// parseCaptions trims and NFC-normalizes entries, drops empty ones and keeps
// at most limit.
func parseCaptions(text string, limit int) ([]string, error) {
	var raw []string
	if err := decodeJSON(text, &raw); err != nil {
		return nil, fmt.Errorf("invalid format received for captions, could not parse JSON list: %w", err)
	}

	captions := make([]string, 0, len(raw))
	for _, c := range raw {
		if c = norm.NFC.String(strings.TrimSpace(c)); c != "" {
			captions = append(captions, c)
		}
	}
	if len(captions) == 0 {
		return nil, errors.New("caption list is empty after processing")
	}
	if len(captions) > limit {
		captions = captions[:limit]
	}
	return captions, nil
}
