package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/caption-studio/pkg/apperr"
)

var errEmptyResponse = errors.New("empty response from Gemini")

// geminiGenerate is the production generateFunc.
func geminiGenerate(ctx context.Context, apiKey, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
	}
	return "", errEmptyResponse
}

// callGemini sends contents to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (g *implGenerator) callGemini(ctx context.Context, op string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", apperr.Network(op, err)
		}

		key, index := g.key()
		text, err := g.generate(ctx, key, g.model, contents, cfg)
		if err == nil {
			return text, nil
		}
		if isQuotaError(err) {
			g.logger.Warn(ctx, "Key %d rate limited, rotating...", index+1)
			g.rotateKey(index)
			lastErr = err
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", apperr.Network(op, err)
		}
		return "", &apperr.Error{Kind: apperr.KindService, Op: op, Message: fmt.Sprintf("Gemini API call failed: %v", err), Err: err}
	}

	return "", &apperr.Error{Kind: apperr.KindService, Op: op, Message: fmt.Sprintf("all API keys exhausted: %v", lastErr), Err: lastErr}
}

func (g *implGenerator) key() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey], g.currentKey
}

// rotateKey advances past index unless another caller already did.
func (g *implGenerator) rotateKey(index int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == index {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
