package generator

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/caption-studio/internal/config"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
)

// generateFunc performs one GenerateContent call with a single API key and
// returns the concatenated text parts.
type generateFunc func(ctx context.Context, apiKey, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error)

type implGenerator struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int

	model    string
	limiter  *rate.Limiter
	logger   logger.Logger
	generate generateFunc
}

// ErrNoAPIKeys is returned by New when no Gemini key is configured.
var ErrNoAPIKeys = errors.New("generator: no Gemini API keys configured")

// New creates a Generator that rotates through the configured Gemini API keys.
func New(cfg config.GeminiConfig, log logger.Logger) (Generator, error) {
	return newGenerator(cfg, log, geminiGenerate)
}

func newGenerator(cfg config.GeminiConfig, log logger.Logger, fn generateFunc) (*implGenerator, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, ErrNoAPIKeys
	}
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}
	return &implGenerator{
		apiKeys:  append([]string(nil), cfg.APIKeys...),
		model:    cfg.Model,
		limiter:  rate.NewLimiter(limit, 1),
		logger:   log,
		generate: fn,
	}, nil
}
