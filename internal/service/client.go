// Package service is the HTTP client for the transcript and caption services.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nguyentantai21042004/caption-studio/pkg/apperr"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

const (
	defaultTimeout          = 120 * time.Second
	defaultMaxResponseBytes = 8 << 20

	transcriptPath = "generate_transcript"
	captionPath    = "generate_caption"
)

// Config holds the client settings.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	MaxResponseBytes int64
}

// Client talks to a backend exposing /generate_transcript and /generate_caption.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds a Client. Zero Timeout and MaxResponseBytes use defaults.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = defaultMaxResponseBytes
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateTranscript requests the transcript of the video at videoURL.
func (c *Client) GenerateTranscript(ctx context.Context, videoURL string) ([]models.Cue, error) {
	const op = "generate transcript"

	fields, err := c.post(ctx, op, transcriptPath, models.TranscriptRequest{YoutubeLink: videoURL})
	if err != nil {
		return nil, err
	}

	raw, ok := fields["transcript"]
	if !ok {
		return nil, apperr.Format(op, errors.New(`response has no "transcript" field`))
	}
	var cues []models.Cue
	if err := json.Unmarshal(raw, &cues); err != nil {
		return nil, apperr.Format(op, fmt.Errorf(`"transcript" is not a list of cues: %w`, err))
	}
	if cues == nil {
		return nil, apperr.Format(op, errors.New(`"transcript" is null`))
	}
	return cues, nil
}

// GenerateCaptions requests caption candidates for cues.
func (c *Client) GenerateCaptions(ctx context.Context, cues []models.Cue, params models.GenerationParams) ([]string, error) {
	const op = "generate captions"

	body := models.CaptionRequest{
		Transcript:  cues,
		Style:       params.Style,
		Language:    params.Language,
		NumCaptions: params.Count,
	}
	fields, err := c.post(ctx, op, captionPath, body)
	if err != nil {
		return nil, err
	}

	raw, ok := fields["captions"]
	if !ok {
		return nil, apperr.Format(op, errors.New(`response has no "captions" field`))
	}
	var captions []string
	if err := json.Unmarshal(raw, &captions); err != nil {
		return nil, apperr.Format(op, fmt.Errorf(`"captions" is not a list of strings: %w`, err))
	}
	if captions == nil {
		return nil, apperr.Format(op, errors.New(`"captions" is null`))
	}
	return captions, nil
}

// post sends payload as JSON and returns the top-level fields of a successful
// response envelope.
func (c *Client) post(ctx context.Context, op, path string, payload any) (map[string]json.RawMessage, error) {
	endpoint, err := url.JoinPath(c.cfg.BaseURL, path)
	if err != nil {
		return nil, apperr.Validation(op, "invalid service url %q: %v", c.cfg.BaseURL, err)
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode body: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("%s: new request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Network(op, fmt.Errorf("http error (timeout=%s): %w", c.cfg.Timeout, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxResponseBytes+1))
	if err != nil {
		return nil, apperr.Network(op, fmt.Errorf("read body: %w", err))
	}
	if int64(len(body)) > c.cfg.MaxResponseBytes {
		return nil, apperr.Format(op, fmt.Errorf("response exceeds %d bytes", c.cfg.MaxResponseBytes))
	}

	var fields map[string]json.RawMessage
	decodeErr := json.Unmarshal(body, &fields)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := errorMessage(fields)
		if decodeErr != nil || msg == "" {
			msg = snippet(body)
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, apperr.Service(op, resp.StatusCode, msg)
	}

	if decodeErr != nil {
		return nil, apperr.Format(op, fmt.Errorf("decode response: %w (payload snippet: %s)", decodeErr, snippet(body)))
	}
	if msg := errorMessage(fields); msg != "" {
		return nil, apperr.Service(op, resp.StatusCode, msg)
	}
	return fields, nil
}

func errorMessage(fields map[string]json.RawMessage) string {
	raw, ok := fields["error"]
	if !ok {
		return ""
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return strings.TrimSpace(msg)
}

func snippet(body []byte) string {
	clean := strings.Join(strings.Fields(string(body)), " ")
	const limit = 160
	runes := []rune(clean)
	if len(runes) > limit {
		clean = string(runes[:limit]) + "..."
	}
	return clean
}
