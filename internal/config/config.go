package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/caption-studio/internal/subtitle"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

type Config struct {
	Services    ServicesConfig    `yaml:"services"`
	Captions    CaptionsConfig    `yaml:"captions"`
	Subtitle    SubtitleConfig    `yaml:"subtitle"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Export      ExportConfig      `yaml:"export"`
}

type ServicesConfig struct {
	BaseURL          string `yaml:"base_url"`
	TimeoutSeconds   int    `yaml:"timeout_seconds"`
	MaxResponseBytes int64  `yaml:"max_response_bytes"`
}

type CaptionsConfig struct {
	Style    string `yaml:"style"`
	Language string `yaml:"language"`
	Count    int    `yaml:"count"`
}

type SubtitleConfig struct {
	DefaultDurationMS int    `yaml:"default_duration_ms"`
	MinDurationMS     int    `yaml:"min_duration_ms"`
	Lookahead         string `yaml:"lookahead"`
}

type GeminiConfig struct {
	Model             string   `yaml:"model"`
	APIKeys           []string `yaml:"api_keys"`
	RequestsPerMinute int      `yaml:"requests_per_minute"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxBodyBytes   int64    `yaml:"max_body_bytes"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ExportConfig struct {
	Txt  bool `yaml:"txt"`
	Docx bool `yaml:"docx"`
}

// Validate rejects unsupported values and fills defaults for missing ones.
func (c *Config) Validate() error {
	if c.Services.BaseURL == "" {
		c.Services.BaseURL = "http://localhost:5000"
	}
	if !strings.HasPrefix(c.Services.BaseURL, "http://") && !strings.HasPrefix(c.Services.BaseURL, "https://") {
		return fmt.Errorf("services.base_url must be an http(s) url, got %q", c.Services.BaseURL)
	}
	if c.Services.TimeoutSeconds < 0 {
		return fmt.Errorf("services.timeout_seconds must not be negative")
	}
	if c.Services.TimeoutSeconds == 0 {
		c.Services.TimeoutSeconds = 120
	}
	if c.Services.MaxResponseBytes == 0 {
		c.Services.MaxResponseBytes = 8 << 20
	}

	defaults := models.DefaultParams()
	if c.Captions.Style == "" {
		c.Captions.Style = string(defaults.Style)
	}
	if c.Captions.Language == "" {
		c.Captions.Language = string(defaults.Language)
	}
	if c.Captions.Count == 0 {
		c.Captions.Count = defaults.Count
	}
	if _, err := c.Captions.Params(); err != nil {
		return fmt.Errorf("captions: %w", err)
	}

	if c.Subtitle.DefaultDurationMS < 0 || c.Subtitle.MinDurationMS < 0 {
		return fmt.Errorf("subtitle durations must not be negative")
	}
	if c.Subtitle.DefaultDurationMS == 0 {
		c.Subtitle.DefaultDurationMS = int(subtitle.DefaultDuration / time.Millisecond)
	}
	if c.Subtitle.MinDurationMS == 0 {
		c.Subtitle.MinDurationMS = int(subtitle.MinDuration / time.Millisecond)
	}
	switch subtitle.Lookahead(c.Subtitle.Lookahead) {
	case "":
		c.Subtitle.Lookahead = string(subtitle.LookaheadRaw)
	case subtitle.LookaheadRaw, subtitle.LookaheadRetained:
	default:
		return fmt.Errorf("subtitle.lookahead must be raw or retained, got %q", c.Subtitle.Lookahead)
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.RequestsPerMinute == 0 {
		c.Gemini.RequestsPerMinute = 15
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = 4 << 20
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// Params converts the caption defaults into validated generation params.
func (c CaptionsConfig) Params() (models.GenerationParams, error) {
	style, err := models.ParseStyle(c.Style)
	if err != nil {
		return models.GenerationParams{}, err
	}
	lang, err := models.ParseLanguage(c.Language)
	if err != nil {
		return models.GenerationParams{}, err
	}
	p := models.GenerationParams{Style: style, Language: lang, Count: c.Count}
	if err := p.Validate(); err != nil {
		return models.GenerationParams{}, err
	}
	return p, nil
}

// Options converts the block into synthesizer options.
func (c SubtitleConfig) Options() subtitle.Options {
	return subtitle.Options{
		DefaultDuration: time.Duration(c.DefaultDurationMS) * time.Millisecond,
		MinDuration:     time.Duration(c.MinDurationMS) * time.Millisecond,
		Lookahead:       subtitle.Lookahead(c.Lookahead),
	}
}

// Timeout returns the service request timeout.
func (c ServicesConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
