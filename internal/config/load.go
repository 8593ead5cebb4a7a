package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	envAPIKey     = "GEMINI_API_KEY"
	envAPIKeys    = "GEMINI_API_KEYS"
	envServiceURL = "CAPTION_SERVICE_URL"
)

// Load reads the YAML file at path, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Default returns a validated config for runs without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	// Defaults only fail on a malformed CAPTION_SERVICE_URL.
	if err := cfg.Validate(); err != nil {
		cfg.Services.BaseURL = ""
		_ = cfg.Validate()
	}
	return cfg
}

// LoadOrDefault loads path when it exists and falls back to Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(envAPIKeys); ok {
		if keys := splitKeys(v); len(keys) > 0 {
			c.Gemini.APIKeys = keys
		}
	} else if v, ok := os.LookupEnv(envAPIKey); ok && strings.TrimSpace(v) != "" {
		c.Gemini.APIKeys = []string{strings.TrimSpace(v)}
	}
	if v, ok := os.LookupEnv(envServiceURL); ok && strings.TrimSpace(v) != "" {
		c.Services.BaseURL = strings.TrimSpace(v)
	}
}

func splitKeys(v string) []string {
	var keys []string
	for _, k := range strings.Split(v, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
