package ai

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by LoadConfig.
const (
	EnvConfigPath     = "PROXYCLIENT_CONFIG"
	EnvBaseURL        = "LITELLM_BASE_URL"
	EnvAPIKey         = "LITELLM_API_KEY"
	EnvChatModel      = "LITELLM_CHAT_MODEL"
	EnvEmbeddingModel = "LITELLM_EMBEDDING_MODEL"
)

// LoadConfig builds a Config from layered sources:
//  1. Built-in defaults
//  2. YAML file (explicit path, else $PROXYCLIENT_CONFIG; skipped if neither is set)
//  3. LITELLM_* environment variables
//  4. opts, in order
//  5. Validation
//
// Validation runs once, after every layer, so a later layer can replace a
// bad value from an earlier one.
func LoadConfig(path string, opts ...ConfigOption) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := loadYAMLFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadYAMLFile reads path into cfg. Keys absent from the file keep their current values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvChatModel); v != "" {
		cfg.ChatModel = v
	}
	if v := os.Getenv(EnvEmbeddingModel); v != "" {
		cfg.EmbeddingModel = v
	}
}
