// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds connection settings for an OpenAI-compatible inference proxy.
type Config struct {
	// BaseURL is the proxy API root.
	// Example: "http://litellm:4000/v1"
	BaseURL string `yaml:"base_url"`

	// APIKey is sent as a bearer token on every request.
	APIKey string `yaml:"api_key"`

	// ChatModel is the model identifier used for chat completions.
	// Example: "qwen2.5-0.5b", "gpt-4o-mini"
	ChatModel string `yaml:"chat_model"`

	// EmbeddingModel is the model identifier used for text embeddings.
	// Example: "multilingual-e5-large", "text-embedding-3-small"
	EmbeddingModel string `yaml:"embedding_model"`

	// Timeout bounds every HTTP request to the proxy.
	// Default: 120s
	Timeout time.Duration `yaml:"timeout"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithBaseURL sets the proxy base URL.
func WithBaseURL(url string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithAPIKey sets the proxy API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithChatModel sets the chat model identifier.
func WithChatModel(model string) ConfigOption {
	return func(c *Config) {
		c.ChatModel = model
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// DefaultConfig returns a Config pointing at a LiteLLM proxy reachable by its
// container name, with the development master key.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "http://litellm:4000/v1",
		APIKey:         "sk-1234",
		ChatModel:      "qwen2.5-0.5b",
		EmbeddingModel: "multilingual-e5-large",
		Timeout:        120 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithBaseURL("http://localhost:4000"),
//	    WithEmbeddingModel("text-embedding-3-small"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It appends the /v1 suffix to BaseURL if missing, which OpenAI-compatible
// proxies (LiteLLM, vLLM, Ollama) expect.
func (c *Config) Normalize() {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL != "" && !strings.HasSuffix(strings.TrimSuffix(c.BaseURL, "/"), "/v1") {
		c.BaseURL = strings.TrimSuffix(c.BaseURL, "/") + "/v1"
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.BaseURL == "" {
		return errors.New("ai config: BaseURL is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return errors.New("ai config: BaseURL must start with http:// or https://")
	}
	if c.APIKey == "" {
		return errors.New("ai config: APIKey is required")
	}
	if c.ChatModel == "" {
		return errors.New("ai config: ChatModel is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.Timeout <= 0 {
		return errors.New("ai config: Timeout must be positive")
	}
	return nil
}
