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

package openai

import (
	"log/slog"
	"net/http"

	"github.com/poiesic/proxyclient/ai"
)

// Provider implements ai.AIProvider against one OpenAI-compatible proxy.
// Its services share a single HTTP client.
type Provider struct {
	config     *ai.Config
	httpClient *http.Client
	embedder   *Embedder
	chat       *ChatModel
	lister     *ModelLister
	logger     *slog.Logger
}

// NewProvider creates a new AI provider for the configured proxy.
// The config is validated and normalized before use.
//
// Returns ai.AIProvider interface (not *Provider) to enforce abstraction.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	httpClient := newHTTPClient(config)

	embedder, err := newEmbedder(config, httpClient)
	if err != nil {
		return nil, err
	}

	chat, err := newChatModel(config, httpClient)
	if err != nil {
		return nil, err
	}

	lister, err := newModelLister(config, httpClient)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:     config,
		httpClient: httpClient,
		embedder:   embedder,
		chat:       chat,
		lister:     lister,
		logger:     slog.Default().With("component", "openai-provider"),
	}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// ChatModel returns the chat completion service.
func (p *Provider) ChatModel() ai.ChatModel {
	return p.chat
}

// ModelLister returns the model listing service.
func (p *Provider) ModelLister() ai.ModelLister {
	return p.lister
}

// Close drops idle connections held by the shared HTTP client.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider", "baseURL", p.config.BaseURL)
	p.httpClient.CloseIdleConnections()
	return nil
}

func newHTTPClient(config *ai.Config) *http.Client {
	return &http.Client{Timeout: config.Timeout}
}
