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
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/poiesic/proxyclient/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ChatModel implements ai.ChatModel using the proxy's chat completions endpoint.
type ChatModel struct {
	client llms.Model
	model  string
	logger *slog.Logger
}

// newChatModel is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newChatModel(config *ai.Config, httpClient *http.Client) (*ChatModel, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.BaseURL),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.ChatModel),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, err
	}

	return &ChatModel{
		client: client,
		model:  config.ChatModel,
		logger: slog.Default().With("component", "openai-chat"),
	}, nil
}

// NewChatModel creates a new chat model using the provided configuration.
//
// Returns ai.ChatModel interface to enforce abstraction.
func NewChatModel(config *ai.Config) (ai.ChatModel, error) {
	return newChatModel(config, newHTTPClient(config))
}

// Complete sends the conversation and returns the model's reply.
func (c *ChatModel) Complete(ctx context.Context, messages []ai.Message, opts *ai.ChatOptions) (*ai.Completion, error) {
	if len(messages) == 0 {
		return nil, ai.ErrNoMessages
	}
	if opts == nil {
		opts = &ai.ChatOptions{}
	}

	content := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		role, err := messageType(m.Role)
		if err != nil {
			return nil, err
		}
		content = append(content, llms.TextParts(role, m.Content))
	}

	var callOpts []llms.CallOption
	if opts.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxTokens))
	}
	if opts.Temperature != nil {
		callOpts = append(callOpts, llms.WithTemperature(*opts.Temperature))
	}
	if opts.StreamFunc != nil {
		stream := opts.StreamFunc
		callOpts = append(callOpts, llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			// Role-only and usage chunks carry no text.
			if len(chunk) == 0 {
				return nil
			}
			return stream(ctx, string(chunk))
		}))
	}

	c.logger.Debug("requesting completion",
		"model", c.model,
		"messages", len(messages),
		"stream", opts.StreamFunc != nil)

	response, err := c.client.GenerateContent(ctx, content, callOpts...)
	if err != nil {
		c.logger.Error("failed to generate content", "model", c.model, "err", err)
		return nil, statusError(err)
	}
	if response == nil || len(response.Choices) == 0 {
		c.logger.Warn("no choices returned from model", "model", c.model)
		return nil, ai.ErrEmptyResponse
	}

	choice := response.Choices[0]
	completion := &ai.Completion{
		Content:          choice.Content,
		StopReason:       choice.StopReason,
		PromptTokens:     intInfo(choice.GenerationInfo, "PromptTokens"),
		CompletionTokens: intInfo(choice.GenerationInfo, "CompletionTokens"),
		TotalTokens:      intInfo(choice.GenerationInfo, "TotalTokens"),
	}

	c.logger.Debug("completion received",
		"model", c.model,
		"stopReason", completion.StopReason,
		"totalTokens", completion.TotalTokens)

	return completion, nil
}

func messageType(role ai.Role) (llms.ChatMessageType, error) {
	switch role {
	case ai.RoleSystem:
		return llms.ChatMessageTypeSystem, nil
	case ai.RoleUser:
		return llms.ChatMessageTypeHuman, nil
	case ai.RoleAssistant:
		return llms.ChatMessageTypeAI, nil
	default:
		return "", fmt.Errorf("unsupported message role %q", role)
	}
}

// intInfo reads a token count from langchaingo generation info.
func intInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
