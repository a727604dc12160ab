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

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/poiesic/proxyclient/ai"
	"github.com/poiesic/proxyclient/ai/openai"
	"github.com/urfave/cli/v2"
)

// newProvider is replaced in tests.
var newProvider = func(config *ai.Config) (ai.AIProvider, error) {
	return openai.NewProvider(config)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "proxyclient",
		Usage: "Client for an OpenAI-compatible inference proxy",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file (default: $" + ai.EnvConfigPath + ")",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Proxy API base URL (overrides config and $" + ai.EnvBaseURL + ")",
			},
			&cli.StringFlag{
				Name:  "api-key",
				Usage: "Proxy API key (overrides config and $" + ai.EnvAPIKey + ")",
			},
			&cli.StringFlag{
				Name:  "chat-model",
				Usage: "Chat model name (overrides config and $" + ai.EnvChatModel + ")",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name (overrides config and $" + ai.EnvEmbeddingModel + ")",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-request timeout",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "overview",
				Usage:  "List models, send one chat turn and embed one text",
				Action: overviewCommand,
			},
			{
				Name:   "chat-demo",
				Usage:  "Run the chat completion samples",
				Action: chatDemoCommand,
			},
			{
				Name:   "embedding-demo",
				Usage:  "Run the embedding samples",
				Action: embeddingDemoCommand,
			},
			{
				Name:   "models",
				Usage:  "List the models the proxy routes to",
				Action: modelsCommand,
			},
			{
				Name:      "chat",
				Usage:     "Send a single prompt to the chat model",
				ArgsUsage: "<prompt...>",
				Action:    chatCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "system",
						Aliases: []string{"s"},
						Usage:   "System prompt",
					},
					&cli.BoolFlag{
						Name:  "stream",
						Usage: "Print the reply as it is generated",
					},
					&cli.Float64Flag{
						Name:    "temperature",
						Aliases: []string{"t"},
						Usage:   "Sampling temperature (default: proxy default)",
					},
					&cli.IntFlag{
						Name:  "max-tokens",
						Usage: "Maximum reply length in tokens",
						Value: 256,
					},
				},
			},
			{
				Name:      "embed",
				Usage:     "Embed texts and print their vectors",
				ArgsUsage: "<text...>",
				Action:    embedCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "head",
						Usage: "Number of leading components to print",
						Value: 10,
					},
				},
			},
			{
				Name:      "similarity",
				Usage:     "Print the cosine similarity matrix of two or more texts",
				ArgsUsage: "<text> <text>...",
				Action:    similarityCommand,
			},
			{
				Name:      "search",
				Usage:     "Rank the lines of a corpus file against a query",
				ArgsUsage: "<query...>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "corpus",
						Usage:    "Text file with one document per line",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "cache",
						Usage: "BadgerDB directory for cached embeddings (default: no cache)",
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"k"},
						Usage:   "Number of results to print (0 for all)",
						Value:   5,
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Drop results below this cosine similarity",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents per embedding request",
						Value: 32,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent embedding requests",
						Value: 2,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts per batch",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Print each search stage to stderr",
					},
				},
			},
		},
	}
}

// loadConfig layers explicitly set global flags over the file and
// environment layers of ai.LoadConfig.
func loadConfig(c *cli.Context) (*ai.Config, error) {
	var overrides []ai.ConfigOption
	if c.IsSet("base-url") {
		overrides = append(overrides, ai.WithBaseURL(c.String("base-url")))
	}
	if c.IsSet("api-key") {
		overrides = append(overrides, ai.WithAPIKey(c.String("api-key")))
	}
	if c.IsSet("chat-model") {
		overrides = append(overrides, ai.WithChatModel(c.String("chat-model")))
	}
	if c.IsSet("embedding-model") {
		overrides = append(overrides, ai.WithEmbeddingModel(c.String("embedding-model")))
	}
	if c.IsSet("timeout") {
		overrides = append(overrides, ai.WithTimeout(c.Duration("timeout")))
	}

	config, err := ai.LoadConfig(c.String("config"), overrides...)
	if err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return config, nil
}

// openProvider loads the configuration and connects to the proxy.
func openProvider(c *cli.Context) (ai.AIProvider, *ai.Config, error) {
	config, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}

	provider, err := newProvider(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create provider: %w", err)
	}

	slog.Debug("connected to proxy",
		"baseURL", config.BaseURL,
		"chatModel", config.ChatModel,
		"embeddingModel", config.EmbeddingModel)
	return provider, config, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
