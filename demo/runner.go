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

package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/poiesic/proxyclient/ai"
)

const ruleWidth = 60

// Scenario is one named demonstration.
type Scenario struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes scenarios against a provider and prints their output.
type Runner struct {
	provider ai.AIProvider
	config   *ai.Config
	out      io.Writer
	logger   *slog.Logger
}

// NewRunner creates a runner. config supplies the model names and base URL
// shown in headers; it is not used to connect.
func NewRunner(provider ai.AIProvider, config *ai.Config, out io.Writer) (*Runner, error) {
	if provider == nil {
		return nil, errors.New("provider is required")
	}
	if config == nil {
		return nil, errors.New("config is required")
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		provider: provider,
		config:   config,
		out:      out,
		logger:   slog.Default().With("component", "demo"),
	}, nil
}

// RunSuite prints a header, runs scenarios in order and stops at the first
// failure, which is printed and returned.
func (r *Runner) RunSuite(ctx context.Context, title, model string, scenarios []Scenario) error {
	r.rule()
	r.printf("%s\n", title)
	r.rule()
	r.printf("Model: %s\n", model)
	r.printf("Base URL: %s\n", r.config.BaseURL)
	r.rule()

	for i, sc := range scenarios {
		r.printf("\n")
		r.rule()
		r.printf("%d. %s\n", i+1, sc.Name)
		r.rule()
		r.printf("\n")

		r.logger.Debug("running scenario", "name", sc.Name)
		if err := sc.Run(ctx); err != nil {
			r.printf("\nerror: %v\n", err)
			return fmt.Errorf("%s: %w", sc.Name, err)
		}
	}

	r.rule()
	r.printf("All samples completed\n")
	r.rule()
	r.printf("\n")
	return nil
}

// RunChat runs the chat suite.
func (r *Runner) RunChat(ctx context.Context) error {
	return r.RunSuite(ctx, "Chat model samples", r.config.ChatModel, r.ChatScenarios())
}

// RunEmbedding runs the embedding suite.
func (r *Runner) RunEmbedding(ctx context.Context) error {
	return r.RunSuite(ctx, "Embedding model samples", r.config.EmbeddingModel, r.EmbeddingScenarios())
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Runner) rule() {
	fmt.Fprintln(r.out, strings.Repeat("=", ruleWidth))
}
