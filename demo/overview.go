package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/poiesic/proxyclient/ai"
)

const (
	overviewPrompt    = "こんにちは"
	overviewMaxTokens = 50
	overviewEmbedText = "テスト"
)

// ErrOverviewIncomplete is returned by Overview when any step failed.
var ErrOverviewIncomplete = errors.New("overview incomplete")

// Overview checks the proxy in three independent steps: list models, one
// chat turn, one embedding. A failing step is reported and the next one
// still runs. Returns ErrOverviewIncomplete, wrapping each step's error,
// if any step failed.
func (r *Runner) Overview(ctx context.Context) error {
	r.rule()
	r.printf("LiteLLM proxy client\n")
	r.rule()
	r.printf("\n")

	steps := []struct {
		title string
		run   func(ctx context.Context) error
	}{
		{"Available models:", r.overviewModels},
		{fmt.Sprintf("Chat (%s):", r.config.ChatModel), r.overviewChat},
		{fmt.Sprintf("Embedding (%s):", r.config.EmbeddingModel), r.overviewEmbedding},
	}

	var errs []error
	for i, step := range steps {
		r.printf("%d. %s\n", i+1, step.title)
		if err := step.run(ctx); err != nil {
			r.logger.Warn("overview step failed", "step", i+1, "err", err)
			r.printf("  error: %v\n", err)
			errs = append(errs, err)
		}
		r.printf("\n")
	}

	r.rule()
	r.printf("Done\n")
	r.rule()

	if len(errs) > 0 {
		return fmt.Errorf("%w: %d of %d steps failed: %w", ErrOverviewIncomplete, len(errs), len(steps), errors.Join(errs...))
	}
	return nil
}

func (r *Runner) overviewModels(ctx context.Context) error {
	models, err := r.provider.ModelLister().ListModels(ctx)
	if err != nil {
		return err
	}
	for _, m := range models {
		r.printf("  - %s\n", m.ID)
	}
	return nil
}

func (r *Runner) overviewChat(ctx context.Context) error {
	completion, err := r.provider.ChatModel().Complete(ctx,
		[]ai.Message{ai.UserMessage(overviewPrompt)},
		&ai.ChatOptions{MaxTokens: overviewMaxTokens})
	if err != nil {
		return err
	}
	r.printf("  Reply: %s\n", completion.Content)
	return nil
}

func (r *Runner) overviewEmbedding(ctx context.Context) error {
	vector, err := r.provider.Embedder().EmbedText(ctx, overviewEmbedText)
	if err != nil {
		return err
	}
	r.printf("  Dimensions: %d\n", len(vector))
	r.printf("  First 5 values: %s\n", FormatVector(vector, 5))
	return nil
}
