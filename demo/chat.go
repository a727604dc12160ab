package demo

import (
	"context"

	"github.com/poiesic/proxyclient/ai"
)

const (
	simplePrompt      = "こんにちは！あなたは誰ですか？"
	streamingPrompt   = "機械学習について簡単に説明してください。"
	firstTurnPrompt   = "Pythonとは何ですか？"
	followUpPrompt    = "どんな用途で使われますか？"
	temperaturePrompt = "AIの未来について一文で述べてください。"
	systemPrompt      = "あなたは親切で丁寧な日本語のアシスタントです。敬語を使って回答してください。"
	weatherPrompt     = "今日の天気はどうですか？"

	defaultTemperature = 0.7
)

var comparedTemperatures = []float64{0.3, 0.7, 1.0}

// ChatScenarios returns the chat suite in run order.
func (r *Runner) ChatScenarios() []Scenario {
	return []Scenario{
		{"Simple chat", r.SimpleChat},
		{"Streaming response", r.StreamingChat},
		{"Multi-turn conversation", r.MultiTurnChat},
		{"Temperature comparison", r.TemperatureComparison},
		{"System prompt", r.SystemPromptChat},
	}
}

func (r *Runner) complete(ctx context.Context, messages []ai.Message, maxTokens int, temperature float64) (string, error) {
	completion, err := r.provider.ChatModel().Complete(ctx, messages, &ai.ChatOptions{
		MaxTokens:   maxTokens,
		Temperature: ai.Temperature(temperature),
	})
	if err != nil {
		return "", err
	}
	return completion.Content, nil
}

// SimpleChat sends one question and prints the reply.
func (r *Runner) SimpleChat(ctx context.Context) error {
	reply, err := r.complete(ctx, []ai.Message{ai.UserMessage(simplePrompt)}, 150, defaultTemperature)
	if err != nil {
		return err
	}
	r.printf("User: %s\n", simplePrompt)
	r.printf("AI: %s\n\n", reply)
	return nil
}

// StreamingChat prints the reply as it arrives.
func (r *Runner) StreamingChat(ctx context.Context) error {
	r.printf("User: %s\n", streamingPrompt)
	r.printf("AI: ")

	_, err := r.provider.ChatModel().Complete(ctx,
		[]ai.Message{ai.UserMessage(streamingPrompt)},
		&ai.ChatOptions{
			MaxTokens:   200,
			Temperature: ai.Temperature(defaultTemperature),
			StreamFunc: func(ctx context.Context, delta string) error {
				r.printf("%s", delta)
				return nil
			},
		})
	if err != nil {
		return err
	}
	r.printf("\n\n")
	return nil
}

// MultiTurnChat asks a follow-up question with the first exchange as history.
func (r *Runner) MultiTurnChat(ctx context.Context) error {
	conversation := []ai.Message{ai.UserMessage(firstTurnPrompt)}
	r.printf("User: %s\n", firstTurnPrompt)

	reply, err := r.complete(ctx, conversation, 100, defaultTemperature)
	if err != nil {
		return err
	}
	r.printf("AI: %s\n\n", reply)

	conversation = append(conversation,
		ai.AssistantMessage(reply),
		ai.UserMessage(followUpPrompt))
	r.printf("User: %s\n", followUpPrompt)

	reply, err = r.complete(ctx, conversation, 150, defaultTemperature)
	if err != nil {
		return err
	}
	r.printf("AI: %s\n\n", reply)
	return nil
}

// TemperatureComparison asks the same question at several temperatures.
func (r *Runner) TemperatureComparison(ctx context.Context) error {
	r.printf("Question: %s\n\n", temperaturePrompt)

	for _, temp := range comparedTemperatures {
		r.printf("Temperature = %.1f:\n", temp)
		reply, err := r.complete(ctx, []ai.Message{ai.UserMessage(temperaturePrompt)}, 100, temp)
		if err != nil {
			return err
		}
		r.printf("  %s\n\n", reply)
	}
	return nil
}

// SystemPromptChat steers the reply with a system message.
func (r *Runner) SystemPromptChat(ctx context.Context) error {
	reply, err := r.complete(ctx, []ai.Message{
		ai.SystemMessage(systemPrompt),
		ai.UserMessage(weatherPrompt),
	}, 100, defaultTemperature)
	if err != nil {
		return err
	}
	r.printf("System: %s\n", systemPrompt)
	r.printf("User: %s\n", weatherPrompt)
	r.printf("AI: %s\n\n", reply)
	return nil
}
