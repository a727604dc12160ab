package ai

import "context"

// Embedder generates vector embeddings from text.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in one request.
	// The returned slice contains embeddings in the same order as the input texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ChatModel produces chat completions.
// Implementations must be thread-safe for concurrent use.
type ChatModel interface {
	// Complete sends the conversation to the model and returns its reply.
	// If opts.StreamFunc is set, content deltas are delivered to it as they
	// arrive; the assembled Completion is returned either way.
	// A nil opts uses the proxy defaults.
	Complete(ctx context.Context, messages []Message, opts *ChatOptions) (*Completion, error)
}

// ModelLister enumerates the models a proxy exposes.
type ModelLister interface {
	ListModels(ctx context.Context) ([]Model, error)
}

// AIProvider aggregates the proxy services behind one configuration and
// one shared HTTP client.
type AIProvider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// ChatModel returns the chat completion service.
	ChatModel() ChatModel

	// ModelLister returns the model listing service.
	ModelLister() ModelLister

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
