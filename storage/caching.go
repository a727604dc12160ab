package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/proxyclient/ai"
	"github.com/poiesic/proxyclient/core"
)

// CachingEmbedder is an ai.Embedder that serves previously embedded texts
// from an EmbeddingCache and embeds only the misses.
type CachingEmbedder struct {
	embedder ai.Embedder
	cache    EmbeddingCache
	model    string
	logger   *slog.Logger
}

var _ ai.Embedder = (*CachingEmbedder)(nil)

// NewCachingEmbedder wraps embedder with cache. model must name the model
// embedder produces vectors for; it scopes the cache keys.
func NewCachingEmbedder(embedder ai.Embedder, cache EmbeddingCache, model string) *CachingEmbedder {
	return &CachingEmbedder{
		embedder: embedder,
		cache:    cache,
		model:    model,
		logger:   slog.Default().With("component", "embedding-cache"),
	}
}

// EmbedText returns the vector for text, from the cache if present.
func (c *CachingEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedTexts returns vectors in input order. Cache misses are embedded in a
// single batch, deduplicated, and written back to the cache.
func (c *CachingEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	ids := make([]core.ID, len(texts))
	for i, text := range texts {
		ids[i] = core.EmbeddingID(c.model, text)
	}

	cached, err := c.cache.GetEmbeddings(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedding cache: %w", err)
	}

	results := make([][]float32, len(texts))
	var misses []string
	pending := make(map[string][]int)
	hits := 0
	for i, text := range texts {
		// Text comparison guards against 64-bit id collisions.
		if entry, ok := cached[ids[i]]; ok && entry.Text == text && entry.Model == c.model {
			results[i] = entry.Vector
			hits++
			continue
		}
		if _, seen := pending[text]; !seen {
			misses = append(misses, text)
		}
		pending[text] = append(pending[text], i)
	}

	c.logger.Debug("embedding cache lookup",
		"model", c.model,
		"requested", len(texts),
		"hits", hits,
		"misses", len(misses))

	if len(misses) == 0 {
		return results, nil
	}

	vectors, err := c.embedder.EmbedTexts(ctx, misses)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(misses) {
		return nil, fmt.Errorf("%w: expected %d, got %d", ai.ErrEmbeddingCount, len(misses), len(vectors))
	}

	entries := make([]*core.Embedding, 0, len(misses))
	for i, text := range misses {
		for _, slot := range pending[text] {
			results[slot] = vectors[i]
		}
		// An entry the cache would refuse must not cost the rest of the batch.
		entry := core.NewEmbedding(c.model, text, vectors[i])
		if err := core.ValidateEmbedding(entry); err != nil {
			c.logger.Debug("not caching embedding", "text", text, "err", err)
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return results, nil
	}
	if err := c.cache.PutEmbeddings(ctx, entries...); err != nil {
		c.logger.Warn("failed to write embedding cache", "count", len(entries), "err", err)
	}

	return results, nil
}
