package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/poiesic/proxyclient/ai/mock"
	"github.com/poiesic/proxyclient/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapCache is an in-process EmbeddingCache for tests.
type mapCache struct {
	mu      sync.Mutex
	entries map[core.ID]*core.Embedding
	putErr  error
	puts    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[core.ID]*core.Embedding)}
}

func (c *mapCache) GetEmbeddings(ctx context.Context, ids ...core.ID) (map[core.ID]*core.Embedding, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	found := make(map[core.ID]*core.Embedding)
	for _, id := range ids {
		if e, ok := c.entries[id]; ok {
			found[id] = e
		}
	}
	return found, nil
}

func (c *mapCache) PutEmbeddings(ctx context.Context, entries ...*core.Embedding) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	if c.putErr != nil {
		return c.putErr
	}
	// Like the badger cache, one invalid entry rejects the whole batch.
	for _, e := range entries {
		if err := core.ValidateEmbedding(e); err != nil {
			return err
		}
	}
	for _, e := range entries {
		c.entries[e.Id] = e
	}
	return nil
}

func (c *mapCache) CountEmbeddings(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries), nil
}

func (c *mapCache) Close() error { return nil }

func TestCachingEmbedder(t *testing.T) {
	ctx := context.Background()
	const model = "multilingual-e5-large"

	t.Run("misses are embedded and cached", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		cache := newMapCache()
		embedder := NewCachingEmbedder(inner, cache, model)

		vectors, err := embedder.EmbedTexts(ctx, []string{"a", "b"})
		require.NoError(t, err)
		require.Len(t, vectors, 2)
		assert.Equal(t, mock.DeterministicVector("a", mock.DefaultDimensions), vectors[0])
		assert.Equal(t, mock.DeterministicVector("b", mock.DefaultDimensions), vectors[1])

		count, _ := cache.CountEmbeddings(ctx)
		assert.Equal(t, 2, count)
		assert.Equal(t, 2, inner.TextCount())
	})

	t.Run("hits skip the inner embedder", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		cache := newMapCache()
		embedder := NewCachingEmbedder(inner, cache, model)

		_, err := embedder.EmbedTexts(ctx, []string{"a", "b"})
		require.NoError(t, err)
		inner.Reset()

		vectors, err := embedder.EmbedTexts(ctx, []string{"b", "c", "a"})
		require.NoError(t, err)
		require.Len(t, vectors, 3)
		assert.Equal(t, mock.DeterministicVector("b", mock.DefaultDimensions), vectors[0])
		assert.Equal(t, mock.DeterministicVector("c", mock.DefaultDimensions), vectors[1])
		assert.Equal(t, mock.DeterministicVector("a", mock.DefaultDimensions), vectors[2])

		assert.Equal(t, 1, inner.CallCount())
		assert.Equal(t, 1, inner.TextCount())
	})

	t.Run("all hits make no call", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		embedder := NewCachingEmbedder(inner, newMapCache(), model)

		first, err := embedder.EmbedText(ctx, "same")
		require.NoError(t, err)
		second, err := embedder.EmbedText(ctx, "same")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, inner.CallCount())
	})

	t.Run("duplicates are embedded once", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		embedder := NewCachingEmbedder(inner, newMapCache(), model)

		vectors, err := embedder.EmbedTexts(ctx, []string{"x", "y", "x"})
		require.NoError(t, err)
		assert.Equal(t, vectors[0], vectors[2])
		assert.Equal(t, 2, inner.TextCount())
	})

	t.Run("model scopes the cache", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		cache := newMapCache()

		_, err := NewCachingEmbedder(inner, cache, "model-a").EmbedText(ctx, "text")
		require.NoError(t, err)
		_, err = NewCachingEmbedder(inner, cache, "model-b").EmbedText(ctx, "text")
		require.NoError(t, err)

		assert.Equal(t, 2, inner.CallCount())
		count, _ := cache.CountEmbeddings(ctx)
		assert.Equal(t, 2, count)
	})

	t.Run("uncacheable entry does not block the batch", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		cache := newMapCache()
		embedder := NewCachingEmbedder(inner, cache, model)

		vectors, err := embedder.EmbedTexts(ctx, []string{"", "a", "b"})
		require.NoError(t, err)
		require.Len(t, vectors, 3)
		assert.NotEmpty(t, vectors[0])

		count, _ := cache.CountEmbeddings(ctx)
		assert.Equal(t, 2, count)
		assert.Equal(t, 1, cache.puts)

		inner.Reset()
		_, err = embedder.EmbedTexts(ctx, []string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, 0, inner.CallCount())
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		cache := newMapCache()
		cache.putErr = errors.New("disk full")
		embedder := NewCachingEmbedder(mock.NewMockEmbedder(), cache, model)

		vectors, err := embedder.EmbedTexts(ctx, []string{"a"})
		require.NoError(t, err)
		assert.Len(t, vectors, 1)
		assert.Equal(t, 1, cache.puts)
	})

	t.Run("inner error is returned", func(t *testing.T) {
		boom := errors.New("proxy down")
		inner := mock.NewMockEmbedder().WithEmbedTextsFunc(func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, boom
		})
		embedder := NewCachingEmbedder(inner, newMapCache(), model)

		_, err := embedder.EmbedTexts(ctx, []string{"a"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty input", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		vectors, err := NewCachingEmbedder(inner, newMapCache(), model).EmbedTexts(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, vectors)
		assert.Equal(t, 0, inner.CallCount())
	})
}
