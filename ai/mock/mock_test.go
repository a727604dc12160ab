package mock

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/poiesic/proxyclient/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbedder(t *testing.T) {
	ctx := context.Background()

	t.Run("deterministic unit vectors", func(t *testing.T) {
		m := NewMockEmbedder()
		a, err := m.EmbedText(ctx, "hello")
		require.NoError(t, err)
		b, err := m.EmbedText(ctx, "hello")
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.Len(t, a, DefaultDimensions)

		var sum float64
		for _, v := range a {
			sum += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-5)
	})

	t.Run("batch matches single", func(t *testing.T) {
		m := NewMockEmbedder()
		single, _ := m.EmbedText(ctx, "b")
		batch, err := m.EmbedTexts(ctx, []string{"a", "b"})
		require.NoError(t, err)
		require.Len(t, batch, 2)
		assert.Equal(t, single, batch[1])
		assert.NotEqual(t, batch[0], batch[1])
		assert.Equal(t, 2, m.CallCount())
		assert.Equal(t, 3, m.TextCount())
	})

	t.Run("custom function", func(t *testing.T) {
		boom := errors.New("boom")
		m := NewMockEmbedder().WithEmbedTextsFunc(func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, boom
		})
		_, err := m.EmbedTexts(ctx, []string{"x"})
		assert.ErrorIs(t, err, boom)

		m.Reset()
		assert.Equal(t, 0, m.CallCount())
		_, err = m.EmbedTexts(ctx, []string{"x"})
		assert.NoError(t, err)
	})
}

func TestMockChatModel(t *testing.T) {
	ctx := context.Background()

	t.Run("echoes last user message", func(t *testing.T) {
		m := NewMockChatModel()
		c, err := m.Complete(ctx, []ai.Message{
			ai.SystemMessage("be brief"),
			ai.UserMessage("first"),
			ai.AssistantMessage("ok"),
			ai.UserMessage("second question"),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "echo: second question", c.Content)
		assert.Equal(t, "stop", c.StopReason)
		assert.Equal(t, c.PromptTokens+c.CompletionTokens, c.TotalTokens)
		assert.Equal(t, 1, m.CallCount())
		assert.Len(t, m.Requests()[0], 4)
	})

	t.Run("streams words", func(t *testing.T) {
		m := NewMockChatModel()
		var got string
		var chunks int
		c, err := m.Complete(ctx, []ai.Message{ai.UserMessage("a b c")}, &ai.ChatOptions{
			StreamFunc: func(ctx context.Context, delta string) error {
				got += delta
				chunks++
				return nil
			},
		})
		require.NoError(t, err)
		assert.Equal(t, c.Content, got)
		assert.Equal(t, 4, chunks)
	})

	t.Run("no messages", func(t *testing.T) {
		_, err := NewMockChatModel().Complete(ctx, nil, nil)
		assert.ErrorIs(t, err, ai.ErrNoMessages)
	})
}

func TestMockProvider(t *testing.T) {
	p := NewMockProvider()
	mp := p.(*MockProvider)

	assert.Same(t, mp.GetMockEmbedder(), p.Embedder())
	assert.Same(t, mp.GetMockChatModel(), p.ChatModel())
	assert.Same(t, mp.GetMockModelLister(), p.ModelLister())

	models, err := p.ModelLister().ListModels(context.Background())
	require.NoError(t, err)
	assert.Len(t, models, 2)

	require.NoError(t, p.Close())
	assert.True(t, mp.Closed())
}
