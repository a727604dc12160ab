package storage

import (
	"testing"
	"time"

	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/proxyclient/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalEmbedding(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name  string
		entry *core.Embedding
	}{
		{
			name: "typical entry",
			entry: &core.Embedding{
				Id:         core.EmbeddingID("multilingual-e5-large", "人工知能は未来の技術です。"),
				Model:      "multilingual-e5-large",
				Text:       "人工知能は未来の技術です。",
				Vector:     []float32{0.1, -0.2, 0.3, 1e-7, -1},
				InsertedAt: now,
			},
		},
		{
			name: "single component",
			entry: &core.Embedding{
				Id:         1,
				Model:      "m",
				Text:       "t",
				Vector:     []float32{1},
				InsertedAt: now.Add(-time.Hour),
			},
		},
		{
			name: "empty vector",
			entry: &core.Embedding{
				Id:         2,
				Model:      "m",
				Text:       "t",
				InsertedAt: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalEmbedding(tt.entry)

			decoded, err := UnmarshalEmbedding(data)
			require.NoError(t, err)

			assert.Equal(t, tt.entry.Id, decoded.Id)
			assert.Equal(t, tt.entry.Model, decoded.Model)
			assert.Equal(t, tt.entry.Text, decoded.Text)
			assert.Equal(t, len(tt.entry.Vector), len(decoded.Vector))
			for i := range tt.entry.Vector {
				assert.Equal(t, tt.entry.Vector[i], decoded.Vector[i])
			}
			assert.True(t, tt.entry.InsertedAt.Equal(decoded.InsertedAt))
		})
	}
}

func TestUnmarshalEmbedding_Invalid(t *testing.T) {
	entry := &core.Embedding{
		Id:         core.EmbeddingID("m", "text"),
		Model:      "m",
		Text:       "text",
		Vector:     []float32{1, 2, 3},
		InsertedAt: time.Now().UTC(),
	}
	data := MarshalEmbedding(entry)

	t.Run("empty data", func(t *testing.T) {
		_, err := UnmarshalEmbedding(nil)
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})

	t.Run("truncated timestamp", func(t *testing.T) {
		_, err := UnmarshalEmbedding(data[:len(data)-1])
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})

	t.Run("truncated vector", func(t *testing.T) {
		timeSize := varint.Int64.Size(entry.InsertedAt.UnixNano())
		_, err := UnmarshalEmbedding(data[:len(data)-timeSize-2])
		assert.ErrorIs(t, err, ErrTruncatedData)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		_, err := UnmarshalEmbedding(append(append([]byte(nil), data...), 0x01))
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})
}
