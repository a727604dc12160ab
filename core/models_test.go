package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "multibyte content",
			content: "機械学習は人工知能の一分野です。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestEmbeddingID(t *testing.T) {
	if EmbeddingID("model-a", "text") == EmbeddingID("model-b", "text") {
		t.Errorf("EmbeddingID() ignored the model")
	}

	if EmbeddingID("model-a", "text") != EmbeddingID("model-a", "text") {
		t.Errorf("EmbeddingID() is not deterministic")
	}

	// The separator keeps model/text boundaries unambiguous.
	if EmbeddingID("ab", "c") == EmbeddingID("a", "bc") {
		t.Errorf("EmbeddingID() collided across the model/text boundary")
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("hello")

	if doc.Id != IDFromContent("hello") {
		t.Errorf("NewDocument() Id = %d, want %d", doc.Id, IDFromContent("hello"))
	}
	if doc.Vector != nil {
		t.Errorf("NewDocument() Vector should be nil until indexed")
	}
}

func TestNewEmbedding(t *testing.T) {
	emb := NewEmbedding("m", "hello", []float32{1, 2})

	if emb.Id != EmbeddingID("m", "hello") {
		t.Errorf("NewEmbedding() Id = %d, want %d", emb.Id, EmbeddingID("m", "hello"))
	}
	if emb.InsertedAt.IsZero() {
		t.Errorf("NewEmbedding() InsertedAt should be set")
	}
}
