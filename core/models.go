package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// EmbeddingID identifies the vector a model produces for a text.
// The same text embedded by two models yields two IDs.
func EmbeddingID(model, text string) ID {
	return IDFromContent(model + "\x00" + text)
}

// Document is one unit of a searchable corpus.
type Document struct {
	Id     ID
	Text   string
	Vector []float32 // Embedding vector (populated by the indexer)
}

// NewDocument returns a document whose Id is derived from its text.
func NewDocument(text string) *Document {
	return &Document{
		Id:   IDFromContent(text),
		Text: text,
	}
}

// Embedding is a cached embedding vector.
type Embedding struct {
	Id         ID
	Model      string
	Text       string
	Vector     []float32
	InsertedAt time.Time // When the entry was written to the cache
}

// NewEmbedding builds a cache entry for a model's vector of text.
func NewEmbedding(model, text string, vector []float32) *Embedding {
	return &Embedding{
		Id:         EmbeddingID(model, text),
		Model:      model,
		Text:       text,
		Vector:     vector,
		InsertedAt: time.Now().UTC(),
	}
}

// SearchResult represents a search hit with the full document and relevance score.
type SearchResult struct {
	Document *Document
	Score    float64
	Rank     int // 1-based position in the result list
}
