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


package core

import (
	"fmt"
	"time"
)

func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyContent)
	}

	if doc.Id != IDFromContent(doc.Text) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrIDMismatch)
	}

	return nil
}

func ValidateEmbedding(emb *Embedding) error {
	if emb == nil {
		return fmt.Errorf("%w: embedding is nil", ErrInvalidEmbedding)
	}

	if emb.Model == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEmbedding, ErrEmptyModel)
	}

	if emb.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEmbedding, ErrEmptyContent)
	}

	if len(emb.Vector) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEmbedding, ErrEmptyVector)
	}

	if emb.Id != EmbeddingID(emb.Model, emb.Text) {
		return fmt.Errorf("%w: %w", ErrInvalidEmbedding, ErrIDMismatch)
	}

	if !IsValidTimestamp(emb.InsertedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidEmbedding, ErrInvalidTimestamp)
	}

	return nil
}

func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
