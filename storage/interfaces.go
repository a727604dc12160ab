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

package storage

import (
	"context"

	"github.com/poiesic/proxyclient/core"
)

// EmbeddingCache stores embedding vectors keyed by core.EmbeddingID.
type EmbeddingCache interface {
	// GetEmbeddings retrieves cached entries by id.
	// Missing ids are absent from the returned map; that is not an error.
	GetEmbeddings(ctx context.Context, ids ...core.ID) (map[core.ID]*core.Embedding, error)

	// PutEmbeddings writes entries, replacing any with the same id.
	// Sets InsertedAt if not already set.
	// Returns ErrInvalidEntry if any entry fails core.ValidateEmbedding.
	PutEmbeddings(ctx context.Context, entries ...*core.Embedding) error

	// CountEmbeddings returns the number of cached entries.
	CountEmbeddings(ctx context.Context) (int, error)

	// Close releases the cache and its backend.
	Close() error
}
