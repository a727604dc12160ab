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

// Package storage provides the embedding cache abstraction for proxyclient.
//
// Embedding a corpus through the proxy is the slow, metered step of a
// semantic search. This package defines the cache interface that lets
// repeated searches reuse vectors, the binary encoding of cache entries,
// and CachingEmbedder, an ai.Embedder that consults the cache first.
//
// # Cache Keys
//
// Entries are keyed by core.EmbeddingID(model, text). Switching the
// embedding model therefore never returns a stale vector from another model.
//
// # Encoding
//
// Entries are encoded with mus-go primitives:
//
//	varint id | string model | string text | varint n | n x float32 | varint insertedAt
//
// # Usage
//
//	cache, err := badger.NewMemoryCache()
//	embedder := storage.NewCachingEmbedder(provider.Embedder(), cache, cfg.EmbeddingModel)
//	vectors, err := embedder.EmbedTexts(ctx, texts)
package storage
