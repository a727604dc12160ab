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

package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/proxyclient/core"
	"github.com/poiesic/proxyclient/storage"
)

// EmbeddingCache implements storage.EmbeddingCache on a BadgerDB backend.
type EmbeddingCache struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.EmbeddingCache = (*EmbeddingCache)(nil)

// NewEmbeddingCache creates a cache on backend. The cache takes ownership of
// the backend and closes it on Close.
func NewEmbeddingCache(backend *Backend) (*EmbeddingCache, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	if backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	return &EmbeddingCache{
		backend: backend,
		logger:  slog.Default().With("component", "badger-cache"),
	}, nil
}

// OpenEmbeddingCache opens (creating if needed) an on-disk cache at path.
func OpenEmbeddingCache(path string) (*EmbeddingCache, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache at %s: %w", path, err)
	}
	cache, err := NewEmbeddingCache(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return cache, nil
}

// Close closes the underlying backend.
func (c *EmbeddingCache) Close() error {
	if c.backend.IsClosed() {
		return nil
	}
	return c.backend.Close()
}

// GetEmbeddings retrieves cached entries by id. Missing ids are skipped.
func (c *EmbeddingCache) GetEmbeddings(ctx context.Context, ids ...core.ID) (map[core.ID]*core.Embedding, error) {
	if c.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	found := make(map[core.ID]*core.Embedding, len(ids))
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			item, err := tx.Get(makeEmbeddingKey(id))
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					continue
				}
				return err
			}
			err = item.Value(func(val []byte) error {
				entry, err := storage.UnmarshalEmbedding(val)
				if err != nil {
					return err
				}
				found[id] = entry
				return nil
			})
			if err != nil {
				return fmt.Errorf("reading embedding %d: %w", id, err)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("cache read", "requested", len(ids), "found", len(found))
	return found, nil
}

// PutEmbeddings writes entries in a single batch, replacing existing ones.
func (c *EmbeddingCache) PutEmbeddings(ctx context.Context, entries ...*core.Embedding) error {
	if c.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if len(entries) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, entry := range entries {
		if entry != nil && entry.InsertedAt.IsZero() {
			entry.InsertedAt = now
		}
		if err := core.ValidateEmbedding(entry); err != nil {
			return fmt.Errorf("%w: %w", storage.ErrInvalidEntry, err)
		}
	}

	// WriteBatch commits in as many transactions as needed.
	wb := c.backend.db.NewWriteBatch()
	defer wb.Cancel()
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := wb.Set(makeEmbeddingKey(entry.Id), storage.MarshalEmbedding(entry)); err != nil {
			return err
		}
	}
	if err := wb.Flush(); err != nil {
		return err
	}

	c.logger.Debug("cache write", "count", len(entries))
	return nil
}

// CountEmbeddings returns the number of cached entries.
func (c *EmbeddingCache) CountEmbeddings(ctx context.Context) (int, error) {
	if c.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(embeddingPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if _, ok := parseEmbeddingKey(iter.Item().Key()); ok {
				count++
			}
		}
		return nil
	}, false)
	return count, err
}
