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

package index

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/proxyclient/ai"
	"github.com/poiesic/proxyclient/core"
)

// Config holds configuration for corpus indexing.
type Config struct {
	// BatchSize is the number of documents sent in one embedding request
	BatchSize int

	// Workers is the number of batches embedded concurrently
	Workers int

	// ReportInterval is how often to report progress (number of documents)
	ReportInterval int

	// MaxRetries is the maximum number of attempts per batch
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}
	return &Config{
		BatchSize:      32,
		Workers:        workers,
		ReportInterval: 32,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Validate checks that every setting is in range.
func (c *Config) Validate() error {
	switch {
	case c.BatchSize < 1:
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidConfig, c.BatchSize)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case c.MaxRetries < 1:
		return fmt.Errorf("%w: max retries must be positive, got %d", ErrInvalidConfig, c.MaxRetries)
	case c.RetryDelay < 0:
		return fmt.Errorf("%w: retry delay cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// Indexer embeds documents in batches on a worker pool.
type Indexer struct {
	embedder ai.Embedder
	config   *Config
	pool     *ants.Pool
	progress io.Writer
	logger   *slog.Logger
}

// Option configures an Indexer.
type Option func(*Indexer) error

// WithProgress writes a progress line to w while indexing.
// Default is io.Discard.
func WithProgress(w io.Writer) Option {
	return func(ix *Indexer) error {
		if w == nil {
			w = io.Discard
		}
		ix.progress = w
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Indexer) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// NewIndexer creates an indexer. A nil config uses DefaultConfig.
// Call Release when done to stop the pool workers.
func NewIndexer(embedder ai.Embedder, config *Config, opts ...Option) (*Indexer, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ix := &Indexer{
		embedder: embedder,
		config:   config,
		progress: io.Discard,
		logger:   slog.Default().With("component", "indexer"),
	}

	for _, opt := range opts {
		if err := opt(ix); err != nil {
			return nil, err
		}
	}

	pool, err := ants.NewPool(config.Workers)
	if err != nil {
		return nil, err
	}
	ix.pool = pool

	return ix, nil
}

// Release stops the worker pool.
func (ix *Indexer) Release() {
	if ix.pool != nil {
		ix.pool.Release()
	}
}

// Index sets Vector on every document and returns the documents in input
// order. The first batch that still fails after retries cancels the rest;
// on error no document keeps a vector.
func (ix *Indexer) Index(ctx context.Context, docs []*core.Document) ([]*core.Document, error) {
	if len(docs) == 0 {
		return docs, nil
	}
	for i, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	batches := (len(docs) + ix.config.BatchSize - 1) / ix.config.BatchSize
	ix.logger.Info("indexing corpus",
		"documents", len(docs),
		"batches", batches,
		"workers", ix.config.Workers)

	tracker := NewProgressTracker(ix.progress, len(docs), ix.config.ReportInterval)
	tracker.Start()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for start := 0; start < len(docs); start += ix.config.BatchSize {
		end := min(start+ix.config.BatchSize, len(docs))
		batch := docs[start:end]
		first := start

		wg.Add(1)
		err := ix.pool.Submit(func() {
			defer wg.Done()
			if err := ix.embedBatch(ctx, batch); err != nil {
				fail(fmt.Errorf("batch at document %d: %w", first, err))
				return
			}
			tracker.Increment(len(batch))
		})
		if err != nil {
			wg.Done()
			fail(fmt.Errorf("failed to submit batch: %w", err))
			break
		}
	}

	wg.Wait()
	elapsed := tracker.Elapsed()
	tracker.Finish()

	if firstErr != nil {
		ix.logger.Error("indexing failed", "indexed", tracker.Current(), "err", firstErr)
		for _, doc := range docs {
			doc.Vector = nil
		}
		return nil, firstErr
	}

	ix.logger.Info("indexing complete", "documents", len(docs), "elapsed", elapsed)
	return docs, nil
}

func (ix *Indexer) embedBatch(ctx context.Context, batch []*core.Document) error {
	texts := make([]string, len(batch))
	for i, doc := range batch {
		texts[i] = doc.Text
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		vectors, err = ix.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return err
		}
		if len(vectors) != len(texts) {
			return fmt.Errorf("%w: expected %d, got %d", ai.ErrEmbeddingCount, len(texts), len(vectors))
		}
		return nil
	}, ix.config.MaxRetries, ix.config.RetryDelay)
	if err != nil {
		return err
	}

	// Each batch owns a disjoint slice of docs, so no locking is needed.
	for i, doc := range batch {
		doc.Vector = vectors[i]
	}
	return nil
}
