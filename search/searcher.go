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

package search

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/poiesic/proxyclient/ai"
	"github.com/poiesic/proxyclient/core"
	"github.com/poiesic/proxyclient/similarity"
)

// Searcher ranks an embedded corpus against text queries.
type Searcher struct {
	embedder ai.Embedder
	minScore float64
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMinScore drops results scoring below score.
// Default is -1, which keeps everything.
func WithMinScore(score float64) Option {
	return func(s *Searcher) error {
		if score < -1 || score > 1 {
			return fmt.Errorf("%w: %v", ErrInvalidMinScore, score)
		}
		s.minScore = score
		return nil
	}
}

// NewSearcher creates a new searcher that embeds queries with embedder.
func NewSearcher(embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		embedder: embedder,
		minScore: -1,
		logger:   slog.Default().With("component", "searcher"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FindSimilar returns up to maxHits documents most similar to query.
// A maxHits of zero or less returns every document that passes the minimum score.
func (s *Searcher) FindSimilar(ctx context.Context, query string, docs []*core.Document, maxHits int) ([]*core.SearchResult, error) {
	return s.FindSimilarWithMonitor(ctx, query, docs, maxHits, nil)
}

// FindSimilarWithMonitor is FindSimilar with stage callbacks.
func (s *Searcher) FindSimilarWithMonitor(ctx context.Context, query string, docs []*core.Document, maxHits int, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	monitor.Start(query, len(docs))

	candidates := make([]similarity.Candidate, len(docs))
	positions := make(map[string]int, len(docs))
	for i, doc := range docs {
		if doc == nil || len(doc.Vector) == 0 {
			return nil, fmt.Errorf("%w: document %d", ErrDocumentNotIndexed, i)
		}
		// Positions, not document ids, so duplicates stay distinct.
		id := strconv.Itoa(i)
		positions[id] = i
		candidates[i] = similarity.Candidate{ID: id, Vector: doc.Vector}
	}

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterQueryEmbedding(len(vector))

	scored, err := similarity.Rank(vector, candidates)
	if err != nil {
		s.logger.Error("error ranking documents", "documents", len(docs), "err", err)
		return nil, err
	}
	monitor.AfterRanking(scored)

	results := make([]*core.SearchResult, 0, len(scored))
	for _, sc := range scored {
		if sc.Score < s.minScore {
			// Sorted descending, so nothing after this qualifies.
			break
		}
		if maxHits > 0 && len(results) == maxHits {
			break
		}
		results = append(results, &core.SearchResult{
			Document: docs[positions[sc.ID]],
			Score:    sc.Score,
			Rank:     len(results) + 1,
		})
	}

	s.logger.Debug("search complete",
		"documents", len(docs),
		"returned", len(results),
		"minScore", s.minScore)
	monitor.Finish(results)

	return results, nil
}
