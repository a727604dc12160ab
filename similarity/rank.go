package similarity

import (
	"cmp"
	"fmt"
	"slices"
)

// Candidate is a vector to be scored against a query.
type Candidate struct {
	ID     string
	Vector []float32
}

// ScoredCandidate pairs a candidate identifier with its similarity to the query.
type ScoredCandidate struct {
	ID    string
	Score float64
}

// Rank scores every candidate against query and returns them ordered by
// descending similarity. Candidates with equal scores keep their input order.
//
// Every vector must have the query's length L >= 1, otherwise
// ErrDimensionMismatch is returned. A zero-norm query or candidate yields
// ErrDegenerateVector. Errors name the offending candidate.
func Rank(query []float32, candidates []Candidate) ([]ScoredCandidate, error) {
	if len(query) == 0 {
		return nil, fmt.Errorf("%w: empty query vector", ErrDimensionMismatch)
	}
	qn := norm(query)
	if qn == 0 {
		return nil, fmt.Errorf("%w: query", ErrDegenerateVector)
	}

	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if len(c.Vector) != len(query) {
			return nil, fmt.Errorf("%w: candidate %q has %d dimensions, query has %d",
				ErrDimensionMismatch, c.ID, len(c.Vector), len(query))
		}
		cn := norm(c.Vector)
		if cn == 0 {
			return nil, fmt.Errorf("%w: candidate %q", ErrDegenerateVector, c.ID)
		}
		var dot float64
		for i := range query {
			dot += float64(query[i]) * float64(c.Vector[i])
		}
		scored = append(scored, ScoredCandidate{ID: c.ID, Score: clamp(dot / (qn * cn))})
	}

	slices.SortStableFunc(scored, func(a, b ScoredCandidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return scored, nil
}
