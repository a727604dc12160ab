package search

import (
	"fmt"
	"io"

	"github.com/poiesic/proxyclient/core"
	"github.com/poiesic/proxyclient/similarity"
)

// ExplainMonitor writes a short trace of each search stage to a writer.
type ExplainMonitor struct {
	w      io.Writer
	ranked int
}

var _ SearchMonitor = (*ExplainMonitor)(nil)

// NewExplainMonitor returns a monitor writing to w.
func NewExplainMonitor(w io.Writer) *ExplainMonitor {
	return &ExplainMonitor{w: w}
}

func (m *ExplainMonitor) Start(query string, corpusSize int) {
	fmt.Fprintf(m.w, "query: %q against %d documents\n", query, corpusSize)
}

func (m *ExplainMonitor) AfterQueryEmbedding(dimensions int) {
	fmt.Fprintf(m.w, "query embedded: %d dimensions\n", dimensions)
}

func (m *ExplainMonitor) AfterRanking(scored []similarity.ScoredCandidate) {
	m.ranked = len(scored)
	if len(scored) == 0 {
		fmt.Fprintln(m.w, "ranked: no candidates")
		return
	}
	fmt.Fprintf(m.w, "ranked: %d candidates, best %.4f, worst %.4f\n",
		len(scored), scored[0].Score, scored[len(scored)-1].Score)
}

func (m *ExplainMonitor) Finish(results []*core.SearchResult) {
	fmt.Fprintf(m.w, "returned: %d of %d\n", len(results), m.ranked)
}
