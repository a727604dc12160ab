package openai

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeText folds compatibility characters (full-width Latin, half-width
// kana) with NFKC and collapses runs of whitespace. Embeddings of the same
// sentence typed on different keyboards should not diverge.
func normalizeText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return norm.NFKC.String(s)
}
