package index

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poiesic/proxyclient/core"
)

// maxLineSize bounds a single document line.
const maxLineSize = 1 << 20

// ReadCorpus reads one document per non-empty line. Surrounding whitespace is
// trimmed and repeated lines are kept once, at their first position.
func ReadCorpus(r io.Reader) ([]*core.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var docs []*core.Document
	seen := make(map[core.ID]bool)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		doc := core.NewDocument(text)
		if seen[doc.Id] {
			continue
		}
		seen[doc.Id] = true
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}
	return docs, nil
}

// LoadCorpus reads a corpus file. See ReadCorpus.
func LoadCorpus(path string) ([]*core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := ReadCorpus(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// DocumentsFromTexts builds documents from in-memory texts, skipping blanks.
// Unlike ReadCorpus it keeps duplicates so callers can index positions.
func DocumentsFromTexts(texts []string) []*core.Document {
	docs := make([]*core.Document, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		docs = append(docs, core.NewDocument(text))
	}
	return docs
}
