package demo

import (
	"context"
	"fmt"

	"github.com/poiesic/proxyclient/index"
	"github.com/poiesic/proxyclient/search"
	"github.com/poiesic/proxyclient/similarity"
)

const (
	basicText   = "機械学習は人工知能の一分野です"
	searchQuery = "AIと機械学習について教えてください"
)

var (
	batchTexts = []string{
		"Python はプログラミング言語です",
		"Java もプログラミング言語です",
		"犬は動物です",
		"猫も動物です",
	}

	matrixTexts = []string{
		"機械学習とディープラーニング",
		"ニューラルネットワークと深層学習",
		"今日は良い天気です",
		"明日は雨が降るでしょう",
	}

	searchCorpus = []string{
		"Pythonは高水準プログラミング言語で、読みやすい構文が特徴です",
		"機械学習はデータからパターンを学習するAIの手法です",
		"深層学習はニューラルネットワークを使った機械学習の一種です",
		"東京は日本の首都で、人口が最も多い都市です",
		"富士山は日本で最も高い山で、標高3776メートルです",
		"Webスクレイピングはウェブサイトからデータを抽出する技術です",
	}

	greetings = []string{
		"こんにちは、世界",
		"Hello, world",
		"你好，世界",
		"Hola, mundo",
	}
)

// EmbeddingScenarios returns the embedding suite in run order.
func (r *Runner) EmbeddingScenarios() []Scenario {
	return []Scenario{
		{"Basic embedding", r.BasicEmbedding},
		{"Batch embedding", r.BatchEmbedding},
		{"Similarity comparison", r.SimilarityComparison},
		{"Semantic search", r.SemanticSearch},
		{"Multilingual support", r.MultilingualComparison},
	}
}

func (r *Runner) printTexts(header string, texts []string) {
	r.printf("%s\n", header)
	for i, text := range texts {
		r.printf("  %d. %s\n", i+1, text)
	}
}

// BasicEmbedding embeds one sentence and prints its shape.
func (r *Runner) BasicEmbedding(ctx context.Context) error {
	r.printf("Text: %s\n", basicText)

	vector, err := r.provider.Embedder().EmbedText(ctx, basicText)
	if err != nil {
		return err
	}
	r.printf("Dimensions: %d\n", len(vector))
	r.printf("First 10 values: %s\n\n", FormatVector(vector, 10))
	return nil
}

// BatchEmbedding embeds several texts in one request.
func (r *Runner) BatchEmbedding(ctx context.Context) error {
	r.printTexts("Texts:", batchTexts)

	vectors, err := r.provider.Embedder().EmbedTexts(ctx, batchTexts)
	if err != nil {
		return err
	}
	r.printf("\nGenerated %d embedding vectors\n\n", len(vectors))
	return nil
}

// SimilarityComparison prints the pairwise cosine similarity matrix.
func (r *Runner) SimilarityComparison(ctx context.Context) error {
	if err := r.CompareTexts(ctx, matrixTexts); err != nil {
		return err
	}
	r.printf("\nExpected:\n")
	r.printf("  - T1 and T2 score high (both about machine learning)\n")
	r.printf("  - T3 and T4 score fairly high (both about weather)\n")
	r.printf("  - T1/T2 against T3/T4 score low (different topics)\n\n")
	return nil
}

// CompareTexts embeds texts in one request and prints them with their
// similarity matrix, labeled T1..Tn.
func (r *Runner) CompareTexts(ctx context.Context, texts []string) error {
	r.printTexts("Texts:", texts)

	vectors, err := r.provider.Embedder().EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}
	matrix, err := similarity.Matrix(vectors)
	if err != nil {
		return err
	}

	r.printf("\nCosine similarity matrix:\n")
	r.printf("%s", formatMatrix(matrix))
	return nil
}

// SemanticSearch ranks a small corpus against a question.
func (r *Runner) SemanticSearch(ctx context.Context) error {
	r.printTexts("Document corpus:", searchCorpus)

	r.printf("\nEmbedding documents...\n")
	docs := index.DocumentsFromTexts(searchCorpus)
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}
	vectors, err := r.provider.Embedder().EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}
	if len(vectors) != len(docs) {
		return fmt.Errorf("expected %d vectors, got %d", len(docs), len(vectors))
	}
	for i, doc := range docs {
		doc.Vector = vectors[i]
	}

	r.printf("\nQuery: %s\n", searchQuery)

	searcher, err := search.NewSearcher(r.provider.Embedder())
	if err != nil {
		return err
	}
	results, err := searcher.FindSimilar(ctx, searchQuery, docs, 0)
	if err != nil {
		return err
	}

	r.printf("\nResults (by similarity):\n")
	for _, res := range results {
		r.printf("  #%d (similarity: %.4f): %s\n", res.Rank, res.Score, res.Document.Text)
	}
	r.printf("\n")
	return nil
}

// MultilingualComparison compares one greeting across languages.
func (r *Runner) MultilingualComparison(ctx context.Context) error {
	r.printTexts("The same meaning in different languages:", greetings)

	vectors, err := r.provider.Embedder().EmbedTexts(ctx, greetings)
	if err != nil {
		return err
	}
	pairs, err := similarity.Pairs(vectors)
	if err != nil {
		return err
	}

	r.printf("\nCosine similarity:\n")
	for _, p := range pairs {
		r.printf("  %s vs %s: %.4f\n", greetings[p.I], greetings[p.J], p.Score)
	}
	r.printf("\nA multilingual model maps texts with similar meaning to nearby\n")
	r.printf("points in the embedding space, whatever the language.\n\n")
	return nil
}
