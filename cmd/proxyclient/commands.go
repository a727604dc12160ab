package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/poiesic/proxyclient/ai"
	"github.com/poiesic/proxyclient/demo"
	"github.com/poiesic/proxyclient/index"
	"github.com/poiesic/proxyclient/search"
	"github.com/poiesic/proxyclient/storage"
	"github.com/poiesic/proxyclient/storage/badger"
	"github.com/urfave/cli/v2"
)

func newRunner(c *cli.Context) (*demo.Runner, ai.AIProvider, error) {
	provider, config, err := openProvider(c)
	if err != nil {
		return nil, nil, err
	}
	runner, err := demo.NewRunner(provider, config, c.App.Writer)
	if err != nil {
		provider.Close()
		return nil, nil, err
	}
	return runner, provider, nil
}

func overviewCommand(c *cli.Context) error {
	runner, provider, err := newRunner(c)
	if err != nil {
		return err
	}
	defer provider.Close()
	return runner.Overview(c.Context)
}

func chatDemoCommand(c *cli.Context) error {
	runner, provider, err := newRunner(c)
	if err != nil {
		return err
	}
	defer provider.Close()
	return runner.RunChat(c.Context)
}

func embeddingDemoCommand(c *cli.Context) error {
	runner, provider, err := newRunner(c)
	if err != nil {
		return err
	}
	defer provider.Close()
	return runner.RunEmbedding(c.Context)
}

func modelsCommand(c *cli.Context) error {
	provider, _, err := openProvider(c)
	if err != nil {
		return err
	}
	defer provider.Close()

	models, err := provider.ModelLister().ListModels(c.Context)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOBJECT\tOWNED BY")
	for _, m := range models {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.Object, m.OwnedBy)
	}
	return w.Flush()
}

func chatCommand(c *cli.Context) error {
	prompt := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if prompt == "" {
		return errors.New("prompt is required")
	}

	provider, _, err := openProvider(c)
	if err != nil {
		return err
	}
	defer provider.Close()

	var messages []ai.Message
	if system := c.String("system"); system != "" {
		messages = append(messages, ai.SystemMessage(system))
	}
	messages = append(messages, ai.UserMessage(prompt))

	opts := &ai.ChatOptions{MaxTokens: c.Int("max-tokens")}
	if c.IsSet("temperature") {
		opts.Temperature = ai.Temperature(c.Float64("temperature"))
	}
	out := c.App.Writer
	if c.Bool("stream") {
		opts.StreamFunc = func(_ context.Context, delta string) error {
			_, err := fmt.Fprint(out, delta)
			return err
		}
	}

	completion, err := provider.ChatModel().Complete(c.Context, messages, opts)
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}
	if c.Bool("stream") {
		fmt.Fprintln(out)
	} else {
		fmt.Fprintln(out, completion.Content)
	}
	slog.Debug("chat completed",
		"stopReason", completion.StopReason,
		"promptTokens", completion.PromptTokens,
		"completionTokens", completion.CompletionTokens)
	return nil
}

func embedCommand(c *cli.Context) error {
	texts := c.Args().Slice()
	if len(texts) == 0 {
		return errors.New("at least one text is required")
	}
	head := c.Int("head")
	if head < 0 {
		return fmt.Errorf("invalid --head %d: must not be negative", head)
	}

	provider, _, err := openProvider(c)
	if err != nil {
		return err
	}
	defer provider.Close()

	vectors, err := provider.Embedder().EmbedTexts(c.Context, texts)
	if err != nil {
		return fmt.Errorf("embedding failed: %w", err)
	}

	out := c.App.Writer
	for i, text := range texts {
		fmt.Fprintf(out, "%s\n  dimensions: %d\n  vector: %s\n", text, len(vectors[i]), demo.FormatVector(vectors[i], head))
	}
	return nil
}

func similarityCommand(c *cli.Context) error {
	texts := c.Args().Slice()
	if len(texts) < 2 {
		return errors.New("at least two texts are required")
	}

	runner, provider, err := newRunner(c)
	if err != nil {
		return err
	}
	defer provider.Close()
	return runner.CompareTexts(c.Context, texts)
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return errors.New("query is required")
	}
	top := c.Int("top")
	if top < 0 {
		return fmt.Errorf("invalid --top %d: must not be negative", top)
	}

	docs, err := index.LoadCorpus(c.String("corpus"))
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	provider, config, err := openProvider(c)
	if err != nil {
		return err
	}
	defer provider.Close()

	embedder := provider.Embedder()
	if dir := c.String("cache"); dir != "" {
		cache, err := badger.OpenEmbeddingCache(dir)
		if err != nil {
			return fmt.Errorf("failed to open embedding cache: %w", err)
		}
		defer cache.Close()
		if c.Bool("explain") {
			count, err := cache.CountEmbeddings(c.Context)
			if err != nil {
				return fmt.Errorf("failed to count cached embeddings: %w", err)
			}
			fmt.Fprintf(c.App.ErrWriter, "cache: %d embeddings in %s\n", count, dir)
		}
		embedder = storage.NewCachingEmbedder(embedder, cache, config.EmbeddingModel)
	}

	indexConfig := &index.Config{
		BatchSize:      c.Int("batch-size"),
		Workers:        c.Int("workers"),
		ReportInterval: c.Int("batch-size"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	indexer, err := index.NewIndexer(embedder, indexConfig, index.WithProgress(c.App.ErrWriter))
	if err != nil {
		return err
	}
	defer indexer.Release()

	docs, err = indexer.Index(c.Context, docs)
	if err != nil {
		return fmt.Errorf("failed to index corpus: %w", err)
	}

	searcher, err := search.NewSearcher(embedder, search.WithMinScore(c.Float64("min-score")))
	if err != nil {
		return err
	}

	var monitor search.SearchMonitor
	if c.Bool("explain") {
		monitor = search.NewExplainMonitor(c.App.ErrWriter)
	}
	results, err := searcher.FindSimilarWithMonitor(c.Context, query, docs, top, monitor)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := c.App.Writer
	if len(results) == 0 {
		fmt.Fprintln(out, "No matching documents.")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(out, "%d. [%.4f] %s\n", r.Rank, r.Score, r.Document.Text)
	}
	return nil
}
