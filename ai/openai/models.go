package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/poiesic/proxyclient/ai"
)

// ModelLister implements ai.ModelLister with a GET on the proxy's /models endpoint.
type ModelLister struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

type modelsResponse struct {
	Data []struct {
		ID      string `json:"id"`
		Object  string `json:"object"`
		OwnedBy string `json:"owned_by"`
	} `json:"data"`
}

func newModelLister(config *ai.Config, httpClient *http.Client) (*ModelLister, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &ModelLister{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		apiKey:     config.APIKey,
		logger:     slog.Default().With("component", "openai-models"),
	}, nil
}

// NewModelLister creates a model lister using the provided configuration.
func NewModelLister(config *ai.Config) (ai.ModelLister, error) {
	return newModelLister(config, newHTTPClient(config))
}

// ListModels returns the models the proxy routes to, in the order it reports them.
func (l *ModelLister) ListModels(ctx context.Context) ([]ai.Model, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create models request: %w", err)
	}
	if l.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+l.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		l.logger.Error("models request failed", "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		l.logger.Warn("models request rejected", "status", resp.StatusCode)
		return nil, &ai.StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var payload modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse models response: %w", err)
	}

	models := make([]ai.Model, 0, len(payload.Data))
	for _, m := range payload.Data {
		models = append(models, ai.Model{
			ID:      m.ID,
			Object:  m.Object,
			OwnedBy: m.OwnedBy,
		})
	}

	l.logger.Debug("listed models", "count", len(models))
	return models, nil
}
