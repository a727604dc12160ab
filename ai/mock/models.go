package mock

import (
	"context"

	"github.com/poiesic/proxyclient/ai"
)

// MockModelLister is a test double for ai.ModelLister.
type MockModelLister struct {
	// Models is returned by ListModels when ListModelsFunc is nil.
	Models []ai.Model

	// ListModelsFunc is called by ListModels if set.
	ListModelsFunc func(ctx context.Context) ([]ai.Model, error)

	callCount int
}

// NewMockModelLister creates a lister reporting one chat and one embedding model.
func NewMockModelLister() *MockModelLister {
	return &MockModelLister{
		Models: []ai.Model{
			{ID: "qwen2.5-0.5b", Object: "model", OwnedBy: "openai"},
			{ID: "multilingual-e5-large", Object: "model", OwnedBy: "openai"},
		},
	}
}

// ListModels returns the configured models.
func (m *MockModelLister) ListModels(ctx context.Context) ([]ai.Model, error) {
	m.callCount++
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return append([]ai.Model(nil), m.Models...), nil
}

// CallCount returns the number of times ListModels was called.
func (m *MockModelLister) CallCount() int {
	return m.callCount
}
