package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/proxyclient/ai"
)

// MockChatModel is a test double for ai.ChatModel.
type MockChatModel struct {
	// CompleteFunc is called by Complete if set.
	// If nil, the last user message is echoed back.
	CompleteFunc func(ctx context.Context, messages []ai.Message, opts *ai.ChatOptions) (*ai.Completion, error)

	mu        sync.Mutex
	callCount int
	requests  [][]ai.Message
	options   []ai.ChatOptions
}

// NewMockChatModel creates a mock chat model with echo behavior.
func NewMockChatModel() *MockChatModel {
	return &MockChatModel{}
}

// WithCompleteFunc sets the completion behavior and returns the model.
func (m *MockChatModel) WithCompleteFunc(fn func(ctx context.Context, messages []ai.Message, opts *ai.ChatOptions) (*ai.Completion, error)) *MockChatModel {
	m.CompleteFunc = fn
	return m
}

// Complete records the request and returns a reply.
// The default reply is "echo: <last user message>", delivered word by word
// to opts.StreamFunc when streaming is requested.
func (m *MockChatModel) Complete(ctx context.Context, messages []ai.Message, opts *ai.ChatOptions) (*ai.Completion, error) {
	m.mu.Lock()
	m.callCount++
	m.requests = append(m.requests, append([]ai.Message(nil), messages...))
	if opts != nil {
		m.options = append(m.options, *opts)
	} else {
		m.options = append(m.options, ai.ChatOptions{})
	}
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, messages, opts)
	}
	if len(messages) == 0 {
		return nil, ai.ErrNoMessages
	}

	var last string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == ai.RoleUser {
			last = messages[i].Content
			break
		}
	}
	reply := "echo: " + last

	if opts != nil && opts.StreamFunc != nil {
		words := strings.SplitAfter(reply, " ")
		for _, w := range words {
			if err := opts.StreamFunc(ctx, w); err != nil {
				return nil, err
			}
		}
	}

	prompt := 0
	for _, msg := range messages {
		prompt += len(strings.Fields(msg.Content))
	}
	completion := len(strings.Fields(reply))

	return &ai.Completion{
		Content:          reply,
		StopReason:       "stop",
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      prompt + completion,
	}, nil
}

// CallCount returns the number of times Complete was called.
func (m *MockChatModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Requests returns copies of the conversations passed to Complete, in call order.
func (m *MockChatModel) Requests() [][]ai.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]ai.Message(nil), m.requests...)
}

// Options returns the options passed to Complete, in call order.
// A nil opts is recorded as the zero value.
func (m *MockChatModel) Options() []ai.ChatOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ai.ChatOptions(nil), m.options...)
}

// Reset clears recorded calls and the custom function.
func (m *MockChatModel) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.requests = nil
	m.options = nil
	m.CompleteFunc = nil
}
