package ai

import "context"

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation.
type Message struct {
	Role    Role
	Content string
}

// SystemMessage returns a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage returns a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage returns an assistant-role message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// StreamFunc receives each content delta of a streamed completion.
// Returning an error aborts the stream.
type StreamFunc func(ctx context.Context, delta string) error

// ChatOptions tunes a single completion request.
type ChatOptions struct {
	// MaxTokens caps the reply length. Zero leaves it to the proxy.
	MaxTokens int

	// Temperature is the sampling temperature. Nil leaves it to the proxy.
	Temperature *float64

	// StreamFunc, when set, switches the request to streaming mode.
	StreamFunc StreamFunc
}

// Temperature returns a pointer to t, for use in ChatOptions.
func Temperature(t float64) *float64 {
	return &t
}

// Completion is the model's reply to a chat request.
type Completion struct {
	Content          string
	StopReason       string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Model describes a model served by the proxy.
type Model struct {
	ID      string
	Object  string
	OwnedBy string
}
