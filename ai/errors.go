package ai

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEmptyResponse is returned when the proxy answers without any choices.
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrEmbeddingCount is returned when the number of embeddings returned
	// differs from the number of input texts.
	ErrEmbeddingCount = errors.New("embedding count mismatch")

	// ErrUnexpectedStatus is returned when the proxy answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status from proxy")

	// ErrNoMessages is returned when a completion is requested for an empty conversation.
	ErrNoMessages = errors.New("at least one message is required")
)

// StatusError is a request the proxy rejected with a non-2xx status.
// It matches ErrUnexpectedStatus under errors.Is.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %d %s", ErrUnexpectedStatus, e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// Temporary reports whether the same request may succeed later: server
// errors, timeouts and rate limiting. Other client errors are final.
func (e *StatusError) Temporary() bool {
	return e.Code >= http.StatusInternalServerError ||
		e.Code == http.StatusRequestTimeout ||
		e.Code == http.StatusTooManyRequests
}
