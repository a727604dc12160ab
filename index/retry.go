// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/poiesic/proxyclient/ai"
)

// maxRetryDelay caps the wait between two attempts.
const maxRetryDelay = 30 * time.Second

// Retryable reports whether repeating a failed embedding request could
// succeed. A short answer from the proxy and client errors other than
// timeouts and rate limits are final.
func Retryable(err error) bool {
	if errors.Is(err, ai.ErrEmbeddingCount) {
		return false
	}
	var se *ai.StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	return true
}

// backoff returns baseDelay doubled once per earlier attempt, capped at maxRetryDelay.
func backoff(baseDelay time.Duration, attempt int) time.Duration {
	delay := baseDelay
	for i := 1; i < attempt && delay < maxRetryDelay; i++ {
		delay *= 2
	}
	return min(delay, maxRetryDelay)
}

// RetryWithBackoff runs operation up to maxAttempts times, sleeping
// backoff(baseDelay, attempt) between attempts. It stops early when the
// context ends or the error is not Retryable, and returns the last error.
func RetryWithBackoff(ctx context.Context, operation func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var err error
	for attempt := 1; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err = operation(); err == nil {
			if attempt > 1 {
				slog.Debug("embedding request succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		if !Retryable(err) {
			slog.Debug("embedding request failed permanently", "attempt", attempt, "err", err)
			return err
		}
		if attempt == maxAttempts {
			return err
		}

		delay := backoff(baseDelay, attempt)
		slog.Debug("embedding request failed, retrying",
			"attempt", attempt,
			"maxAttempts", maxAttempts,
			"delay", delay,
			"err", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
