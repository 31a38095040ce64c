package weibo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"weibo_push/internal/domain"
)

// Failure classes reported in logs.
const (
	ClassTransport   = "transport"
	ClassStatus      = "status"
	ClassContentType = "content_type"
	ClassDecode      = "decode"
	ClassAPI         = "api_status"
	ClassCredential  = "credential"
)

// FetchError is a classified upstream failure.
type FetchError struct {
	Class string
	Err   error
}

func (e *FetchError) Error() string {
	return e.Class + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func fetchErr(class string, format string, args ...any) error {
	return &FetchError{Class: class, Err: fmt.Errorf(format, args...)}
}

// FailureClass extracts the class of a fetch failure.
func FailureClass(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Class
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "canceled"
	}
	return "unknown"
}

// retryPolicy is a fixed-bound, fixed-delay retry loop.
type retryPolicy struct {
	maxAttempts int
	backoff     time.Duration
}

func (p retryPolicy) do(ctx context.Context, logger *slog.Logger, fn func() error) error {
	attempts := p.maxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		err     error
		attempt int
	)
	for attempt = 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrCredentialInvalid) || ctx.Err() != nil {
			break
		}
		if attempt == attempts {
			break
		}

		logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", p.backoff,
			"class", FailureClass(err),
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.backoff):
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if attempt > attempts {
		attempt = attempts
	}
	return fmt.Errorf("%w after %d attempts: %w", domain.ErrUpstreamUnavailable, attempt, err)
}
