package checkout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"zapshift/internal/logx"
)

type gateway interface {
	CreateSession(context.Context, CreateSessionParams) (*Session, error)
	RetrieveSession(context.Context, string) (*Session, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingGateway behavior.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingGateway wraps a checkout gateway with bounded exponential
// backoff on transient provider failures.
type RetryingGateway struct {
	next    gateway
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingGateway checks that next is not nil and returns a RetryingGateway.
func NewRetryingGateway(next gateway, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingGateway {
	if next == nil {
		return nil
	}
	return &RetryingGateway{next: next, logger: logger, retries: retries, cfg: cfg}
}

// CreateSession retries transient failures of the wrapped gateway.
func (g *RetryingGateway) CreateSession(ctx context.Context, p CreateSessionParams) (*Session, error) {
	var out *Session
	err := g.withRetry(ctx, "CreateSession", func() error {
		var err error
		out, err = g.next.CreateSession(ctx, p)
		return err
	})
	return out, err
}

// RetrieveSession retries transient failures of the wrapped gateway.
func (g *RetryingGateway) RetrieveSession(ctx context.Context, ref string) (*Session, error) {
	var out *Session
	err := g.withRetry(ctx, "RetrieveSession", func() error {
		var err error
		out, err = g.next.RetrieveSession(ctx, ref)
		return err
	})
	return out, err
}

func (g *RetryingGateway) withRetry(ctx context.Context, method string, call func() error) error {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		err := call()
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("checkout gateway retry",
			logx.String("method", method),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

// isRetryable treats provider throttling and server-side failures as
// transient; everything else (auth, validation, unknown session) is not.
func isRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}
	// transport-level failure
	return true
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
