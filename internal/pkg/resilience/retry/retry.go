// Package retry provides a configurable retry mechanism for operations that
// may fail temporarily. It wraps avast/retry-go behind a small interface with
// functional options, using exponential backoff between attempts.
//
// Basic usage:
//
//	r := retry.New(retry.WithAttempts(3))
//	err := r.Execute(ctx, func() error {
//	    return someFlakyOperation()
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations with automatic retry logic on failure.
type Retry interface {
	// Execute runs operation, retrying on error according to the configured
	// parameters. If ctx is canceled or times out, retrying stops and the
	// context error is returned. The operation should be safe to invoke more
	// than once.
	Execute(ctx context.Context, operation func() error) error
}

// config holds the internal retry settings.
type config struct {
	attempts    uint          // maximum number of attempts, including the first
	delay       time.Duration // base delay before the first retry
	maxDelay    time.Duration // cap on the backoff growth
	lastErrOnly bool          // report only the final attempt's error
}

// Option adjusts the retry configuration.
type Option func(*config)

// retrier implements Retry on top of avast/retry-go.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New builds a Retry with the given options. Defaults: 3 attempts, 1s base
// delay, 5s max delay, exponential backoff, last error only.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, including the initial
// one. Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay before the first retry. Subsequent delays
// grow exponentially. Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff delay between attempts. Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether only the final attempt's error is
// returned (true) or all attempt errors are combined (false). Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}
