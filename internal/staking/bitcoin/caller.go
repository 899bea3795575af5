package bitcoin

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 5 * time.Second
)

// RetryPolicy bounds how often a failing RPC call is attempted.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Caller executes node RPC calls with bounded retries and optional client-side rate limiting.
type Caller struct {
	policy  RetryPolicy
	limiter ratelimit.Limiter
	logger  *zap.Logger
}

// NewCaller constructs a Caller. A non-positive requestsPerSecond disables rate limiting.
func NewCaller(policy RetryPolicy, requestsPerSecond int, logger *zap.Logger) *Caller {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	limiter := ratelimit.NewUnlimited()
	if requestsPerSecond > 0 {
		limiter = ratelimit.New(requestsPerSecond)
	}
	return &Caller{
		policy:  policy,
		limiter: limiter,
		logger:  logger,
	}
}

func (c *Caller) backOff(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff = &backoff.StopBackOff{}
	// WithMaxRetries treats zero as unlimited, so single attempts never wrap it.
	if c.policy.MaxAttempts > 1 {
		b = backoff.WithMaxRetries(backoff.NewConstantBackOff(c.policy.Delay), uint64(c.policy.MaxAttempts-1))
	}
	return backoff.WithContext(b, ctx)
}

// call runs fn until it succeeds or the retry policy is exhausted.
// It reports false when the result is unavailable; failures are logged, never returned.
func call[T any](ctx context.Context, c *Caller, operation string, fn func() (T, error)) (T, bool) {
	attempt := 0
	op := func() (T, error) {
		attempt++
		c.limiter.Take()
		return fn()
	}
	notify := func(err error, next time.Duration) {
		c.logger.Warn("rpc call failed, retrying",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.policy.MaxAttempts),
			zap.Duration("next_try", next),
			zap.Error(err),
		)
	}

	res, err := backoff.RetryNotifyWithData(op, c.backOff(ctx), notify)
	if err != nil {
		c.logger.Error("rpc call unavailable",
			zap.String("operation", operation),
			zap.Int("attempts", attempt),
			zap.Error(err),
		)
		var zero T
		return zero, false
	}
	return res, true
}
