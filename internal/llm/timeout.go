package llm

import (
	"context"
	"errors"
	"time"
)

// TimeoutProvider is a decorator that bounds each Generate call with a
// deadline. An elapsed deadline surfaces as ErrGenerationTimeout so
// callers can distinguish it from ErrProviderUnavailable.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-call timeout. A non-positive
// timeout disables the bound.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.inner.Generate(ctx, req)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		// Only report a timeout when it was this decorator's deadline;
		// a caller-cancelled context passes through unchanged.
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &ErrGenerationTimeout{Timeout: t.timeout, Err: err}
		}
	}
	return resp, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
