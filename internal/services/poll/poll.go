// Package poll provides the bounded retry-until-condition primitive
// every "wait for the view to catch up" need is built on.
package poll

import (
	"context"
	"time"

	"github.com/jpillora/backoff"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 3 * time.Second
	defaultDelay   = 50 * time.Millisecond
)

// Condition is polled until it reports true. A false result with a nil
// error is a transient miss and is retried; an error is a hard failure
// and propagates immediately, never retried.
type Condition func(ctx context.Context) (bool, error)

// Poller runs conditions with a bounded retry budget.
type Poller struct {
	timeout  time.Duration
	delay    time.Duration
	maxDelay time.Duration
	jitter   bool
	l        *zap.Logger
}

// Option configures a Poller.
type Option func(*Poller)

// WithTimeout sets the overall polling budget.
func WithTimeout(d time.Duration) Option {
	return func(p *Poller) {
		p.timeout = d
	}
}

// WithDelay sets the sleep between attempts.
func WithDelay(d time.Duration) Option {
	return func(p *Poller) {
		p.delay = d
	}
}

// WithMaxDelay enables exponential delay growth up to d.
func WithMaxDelay(d time.Duration) Option {
	return func(p *Poller) {
		p.maxDelay = d
	}
}

// WithJitter randomizes the grown delays to decorrelate parallel flows.
func WithJitter() Option {
	return func(p *Poller) {
		p.jitter = true
	}
}

// New creates a Poller with default budget and optional overrides.
func New(l *zap.Logger, opts ...Option) *Poller {
	p := &Poller{
		timeout: defaultTimeout,
		delay:   defaultDelay,
		l:       l,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.maxDelay < p.delay {
		p.maxDelay = p.delay
	}

	return p
}

// Until polls cond until it reports true, the budget elapses or ctx is
// canceled. It returns true the first time cond does; false when the
// timeout elapses first, after logging a diagnostic entry naming the
// caller-supplied description. Errors from cond propagate unretried.
func (p *Poller) Until(ctx context.Context, description string, cond Condition) (bool, error) {
	deadline := time.Now().Add(p.timeout)

	b := &backoff.Backoff{
		Min:    p.delay,
		Max:    p.maxDelay,
		Factor: 2,
		Jitter: p.jitter,
	}

	for time.Now().Before(deadline) {
		ok, err := cond(ctx)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}

		timer := time.NewTimer(b.Duration())
		select {
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		case <-timer.C:
		}
	}

	p.l.Debug("poll timed out",
		zap.String("description", description),
		zap.Duration("timeout", p.timeout),
		zap.Duration("delay", p.delay))

	return false, nil
}
