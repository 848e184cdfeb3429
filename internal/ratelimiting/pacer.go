package ratelimiting

import (
	"context"
	"time"
)

// Pacer spaces out sequential calls to an upstream API. The enrichment
// loops and the value estimator share one pacing policy: a fixed delay
// after every call, success or failure, so the client stays under the
// upstream request ceiling regardless of batch size.
type Pacer interface {
	Wait(ctx context.Context) error
}

type fixedDelayPacer struct {
	delay     time.Duration
	afterFunc func(time.Duration) <-chan time.Time
}

// NewFixedDelayPacer builds a Pacer that waits delay between calls.
// afterFunc is injectable for tests; pass time.After in production.
func NewFixedDelayPacer(delay time.Duration, afterFunc func(time.Duration) <-chan time.Time) Pacer {
	if afterFunc == nil {
		afterFunc = time.After
	}
	return &fixedDelayPacer{
		delay:     delay,
		afterFunc: afterFunc,
	}
}

func (p *fixedDelayPacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.afterFunc(p.delay):
		return nil
	}
}
