// Package backoff paces retry loops such as lock acquisition
package backoff

import (
	"context"
	"time"
)

// Strategy maps the number of waits already done to the next wait
type Strategy func(waits int, base time.Duration) time.Duration

// Exponential doubles the wait every time: base, 2*base, 4*base...
func Exponential(waits int, base time.Duration) time.Duration {
	if waits > 30 {
		waits = 30
	}
	return base << uint(waits)
}

// Constant always waits base
func Constant(_ int, base time.Duration) time.Duration {
	return base
}

// Backoff is not safe for concurrent use, each retry loop owns one
type Backoff struct {
	strategy Strategy
	base     time.Duration
	limit    time.Duration
	waits    int
}

// New returns a Backoff starting at base. limit caps a single wait, zero means no cap.
func New(strategy Strategy, base, limit time.Duration) *Backoff {
	return &Backoff{strategy: strategy, base: base, limit: limit}
}

func NewExponential(base, limit time.Duration) *Backoff {
	return New(Exponential, base, limit)
}

// Next is the wait the following Wait call will do
func (b *Backoff) Next() time.Duration {
	d := b.strategy(b.waits, b.base)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

// Waits counts the completed waits
func (b *Backoff) Waits() int {
	return b.waits
}

func (b *Backoff) Reset() {
	b.waits = 0
}

// Wait sleeps for Next or until ctx is done, in which case ctx.Err() is returned
func (b *Backoff) Wait(ctx context.Context) error {
	timer := time.NewTimer(b.Next())
	defer timer.Stop()
	select {
	case <-timer.C:
		b.waits++
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
