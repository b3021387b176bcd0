package scanrunner

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer blocks between two consecutive steps of a run.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Gate admits steps one at a time. Run asks a Gate before every step, the
// first one included, so a gate shared between runs limits all of them.
type Gate interface {
	Admit(ctx context.Context) error
}

// FixedDelay sleeps for a constant duration between steps.
type FixedDelay time.Duration

func (d FixedDelay) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(time.Duration(d))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// TokenBucket paces steps with a token-bucket limiter instead of a fixed
// sleep. It is a Gate: every step takes a token, and the bucket is shared by
// every run that uses the same value.
type TokenBucket struct {
	limiter *rate.Limiter
}

// NewTokenBucket allows perMinute steps per minute with the given burst.
func NewTokenBucket(perMinute float64, burst int) *TokenBucket {
	if burst < 1 {
		burst = 1
	}
	return &TokenBucket{limiter: rate.NewLimiter(rate.Limit(perMinute/60.0), burst)}
}

func (b *TokenBucket) Wait(ctx context.Context) error {
	return b.limiter.Wait(ctx)
}

func (b *TokenBucket) Admit(ctx context.Context) error {
	return b.limiter.Wait(ctx)
}

// Step processes item i. Returning false stops the run.
type Step func(ctx context.Context, i int) bool

// Run calls step for 0..n-1 in order. A Gate pacer is asked before every
// step; any other pacer is waited on between steps, never after the last
// step or after a step that stopped the run. The context is checked before
// every step.
func Run(ctx context.Context, n int, pacer Pacer, step Step) error {
	gate, gated := pacer.(Gate)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch {
		case gated:
			if err := gate.Admit(ctx); err != nil {
				return err
			}
		case i > 0 && pacer != nil:
			if err := pacer.Wait(ctx); err != nil {
				return err
			}
		}
		if !step(ctx, i) {
			return nil
		}
	}
	return nil
}
