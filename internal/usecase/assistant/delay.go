package assistant

import (
	"context"
	"time"
)

// Delayer pauses before an assistant reply is delivered.
type Delayer interface {
	// Wait blocks for d or until ctx is done, returning ctx.Err() in the latter case.
	Wait(ctx context.Context, d time.Duration) error
}

// TimerDelayer waits on a timer.
type TimerDelayer struct{}

// Wait implements Delayer.
func (TimerDelayer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoDelay replies immediately.
type NoDelay struct{}

// Wait implements Delayer.
func (NoDelay) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
