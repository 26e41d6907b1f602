// internal/clock/clock.go
package clock

import (
	"context"
	"time"
)

// Sleeper blocks for d or until ctx is done.
// Every blocking phase of the monitor sleeps through one of these so tests
// can run hour-long holds instantly.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the real Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
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

// Recorder is a Sleeper that returns immediately and remembers every request.
type Recorder struct {
	Slept []time.Duration
}

func (r *Recorder) Sleep(ctx context.Context, d time.Duration) error {
	r.Slept = append(r.Slept, d)
	return ctx.Err()
}

// Total is the sum of all recorded sleeps.
func (r *Recorder) Total() time.Duration {
	var sum time.Duration
	for _, d := range r.Slept {
		sum += d
	}
	return sum
}
