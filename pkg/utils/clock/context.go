package clock

import (
	"context"
	"time"
)

type ctxClockKey struct{}

type Clock func() time.Time

// Now returns the current time, or the time of a clock injected via With.
// Deadline classification and document stamping read time only through
// this function so tests can freeze it.
func Now(ctx context.Context) time.Time {
	clock, ok := ctx.Value(ctxClockKey{}).(Clock)
	if !ok {
		return time.Now()
	}
	return clock()
}

func Since(ctx context.Context, t time.Time) time.Duration {
	return Now(ctx).Sub(t)
}

func With(ctx context.Context, clock Clock) context.Context {
	return context.WithValue(ctx, ctxClockKey{}, clock)
}

// Frozen pins the context clock to a fixed instant.
func Frozen(ctx context.Context, t time.Time) context.Context {
	return With(ctx, func() time.Time { return t })
}
