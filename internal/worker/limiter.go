package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles how fast jobs are allowed to start. Summary runs on
// shared filesystems can saturate metadata servers when many samples are
// opened at once; a limiter caps the sample-start rate. A nil Limiter
// imposes no limit.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter allowing perSecond job starts with the
// given burst. perSecond <= 0 returns nil (unlimited).
func NewLimiter(perSecond float64, burst int) *Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until a job may start or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}

// Allow reports whether a job may start without waiting.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.limiter.Allow()
}
