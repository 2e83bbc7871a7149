// Package ratelimit serializes calls to an external API so they stay inside
// its published limits.
//
// A [Limiter] enforces three rules at once: a cap on concurrent calls, a
// minimum spacing between consecutive call starts, and a rolling quota of
// call starts per window. Callers beyond MaxQueued are rejected with
// [ErrRateLimited] instead of waiting.
package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/metrics"
)

// ErrRateLimited is returned when the number of waiting calls reached the
// configured ceiling.
var ErrRateLimited = errors.New("rate limit queue is full")

// Limiter gates calls to a single external service.
type Limiter struct {
	name string
	cfg  config.RateLimit

	slots chan struct{}

	mu        sync.Mutex
	waiting   int
	lastStart time.Time
	starts    []time.Time
}

// New returns a Limiter named name (used as a metrics label).
func New(name string, cfg config.RateLimit) *Limiter {
	return &Limiter{
		name:   name,
		cfg:    cfg,
		slots:  make(chan struct{}, cfg.MaxConcurrent),
		starts: make([]time.Time, 0, cfg.Quota),
	}
}

// Do runs fn once the limiter admits it. While waiting it honours ctx; the
// waiting time does not count against fn.
func (l *Limiter) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := l.enqueue(); err != nil {
		return err
	}

	queued := true
	defer func() {
		if queued {
			l.dequeue()
		}
	}()

	select {
	case l.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-l.slots }()

	for {
		wait := l.reserve(time.Now())
		if wait <= 0 {
			break
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	l.dequeue()
	queued = false

	return fn(ctx)
}

// Waiting reports the number of calls not yet admitted.
func (l *Limiter) Waiting() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.waiting
}

func (l *Limiter) enqueue() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.waiting >= l.cfg.MaxQueued {
		metrics.RecordRateLimiterRejection(l.name)
		return ErrRateLimited
	}
	l.waiting++
	return nil
}

func (l *Limiter) dequeue() {
	l.mu.Lock()
	l.waiting--
	l.mu.Unlock()
}

// reserve records a call start at now and returns zero, or returns how long
// to wait before trying again.
func (l *Limiter) reserve(now time.Time) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.cfg.Window)
	kept := l.starts[:0]
	for _, s := range l.starts {
		if s.After(cutoff) {
			kept = append(kept, s)
		}
	}
	l.starts = kept

	var wait time.Duration
	if !l.lastStart.IsZero() {
		wait = l.lastStart.Add(l.cfg.MinSpacing).Sub(now)
	}
	if len(l.starts) >= l.cfg.Quota {
		if quotaWait := l.starts[0].Add(l.cfg.Window).Sub(now); quotaWait > wait {
			wait = quotaWait
		}
	}
	if wait > 0 {
		return wait
	}

	l.lastStart = now
	l.starts = append(l.starts, now)
	return 0
}
