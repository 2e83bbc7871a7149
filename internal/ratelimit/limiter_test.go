package ratelimit

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.RateLimit {
	return config.RateLimit{
		MaxConcurrent: 1,
		MinSpacing:    0,
		Quota:         100,
		Window:        time.Minute,
		MaxQueued:     100,
	}
}

func TestLimiter_RunsFunction(t *testing.T) {
	l := New("test", testConfig())

	called := false
	err := l.Do(context.Background(), func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Zero(t, l.Waiting())
}

func TestLimiter_PropagatesFunctionError(t *testing.T) {
	l := New("test", testConfig())

	err := l.Do(context.Background(), func(context.Context) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLimiter_AtMostOneConcurrentCall(t *testing.T) {
	l := New("test", testConfig())

	var running, maxRunning int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Do(context.Background(), func(context.Context) error {
				n := atomic.AddInt32(&running, 1)
				for {
					m := atomic.LoadInt32(&maxRunning)
					if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxRunning)
}

func TestLimiter_MinSpacing(t *testing.T) {
	cfg := testConfig()
	cfg.MinSpacing = 40 * time.Millisecond
	l := New("test", cfg)

	var starts []time.Time
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Do(context.Background(), func(context.Context) error {
			starts = append(starts, time.Now())
			return nil
		}))
	}

	for i := 1; i < len(starts); i++ {
		assert.GreaterOrEqual(t, starts[i].Sub(starts[i-1]), 35*time.Millisecond)
	}
}

func TestLimiter_QuotaWithinRollingWindow(t *testing.T) {
	cfg := testConfig()
	cfg.MaxConcurrent = 4
	cfg.Quota = 3
	cfg.Window = 150 * time.Millisecond
	l := New("test", cfg)

	var mu sync.Mutex
	var starts []time.Time
	var wg sync.WaitGroup
	for i := 0; i < 7; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Do(context.Background(), func(context.Context) error {
				mu.Lock()
				starts = append(starts, time.Now())
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	require.Len(t, starts, 7)
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
	for i, s := range starts {
		inWindow := 0
		for _, other := range starts[i:] {
			if other.Sub(s) < cfg.Window-10*time.Millisecond {
				inWindow++
			}
		}
		assert.LessOrEqual(t, inWindow, cfg.Quota)
	}
}

func TestLimiter_RejectsBeyondQueueCeiling(t *testing.T) {
	cfg := testConfig()
	cfg.MaxQueued = 1
	l := New("test", cfg)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = l.Do(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	waiterDone := make(chan error, 1)
	go func() {
		waiterDone <- l.Do(context.Background(), func(context.Context) error { return nil })
	}()
	require.Eventually(t, func() bool { return l.Waiting() == 1 }, time.Second, time.Millisecond)

	err := l.Do(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrRateLimited)

	close(release)
	assert.NoError(t, <-waiterDone)
}

func TestLimiter_ContextCancelledWhileWaiting(t *testing.T) {
	cfg := testConfig()
	cfg.MinSpacing = time.Hour
	l := New("test", cfg)

	require.NoError(t, l.Do(context.Background(), func(context.Context) error { return nil }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	err := l.Do(ctx, func(context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called)
	assert.Zero(t, l.Waiting())
}
