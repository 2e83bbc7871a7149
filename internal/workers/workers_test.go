package workers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/mock"
	"github.com/MKhiriev/go-file-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-file-keeper/internal/service"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// runFor runs w until it was called at least n times, then stops it.
func runFor(t *testing.T, w Worker, calls *atomic.Int32, n int32) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= n }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}

func TestImportSweeper_CollectsOnEveryTick(t *testing.T) {
	imports := mock.NewMockImportManager(gomock.NewController(t))

	var calls atomic.Int32
	imports.EXPECT().CollectGarbage(gomock.Any()).DoAndReturn(func(context.Context) int {
		calls.Add(1)
		return 1
	}).MinTimes(3)

	runFor(t, NewImportSweeper(imports, 5*time.Millisecond, logger.Nop()), &calls, 3)
}

func TestImportSweeper_CollectorLogsThroughSweeperLogger(t *testing.T) {
	imports := mock.NewMockImportManager(gomock.NewController(t))
	var buf syncBuffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	var calls atomic.Int32
	imports.EXPECT().CollectGarbage(gomock.Any()).DoAndReturn(func(ctx context.Context) int {
		if calls.Add(1) == 1 {
			logger.FromContext(ctx).Debug().Int("removed", 2).Msg("finished imports collected")
			return 2
		}
		return 0
	}).MinTimes(2)

	runFor(t, NewImportSweeper(imports, 5*time.Millisecond, log), &calls, 2)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "finished imports collected"))
	assert.Contains(t, out, `"component":"import-sweeper"`)
}

func TestPinRefresher_RefreshesImmediatelyAndKeepsGoingAfterErrors(t *testing.T) {
	pins := mock.NewMockPinStatusService(gomock.NewController(t))

	var calls atomic.Int32
	pins.EXPECT().RefreshAll(gomock.Any()).DoAndReturn(func(context.Context) error {
		switch calls.Add(1) {
		case 1:
			return ratelimit.ErrRateLimited
		case 2:
			return errors.New("pinning service down")
		default:
			return nil
		}
	}).MinTimes(3)

	runFor(t, NewPinRefresher(pins, 5*time.Millisecond, logger.Nop()), &calls, 3)
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{
		ImportManager:    mock.NewMockImportManager(ctrl),
		PinStatusService: mock.NewMockPinStatusService(ctrl),
	}

	tests := []struct {
		name string
		cfg  config.Workers
		want int
	}{
		{name: "both", cfg: config.Workers{ImportGCInterval: time.Minute, PinRefreshInterval: time.Minute}, want: 2},
		{name: "sweeper only", cfg: config.Workers{ImportGCInterval: time.Minute}, want: 1},
		{name: "disabled", cfg: config.Workers{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, NewWorkers(services, tt.cfg, logger.Nop()).workers, tt.want)
		})
	}
}

type blockingWorker struct {
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	b.stopped.Store(true)
}

func TestWorkers_RunAndWait(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	ws.Run(ctx)
	cancel()
	ws.Wait()

	assert.True(t, w1.stopped.Load())
	assert.True(t, w2.stopped.Load())
}
