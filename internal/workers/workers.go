package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/service"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the import sweeper and the pin refresher. A zero
// interval disables the corresponding worker.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.ImportGCInterval > 0 {
		w.workers = append(w.workers, NewImportSweeper(services.ImportManager, cfg.ImportGCInterval, logger))
	}
	if cfg.PinRefreshInterval > 0 {
		w.workers = append(w.workers, NewPinRefresher(services.PinStatusService, cfg.PinRefreshInterval, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
