package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/service"
)

// ImportSweeper drops finished import jobs once their grace period is over.
type ImportSweeper struct {
	imports  service.ImportManager
	interval time.Duration
	logger   *logger.Logger
}

func NewImportSweeper(imports service.ImportManager, interval time.Duration, logger *logger.Logger) *ImportSweeper {
	return &ImportSweeper{
		imports:  imports,
		interval: interval,
		logger:   logger.WithComponent("import-sweeper"),
	}
}

// Run collects garbage on every tick. The collector logs what it removed
// through the sweeper's logger carried by ctx.
func (s *ImportSweeper) Run(ctx context.Context) {
	ctx = s.logger.WithContext(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.imports.CollectGarbage(ctx)
		}
	}
}
