package service

import (
	"context"

	"github.com/MKhiriev/go-file-keeper/internal/adapter"
	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/crypto"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-file-keeper/internal/store"
	"github.com/MKhiriev/go-file-keeper/internal/workspace"
	"github.com/MKhiriev/go-file-keeper/models"
)

// Adapters are the external collaborators the services talk to.
type Adapters struct {
	ContentStore adapter.ContentStore
	Pinning      adapter.PinningService
}

type Services struct {
	AppInfoService   AppInfoService
	ImportManager    ImportManager
	PinStatusService PinStatusService
	Bundler          Bundler
	FilesService     FilesService
}

// NewServices wires every service. Background work started by the services
// stops when ctx is cancelled.
func NewServices(ctx context.Context, storages *store.Storages, adapters Adapters, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	workspaces := workspace.NewProvider(cfg.App.TempDir)
	limiter := ratelimit.New("pinning", cfg.Workers.RateLimit)

	imports := NewImportManager(ctx, adapters.ContentStore, cfg.Workers, logger)
	pins := NewPinStatusService(ctx, adapters.Pinning, limiter, workspaces, cfg, logger)
	bundler := NewBundler(crypto.NewStreamCipher(), workspaces, logger)
	files := NewFilesValidationService().Wrap(
		NewFilesService(adapters.ContentStore, imports, pins, bundler, storages.KeyRepository, workspaces, logger),
	)

	return &Services{
		AppInfoService:   appInfo,
		ImportManager:    imports,
		PinStatusService: pins,
		Bundler:          bundler,
		FilesService:     files,
	}, nil
}

// Wait blocks until the background runs of every service have returned.
func (s *Services) Wait() {
	s.ImportManager.Wait()
	s.PinStatusService.Wait()
}
