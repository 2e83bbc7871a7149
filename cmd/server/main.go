package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-file-keeper/internal/adapter"
	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/handler"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/server"
	"github.com/MKhiriev/go-file-keeper/internal/service"
	"github.com/MKhiriev/go-file-keeper/internal/store"
	"github.com/MKhiriev/go-file-keeper/internal/workers"
	"github.com/MKhiriev/go-file-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("file-keeper-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("ipfs_api", cfg.Adapter.IPFS.APIAddress).
		Str("pinning_base_url", cfg.Adapter.Pinning.BaseURL).
		Str("temp_dir", cfg.App.TempDir).
		Msg("received configs")

	// cancelled on shutdown: aborts running imports and stops the workers
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewDB(rootCtx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to keystore database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating keystore database")
	}

	storages, err := store.NewStorages(db, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	contentStore, err := adapter.NewIPFSContentStore(cfg.Adapter.IPFS, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating content store adapter")
	}
	pinning, err := adapter.NewPinataAdapter(cfg.Adapter.Pinning, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating pinning adapter")
	}

	services, err := service.NewServices(rootCtx, storages, service.Adapters{
		ContentStore: contentStore,
		Pinning:      pinning,
	}, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers(services, cfg.Workers, log)
	bg.Run(rootCtx)

	if err = srv.RunServer(rootCtx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	cancel()
	bg.Wait()
	services.Wait()
	log.Info().Msg("background work finished")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
