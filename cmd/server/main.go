package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/thingsfree/internal/adapter"
	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/handler"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/server"
	"github.com/MKhiriev/thingsfree/internal/service"
	"github.com/MKhiriev/thingsfree/internal/store"
	"github.com/MKhiriev/thingsfree/internal/validators"
	"github.com/MKhiriev/thingsfree/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("thingsfree-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}
	defer app.close(log)

	app.workers.Run(ctx)
	app.server.RunServer(ctx)
}

type application struct {
	storages *store.Storages
	workers  *workers.Workers
	server   server.Server
}

// newApplication wires storages, adapters, services, handlers, the server
// and the background workers from cfg.
func newApplication(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*application, error) {
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	app, err := buildApplication(storages, cfg, log)
	if err != nil {
		storages.Close()
		return nil, err
	}

	return app, nil
}

func buildApplication(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) (*application, error) {
	adapters, err := adapter.NewAdapters(*cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating adapters: %w", err)
	}

	validator, err := validators.NewRequestValidator()
	if err != nil {
		return nil, fmt.Errorf("error creating request validator: %w", err)
	}

	services, err := service.NewServices(storages, adapters, validator, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, validator, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &application{
		storages: storages,
		workers:  workers.NewWorkers(storages, *cfg, log),
		server:   srv,
	}, nil
}

func (a *application) close(log *logger.Logger) {
	if err := a.storages.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
	}
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
