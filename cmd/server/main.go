package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-braintacle/internal/config"
	"github.com/MKhiriev/go-braintacle/internal/handler"
	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/options"
	"github.com/MKhiriev/go-braintacle/internal/server"
	"github.com/MKhiriev/go-braintacle/internal/service"
	"github.com/MKhiriev/go-braintacle/internal/store"
	"github.com/MKhiriev/go-braintacle/internal/validators"
	"github.com/MKhiriev/go-braintacle/internal/workers"
	"github.com/MKhiriev/go-braintacle/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("braintacle-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Dur("lock_sweep_interval", cfg.Workers.LockSweepInterval).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	catalog := options.Builtin()

	services, err := service.NewServices(storages, catalog, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AccountService.EnsureAdmin(ctx, cfg.App.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("error creating the initial operator")
	}

	handlers, err := handler.NewHandlers(services, validators.NewRequestValidator(catalog), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(services, cfg.Workers, log).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
