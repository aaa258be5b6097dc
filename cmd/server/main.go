package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-reviews/internal/config"
	"github.com/MKhiriev/go-item-reviews/internal/handler"
	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/seed"
	"github.com/MKhiriev/go-item-reviews/internal/server"
	"github.com/MKhiriev/go-item-reviews/internal/service"
	"github.com/MKhiriev/go-item-reviews/internal/store"
	"github.com/MKhiriev/go-item-reviews/internal/workers"
	"github.com/MKhiriev/go-item-reviews/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("item-reviews-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("token_duration", cfg.App.TokenDuration).
		Str("version", cfg.App.Version).
		Bool("seed_demo_data", cfg.App.SeedDemoData).
		Str("log_level", cfg.App.LogLevel).
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.SeedDemoData {
		if err = seed.NewSeeder(services).Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("error seeding demo data")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	go func() {
		background := workers.NewWorkers(
			workers.NewDBStatsWorker(db, cfg.Storage.DB.StatsInterval, log),
		)
		if err := background.Run(workersCtx); err != nil {
			log.Error().Err(err).Msg("background worker failed")
		}
	}()

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
