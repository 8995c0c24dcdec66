package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/handler"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/provider"
	"github.com/MKhiriev/go-insight-keeper/internal/server"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("insight-server")

	// a missing .env file is fine: the environment may be set directly
	_ = godotenv.Load()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("provider", cfg.App.Analysis.Provider).
		Str("model", cfg.App.Analysis.Model).
		Bool("redis_quota", cfg.Storage.Redis.URL != "").
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	analysisProvider, err := provider.NewDefaultRegistry().Get(cfg.App.Analysis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating analysis provider")
	}

	services, err := service.NewServices(storages, analysisProvider, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
