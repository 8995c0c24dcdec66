package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-insight-keeper/internal/adapter"
	"github.com/MKhiriev/go-insight-keeper/internal/client"
	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/internal/tui"
	"github.com/MKhiriev/go-insight-keeper/internal/workers"
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

	log := logger.NewClientLogger("insight-client")

	_ = godotenv.Load()

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx := context.Background()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if closeErr := localStorage.DB.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing local storage")
		}
	}()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)
	ui := tui.New(services, buildInfo, cfg.Workers.AnalysisInterval, log)

	startup := workers.NewWorkers(log,
		workers.NewJournalRecovery(services.CaptureService, log),
		workers.NewVersionProbe(serverAdapter, buildInfo, log),
	)

	app, err := client.NewApp(services, ui, startup, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
