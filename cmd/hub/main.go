package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pulse-keeper/internal/config"
	myHTTP "github.com/MKhiriev/pulse-keeper/internal/handler/http"
	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/server"
	"github.com/MKhiriev/pulse-keeper/internal/service"
	"github.com/MKhiriev/pulse-keeper/internal/store"
	"github.com/MKhiriev/pulse-keeper/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("hub")
	cfg, err := config.GetHubConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.DB.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}()

	if err = migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(storages, cfg, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
