package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/freelance-hub/internal/config"
	httphandler "github.com/MKhiriev/freelance-hub/internal/handler/http"
	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/internal/server"
	"github.com/MKhiriev/freelance-hub/internal/service"
	"github.com/MKhiriev/freelance-hub/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("freelance-hub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.Auth.Disabled {
		log.Warn().Msg("AUTHENTICATION IS DISABLED: every request is accepted without a token; never run this mode outside local development")
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg, log)

	if err := services.AuthService.BootstrapAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding bootstrap account")
	}

	handler := httphandler.NewHandler(services, cfg.Auth, log)

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
