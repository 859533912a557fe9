package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/handler"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/server"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-identity-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if leveled, err := log.WithLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	} else {
		log = leveled
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run opens the storages and serves until shutdown. Storages are closed on
// every return path once they are open.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, hasher, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, hasher, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}
