// Package bootstrap handles application initialization and lifecycle for
// the admin dashboard service.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/freegoat/admin-dashboard/internal/api"
	"github.com/freegoat/admin-dashboard/internal/logger"
	"github.com/freegoat/admin-dashboard/internal/metrics"
)

const version = "dev"

// Start initializes and runs the admin dashboard application.
func Start() error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg, version)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	publisher := SetupEventPublisher(cfg, log)

	app := api.NewApp(log, publisher)
	router := api.NewRouter(app, cfg, log, metrics.New(nil))
	server := api.NewServer(cfg, router, log)

	log.Info("Starting admin dashboard",
		logger.String("host", cfg.Server.Host),
		logger.Int("port", cfg.Server.Port),
		logger.Bool("debug", cfg.Debug),
	)

	if runErr := server.Run(context.Background()); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Server exited")
	return nil
}
