package bootstrap

import (
	"flag"
	"fmt"

	"github.com/freegoat/admin-dashboard/internal/config"
	"github.com/freegoat/admin-dashboard/internal/logger"
)

// LoadConfig loads configuration. Uses the -config flag with the CONFIG_PATH
// env var as fallback default.
func LoadConfig() (*config.Config, error) {
	configPath := flag.String("config", config.Path("config.yml"), "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates the service logger from configuration.
func CreateLogger(cfg *config.Config, version string) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Debug,
		OutputPaths: cfg.Logging.OutputPaths,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(
		logger.String("service", "admin-dashboard"),
		logger.String("version", version),
	), nil
}
