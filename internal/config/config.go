package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/freegoat/admin-dashboard/internal/logger"
)

const (
	defaultServerPort    = 8080
	defaultServerTimeout = 30 * time.Second
	defaultWebRoot       = "web"
	defaultRedisAddress  = "localhost:6379"
)

// Config is the root configuration for the admin dashboard service.
type Config struct {
	Debug   bool          `env:"APP_DEBUG" yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Logging logger.Config `yaml:"logging"`
	Redis   RedisConfig   `yaml:"redis"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST" yaml:"host"`
	Port         int           `env:"SERVER_PORT" yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// WebRoot is the directory the dashboard's static assets are served from.
	WebRoot     string   `env:"WEB_ROOT"     yaml:"web_root"`
	CORSOrigins []string `env:"CORS_ORIGINS" yaml:"cors_origins"`
}

// RedisConfig holds Redis connection settings for audit event publishing.
// Publishing is off unless Enabled is set.
type RedisConfig struct {
	Address  string `env:"REDIS_ADDRESS"        yaml:"address"`
	Password string `env:"REDIS_PASSWORD"       yaml:"password"`
	DB       int    `env:"REDIS_DB"             yaml:"db"`
	Enabled  bool   `env:"REDIS_EVENTS_ENABLED" yaml:"enabled"`
}

// Validate checks that required fields are set.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if c.Server.Port <= 0 {
		return errors.New("server.port is required and must be positive")
	}
	if c.Redis.Enabled && c.Redis.Address == "" {
		return errors.New("redis.address is required when redis is enabled")
	}
	return nil
}

// Load reads the config file at path, applies defaults and env overrides,
// and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultServerPort
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = defaultServerTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = defaultServerTimeout
	}
	if c.Server.WebRoot == "" {
		c.Server.WebRoot = defaultWebRoot
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Redis.Address == "" {
		c.Redis.Address = defaultRedisAddress
	}
}
