package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
debug: true
server:
  host: "127.0.0.1"
  port: 9090
  web_root: "assets"
  read_timeout: 10s
redis:
  enabled: true
  address: "redis:6379"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if !cfg.Debug {
		t.Error("Load() cfg.Debug = false, want true")
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Load() cfg.Server.Host = %v, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Load() cfg.Server.Port = %v, want 9090", cfg.Server.Port)
	}
	if cfg.Server.WebRoot != "assets" {
		t.Errorf("Load() cfg.Server.WebRoot = %v, want assets", cfg.Server.WebRoot)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("Load() cfg.Server.ReadTimeout = %v, want 10s", cfg.Server.ReadTimeout)
	}
	if !cfg.Redis.Enabled {
		t.Error("Load() cfg.Redis.Enabled = false, want true")
	}
	if cfg.Redis.Address != "redis:6379" {
		t.Errorf("Load() cfg.Redis.Address = %v, want redis:6379", cfg.Redis.Address)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
server:
  host: "0.0.0.0"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.Server.Port != defaultServerPort {
		t.Errorf("Load() cfg.Server.Port = %v, want %v", cfg.Server.Port, defaultServerPort)
	}
	if cfg.Server.ReadTimeout != defaultServerTimeout {
		t.Errorf("Load() cfg.Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, defaultServerTimeout)
	}
	if cfg.Server.WebRoot != defaultWebRoot {
		t.Errorf("Load() cfg.Server.WebRoot = %v, want %v", cfg.Server.WebRoot, defaultWebRoot)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Errorf("Load() cfg.Server.CORSOrigins = %v, want [*]", cfg.Server.CORSOrigins)
	}
	if cfg.Redis.Enabled {
		t.Error("Load() cfg.Redis.Enabled = true, want false by default")
	}
	if cfg.Redis.Address != defaultRedisAddress {
		t.Errorf("Load() cfg.Redis.Address = %v, want %v", cfg.Redis.Address, defaultRedisAddress)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  host: "0.0.0.0"
  port: 8080
`)

	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Load() cfg.Server.Port = %v, want 9999 from env", cfg.Server.Port)
	}
	if !cfg.Debug {
		t.Error("Load() cfg.Debug = false, want true from env")
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.test" {
		t.Errorf("Load() cfg.Server.CORSOrigins = %v, want two trimmed origins", cfg.Server.CORSOrigins)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "missing host", mutate: func(c *Config) { c.Server.Host = "" }, wantErr: true},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{
			name: "redis enabled without address",
			mutate: func(c *Config) {
				c.Redis.Enabled = true
				c.Redis.Address = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Server.Host = "0.0.0.0"
			cfg.Server.Port = 8080
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPath(t *testing.T) {
	if got := Path("config.yml"); got != "config.yml" {
		t.Errorf("Path() = %v, want default", got)
	}

	t.Setenv("CONFIG_PATH", "/etc/dashboard/config.yml")
	if got := Path("config.yml"); got != "/etc/dashboard/config.yml" {
		t.Errorf("Path() = %v, want env value", got)
	}
}
