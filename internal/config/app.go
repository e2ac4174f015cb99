// Package config loads the API server's file-based configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "lucr-news/pkg/config"
)

// AppConfig holds the API server settings that operators tune per
// environment. Everything secret (credentials, JWT secret, DSNs) stays in
// environment variables; this file only carries behavior knobs.
type AppConfig struct {
	Server struct {
		Addr            string        `yaml:"addr"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		IdleTimeout     time.Duration `yaml:"idle_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	} `yaml:"server"`

	RateLimit struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"rate_limit"`

	Pagination struct {
		DefaultLimit int `yaml:"default_limit"`
		MaxLimit     int `yaml:"max_limit"`
	} `yaml:"pagination"`
}

// DefaultAppConfig returns the configuration used when no file is given.
func DefaultAppConfig() *AppConfig {
	cfg := &AppConfig{}
	cfg.Server.Addr = ":8080"
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 30 * time.Second
	cfg.Server.IdleTimeout = 120 * time.Second
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Server.MaxBodyBytes = 1 << 20
	cfg.RateLimit.RequestsPerSecond = 10
	cfg.RateLimit.Burst = 20
	cfg.Pagination.DefaultLimit = 20
	cfg.Pagination.MaxLimit = 100
	return cfg
}

// LoadAppConfig reads and validates a YAML config file. Fields missing from
// the file keep their defaults.
// The path is expected to come from a trusted source (CLI arg or env var).
func LoadAppConfig(path string) (*AppConfig, error) {
	// #nosec G304 -- path is provided by trusted source, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateAppConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func validateAppConfig(cfg *AppConfig) error {
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if err := pkgconfig.ValidatePositiveDuration(cfg.Server.ReadTimeout); err != nil {
		return fmt.Errorf("server read_timeout: %w", err)
	}
	if err := pkgconfig.ValidatePositiveDuration(cfg.Server.WriteTimeout); err != nil {
		return fmt.Errorf("server write_timeout: %w", err)
	}
	if err := pkgconfig.ValidatePositiveDuration(cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("server shutdown_timeout: %w", err)
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive")
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate limit requests_per_second must be positive")
	}
	if cfg.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit burst must be positive")
	}
	if cfg.Pagination.DefaultLimit <= 0 {
		return fmt.Errorf("pagination default_limit must be positive")
	}
	if cfg.Pagination.MaxLimit < cfg.Pagination.DefaultLimit {
		return fmt.Errorf("pagination max_limit must be at least default_limit")
	}
	return nil
}
