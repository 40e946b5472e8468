// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/canvas-classifier/internal/workbook"
	"github.com/donaldgifford/canvas-classifier/pkg/logger"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Overrides OverridesConfig `yaml:"overrides"`
	Upload    UploadConfig    `yaml:"upload"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings. The database is
// optional: leaving host empty disables stored overrides.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// Enabled reports whether a database is configured.
func (d *DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// CatalogConfig selects the reference catalog. An empty path uses the
// embedded default.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// OverridesConfig controls how often stored overrides are reloaded.
type OverridesConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// UploadConfig limits and names workbook conversions.
type UploadConfig struct {
	MaxBytes      int64   `yaml:"max_bytes"`
	RatePerSecond float64 `yaml:"rate_per_second"` // 0 disables rate limiting
	Burst         int     `yaml:"burst"`
	ResultSuffix  string  `yaml:"result_suffix"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied, for running
// without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyOverridesDefaults(&cfg.Overrides)
	applyUploadDefaults(&cfg.Upload)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 60 * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyOverridesDefaults(o *OverridesConfig) {
	if o.RefreshInterval == 0 {
		o.RefreshInterval = time.Minute
	}
}

func applyUploadDefaults(u *UploadConfig) {
	if u.MaxBytes == 0 {
		u.MaxBytes = 20 << 20
	}
	if u.Burst == 0 {
		u.Burst = 5
	}
	if u.ResultSuffix == "" {
		u.ResultSuffix = workbook.DefaultDownloadSuffix
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}

	if cfg.Database.Enabled() {
		if cfg.Database.Name == "" {
			errs = append(errs, errors.New("database.name is required when database.host is set"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, errors.New("database.user is required when database.host is set"))
		}
	}

	if cfg.Overrides.RefreshInterval < time.Second {
		errs = append(errs, fmt.Errorf(
			"overrides.refresh_interval must be at least 1s (got %s)", cfg.Overrides.RefreshInterval,
		))
	}

	if cfg.Upload.MaxBytes < 0 {
		errs = append(errs, errors.New("upload.max_bytes must not be negative"))
	}
	if cfg.Upload.RatePerSecond < 0 {
		errs = append(errs, errors.New("upload.rate_per_second must not be negative"))
	}
	if cfg.Upload.Burst < 1 {
		errs = append(errs, errors.New("upload.burst must be at least 1"))
	}

	if err := logger.Validate(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}
