package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/poststats-lab/project-poststats/internal/core/statistics"
)

const envPrefix = "POSTSTATS_"

// Config represents the top-level application config plus the resolved statistics catalog.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Statistics StatisticsConfig `koanf:"statistics"`

	// Catalog is populated by Load after parsing definition files.
	Catalog *statistics.FileSystemCatalog `koanf:"-"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | release
}

type DatabaseConfig struct {
	Type         string `koanf:"type"`
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

type StatisticsConfig struct {
	ConfigDir          string `koanf:"config_dir"`
	RequireDefinitions bool   `koanf:"require_definitions"`
	SchedulerEnabled   bool   `koanf:"scheduler_enabled"`
	CronInterval       string `koanf:"cron_interval"` // parsed and validated on startup
	Lookback           string `koanf:"lookback"`
	WorkerCount        int    `koanf:"worker_count"`
}

// Interval returns the parsed scheduler interval. Call after Validate.
func (c StatisticsConfig) Interval() time.Duration {
	d, _ := time.ParseDuration(c.CronInterval)
	return d
}

// LookbackWindow returns the parsed scheduler lookback. Call after Validate.
func (c StatisticsConfig) LookbackWindow() time.Duration {
	d, _ := time.ParseDuration(c.Lookback)
	return d
}

// Addr is the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MaxBodyBytes is the request body limit in bytes.
func (c ServerConfig) MaxBodyBytes() int64 {
	return int64(c.MaxBodySizeMB) << 20
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0")
	}
	if c.Database.MaxIdleConns <= 0 {
		return fmt.Errorf("database.max_idle_conns must be > 0")
	}
	if c.Database.Type != "" && c.Database.Type != "postgres" {
		return fmt.Errorf("unsupported database.type %q", c.Database.Type)
	}

	if strings.TrimSpace(c.Statistics.ConfigDir) == "" {
		return fmt.Errorf("statistics.config_dir is required")
	}
	if err := positiveDuration("statistics.cron_interval", c.Statistics.CronInterval); err != nil {
		return err
	}
	if err := positiveDuration("statistics.lookback", c.Statistics.Lookback); err != nil {
		return err
	}
	if c.Statistics.WorkerCount <= 0 {
		return fmt.Errorf("statistics.worker_count must be > 0")
	}

	return nil
}

func positiveDuration(key, value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s must be > 0", key)
	}
	return nil
}

// Load parses config from defaults, file and env, validates it, then loads the statistics catalog.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                    8080,
		"server.host":                    "0.0.0.0",
		"server.max_body_size_mb":        1,
		"server.mode":                    "release",
		"database.type":                  "postgres",
		"database.dsn":                   "postgres://localhost:5432/poststats?sslmode=disable",
		"database.max_open_conns":        25,
		"database.max_idle_conns":        25,
		"database.auto_migrate":          true,
		"statistics.config_dir":          "./config/statistics",
		"statistics.require_definitions": true,
		"statistics.scheduler_enabled":   true,
		"statistics.cron_interval":       "5m",
		"statistics.lookback":            "720h",
		"statistics.worker_count":        4,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	catalog, err := statistics.NewFileSystemCatalog(cfg.Statistics.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load statistic definitions: %w", err)
	}
	if cfg.Statistics.RequireDefinitions && len(catalog.Definitions()) == 0 {
		return nil, fmt.Errorf("no statistic definitions found in %q", cfg.Statistics.ConfigDir)
	}
	cfg.Catalog = catalog

	return &cfg, nil
}
