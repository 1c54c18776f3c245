package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Save backends
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Save    SaveConfig
	Redis   RedisConfig
	SQLite  SQLiteConfig
	Player  PlayerConfig
	Log     LogConfig
	Catalog CatalogConfig
}

// SaveConfig selects where characters are persisted
type SaveConfig struct {
	Backend string `env:"SAVE_BACKEND" envDefault:"file"`
	Dir     string `env:"SAVE_DIR" envDefault:"./saves"`
	Slot    string `env:"SAVE_SLOT" envDefault:"default"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" envDefault:"./saves/village.db"`
}

// PlayerConfig names a freshly created character
type PlayerConfig struct {
	Name  string `env:"PLAYER_NAME" envDefault:"Chad"`
	Class string `env:"PLAYER_CLASS" envDefault:"전사"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// CatalogConfig points at an optional YAML catalog
type CatalogConfig struct {
	// Path is empty to use the built-in catalog
	Path string `env:"CATALOG_PATH"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Save.Backend = strings.ToLower(strings.TrimSpace(cfg.Save.Backend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values the environment cannot express through defaults
func (c *Config) Validate() error {
	switch c.Save.Backend {
	case BackendFile:
		if c.Save.Dir == "" {
			return fmt.Errorf("SAVE_DIR is required for the file backend")
		}
	case BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis backend")
		}
	case BackendSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown SAVE_BACKEND %q", c.Save.Backend)
	}

	if c.Save.Slot == "" {
		return fmt.Errorf("SAVE_SLOT is required")
	}
	if strings.TrimSpace(c.Player.Name) == "" {
		return fmt.Errorf("PLAYER_NAME is required")
	}
	// save records are comma separated lines
	if strings.ContainsAny(c.Player.Name, ",\r\n") {
		return fmt.Errorf("PLAYER_NAME cannot contain commas or line breaks")
	}
	if strings.ContainsAny(c.Player.Class, ",\r\n") {
		return fmt.Errorf("PLAYER_CLASS cannot contain commas or line breaks")
	}

	return nil
}
