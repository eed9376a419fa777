package app

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// RedisAddr enables the analytics cache and the state snapshot store.
	// Empty runs the application purely in memory.
	RedisAddr   string        `envconfig:"REDIS_ADDR" default:""`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	SnapshotKey string        `envconfig:"SNAPSHOT_KEY" default:"saral:state"`

	// StockPolicy controls what happens when a bill drives stock below zero:
	// allow, clamp, or reject.
	StockPolicy string `envconfig:"STOCK_POLICY" default:"allow"`
	// OrphanLinePolicy controls bill lines referencing unknown products:
	// ignore, warn, or reject.
	OrphanLinePolicy string `envconfig:"ORPHAN_LINE_POLICY" default:"ignore"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	switch cfg.StockPolicy {
	case "allow", "clamp", "reject":
	default:
		return nil, fmt.Errorf("invalid STOCK_POLICY %q", cfg.StockPolicy)
	}
	switch cfg.OrphanLinePolicy {
	case "ignore", "warn", "reject":
	default:
		return nil, fmt.Errorf("invalid ORPHAN_LINE_POLICY %q", cfg.OrphanLinePolicy)
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
