package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration for the stats engine service.
type Config struct {
	// ListenAddr is the HTTP API bind address.
	ListenAddr string
	// RedisURL points at the override store. Empty disables overrides;
	// the compiled-in source locations are used unchanged.
	RedisURL string
	// FetchTimeout bounds each individual source fetch.
	FetchTimeout time.Duration
	// RefreshInterval is how often serve mode re-fetches all sources.
	// Zero disables periodic refresh (on-demand only).
	RefreshInterval time.Duration
	// UsageCutoff is the top-N cutoff for usage-frequency reports.
	UsageCutoff int
}

// Load builds a Config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:      os.Getenv("LISTEN_ADDR"),
		RedisURL:        os.Getenv("REDIS_URL"),
		FetchTimeout:    30 * time.Second,
		RefreshInterval: 5 * time.Minute,
		UsageCutoff:     5,
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	if raw := os.Getenv("FETCH_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT %q: %w", raw, err)
		}
		cfg.FetchTimeout = d
	}

	if raw := os.Getenv("REFRESH_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_INTERVAL %q: %w", raw, err)
		}
		cfg.RefreshInterval = d
	}

	if raw := os.Getenv("USAGE_TOP_N"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid USAGE_TOP_N %q", raw)
		}
		cfg.UsageCutoff = n
	}

	return cfg, nil
}
