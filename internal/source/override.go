package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhancoach/mundial-stats/internal/logging"
)

const (
	locationsKey = "dashboard:source_urls"
	appConfigKey = "dashboard:app_config"
)

// OverrideStore persists operator overrides for source locations and
// display labels in redis, keyed by fixed identifiers. A nil client is
// valid and means "no override store configured": loads return the
// compiled-in defaults and saves fail.
type OverrideStore struct {
	client *redis.Client
}

// NewOverrideStore builds an OverrideStore. client may be nil.
func NewOverrideStore(client *redis.Client) *OverrideStore {
	return &OverrideStore{client: client}
}

// Locations returns the effective source locations: defaults merged with
// any persisted override. Unreadable or missing overrides degrade to the
// defaults, never to an error.
func (s *OverrideStore) Locations(ctx context.Context) Locations {
	defaults := DefaultLocations()
	if s == nil || s.client == nil {
		return defaults
	}

	raw, err := s.client.Get(ctx, locationsKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.Logger().Warnf("override store: read %s: %v", locationsKey, err)
		}
		return defaults
	}

	var overrides map[Dataset]string
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		logging.Logger().Warnf("override store: malformed %s: %v", locationsKey, err)
		return defaults
	}
	return MergeLocations(defaults, overrides)
}

// AppConfig returns the effective display labels, falling back to the
// defaults when nothing is persisted or redis is unreachable.
func (s *OverrideStore) AppConfig(ctx context.Context) AppConfig {
	defaults := DefaultAppConfig()
	if s == nil || s.client == nil {
		return defaults
	}

	raw, err := s.client.Get(ctx, appConfigKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.Logger().Warnf("override store: read %s: %v", appConfigKey, err)
		}
		return defaults
	}

	var cfg AppConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		logging.Logger().Warnf("override store: malformed %s: %v", appConfigKey, err)
		return defaults
	}
	return cfg
}

// SaveLocations persists a full location override map.
func (s *OverrideStore) SaveLocations(ctx context.Context, locs Locations) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("no override store configured")
	}
	raw, err := json.Marshal(locs)
	if err != nil {
		return fmt.Errorf("marshal locations: %w", err)
	}
	return s.client.Set(ctx, locationsKey, raw, 0).Err()
}

// SaveAppConfig persists the display labels.
func (s *OverrideStore) SaveAppConfig(ctx context.Context, cfg AppConfig) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("no override store configured")
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal app config: %w", err)
	}
	return s.client.Set(ctx, appConfigKey, raw, 0).Err()
}

// Reset deletes all persisted overrides, restoring the compiled-in
// defaults on the next load.
func (s *OverrideStore) Reset(ctx context.Context) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("no override store configured")
	}
	return s.client.Del(ctx, locationsKey, appConfigKey).Err()
}

// MergeLocations overlays non-empty override URLs on top of the defaults.
// Unknown dataset keys in the override are ignored.
func MergeLocations(defaults Locations, overrides map[Dataset]string) Locations {
	merged := make(Locations, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		if v == "" {
			continue
		}
		if _, known := merged[k]; known {
			merged[k] = v
		}
	}
	return merged
}
