package stores

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

const (
	settingsCacheKey = "maint:settings"
	settingsCacheTTL = 5 * time.Minute
)

// SettingsStore serves the backend's singleton settings record through a
// redis cache-aside. Fetch failures keep the last known values; callers never
// see a settings error.
type SettingsStore struct {
	backend *api.Client
	cache   *redis.Client

	mu      sync.Mutex
	current models.StoreSettings
}

func NewSettingsStore(backend *api.Client, cache *redis.Client) *SettingsStore {
	return &SettingsStore{
		backend: backend,
		cache:   cache,
		current: defaultSettings(),
	}
}

// defaultSettings are the values assumed until the backend answers, matching
// the storefront's startup assumptions.
func defaultSettings() models.StoreSettings {
	return models.StoreSettings{
		ShippingCost:          12.0,
		FreeShippingThreshold: 100.0,
		TaxRate:               0.19,
	}
}

func (s *SettingsStore) Current(ctx context.Context) models.StoreSettings {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, settingsCacheKey).Bytes(); err == nil {
			var cached models.StoreSettings
			if json.Unmarshal(raw, &cached) == nil {
				s.remember(cached)
				return cached
			}
		}
	}

	var fetched models.StoreSettings
	if err := s.backend.Anonymous().Get("/settings/", &fetched); err != nil {
		log.Println("Failed to fetch settings:", err)
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.current
	}

	fetched = normalizeSettings(fetched)
	s.remember(fetched)

	if s.cache != nil {
		if raw, err := json.Marshal(fetched); err == nil {
			if err := s.cache.Set(ctx, settingsCacheKey, raw, settingsCacheTTL).Err(); err != nil {
				log.Println("Failed to cache settings:", err)
			}
		}
	}
	return fetched
}

// normalizeSettings mirrors how the storefront reads the settings payload: a
// tax rate above 1 is a percentage, a missing one falls back to the default.
func normalizeSettings(settings models.StoreSettings) models.StoreSettings {
	if settings.TaxRate > 1 {
		settings.TaxRate = settings.TaxRate / 100
	}
	if settings.TaxRate == 0 {
		settings.TaxRate = defaultSettings().TaxRate
	}
	return settings
}

func (s *SettingsStore) remember(settings models.StoreSettings) {
	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()
}
