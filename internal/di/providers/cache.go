package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/brayannhc07/webapiautores/internal/api/middleware"
	"github.com/brayannhc07/webapiautores/internal/cache"
	"github.com/brayannhc07/webapiautores/internal/config"
	"github.com/samber/do/v2"
)

// CacheHandle holds the response cache. Cache is nil when caching is disabled.
type CacheHandle struct {
	Cache *middleware.ResponseCache
	redis *cache.RedisCache
}

// Shutdown implements do.Shutdownable.
func (h *CacheHandle) Shutdown() error {
	if h.redis == nil {
		return nil
	}
	return h.redis.Close()
}

// ProvideCache connects the Redis response cache. An empty URL or an
// unreachable server disables caching instead of failing startup.
func ProvideCache(i do.Injector) (*CacheHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	if cfg.Cache.RedisURL == "" || cfg.Cache.TTLSeconds == 0 {
		log.Info("Response cache disabled")
		return &CacheHandle{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	client, err := cache.Connect(ctx, cfg.Cache.RedisURL)
	if err != nil {
		log.Warn("Redis unavailable, response cache disabled", "error", err)
		return &CacheHandle{}, nil
	}

	store := cache.NewRedisCache(client, log)
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	log.Info("Response cache enabled", "ttl_seconds", cfg.Cache.TTLSeconds)
	return &CacheHandle{Cache: middleware.NewResponseCache(store, ttl), redis: store}, nil
}
