package cache

import (
	"context"
	"fmt"

	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

// NewCacheAdapter returns nil when the cache is disabled.
func NewCacheAdapter(ctx context.Context, cfg *config.Config, logger out.LoggerPort) (out.CachePort, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	switch cfg.Cache.Driver {
	case config.CacheDriverLRU:
		return NewLRUCacheAdapter(cfg.Cache.SlotsSize, cfg.Cache.TTL, logger)
	case config.CacheDriverRedis:
		client, err := NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Error("cache.redis.connect.failed", out.LogFields{
				"error": err.Error(),
				"addr":  cfg.Redis.Addr,
			})
			return nil, err
		}
		return NewRedisCacheAdapter(client, cfg.Cache.TTL, logger), nil
	default:
		return nil, fmt.Errorf("cache.driver.unknown: %s", cfg.Cache.Driver)
	}
}

func copySlots[T any](slots []T) []T {
	if slots == nil {
		return nil
	}
	result := make([]T, len(slots))
	copy(result, slots)
	return result
}
