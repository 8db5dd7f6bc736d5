package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

const (
	redisKeyPrefix = "timeslots:"
	redisScanCount = 100
)

type RedisCacheAdapter struct {
	client *redis.Client
	ttl    time.Duration
	logger out.LoggerPort
}

var _ out.CachePort = (*RedisCacheAdapter)(nil)

func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache.redis.ping: %w", err)
	}

	return client, nil
}

func NewRedisCacheAdapter(client *redis.Client, ttl time.Duration, logger out.LoggerPort) *RedisCacheAdapter {
	return &RedisCacheAdapter{
		client: client,
		ttl:    ttl,
		logger: logger.WithModule("RedisCacheAdapter"),
	}
}

func (c *RedisCacheAdapter) GetTimeSlots(ctx context.Context, key out.SlotsCacheKey) ([]domain.TimeSlot, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("cache.slots.get.miss", out.LogFields{
			"key": key.String(),
		})
		return nil, false
	}
	if err != nil {
		c.logger.Warn("cache.slots.get.failed", out.LogFields{
			"key":   key.String(),
			"error": err.Error(),
		})
		return nil, false
	}

	slots := []domain.TimeSlot{}
	if err := json.Unmarshal(data, &slots); err != nil {
		c.logger.Warn("cache.slots.get.decode_failed", out.LogFields{
			"key":   key.String(),
			"error": err.Error(),
		})
		return nil, false
	}

	c.logger.Debug("cache.slots.get.hit", out.LogFields{
		"key":        key.String(),
		"slotsCount": len(slots),
	})
	return slots, true
}

func (c *RedisCacheAdapter) StoreTimeSlots(ctx context.Context, key out.SlotsCacheKey, slots []domain.TimeSlot) error {
	if slots == nil {
		slots = []domain.TimeSlot{}
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("cache.slots.store.encode: %w", err)
	}

	if err := c.client.Set(ctx, redisKeyPrefix+key.String(), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache.slots.store: %w", err)
	}

	c.logger.Debug("cache.slots.store", out.LogFields{
		"key":        key.String(),
		"slotsCount": len(slots),
	})
	return nil
}

func (c *RedisCacheAdapter) InvalidateClinic(ctx context.Context, clinicID string) error {
	removed, err := c.deleteMatching(ctx, redisKeyPrefix+escapeGlob(clinicID)+":*")
	if err != nil {
		return fmt.Errorf("cache.slots.invalidate.clinic: %w", err)
	}

	c.logger.Info("cache.slots.invalidate.clinic", out.LogFields{
		"clinicId": clinicID,
		"removed":  removed,
	})
	return nil
}

func (c *RedisCacheAdapter) InvalidateAll(ctx context.Context) error {
	removed, err := c.deleteMatching(ctx, redisKeyPrefix+"*")
	if err != nil {
		return fmt.Errorf("cache.slots.invalidate.all: %w", err)
	}

	c.logger.Info("cache.slots.invalidate.all", out.LogFields{
		"removed": removed,
	})
	return nil
}

func (c *RedisCacheAdapter) deleteMatching(ctx context.Context, pattern string) (int64, error) {
	var keys []string
	iter := c.client.Scan(ctx, 0, pattern, redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}

	if len(keys) == 0 {
		return 0, nil
	}

	return c.client.Del(ctx, keys...).Result()
}

var globReplacer = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(value string) string {
	return globReplacer.Replace(value)
}
