package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

type LRUCacheAdapter struct {
	cache  *expirable.LRU[string, []domain.TimeSlot]
	mu     sync.RWMutex
	logger out.LoggerPort
}

var _ out.CachePort = (*LRUCacheAdapter)(nil)

func NewLRUCacheAdapter(size int, ttl time.Duration, logger out.LoggerPort) (*LRUCacheAdapter, error) {
	if size <= 0 {
		logger.Error("cache.slots.init.failed", out.LogFields{
			"size": size,
		})
		return nil, fmt.Errorf("cache.slots.size.invalid: %d", size)
	}

	return &LRUCacheAdapter{
		cache:  expirable.NewLRU[string, []domain.TimeSlot](size, nil, ttl),
		logger: logger.WithModule("LRUCacheAdapter"),
	}, nil
}

func (c *LRUCacheAdapter) GetTimeSlots(ctx context.Context, key out.SlotsCacheKey) ([]domain.TimeSlot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	slots, exists := c.cache.Get(key.String())
	if !exists {
		c.logger.Debug("cache.slots.get.miss", out.LogFields{
			"key": key.String(),
		})
		return nil, false
	}

	c.logger.Debug("cache.slots.get.hit", out.LogFields{
		"key":        key.String(),
		"slotsCount": len(slots),
	})
	return copySlots(slots), true
}

func (c *LRUCacheAdapter) StoreTimeSlots(ctx context.Context, key out.SlotsCacheKey, slots []domain.TimeSlot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.slots.store", out.LogFields{
		"key":        key.String(),
		"slotsCount": len(slots),
	})

	// Пустой результат тоже валиден и кэшируется
	stored := copySlots(slots)
	if stored == nil {
		stored = []domain.TimeSlot{}
	}
	c.cache.Add(key.String(), stored)
	return nil
}

func (c *LRUCacheAdapter) InvalidateClinic(ctx context.Context, clinicID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := clinicID + ":"
	removed := 0
	for _, key := range c.cache.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Remove(key)
			removed++
		}
	}

	c.logger.Info("cache.slots.invalidate.clinic", out.LogFields{
		"clinicId": clinicID,
		"removed":  removed,
	})
	return nil
}

func (c *LRUCacheAdapter) InvalidateAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Purge()
	c.logger.Info("cache.slots.invalidate.all", nil)
	return nil
}
