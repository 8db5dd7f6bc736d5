package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/dentist-timeslots-generator/internal/adapters/out/logger"
	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/json_types"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

var (
	rangeStart = time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
)

func testSlots(clinicID string, count int) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, count)
	start := rangeStart.Add(9 * time.Hour)
	for i := 0; i < count; i++ {
		slotStart := start.Add(time.Duration(i) * 30 * time.Minute)
		slots = append(slots, domain.TimeSlot{
			DentistID: "dentist-1",
			ClinicID:  clinicID,
			Start:     json_types.NewMillis(slotStart),
			End:       json_types.NewMillis(slotStart.Add(30 * time.Minute)),
		})
	}
	return slots
}

func testKey(clinicID string) out.SlotsCacheKey {
	return out.SlotsCacheKey{ClinicID: clinicID, Start: rangeStart, End: rangeEnd}
}

func TestLRUCacheAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("Store And Get", func(t *testing.T) {
		cache, err := NewLRUCacheAdapter(10, time.Minute, logger.NewNopLogger())
		require.NoError(t, err)

		slots := testSlots("clinic-a", 3)
		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-a"), slots))

		cached, ok := cache.GetTimeSlots(ctx, testKey("clinic-a"))
		require.True(t, ok)
		assert.Equal(t, slots, cached)

		_, ok = cache.GetTimeSlots(ctx, out.SlotsCacheKey{ClinicID: "clinic-a", Start: rangeStart, End: rangeEnd.Add(time.Hour)})
		assert.False(t, ok)
	})

	t.Run("Returned Slots Are A Copy", func(t *testing.T) {
		cache, err := NewLRUCacheAdapter(10, time.Minute, logger.NewNopLogger())
		require.NoError(t, err)

		slots := testSlots("clinic-a", 2)
		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-a"), slots))
		slots[0].DentistID = "mutated"

		cached, ok := cache.GetTimeSlots(ctx, testKey("clinic-a"))
		require.True(t, ok)
		assert.Equal(t, "dentist-1", cached[0].DentistID)

		cached[1].DentistID = "mutated"
		again, _ := cache.GetTimeSlots(ctx, testKey("clinic-a"))
		assert.Equal(t, "dentist-1", again[1].DentistID)
	})

	t.Run("Empty Result Is Cached", func(t *testing.T) {
		cache, err := NewLRUCacheAdapter(10, time.Minute, logger.NewNopLogger())
		require.NoError(t, err)

		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-a"), nil))

		cached, ok := cache.GetTimeSlots(ctx, testKey("clinic-a"))
		require.True(t, ok)
		assert.Empty(t, cached)
	})

	t.Run("Invalidate Clinic", func(t *testing.T) {
		cache, err := NewLRUCacheAdapter(10, time.Minute, logger.NewNopLogger())
		require.NoError(t, err)

		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-a"), testSlots("clinic-a", 1)))
		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-ab"), testSlots("clinic-ab", 1)))

		require.NoError(t, cache.InvalidateClinic(ctx, "clinic-a"))

		_, ok := cache.GetTimeSlots(ctx, testKey("clinic-a"))
		assert.False(t, ok)
		_, ok = cache.GetTimeSlots(ctx, testKey("clinic-ab"))
		assert.True(t, ok)
	})

	t.Run("Invalidate All", func(t *testing.T) {
		cache, err := NewLRUCacheAdapter(10, time.Minute, logger.NewNopLogger())
		require.NoError(t, err)

		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-a"), testSlots("clinic-a", 1)))
		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-b"), testSlots("clinic-b", 1)))

		require.NoError(t, cache.InvalidateAll(ctx))

		_, ok := cache.GetTimeSlots(ctx, testKey("clinic-a"))
		assert.False(t, ok)
		_, ok = cache.GetTimeSlots(ctx, testKey("clinic-b"))
		assert.False(t, ok)
	})

	t.Run("Size Bound Evicts Oldest", func(t *testing.T) {
		cache, err := NewLRUCacheAdapter(1, time.Minute, logger.NewNopLogger())
		require.NoError(t, err)

		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-a"), testSlots("clinic-a", 1)))
		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-b"), testSlots("clinic-b", 1)))

		_, ok := cache.GetTimeSlots(ctx, testKey("clinic-a"))
		assert.False(t, ok)
		_, ok = cache.GetTimeSlots(ctx, testKey("clinic-b"))
		assert.True(t, ok)
	})

	t.Run("Invalid Size", func(t *testing.T) {
		_, err := NewLRUCacheAdapter(0, time.Minute, logger.NewNopLogger())
		assert.Error(t, err)
	})
}

func newTestRedisCache(t *testing.T) (*RedisCacheAdapter, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCacheAdapter(client, time.Minute, logger.NewNopLogger()), server
}

func TestRedisCacheAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("Store And Get", func(t *testing.T) {
		cache, server := newTestRedisCache(t)

		slots := testSlots("clinic-a", 3)
		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-a"), slots))
		assert.True(t, server.Exists(redisKeyPrefix+testKey("clinic-a").String()))

		cached, ok := cache.GetTimeSlots(ctx, testKey("clinic-a"))
		require.True(t, ok)
		require.Len(t, cached, len(slots))
		for i := range slots {
			assert.Equal(t, slots[i].DentistID, cached[i].DentistID)
			assert.Equal(t, slots[i].ClinicID, cached[i].ClinicID)
			assert.Equal(t, slots[i].Start.UnixMilli(), cached[i].Start.UnixMilli())
			assert.Equal(t, slots[i].End.UnixMilli(), cached[i].End.UnixMilli())
		}
	})

	t.Run("Entries Expire", func(t *testing.T) {
		cache, server := newTestRedisCache(t)

		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-a"), testSlots("clinic-a", 1)))
		server.FastForward(2 * time.Minute)

		_, ok := cache.GetTimeSlots(ctx, testKey("clinic-a"))
		assert.False(t, ok)
	})

	t.Run("Corrupted Entry Is A Miss", func(t *testing.T) {
		cache, server := newTestRedisCache(t)

		require.NoError(t, server.Set(redisKeyPrefix+testKey("clinic-a").String(), "{not json"))

		_, ok := cache.GetTimeSlots(ctx, testKey("clinic-a"))
		assert.False(t, ok)
	})

	t.Run("Invalidate Clinic", func(t *testing.T) {
		cache, server := newTestRedisCache(t)

		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-a"), testSlots("clinic-a", 1)))
		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-ab"), testSlots("clinic-ab", 1)))

		require.NoError(t, cache.InvalidateClinic(ctx, "clinic-a"))

		assert.False(t, server.Exists(redisKeyPrefix+testKey("clinic-a").String()))
		assert.True(t, server.Exists(redisKeyPrefix+testKey("clinic-ab").String()))
	})

	t.Run("Invalidate All Keeps Foreign Keys", func(t *testing.T) {
		cache, server := newTestRedisCache(t)

		require.NoError(t, server.Set("sessions:1", "x"))
		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-a"), testSlots("clinic-a", 1)))
		require.NoError(t, cache.StoreTimeSlots(ctx, testKey("clinic-b"), testSlots("clinic-b", 1)))

		require.NoError(t, cache.InvalidateAll(ctx))

		assert.Equal(t, []string{"sessions:1"}, server.Keys())
	})

	t.Run("Server Down", func(t *testing.T) {
		cache, server := newTestRedisCache(t)
		server.Close()

		_, ok := cache.GetTimeSlots(ctx, testKey("clinic-a"))
		assert.False(t, ok)
		assert.Error(t, cache.StoreTimeSlots(ctx, testKey("clinic-a"), testSlots("clinic-a", 1)))
	})
}

func TestNewCacheAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Cache.Enabled = false

		cache, err := NewCacheAdapter(ctx, cfg, logger.NewNopLogger())
		require.NoError(t, err)
		assert.Nil(t, cache)
	})

	t.Run("LRU", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Cache.Enabled = true
		cfg.Cache.Driver = config.CacheDriverLRU
		cfg.Cache.SlotsSize = 5
		cfg.Cache.TTL = time.Minute

		cache, err := NewCacheAdapter(ctx, cfg, logger.NewNopLogger())
		require.NoError(t, err)
		assert.IsType(t, &LRUCacheAdapter{}, cache)
	})

	t.Run("Redis", func(t *testing.T) {
		server := miniredis.RunT(t)
		cfg := &config.Config{}
		cfg.Cache.Enabled = true
		cfg.Cache.Driver = config.CacheDriverRedis
		cfg.Cache.TTL = time.Minute
		cfg.Redis.Addr = server.Addr()

		cache, err := NewCacheAdapter(ctx, cfg, logger.NewNopLogger())
		require.NoError(t, err)
		assert.IsType(t, &RedisCacheAdapter{}, cache)
	})
}
