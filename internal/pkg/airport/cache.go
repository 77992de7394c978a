package airport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nordavia/airport-aip-service/internal/app/dto"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RecordCache is the hot cache in front of the extraction pipeline. One
// airport maps to one record, so keys derive from the code alone.
type RecordCache struct {
	redis RedisClient
}

func NewRecordCache(redis RedisClient) *RecordCache {
	return &RecordCache{
		redis: redis,
	}
}

func (c *RecordCache) GetCacheKey(airportCode string) string {
	return fmt.Sprintf("airport:cache:%s", airportCode)
}

func (c *RecordCache) GetLockKey(airportCode string) string {
	return fmt.Sprintf("airport:lock:%s", airportCode)
}

func (c *RecordCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *RecordCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *RecordCache) SetRecord(ctx context.Context,
	key string,
	record dto.AirportRecord,
	expiration time.Duration,
) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal airport record: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set airport record: %w", err)
	}

	return nil
}

func (c *RecordCache) GetRecord(ctx context.Context, key string) (dto.AirportRecord, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return dto.AirportRecord{}, err
	}

	var record dto.AirportRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return dto.AirportRecord{}, err
	}

	return record, nil
}
