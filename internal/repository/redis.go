package repository

import (
	"context"
	"time"

	"curtail/internal/config"
	"curtail/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	DestKeyPrefix   = "dst:"
	MissKeyPrefix   = "miss:"
	RollupKeyPrefix = "ru:"

	// DayFormat is the bucket format for per-day rollup counters
	DayFormat = "2006-01-02"
)

// RedisRepository handles Redis operations: the resolver's destination
// cache and the incremental rollup counters.
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveDestination caches a code to destination mapping
func (r *RedisRepository) SaveDestination(ctx context.Context, code, destinationURL string, ttl time.Duration) error {
	return r.client.Set(ctx, r.destKey(code), destinationURL, ttl).Err()
}

// GetDestination retrieves a cached destination. Returns redis.Nil on miss.
func (r *RedisRepository) GetDestination(ctx context.Context, code string) (string, error) {
	return r.client.Get(ctx, r.destKey(code)).Result()
}

// DeleteDestination invalidates the cached destination for a code
func (r *RedisRepository) DeleteDestination(ctx context.Context, code string) error {
	return r.client.Del(ctx, r.destKey(code)).Err()
}

// MarkMiss records a short-lived negative entry for a code the store did
// not know. The TTL keeps a link created moments later visible quickly
// while damping repeated-miss storms.
func (r *RedisRepository) MarkMiss(ctx context.Context, code string, ttl time.Duration) error {
	return r.client.Set(ctx, r.missKey(code), 1, ttl).Err()
}

// IsMiss reports whether a negative entry for the code is still live
func (r *RedisRepository) IsMiss(ctx context.Context, code string) (bool, error) {
	result, err := r.client.Exists(ctx, r.missKey(code)).Result()
	return result > 0, err
}

// IncrRollup bumps every rollup counter a click event contributes to.
// Counters are derived state: losing them only costs a rebuild.
func (r *RedisRepository) IncrRollup(ctx context.Context, ev *model.ClickEvent) error {
	day := ev.Timestamp.Format(DayFormat)

	pipe := r.client.TxPipeline()
	pipe.Incr(ctx, r.rollupKey(ev.LinkCode, "total", ""))
	pipe.Incr(ctx, r.rollupKey(ev.LinkCode, "day", day))
	pipe.Incr(ctx, r.rollupKey(ev.LinkCode, "device", ev.DeviceType))
	pipe.Incr(ctx, r.rollupKey(ev.LinkCode, "browser", ev.Browser))
	pipe.Incr(ctx, r.rollupKey(ev.LinkCode, "os", ev.OS))
	if ev.Country != "" {
		pipe.Incr(ctx, r.rollupKey(ev.LinkCode, "country", ev.Country))
	}
	_, err := pipe.Exec(ctx)
	return err
}

// GetRollup reads all rollup counters for a code
func (r *RedisRepository) GetRollup(ctx context.Context, code string) (*model.Rollup, error) {
	rollup := model.EmptyRollup(code)

	total, err := r.client.Get(ctx, r.rollupKey(code, "total", "")).Int64()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	rollup.TotalClicks = total

	dims := []struct {
		name string
		dst  map[string]int64
	}{
		{"day", rollup.ByDay},
		{"device", rollup.ByDevice},
		{"browser", rollup.ByBrowser},
		{"os", rollup.ByOS},
		{"country", rollup.ByCountry},
	}
	for _, dim := range dims {
		if err := r.scanCounters(ctx, code, dim.name, dim.dst); err != nil {
			return nil, err
		}
	}

	return rollup, nil
}

// ResetRollup removes every rollup counter for a code. Used before a
// rebuild from the click event log.
func (r *RedisRepository) ResetRollup(ctx context.Context, code string) error {
	pattern := RollupKeyPrefix + code + ":*"

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) scanCounters(ctx context.Context, code, dimension string, dst map[string]int64) error {
	prefix := RollupKeyPrefix + code + ":" + dimension + ":"

	iter := r.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		count, err := r.client.Get(ctx, key).Int64()
		if err != nil {
			continue
		}
		dst[key[len(prefix):]] = count
	}
	return iter.Err()
}

// Helper functions to build Redis keys

func (r *RedisRepository) destKey(code string) string {
	return DestKeyPrefix + code
}

func (r *RedisRepository) missKey(code string) string {
	return MissKeyPrefix + code
}

func (r *RedisRepository) rollupKey(code, dimension, value string) string {
	if value == "" && dimension == "total" {
		return RollupKeyPrefix + code + ":total"
	}
	return RollupKeyPrefix + code + ":" + dimension + ":" + value
}
