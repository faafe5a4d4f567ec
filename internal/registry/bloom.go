package registry

import (
	"context"
	"fmt"
	"time"

	"curtail/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// BloomFilter prefilters code-existence checks so the generator's retry
// loop rarely pays a store round trip for a fresh random code.
type BloomFilter struct {
	client    RedisClient
	capacity  int64
	errorRate float64
}

// RedisClient defines the interface for Redis client operations
type RedisClient interface {
	Do(ctx context.Context, args ...interface{}) *redis.Cmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// NewBloomFilter creates a new BloomFilter
func NewBloomFilter(client RedisClient, cfg *config.BloomConfig) *BloomFilter {
	bf := &BloomFilter{
		client:    client,
		capacity:  cfg.Capacity,
		errorRate: cfg.ErrorRate,
	}

	// Initialize Bloom Filter if needed
	bf.init(context.Background())

	return bf
}

const bloomFilterKey = "curtail:bloom"

// init initializes the Bloom Filter
func (bf *BloomFilter) init(ctx context.Context) {
	// Check if Bloom Filter exists
	exists, err := bf.client.Exists(ctx, bloomFilterKey).Result()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to check Bloom Filter existence")
		return
	}

	if exists > 0 {
		log.Info().Msg("Bloom Filter already exists")
		return
	}

	// Create Bloom Filter
	cmd := bf.client.Do(ctx, "BF.RESERVE", bloomFilterKey, bf.errorRate, bf.capacity)
	if err := cmd.Err(); err != nil {
		// BF.RESERVE may not be available, use BF.ADD instead
		log.Warn().Err(err).Msg("BF.RESERVE not available, using dynamic Bloom Filter")
	} else {
		log.Info().Msgf("Bloom Filter created with capacity=%d, error_rate=%f", bf.capacity, bf.errorRate)
	}
}

// Add adds a short code to the Bloom Filter
func (bf *BloomFilter) Add(ctx context.Context, code string) error {
	// Try BF.ADD first (RedisBloom module)
	cmd := bf.client.Do(ctx, "BF.ADD", bloomFilterKey, code)
	if err := cmd.Err(); err != nil {
		// Fallback to regular SET if Bloom Filter not available
		log.Warn().Err(err).Msg("BF.ADD not available, using SET as fallback")
		return bf.client.Set(ctx, bf.fallbackKey(code), 1, 0).Err()
	}
	return nil
}

// Exists checks if a short code might already be taken
func (bf *BloomFilter) Exists(ctx context.Context, code string) (bool, error) {
	// Try BF.EXISTS first
	cmd := bf.client.Do(ctx, "BF.EXISTS", bloomFilterKey, code)
	result, err := cmd.Int()
	if err == nil {
		return result == 1, nil
	}

	// Fallback to regular GET if Bloom Filter not available
	log.Warn().Err(err).Msg("BF.EXISTS not available, using GET as fallback")
	exists, err := bf.client.Exists(ctx, bf.fallbackKey(code)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Reset resets the Bloom Filter (use with caution)
func (bf *BloomFilter) Reset(ctx context.Context) error {
	return bf.client.Del(ctx, bloomFilterKey).Err()
}

// Fallback key when Bloom Filter is not available
func (bf *BloomFilter) fallbackKey(code string) string {
	return fmt.Sprintf("curtail:bloom:fb:%s", code)
}
