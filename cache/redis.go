package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the redis client. Every consumer receives it explicitly; when
// redis is unreachable the cache degrades to a no-op and callers fall back to
// the underlying source.
type Cache struct {
	client *redis.Client
}

// Key prefixes. Third-party API responses carry most of the traffic here,
// the curated TTLs mirror how volatile each source is.
const (
	SearchCachePrefix = "giantbomb:search:" // giantbomb:search:zelda
	GameCachePrefix   = "giantbomb:game:"   // giantbomb:game:3030-12345
	SteamCachePrefix  = "steam:players:"    // steam:players:730
	NewsCachePrefix   = "steam:news:"       // steam:news:730
	RateLimitPrefix   = "ratelimit:user:"   // ratelimit:user:123

	SearchTTL = 5 * time.Minute
	GameTTL   = time.Hour
	SteamTTL  = 2 * time.Minute
	NewsTTL   = 15 * time.Minute
)

// New connects to redis and verifies the connection. A connection failure is
// returned so the caller can decide to run without caching.
func New(addr, password string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Available reports whether redis is reachable right now.
func (c *Cache) Available(ctx context.Context) bool {
	if c == nil || c.client == nil {
		return false
	}
	_, err := c.client.Ping(ctx).Result()
	return err == nil
}

// Set stores a JSON-encoded value with a TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.Available(ctx) {
		return fmt.Errorf("redis not available")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Get loads a JSON-encoded value into dest. A miss is an error so callers
// can fall through to the source in one branch.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if !c.Available(ctx) {
		return fmt.Errorf("redis not available")
	}
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("cache miss")
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return nil
}

// Delete removes a key. Missing redis is not an error here.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.Available(ctx) {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}

// CheckRateLimit counts requests per user in a rolling window. INCR first,
// so concurrent requests at the boundary cannot both slip through. When
// redis is down the request is allowed rather than failing closed.
func (c *Cache) CheckRateLimit(ctx context.Context, userID uint, maxRequests int, window time.Duration) (bool, int, error) {
	if !c.Available(ctx) {
		return true, maxRequests, nil
	}

	key := fmt.Sprintf("%s%d", RateLimitPrefix, userID)

	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	if count == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return false, 0, err
		}
	}

	if count > int64(maxRequests) {
		ttl, _ := c.client.TTL(ctx, key).Result()
		return false, 0, fmt.Errorf("rate limit exceeded, retry after %v", ttl)
	}
	return true, maxRequests - int(count), nil
}
