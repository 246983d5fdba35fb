package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/roommatch/internal/config"
	"github.com/oggyb/roommatch/internal/db"
)

const likeCountTTL = time.Hour

type RedisCache struct {
	Client   *redis.Client
	scoreTTL time.Duration
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	ttl := cfg.Redis.ScoreTTL
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &RedisCache{Client: redis.NewClient(opts), scoreTTL: ttl}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForLikeCount generates Redis key for a user's like count
func KeyForLikeCount(userID string) string {
	return fmt.Sprintf("likes:count:%s", userID)
}

// KeyForScore generates Redis key for a canonical pair key.
func KeyForScore(pairKey string) string {
	return fmt.Sprintf("compat:score:%s", pairKey)
}

// GetLikeCount returns the cached count; ok is false on a miss.
// A hit refreshes the TTL since the user is active.
func (c *RedisCache) GetLikeCount(ctx context.Context, userID string) (int64, bool, error) {
	key := KeyForLikeCount(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // cache miss
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil // treat garbage as a miss
	}
	_ = c.Client.Expire(ctx, key, likeCountTTL).Err()
	return n, true, nil
}

func (c *RedisCache) SetLikeCount(ctx context.Context, userID string, count int64) error {
	// Always refresh TTL when updating
	return c.Client.Set(ctx, KeyForLikeCount(userID), count, likeCountTTL).Err()
}

// InvalidateLikeCount drops the cached count so the next read recounts.
func (c *RedisCache) InvalidateLikeCount(ctx context.Context, userID string) error {
	return c.Client.Del(ctx, KeyForLikeCount(userID)).Err()
}

// GetScore returns the cached score for pairKey; ok is false on a miss.
func (c *RedisCache) GetScore(ctx context.Context, pairKey string) (*db.CompatibilityScore, bool, error) {
	raw, err := c.Client.Get(ctx, KeyForScore(pairKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	var s db.CompatibilityScore
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, nil
	}
	return &s, true, nil
}

func (c *RedisCache) SetScore(ctx context.Context, s *db.CompatibilityScore) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, KeyForScore(s.PairKey), raw, c.scoreTTL).Err()
}

// DeleteScores drops cached scores for the given pair keys.
func (c *RedisCache) DeleteScores(ctx context.Context, pairKeys ...string) error {
	if len(pairKeys) == 0 {
		return nil
	}
	keys := make([]string, len(pairKeys))
	for i, k := range pairKeys {
		keys[i] = KeyForScore(k)
	}
	return c.Client.Del(ctx, keys...).Err()
}
