package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/roommatch/internal/cache"
	"github.com/oggyb/roommatch/internal/config"
	"github.com/oggyb/roommatch/internal/db"
)

func setupCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := &config.Config{}
	cfg.Redis.Addr = mr.Addr()
	cfg.Redis.ScoreTTL = time.Minute
	return cache.NewRedisCache(cfg), mr
}

func TestLikeCountRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	_, ok, err := c.GetLikeCount(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetLikeCount(ctx, "alice", 7))
	n, ok, err := c.GetLikeCount(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, time.Hour, mr.TTL(cache.KeyForLikeCount("alice")))

	require.NoError(t, c.InvalidateLikeCount(ctx, "alice"))
	_, ok, err = c.GetLikeCount(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScoreCache(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	score := &db.CompatibilityScore{PairKey: "a_b", UserIDA: "a", UserIDB: "b", OverallScore: 82.5}
	require.NoError(t, c.SetScore(ctx, score))
	assert.Equal(t, time.Minute, mr.TTL(cache.KeyForScore("a_b")))

	got, ok, err := c.GetScore(ctx, "a_b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 82.5, got.OverallScore)

	require.NoError(t, c.DeleteScores(ctx, "a_b", "a_c"))
	_, ok, err = c.GetScore(ctx, "a_b")
	require.NoError(t, err)
	assert.False(t, ok)
}
