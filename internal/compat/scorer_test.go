package compat_test

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/roommatch/internal/cache"
	"github.com/oggyb/roommatch/internal/compat"
	"github.com/oggyb/roommatch/internal/config"
	"github.com/oggyb/roommatch/internal/db"
	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/repository"
)

type countingScores struct {
	*repository.ScoreRepository
	saves atomic.Int32
}

func (c *countingScores) SaveAll(ctx context.Context, scores []db.CompatibilityScore) error {
	c.saves.Add(1)
	return c.ScoreRepository.SaveAll(ctx, scores)
}

// gatedProfiles holds profile reads until release is closed.
type gatedProfiles struct {
	*repository.ProfileRepository
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedProfiles) Get(ctx context.Context, userID string) (*db.Profile, error) {
	g.once.Do(func() { close(g.entered) })
	<-g.release
	return g.ProfileRepository.Get(ctx, userID)
}

type env struct {
	db       *gorm.DB
	scores   *countingScores
	profiles *repository.ProfileRepository
	cache    *cache.RedisCache
	scorer   *compat.Scorer
}

func setup(t *testing.T) *env {
	t.Helper()

	database, err := db.NewMemoryDB(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.SeedMinimalTestData(database))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	e := &env{
		db:       database,
		scores:   &countingScores{ScoreRepository: repository.NewScoreRepository(database)},
		profiles: repository.NewProfileRepository(database),
		cache:    cache.NewRedisCache(cfg),
	}
	e.scorer, err = compat.NewScorer(compat.Config{
		Profiles: e.profiles,
		Scores:   e.scores,
		Cache:    e.cache,
		Clock:    func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return e
}

func TestGetOrComputeScorePersists(t *testing.T) {
	ctx := context.Background()
	e := setup(t)

	score, err := e.scorer.GetOrComputeScore(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice_bob", score.PairKey)
	assert.Equal(t, 100.0, score.BudgetMatch)

	stored, err := e.scores.Get(ctx, "alice_bob")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.InDelta(t, score.OverallScore, stored.OverallScore, 1e-9)

	// both orders hit the same record
	again, err := e.scorer.GetOrComputeScore(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.InDelta(t, score.OverallScore, again.OverallScore, 1e-9)
	assert.Equal(t, int32(1), e.scores.saves.Load())
}

func TestGetOrComputeScoreReturnsStoredUnchanged(t *testing.T) {
	ctx := context.Background()
	e := setup(t)

	stale := db.CompatibilityScore{
		PairKey: "alice_carol", UserIDA: "alice", UserIDB: "carol",
		OverallScore: 77, LastUpdated: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, e.scores.ScoreRepository.SaveAll(ctx, []db.CompatibilityScore{stale}))

	score, err := e.scorer.GetOrComputeScore(ctx, "carol", "alice")
	require.NoError(t, err)
	assert.Equal(t, 77.0, score.OverallScore)
	assert.Zero(t, e.scores.saves.Load())
}

func TestGetOrComputeScoreMissingProfile(t *testing.T) {
	ctx := context.Background()
	e := setup(t)

	_, err := e.scorer.GetOrComputeScore(ctx, "alice", "ghost")
	assert.ErrorIs(t, err, svcErr.ErrProfileNotFound)

	stored, err := e.scores.Get(ctx, compat.PairKey("alice", "ghost"))
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestGetOrComputeScoreRejectsSelfPair(t *testing.T) {
	_, err := setup(t).scorer.GetOrComputeScore(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, svcErr.ErrInvalidUserID)
}

func TestConcurrentScoringWritesOnce(t *testing.T) {
	ctx := context.Background()
	e := setup(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.scorer.GetOrComputeScore(ctx, "alice", "bob")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), e.scores.saves.Load())
}

func TestScoringSurvivesFirstCallerCancel(t *testing.T) {
	e := setup(t)
	gate := &gatedProfiles{
		ProfileRepository: e.profiles,
		entered:           make(chan struct{}),
		release:           make(chan struct{}),
	}
	scorer, err := compat.NewScorer(compat.Config{Profiles: gate, Scores: e.scores})
	require.NoError(t, err)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := scorer.GetOrComputeScore(firstCtx, "alice", "bob")
		firstErr <- err
	}()
	<-gate.entered

	second := make(chan error, 1)
	var got db.CompatibilityScore
	go func() {
		var err error
		got, err = scorer.GetOrComputeScore(context.Background(), "bob", "alice")
		second <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(gate.release)
	require.NoError(t, <-second)
	assert.Equal(t, "alice_bob", got.PairKey)
	assert.Equal(t, int32(1), e.scores.saves.Load())
}

func TestRecomputeAllForUser(t *testing.T) {
	ctx := context.Background()
	e := setup(t)

	before, err := e.scorer.GetOrComputeScore(ctx, "alice", "carol")
	require.NoError(t, err)
	_, ok, err := e.cache.GetScore(ctx, "alice_carol")
	require.NoError(t, err)
	require.True(t, ok)

	// carol now fits alice's budget
	carol, err := e.profiles.Get(ctx, "carol")
	require.NoError(t, err)
	budgetMax := 700
	carol.BudgetMax = &budgetMax
	require.NoError(t, e.profiles.Set(ctx, carol, true, "budget_max"))

	updated, err := e.scorer.RecomputeAllForUser(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, 2, updated) // alice and bob; dave is incomplete

	_, ok, err = e.cache.GetScore(ctx, "alice_carol")
	require.NoError(t, err)
	assert.False(t, ok)

	after, err := e.scorer.GetOrComputeScore(ctx, "alice", "carol")
	require.NoError(t, err)
	assert.Equal(t, 100.0, after.BudgetMatch)
	assert.Greater(t, after.OverallScore, before.OverallScore)

	// idempotent
	updated, err = e.scorer.RecomputeAllForUser(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, 2, updated)
}

func TestRecomputeAllForUnknownUser(t *testing.T) {
	_, err := setup(t).scorer.RecomputeAllForUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, svcErr.ErrProfileNotFound)
}
