package match_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/roommatch/internal/db"
	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/match"
	"github.com/oggyb/roommatch/internal/repository"
	"github.com/oggyb/roommatch/internal/swipe"
)

type fixture struct {
	db      *gorm.DB
	ledger  *swipe.Ledger
	matches *repository.MatchRepository
	manager *match.Manager
	cleaner *recordingCleaner
}

type recordingCleaner struct {
	calls [][2]string
	err   error
}

func (c *recordingCleaner) Teardown(_ context.Context, a, b string) error {
	c.calls = append(c.calls, [2]string{a, b})
	return c.err
}

// brokenCreates fails every pair write but reads through to the real store.
type brokenCreates struct {
	*repository.MatchRepository
}

func (brokenCreates) CreateAll(context.Context, []db.Match) error {
	return errors.New("disk full")
}

func setup(t *testing.T) *fixture {
	t.Helper()

	database, err := db.NewMemoryDB(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.SeedMinimalTestData(database))

	ledger, err := swipe.New(swipe.Config{Store: repository.NewSwipeRepository(database)})
	require.NoError(t, err)

	f := &fixture{
		db:      database,
		ledger:  ledger,
		matches: repository.NewMatchRepository(database),
		cleaner: &recordingCleaner{},
	}
	f.manager = f.newManager(t, f.matches)
	return f
}

func (f *fixture) newManager(t *testing.T, store match.Store) *match.Manager {
	t.Helper()
	m, err := match.NewManager(match.Config{
		Likes:    f.ledger,
		Store:    store,
		Profiles: repository.NewProfileRepository(f.db),
		Cleaner:  f.cleaner,
		Clock:    func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return m
}

func (f *fixture) like(t *testing.T, a, b string) match.Outcome {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.ledger.RecordSwipe(ctx, a, b, true))
	out, err := f.manager.ProcessLikeAndCheckMatch(ctx, a, b)
	require.NoError(t, err)
	return out
}

func TestOneSidedLikeIsNoMatch(t *testing.T) {
	f := setup(t)

	out := f.like(t, "bob", "carol")
	assert.Equal(t, match.StatusNoMatch, out.Status)
	assert.Nil(t, out.OtherProfile)

	matched, err := f.manager.AreMatched(context.Background(), "bob", "carol")
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestMutualLikeCreatesSymmetricMatch(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	// seed: alice already liked bob
	out := f.like(t, "bob", "alice")
	require.Equal(t, match.StatusMatched, out.Status)
	assert.Equal(t, "alice", out.OtherUserID)
	require.NotNil(t, out.OtherProfile)
	assert.Equal(t, "alice", out.OtherProfile.UserID)

	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		ok, err := f.matches.Exists(ctx, pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, ok, "record %s->%s", pair[0], pair[1])
	}

	matched, err := f.manager.AreMatched(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestProcessLikeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	f.like(t, "bob", "alice")
	before, err := f.matches.ListOwned(ctx, "alice")
	require.NoError(t, err)

	out := f.like(t, "bob", "alice")
	assert.Equal(t, match.StatusMatched, out.Status)

	after, err := f.matches.ListOwned(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestProcessLikeFillsMissingSide(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	require.NoError(t, f.matches.CreateAll(ctx, []db.Match{{OwnerID: "alice", OtherUserID: "bob", MatchedAt: time.Now().UTC()}}))

	out := f.like(t, "bob", "alice")
	require.Equal(t, match.StatusMatched, out.Status)

	ok, err := f.matches.Exists(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreationFailureKeepsLike(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	broken := f.newManager(t, brokenCreates{f.matches})

	require.NoError(t, f.ledger.RecordSwipe(ctx, "bob", "alice", true))
	out, err := broken.ProcessLikeAndCheckMatch(ctx, "bob", "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, svcErr.ErrMatchCreationFailed)
	assert.ErrorIs(t, err, svcErr.ErrPersistence)
	assert.Equal(t, match.StatusCreationFailed, out.Status)

	liked, err := f.ledger.HasLiked(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.True(t, liked)

	// the next check re-detects the match
	out, err = f.manager.ProcessLikeAndCheckMatch(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, match.StatusMatched, out.Status)
}

func TestAreMatchedRequiresBothRecords(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	require.NoError(t, f.matches.CreateAll(ctx, []db.Match{{OwnerID: "alice", OtherUserID: "carol", MatchedAt: time.Now().UTC()}}))

	matched, err := f.manager.AreMatched(ctx, "alice", "carol")
	require.NoError(t, err)
	assert.False(t, matched)

	matched, err = f.manager.AreMatched(ctx, "alice", "alice")
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestValidateAndRepairMatches(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	f.like(t, "bob", "alice")
	require.NoError(t, f.matches.CreateAll(ctx, []db.Match{{OwnerID: "alice", OtherUserID: "carol", MatchedAt: time.Now().UTC()}}))

	repaired, err := f.manager.ValidateAndRepairMatches(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	ids, err := f.manager.ListMatchIDs(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, ids)

	// converged
	repaired, err = f.manager.ValidateAndRepairMatches(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, repaired)
}

func TestListMatchedProfilesRepairsFirst(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	f.like(t, "bob", "alice")
	require.NoError(t, f.matches.CreateAll(ctx, []db.Match{{OwnerID: "alice", OtherUserID: "carol", MatchedAt: time.Now().UTC()}}))

	profiles, err := f.manager.ListMatchedProfiles(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "bob", profiles[0].Profile.UserID)
	assert.False(t, profiles[0].MatchedAt.IsZero())

	_, err = f.manager.ListMatchedProfiles(ctx, "")
	assert.ErrorIs(t, err, svcErr.ErrInvalidUserID)
}

func TestDeleteMatchRemovesBothSidesAndConversation(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	f.like(t, "bob", "alice")
	require.NoError(t, f.manager.DeleteMatch(ctx, "alice", "bob"))

	matched, err := f.manager.AreMatched(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, matched)

	for _, owner := range []string{"alice", "bob"} {
		ids, err := f.manager.ListMatchIDs(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, ids)
	}
	assert.Equal(t, [][2]string{{"alice", "bob"}}, f.cleaner.calls)
}

func TestDeleteMatchToleratesTeardownFailure(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.cleaner.err = errors.New("conversation store offline")

	f.like(t, "bob", "alice")
	assert.NoError(t, f.manager.DeleteMatch(ctx, "bob", "alice"))

	matched, err := f.manager.AreMatched(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestNewManagerRequiresDependencies(t *testing.T) {
	_, err := match.NewManager(match.Config{})
	assert.Error(t, err)
}
