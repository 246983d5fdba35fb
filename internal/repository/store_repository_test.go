package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/roommatch/internal/db"
	"github.com/oggyb/roommatch/internal/repository"
)

func TestMatchCreateAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))
	now := time.Now().UTC()

	pair := []db.Match{
		{OwnerID: "a", OtherUserID: "b", MatchedAt: now},
		{OwnerID: "b", OtherUserID: "a", MatchedAt: now},
	}
	require.NoError(t, repo.CreateAll(ctx, pair))
	require.NoError(t, repo.CreateAll(ctx, pair))

	owned, err := repo.ListOwned(ctx, "a")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "b", owned[0].OtherUserID)
}

func TestMatchListOrphaned(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))
	now := time.Now().UTC()

	require.NoError(t, repo.CreateAll(ctx, []db.Match{
		{OwnerID: "a", OtherUserID: "b", MatchedAt: now},
		{OwnerID: "b", OtherUserID: "a", MatchedAt: now},
		{OwnerID: "a", OtherUserID: "c", MatchedAt: now}, // no c → a
	}))

	orphans, err := repo.ListOrphaned(ctx, "a")
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "c", orphans[0].OtherUserID)

	require.NoError(t, repo.Delete(ctx, "a", "c"))
	exists, err := repo.Exists(ctx, "a", "c")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProfileSetMergeKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProfileRepository(setupTestDB(t))

	budgetMin, budgetMax, cleanliness := 500, 900, 4
	require.NoError(t, repo.Set(ctx, &db.Profile{
		UserID: "alice", DisplayName: "Alice", BudgetMin: &budgetMin, BudgetMax: &budgetMax, Cleanliness: &cleanliness,
	}, false))

	newMax := 1000
	require.NoError(t, repo.Set(ctx, &db.Profile{UserID: "alice", BudgetMax: &newMax}, true, "budget_max"))

	p, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Alice", p.DisplayName)
	assert.Equal(t, 500, *p.BudgetMin)
	assert.Equal(t, 1000, *p.BudgetMax)
	assert.Equal(t, 4, *p.Cleanliness)

	// replace clears unspecified attributes
	require.NoError(t, repo.Set(ctx, &db.Profile{UserID: "alice", DisplayName: "A"}, false))
	p, err = repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, p.BudgetMin)
	assert.Equal(t, "A", p.DisplayName)
}

func TestProfileListComplete(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	require.NoError(t, db.SeedMinimalTestData(dbase))
	repo := repository.NewProfileRepository(dbase)

	profiles, err := repo.ListComplete(ctx, "alice")
	require.NoError(t, err)

	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	assert.Equal(t, []string{"bob", "carol"}, ids)
}

func TestScoreSaveAllUpserts(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewScoreRepository(setupTestDB(t))
	now := time.Now().UTC()

	require.NoError(t, repo.SaveAll(ctx, []db.CompatibilityScore{
		{PairKey: "a_b", UserIDA: "a", UserIDB: "b", OverallScore: 40, LastUpdated: now},
	}))
	require.NoError(t, repo.SaveAll(ctx, []db.CompatibilityScore{
		{PairKey: "a_b", UserIDA: "a", UserIDB: "b", OverallScore: 75, LastUpdated: now},
	}))

	s, err := repo.Get(ctx, "a_b")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 75.0, s.OverallScore)

	missing, err := repo.Get(ctx, "x_y")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestConversationAppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewConversationRepository(setupTestDB(t))
	now := time.Now().UTC().Truncate(time.Millisecond)

	conv := &db.Conversation{ID: "a_b", ParticipantA: "a", ParticipantB: "b", CreatedAt: now}
	created, err := repo.CreateIfMissing(ctx, conv)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = repo.CreateIfMissing(ctx, conv)
	require.NoError(t, err)
	assert.False(t, created)

	for i, id := range []string{"m1", "m2", "m3"} {
		require.NoError(t, repo.AppendMessage(ctx, &db.Message{
			ID: id, ConversationID: "a_b", SenderID: "a", Text: id, SentAt: now.Add(time.Duration(i) * time.Second),
		}, id))
	}

	stored, err := repo.Get(ctx, "a_b")
	require.NoError(t, err)
	require.NotNil(t, stored.LastMessageText)
	assert.Equal(t, "m3", *stored.LastMessageText)

	page, next, err := repo.ListMessages(ctx, "a_b", nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "m1", page[0].ID)
	require.NotNil(t, next)

	rest, next, err := repo.ListMessages(ctx, "a_b", next, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "m3", rest[0].ID)
	assert.Nil(t, next)

	recent, err := repo.ListRecentMessages(ctx, "a_b", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "m2", recent[0].ID)
	assert.Equal(t, "m3", recent[1].ID)
}

func TestConversationAppendToMissingFails(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewConversationRepository(setupTestDB(t))

	err := repo.AppendMessage(ctx, &db.Message{ID: "m1", ConversationID: "ghost", SenderID: "a", Text: "hi", SentAt: time.Now()}, "hi")
	assert.Error(t, err)

	ids, err := repo.ListMessageIDs(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
