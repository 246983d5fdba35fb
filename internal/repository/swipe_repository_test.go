package repository_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/roommatch/internal/db"
	"github.com/oggyb/roommatch/internal/repository"
)

// setupTestDB opens an isolated in-memory DB per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	database, err := db.NewMemoryDB(name)
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return database
}

func TestUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewSwipeRepository(dbase)

	first := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	require.NoError(t, repo.Upsert(ctx, "alice", "bob", true, first))

	// overwrite with pass
	second := first.Add(30 * time.Minute)
	require.NoError(t, repo.Upsert(ctx, "alice", "bob", false, second))

	var rows []db.Swipe
	require.NoError(t, dbase.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Liked)
	assert.True(t, rows[0].UpdatedAt.Equal(second))

	liked, err := repo.HasLiked(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestListLikersExcludesPassed(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSwipeRepository(setupTestDB(t))
	now := time.Now().UTC()

	// u1, u2 liked target
	require.NoError(t, repo.Upsert(ctx, "u1", "target", true, now))
	require.NoError(t, repo.Upsert(ctx, "u2", "target", true, now))
	// target passed u2 → exclude
	require.NoError(t, repo.Upsert(ctx, "target", "u2", false, now))

	swipes, _, err := repo.ListLikers(ctx, "target", nil, 10)
	require.NoError(t, err)
	require.Len(t, swipes, 1)
	assert.Equal(t, "u1", swipes[0].SwiperID)

	count, err := repo.CountLikers(ctx, "target")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestListLikersPagination(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSwipeRepository(setupTestDB(t))
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Upsert(ctx, id, "target", true, base.Add(time.Duration(i)*time.Second)))
	}

	page1, next, err := repo.ListLikers(ctx, "target", nil, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.NotNil(t, next)
	assert.Equal(t, "c", page1[0].SwiperID)
	assert.Equal(t, "b", page1[1].SwiperID)

	page2, next, err := repo.ListLikers(ctx, "target", next, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Nil(t, next)
	assert.Equal(t, "a", page2[0].SwiperID)
}

func TestListNewLikersExcludesMutual(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSwipeRepository(setupTestDB(t))
	now := time.Now().UTC()

	// u1 ↔ target mutual
	require.NoError(t, repo.Upsert(ctx, "u1", "target", true, now))
	require.NoError(t, repo.Upsert(ctx, "target", "u1", true, now))
	// u2 one-way
	require.NoError(t, repo.Upsert(ctx, "u2", "target", true, now))

	swipes, _, err := repo.ListNewLikers(ctx, "target", nil, 10)
	require.NoError(t, err)
	require.Len(t, swipes, 1)
	assert.Equal(t, "u2", swipes[0].SwiperID)
}
