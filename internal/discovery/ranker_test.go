package discovery_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/roommatch/internal/compat"
	"github.com/oggyb/roommatch/internal/db"
	"github.com/oggyb/roommatch/internal/discovery"
	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/repository"
)

type staticMatches []string

func (s staticMatches) ListMatchIDs(context.Context, string) ([]string, error) { return s, nil }

type brokenMatches struct{}

func (brokenMatches) ListMatchIDs(context.Context, string) ([]string, error) {
	return nil, svcErr.Persistence("match.list_ids", errors.New("timeout"))
}

// flakyScorer fails for one candidate and delegates the rest.
type flakyScorer struct {
	discovery.Scorer
	failFor string
	err     error
}

func (f flakyScorer) GetOrComputeScore(ctx context.Context, a, b string) (db.CompatibilityScore, error) {
	if b == f.failFor {
		if f.err != nil {
			return db.CompatibilityScore{}, f.err
		}
		return db.CompatibilityScore{}, errors.New("scoring exploded")
	}
	return f.Scorer.GetOrComputeScore(ctx, a, b)
}

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T) (*gorm.DB, *compat.Scorer) {
	t.Helper()

	database, err := db.NewMemoryDB(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.SeedMinimalTestData(database))

	scorer, err := compat.NewScorer(compat.Config{
		Profiles: repository.NewProfileRepository(database),
		Scores:   repository.NewScoreRepository(database),
		Clock:    time.Now,
	})
	require.NoError(t, err)
	return database, scorer
}

func newRanker(t *testing.T, database *gorm.DB, matches discovery.MatchLister, scorer discovery.Scorer) *discovery.Ranker {
	t.Helper()
	r, err := discovery.NewRanker(discovery.Config{
		Profiles: repository.NewProfileRepository(database),
		Matches:  matches,
		Scorer:   scorer,
	})
	require.NoError(t, err)
	return r
}

func ids(candidates []discovery.ScoredProfile) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Profile.UserID)
	}
	return out
}

func TestGetCandidatesRanksByScore(t *testing.T) {
	database, scorer := setup(t)
	r := newRanker(t, database, staticMatches{}, scorer)

	got, err := r.GetCandidates(context.Background(), "alice", discovery.Filters{})
	require.NoError(t, err)

	// dave is incomplete and never listed
	assert.Equal(t, []string{"bob", "carol"}, ids(got))
	assert.Greater(t, got[0].Score, got[1].Score)
	assert.False(t, got[0].Fallback)
}

func TestGetCandidatesExcludesMatches(t *testing.T) {
	database, scorer := setup(t)
	r := newRanker(t, database, staticMatches{"bob"}, scorer)

	got, err := r.GetCandidates(context.Background(), "alice", discovery.Filters{})
	require.NoError(t, err)
	assert.Equal(t, []string{"carol"}, ids(got))
}

func TestGetCandidatesFilters(t *testing.T) {
	database, scorer := setup(t)
	r := newRanker(t, database, staticMatches{}, scorer)
	ctx := context.Background()

	tests := []struct {
		name    string
		filters discovery.Filters
		want    []string
	}{
		{"gender", discovery.Filters{Gender: "female"}, []string{"carol"}},
		{"gender any", discovery.Filters{Gender: "Any"}, []string{"bob", "carol"}},
		{"single room type accepts either", discovery.Filters{RoomTypes: []string{db.RoomTypePrivate}}, []string{"bob"}},
		{"several room types inactive", discovery.Filters{RoomTypes: []string{db.RoomTypePrivate, db.RoomTypeShared}}, []string{"bob", "carol"}},
		{"budget max", discovery.Filters{BudgetMax: ptr(500)}, []string{"carol"}},
		{"smoking", discovery.Filters{Smoking: ptr(true)}, []string{}},
		{"pets", discovery.Filters{Pets: ptr(false)}, []string{"bob", "carol"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.GetCandidates(ctx, "alice", tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestGetCandidatesFallsBackToNeutralScore(t *testing.T) {
	database, scorer := setup(t)
	r := newRanker(t, database, staticMatches{}, flakyScorer{Scorer: scorer, failFor: "bob"})

	got, err := r.GetCandidates(context.Background(), "alice", discovery.Filters{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// carol (≈33) now ranks below bob's neutral 50
	assert.Equal(t, "bob", got[0].Profile.UserID)
	assert.True(t, got[0].Fallback)
	assert.Equal(t, discovery.DefaultNeutralScore, got[0].Score)
}

func TestGetCandidatesSkipsVanishedProfiles(t *testing.T) {
	database, scorer := setup(t)
	r := newRanker(t, database, staticMatches{}, flakyScorer{Scorer: scorer, failFor: "carol", err: svcErr.ErrProfileNotFound})

	got, err := r.GetCandidates(context.Background(), "alice", discovery.Filters{})
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, ids(got))
	assert.False(t, got[0].Fallback)
}

func TestGetCandidatesAbortsOnMatchLookupFailure(t *testing.T) {
	database, scorer := setup(t)
	r := newRanker(t, database, brokenMatches{}, scorer)

	_, err := r.GetCandidates(context.Background(), "alice", discovery.Filters{})
	assert.ErrorIs(t, err, svcErr.ErrPersistence)
}
