// Package discovery builds the ranked candidate deck shown to a user.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/oggyb/roommatch/internal/db"
	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/logger"
	"github.com/oggyb/roommatch/internal/metrics"
	"github.com/oggyb/roommatch/internal/utils/validate"
)

// DefaultNeutralScore ranks a candidate whose score could not be obtained.
const DefaultNeutralScore = 50.0

// GenderAny disables the gender filter.
const GenderAny = "Any"

// Filters narrows the candidate deck. Zero values are inactive.
type Filters struct {
	Gender    string
	RoomTypes []string
	BudgetMax *int
	Smoking   *bool
	Pets      *bool
}

type ScoredProfile struct {
	Profile db.Profile
	Score   float64
	// Fallback is set when Score is the neutral default.
	Fallback bool
}

type ProfileLister interface {
	ListComplete(ctx context.Context, excludeID string) ([]db.Profile, error)
}

type MatchLister interface {
	ListMatchIDs(ctx context.Context, userID string) ([]string, error)
}

type Scorer interface {
	GetOrComputeScore(ctx context.Context, userA, userB string) (db.CompatibilityScore, error)
}

type Config struct {
	Profiles     ProfileLister
	Matches      MatchLister
	Scorer       Scorer
	NeutralScore float64
	Logger       *slog.Logger
}

type Ranker struct {
	profiles ProfileLister
	matches  MatchLister
	scorer   Scorer
	neutral  float64
	log      *slog.Logger
}

func NewRanker(cfg Config) (*Ranker, error) {
	if cfg.Profiles == nil || cfg.Matches == nil || cfg.Scorer == nil {
		return nil, errors.New("discovery: profiles, matches and scorer are required")
	}
	if cfg.NeutralScore <= 0 {
		cfg.NeutralScore = DefaultNeutralScore
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	return &Ranker{
		profiles: cfg.Profiles,
		matches:  cfg.Matches,
		scorer:   cfg.Scorer,
		neutral:  cfg.NeutralScore,
		log:      cfg.Logger,
	}, nil
}

// GetCandidates returns the complete profiles userID has not matched with,
// narrowed by f and ordered by compatibility, best first. Candidates with
// equal scores keep their listing order.
//
// Filters run before scoring, so no score is computed for a candidate that
// would be dropped anyway.
func (r *Ranker) GetCandidates(ctx context.Context, userID string, f Filters) ([]ScoredProfile, error) {
	if err := validate.UserID(userID); err != nil {
		return nil, fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}

	pool, err := r.profiles.ListComplete(ctx, userID)
	if err != nil {
		return nil, svcErr.Persistence("discovery.list_profiles", err)
	}
	matched, err := r.matches.ListMatchIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	exclude := make(map[string]struct{}, len(matched))
	for _, id := range matched {
		exclude[id] = struct{}{}
	}

	out := make([]ScoredProfile, 0, len(pool))
	for _, candidate := range pool {
		if _, ok := exclude[candidate.UserID]; ok {
			continue
		}
		if !f.accepts(&candidate) {
			continue
		}
		scored, ok := r.score(ctx, userID, candidate)
		if !ok {
			continue
		}
		out = append(out, scored)
	}

	slices.SortStableFunc(out, func(a, b ScoredProfile) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return out, nil
}

// score returns false when the candidate's profile vanished after the pool
// was listed; such a candidate is skipped.
func (r *Ranker) score(ctx context.Context, userID string, candidate db.Profile) (ScoredProfile, bool) {
	s, err := r.scorer.GetOrComputeScore(ctx, userID, candidate.UserID)
	switch {
	case errors.Is(err, svcErr.ErrProfileNotFound):
		r.log.Debug("candidate profile gone, skipping", "user", userID, "candidate", candidate.UserID)
		return ScoredProfile{}, false
	case err != nil:
		r.log.Warn("candidate scoring failed, using neutral score",
			"user", userID, "candidate", candidate.UserID, "err", err)
		metrics.RecordScoreFallback()
		return ScoredProfile{Profile: candidate, Score: r.neutral, Fallback: true}, true
	}
	return ScoredProfile{Profile: candidate, Score: s.OverallScore}, true
}

// accepts reports whether p passes every active filter. A missing attribute
// fails the filter that needs it.
func (f Filters) accepts(p *db.Profile) bool {
	if f.Gender != "" && !strings.EqualFold(f.Gender, GenderAny) && p.Gender != f.Gender {
		return false
	}
	if len(f.RoomTypes) == 1 {
		if p.RoomType == nil {
			return false
		}
		if *p.RoomType != f.RoomTypes[0] && *p.RoomType != db.RoomTypeEither {
			return false
		}
	}
	if f.BudgetMax != nil && (p.BudgetMin == nil || *p.BudgetMin > *f.BudgetMax) {
		return false
	}
	if f.Smoking != nil && (p.Smoking == nil || *p.Smoking != *f.Smoking) {
		return false
	}
	if f.Pets != nil && (p.Pets == nil || *p.Pets != *f.Pets) {
		return false
	}
	return true
}
