package compat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/oggyb/roommatch/internal/db"
	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/logger"
	"github.com/oggyb/roommatch/internal/metrics"
	"github.com/oggyb/roommatch/internal/utils/validate"
)

type ProfileStore interface {
	Get(ctx context.Context, userID string) (*db.Profile, error)
	ListComplete(ctx context.Context, excludeID string) ([]db.Profile, error)
}

type ScoreStore interface {
	Get(ctx context.Context, pairKey string) (*db.CompatibilityScore, error)
	SaveAll(ctx context.Context, scores []db.CompatibilityScore) error
}

// ScoreCache is a read-through layer in front of ScoreStore.
type ScoreCache interface {
	GetScore(ctx context.Context, pairKey string) (*db.CompatibilityScore, bool, error)
	SetScore(ctx context.Context, s *db.CompatibilityScore) error
	DeleteScores(ctx context.Context, pairKeys ...string) error
}

// Recomputer refreshes every stored score involving one user.
type Recomputer interface {
	RecomputeAllForUser(ctx context.Context, userID string) (int, error)
}

type Config struct {
	Profiles ProfileStore
	Scores   ScoreStore
	Cache    ScoreCache // optional
	Clock    func() time.Time
	Logger   *slog.Logger
}

// Scorer serves persisted scores and computes missing ones.
type Scorer struct {
	profiles ProfileStore
	scores   ScoreStore
	cache    ScoreCache
	clock    func() time.Time
	log      *slog.Logger

	// collapses concurrent computations of the same pair
	inflight singleflight.Group
}

var _ Recomputer = (*Scorer)(nil)

func NewScorer(cfg Config) (*Scorer, error) {
	if cfg.Profiles == nil || cfg.Scores == nil {
		return nil, errors.New("compat: profile and score stores are required")
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	return &Scorer{
		profiles: cfg.Profiles,
		scores:   cfg.Scores,
		cache:    cfg.Cache,
		clock:    cfg.Clock,
		log:      cfg.Logger,
	}, nil
}

// GetOrComputeScore returns the stored score of the pair, computing and
// persisting it first when none exists. Stored scores are returned as they
// are, however old.
func (s *Scorer) GetOrComputeScore(ctx context.Context, userA, userB string) (db.CompatibilityScore, error) {
	if err := validate.Pair(userA, userB); err != nil {
		return db.CompatibilityScore{}, fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}
	key := PairKey(userA, userB)

	if s.cache != nil {
		cached, ok, err := s.cache.GetScore(ctx, key)
		if err != nil {
			s.log.Warn("score cache read failed", "pair", key, "err", err)
		} else if ok {
			return *cached, nil
		}
	}

	// The shared computation outlives any single caller; a caller that goes
	// away stops waiting without failing the others.
	ch := s.inflight.DoChan(key, func() (any, error) {
		return s.loadOrCompute(context.WithoutCancel(ctx), key, userA, userB)
	})
	select {
	case <-ctx.Done():
		return db.CompatibilityScore{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return db.CompatibilityScore{}, res.Err
		}
		return res.Val.(db.CompatibilityScore), nil
	}
}

func (s *Scorer) loadOrCompute(ctx context.Context, key, userA, userB string) (db.CompatibilityScore, error) {
	stored, err := s.scores.Get(ctx, key)
	if err != nil {
		return db.CompatibilityScore{}, svcErr.Persistence("compat.get_score", err)
	}
	if stored != nil {
		s.remember(ctx, stored)
		return *stored, nil
	}

	a, err := s.profile(ctx, userA)
	if err != nil {
		return db.CompatibilityScore{}, err
	}
	b, err := s.profile(ctx, userB)
	if err != nil {
		return db.CompatibilityScore{}, err
	}

	score := Compute(a, b, s.clock())
	if err := s.scores.SaveAll(ctx, []db.CompatibilityScore{score}); err != nil {
		return db.CompatibilityScore{}, svcErr.Persistence("compat.save_score", err)
	}
	metrics.RecordCompatibilityScore(score.OverallScore)
	s.remember(ctx, &score)

	s.log.Debug("compatibility computed", "pair", key, "overall", score.OverallScore)
	return score, nil
}

func (s *Scorer) profile(ctx context.Context, userID string) (*db.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, svcErr.Persistence("compat.get_profile", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", svcErr.ErrProfileNotFound, userID)
	}
	return p, nil
}

func (s *Scorer) remember(ctx context.Context, score *db.CompatibilityScore) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetScore(ctx, score); err != nil {
		s.log.Warn("score cache write failed", "pair", score.PairKey, "err", err)
	}
}

// RecomputeAllForUser overwrites the scores of userID against every other
// complete profile in one batch and returns how many were written.
//
// Cost grows with the number of complete profiles.
func (s *Scorer) RecomputeAllForUser(ctx context.Context, userID string) (int, error) {
	if err := validate.UserID(userID); err != nil {
		return 0, fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}
	self, err := s.profile(ctx, userID)
	if err != nil {
		return 0, err
	}

	others, err := s.profiles.ListComplete(ctx, userID)
	if err != nil {
		return 0, svcErr.Persistence("compat.list_profiles", err)
	}
	if len(others) == 0 {
		return 0, nil
	}

	now := s.clock()
	scores := make([]db.CompatibilityScore, 0, len(others))
	keys := make([]string, 0, len(others))
	for i := range others {
		score := Compute(self, &others[i], now)
		scores = append(scores, score)
		keys = append(keys, score.PairKey)
	}

	if err := s.scores.SaveAll(ctx, scores); err != nil {
		return 0, svcErr.Persistence("compat.recompute", err)
	}
	for _, score := range scores {
		metrics.RecordCompatibilityScore(score.OverallScore)
	}

	if s.cache != nil {
		if err := s.cache.DeleteScores(ctx, keys...); err != nil {
			s.log.Warn("score cache invalidation failed", "user", userID, "err", err)
		}
	}

	s.log.Info("compatibility recomputed", "user", userID, "updated", len(scores))
	return len(scores), nil
}
