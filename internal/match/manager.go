// Package match turns mutual likes into symmetric match records and keeps
// those records consistent.
package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oggyb/roommatch/internal/db"
	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/logger"
	"github.com/oggyb/roommatch/internal/metrics"
	"github.com/oggyb/roommatch/internal/utils/validate"
)

type Status int

const (
	StatusNoMatch Status = iota
	StatusMatched
	StatusCreationFailed
)

func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusCreationFailed:
		return "creation_failed"
	default:
		return "no_match"
	}
}

// Outcome is the result of a mutual-like check. OtherProfile is set only for
// StatusMatched, and may still be nil if the profile read failed.
type Outcome struct {
	Status       Status
	OtherUserID  string
	OtherProfile *db.Profile
}

// MatchedProfile is one entry of a user's matches list.
type MatchedProfile struct {
	Profile   db.Profile
	MatchedAt time.Time
}

// Likes answers whether a user currently likes another.
type Likes interface {
	HasLiked(ctx context.Context, swiperID, swipedID string) (bool, error)
}

// Store persists the directional match records.
type Store interface {
	Exists(ctx context.Context, ownerID, otherID string) (bool, error)
	CreateAll(ctx context.Context, records []db.Match) error
	Delete(ctx context.Context, ownerID, otherID string) error
	ListOwned(ctx context.Context, ownerID string) ([]db.Match, error)
	ListOrphaned(ctx context.Context, ownerID string) ([]db.Match, error)
}

// Profiles reads profile documents; nil means the user has no profile.
type Profiles interface {
	Get(ctx context.Context, userID string) (*db.Profile, error)
}

// ConversationCleaner removes the conversation of a pair after an unmatch.
type ConversationCleaner interface {
	Teardown(ctx context.Context, userA, userB string) error
}

type Config struct {
	Likes    Likes
	Store    Store
	Profiles Profiles
	Cleaner  ConversationCleaner // optional
	Clock    func() time.Time
	Logger   *slog.Logger
}

type Manager struct {
	likes    Likes
	store    Store
	profiles Profiles
	cleaner  ConversationCleaner
	clock    func() time.Time
	log      *slog.Logger
}

func NewManager(cfg Config) (*Manager, error) {
	switch {
	case cfg.Likes == nil:
		return nil, errors.New("match: likes source is required")
	case cfg.Store == nil:
		return nil, errors.New("match: store is required")
	case cfg.Profiles == nil:
		return nil, errors.New("match: profile store is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	return &Manager{
		likes:    cfg.Likes,
		store:    cfg.Store,
		profiles: cfg.Profiles,
		cleaner:  cfg.Cleaner,
		clock:    cfg.Clock,
		log:      cfg.Logger,
	}, nil
}

// ProcessLikeAndCheckMatch runs after userA's like of userB was recorded.
// If userB also likes userA the symmetric pair is created (idempotently).
//
// A failed pair write yields StatusCreationFailed together with an error; the
// like stays recorded, so the match is re-detected on the next check.
func (m *Manager) ProcessLikeAndCheckMatch(ctx context.Context, userA, userB string) (Outcome, error) {
	if err := validate.Pair(userA, userB); err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}
	log := logger.ForPair(m.log, userA, userB)

	mutual, err := m.likes.HasLiked(ctx, userB, userA)
	if err != nil {
		log.Error("reciprocal like lookup failed", "err", err)
		return Outcome{}, err
	}
	if !mutual {
		metrics.RecordMatchOutcome(StatusNoMatch.String())
		return Outcome{Status: StatusNoMatch}, nil
	}

	if err := m.createMatchPair(ctx, userA, userB); err != nil {
		log.Error("match pair creation failed", "err", err)
		metrics.RecordMatchOutcome(StatusCreationFailed.String())
		return Outcome{Status: StatusCreationFailed, OtherUserID: userB},
			fmt.Errorf("%w: %w", svcErr.ErrMatchCreationFailed, err)
	}
	metrics.RecordMatchOutcome(StatusMatched.String())

	outcome := Outcome{Status: StatusMatched, OtherUserID: userB}
	profile, err := m.profiles.Get(ctx, userB)
	if err != nil {
		log.Warn("matched profile fetch failed", "err", err)
	} else {
		outcome.OtherProfile = profile
	}
	log.Info("match confirmed")
	return outcome, nil
}

// createMatchPair writes whichever directional records are missing, in one
// transaction. Existing records are never rewritten.
func (m *Manager) createMatchPair(ctx context.Context, userA, userB string) error {
	now := m.clock().UTC()
	var missing []db.Match

	for _, pair := range [][2]string{{userA, userB}, {userB, userA}} {
		exists, err := m.store.Exists(ctx, pair[0], pair[1])
		if err != nil {
			return svcErr.Persistence("match.exists", err)
		}
		if !exists {
			missing = append(missing, db.Match{OwnerID: pair[0], OtherUserID: pair[1], MatchedAt: now})
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if err := m.store.CreateAll(ctx, missing); err != nil {
		return svcErr.Persistence("match.create_pair", err)
	}
	return nil
}

// AreMatched is true iff both directional records exist. This is the
// authorization check for discovery exclusion and messaging.
func (m *Manager) AreMatched(ctx context.Context, userA, userB string) (bool, error) {
	if userA == "" || userB == "" || userA == userB {
		return false, nil
	}
	for _, pair := range [][2]string{{userA, userB}, {userB, userA}} {
		exists, err := m.store.Exists(ctx, pair[0], pair[1])
		if err != nil {
			return false, svcErr.Persistence("match.are_matched", err)
		}
		if !exists {
			return false, nil
		}
	}
	return true, nil
}

// ListMatchIDs returns the users userID holds a record for, newest first.
// The reverse side is not checked; see ValidateAndRepairMatches.
func (m *Manager) ListMatchIDs(ctx context.Context, userID string) ([]string, error) {
	owned, err := m.store.ListOwned(ctx, userID)
	if err != nil {
		return nil, svcErr.Persistence("match.list_ids", err)
	}
	ids := make([]string, 0, len(owned))
	for _, rec := range owned {
		ids = append(ids, rec.OtherUserID)
	}
	return ids, nil
}

// ListMatchedProfiles repairs userID's records opportunistically and returns
// the profiles of the remaining matches. Matches without a profile are skipped.
func (m *Manager) ListMatchedProfiles(ctx context.Context, userID string) ([]MatchedProfile, error) {
	if err := validate.UserID(userID); err != nil {
		return nil, fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}
	if _, err := m.ValidateAndRepairMatches(ctx, userID); err != nil {
		m.log.Warn("match repair before listing failed", "user", userID, "err", err)
	}

	owned, err := m.store.ListOwned(ctx, userID)
	if err != nil {
		return nil, svcErr.Persistence("match.list_profiles", err)
	}

	out := make([]MatchedProfile, 0, len(owned))
	for _, rec := range owned {
		p, err := m.profiles.Get(ctx, rec.OtherUserID)
		if err != nil {
			return nil, svcErr.Persistence("match.list_profiles", err)
		}
		if p == nil {
			m.log.Debug("matched user has no profile", "user", userID, "other", rec.OtherUserID)
			continue
		}
		out = append(out, MatchedProfile{Profile: *p, MatchedAt: rec.MatchedAt})
	}
	return out, nil
}

// ValidateAndRepairMatches deletes every record owned by userID whose
// reciprocal is missing and returns how many were removed. Only userID's own
// records are touched; the other side heals when that user runs the repair.
func (m *Manager) ValidateAndRepairMatches(ctx context.Context, userID string) (int, error) {
	orphans, err := m.store.ListOrphaned(ctx, userID)
	if err != nil {
		return 0, svcErr.Persistence("match.repair", err)
	}

	repaired := 0
	var errs []error
	for _, rec := range orphans {
		if err := m.store.Delete(ctx, rec.OwnerID, rec.OtherUserID); err != nil {
			errs = append(errs, err)
			continue
		}
		repaired++
	}

	if repaired > 0 {
		m.log.Warn("inconsistent match state repaired", "user", userID, "repaired", repaired)
		metrics.RecordOrphansRepaired(repaired)
	}
	if len(errs) > 0 {
		return repaired, svcErr.Persistence("match.repair", errors.Join(errs...))
	}
	return repaired, nil
}

// DeleteMatch removes both directional records and the pair's conversation.
// Only the userA side must succeed; the rest is best effort and is logged.
func (m *Manager) DeleteMatch(ctx context.Context, userA, userB string) error {
	if err := validate.Pair(userA, userB); err != nil {
		return fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}
	log := logger.ForPair(m.log, userA, userB)

	if err := m.store.Delete(ctx, userA, userB); err != nil {
		log.Error("unmatch failed", "err", err)
		return svcErr.Persistence("match.delete", err)
	}
	metrics.RecordUnmatch()

	if err := m.store.Delete(ctx, userB, userA); err != nil {
		log.Warn("reciprocal match delete failed; left for repair", "err", err)
	}

	if m.cleaner != nil {
		if err := m.cleaner.Teardown(ctx, userA, userB); err != nil {
			log.Warn("conversation teardown incomplete", "err", err)
		}
	}
	log.Info("match deleted")
	return nil
}
