// Package swipe records directional like/pass judgments between users.
package swipe

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
	"github.com/oggyb/roommatch/internal/utils/pagination"
	"github.com/oggyb/roommatch/internal/utils/validate"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Store is the swipe persistence the ledger needs.
type Store interface {
	Upsert(ctx context.Context, swiperID, swipedID string, liked bool, at time.Time) error
	HasLiked(ctx context.Context, swiperID, swipedID string) (bool, error)
	ListLikers(ctx context.Context, recipientID string, token *string, limit int) ([]db.Swipe, *string, error)
	ListNewLikers(ctx context.Context, recipientID string, token *string, limit int) ([]db.Swipe, *string, error)
	CountLikers(ctx context.Context, recipientID string) (int64, error)
}

// CountCache caches per-user like counts.
type CountCache interface {
	GetLikeCount(ctx context.Context, userID string) (int64, bool, error)
	SetLikeCount(ctx context.Context, userID string, count int64) error
	InvalidateLikeCount(ctx context.Context, userID string) error
}

type Config struct {
	Store  Store
	Counts CountCache // optional
	Clock  func() time.Time
	Logger *slog.Logger
}

// Ledger is the durable record of swipes. Records are overwritten, never deleted.
type Ledger struct {
	store  Store
	counts CountCache
	clock  func() time.Time
	log    *slog.Logger
}

func New(cfg Config) (*Ledger, error) {
	if cfg.Store == nil {
		return nil, errors.New("swipe: store is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	return &Ledger{store: cfg.Store, counts: cfg.Counts, clock: cfg.Clock, log: cfg.Logger}, nil
}

// RecordSwipe upserts the judgment of swiper about swiped with timestamp now.
// Repeating the same call leaves the ledger in the same state.
func (l *Ledger) RecordSwipe(ctx context.Context, swiperID, swipedID string, liked bool) error {
	if err := validate.Pair(swiperID, swipedID); err != nil {
		return fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}

	if err := l.store.Upsert(ctx, swiperID, swipedID, liked, l.clock().UTC()); err != nil {
		l.log.Error("swipe upsert failed", "swiper", swiperID, "swiped", swipedID, "err", err)
		return svcErr.Persistence("swipe.record", err)
	}
	metrics.RecordSwipe(liked)

	// The swiped user gains or loses a liker. The swiper's own count changes
	// too, since likers they passed on are not counted.
	if l.counts != nil {
		for _, user := range []string{swipedID, swiperID} {
			if err := l.counts.InvalidateLikeCount(ctx, user); err != nil {
				l.log.Warn("like count invalidation failed", "user", user, "err", err)
			}
		}
	}
	return nil
}

// HasLiked reports whether swiper's latest judgment of swiped is a like.
// A missing record is simply false.
func (l *Ledger) HasLiked(ctx context.Context, swiperID, swipedID string) (bool, error) {
	liked, err := l.store.HasLiked(ctx, swiperID, swipedID)
	if err != nil {
		return false, svcErr.Persistence("swipe.has_liked", err)
	}
	return liked, nil
}

// ListLikedYou returns users who liked recipient, minus the ones recipient passed.
func (l *Ledger) ListLikedYou(ctx context.Context, recipientID string, token *string, limit int) ([]db.Swipe, *string, error) {
	if err := validate.UserID(recipientID); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}
	swipes, next, err := l.store.ListLikers(ctx, recipientID, token, pageSize(limit))
	if err != nil {
		return nil, nil, listErr("swipe.list_liked_you", err)
	}
	return swipes, next, nil
}

// ListNewLikedYou is ListLikedYou without the users recipient already liked back.
func (l *Ledger) ListNewLikedYou(ctx context.Context, recipientID string, token *string, limit int) ([]db.Swipe, *string, error) {
	if err := validate.UserID(recipientID); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}
	swipes, next, err := l.store.ListNewLikers(ctx, recipientID, token, pageSize(limit))
	if err != nil {
		return nil, nil, listErr("swipe.list_new_liked_you", err)
	}
	return swipes, next, nil
}

// CountLikedYou returns how many users liked recipient.
// Cache-first strategy:
//  1. Attempts to read from Redis (likes:count:userID).
//  2. On a miss or cache error, falls back to the DB.
//  3. On DB fetch, updates Redis with a 1h TTL.
func (l *Ledger) CountLikedYou(ctx context.Context, recipientID string) (int64, error) {
	if err := validate.UserID(recipientID); err != nil {
		return 0, fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}

	if l.counts != nil {
		if n, ok, err := l.counts.GetLikeCount(ctx, recipientID); err == nil && ok {
			return n, nil
		} else if err != nil {
			l.log.Warn("like count cache read failed", "user", recipientID, "err", err)
		}
	}

	count, err := l.store.CountLikers(ctx, recipientID)
	if err != nil {
		return 0, svcErr.Persistence("swipe.count_liked_you", err)
	}

	if l.counts != nil {
		_ = l.counts.SetLikeCount(ctx, recipientID, count)
	}
	return count, nil
}

func listErr(op string, err error) error {
	if errors.Is(err, pagination.ErrInvalidToken) {
		return err
	}
	return svcErr.Persistence(op, err)
}

func pageSize(limit int) int {
	switch {
	case limit <= 0:
		return defaultPageSize
	case limit > maxPageSize:
		return maxPageSize
	}
	return limit
}
