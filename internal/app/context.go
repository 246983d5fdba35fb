package app

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/roommatch/internal/cache"
	"github.com/oggyb/roommatch/internal/chat"
	"github.com/oggyb/roommatch/internal/compat"
	"github.com/oggyb/roommatch/internal/config"
	"github.com/oggyb/roommatch/internal/discovery"
	"github.com/oggyb/roommatch/internal/match"
	"github.com/oggyb/roommatch/internal/realtime"
	"github.com/oggyb/roommatch/internal/repository"
	"github.com/oggyb/roommatch/internal/swipe"
)

// AppContext holds shared dependencies (DB, Redis, Logger) and the domain
// components built on top of them.
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Events     *realtime.Dispatcher

	Profiles   *repository.ProfileRepository
	Swipes     *swipe.Ledger
	Matches    *match.Manager
	Scorer     *compat.Scorer
	Recomputer compat.Recomputer
	Discovery  *discovery.Ranker
	Chat       *chat.Gateway
}

// New wires the components. rdb may be nil, in which case counts and
// scores are served from the database only.
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger) (*AppContext, error) {
	clock := time.Now
	events := realtime.NewDispatcher(cfg.Match.RealtimeBuffer)

	profiles := repository.NewProfileRepository(db)
	conversations := repository.NewConversationRepository(db)

	var (
		counts swipe.CountCache
		scores compat.ScoreCache
	)
	if rdb != nil {
		counts, scores = rdb, rdb
	}

	ledger, err := swipe.New(swipe.Config{
		Store:  repository.NewSwipeRepository(db),
		Counts: counts,
		Clock:  clock,
		Logger: logger.With("component", "swipe"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: swipe ledger: %w", err)
	}

	cleaner := chat.NewCleaner(conversations, events, logger.With("component", "chat"))

	matches, err := match.NewManager(match.Config{
		Likes:    ledger,
		Store:    repository.NewMatchRepository(db),
		Profiles: profiles,
		Cleaner:  cleaner,
		Clock:    clock,
		Logger:   logger.With("component", "match"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: match manager: %w", err)
	}

	scorer, err := compat.NewScorer(compat.Config{
		Profiles: profiles,
		Scores:   repository.NewScoreRepository(db),
		Cache:    scores,
		Clock:    clock,
		Logger:   logger.With("component", "compat"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: scorer: %w", err)
	}

	ranker, err := discovery.NewRanker(discovery.Config{
		Profiles:     profiles,
		Matches:      matches,
		Scorer:       scorer,
		NeutralScore: cfg.Match.NeutralScore,
		Logger:       logger.With("component", "discovery"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: discovery: %w", err)
	}

	gateway, err := chat.NewGateway(chat.Config{
		Store:   conversations,
		Matches: matches,
		Events:  events,
		IDs:     chat.NewUUIDProvider(),
		Cleaner: cleaner,
		Clock:   clock,
		Logger:  logger.With("component", "chat"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: chat gateway: %w", err)
	}

	return &AppContext{
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Events:     events,
		Profiles:   profiles,
		Swipes:     ledger,
		Matches:    matches,
		Scorer:     scorer,
		Recomputer: scorer,
		Discovery:  ranker,
		Chat:       gateway,
	}, nil
}
