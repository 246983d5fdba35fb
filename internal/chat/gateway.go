// Package chat implements conversations that exist only between matched users.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/roommatch/internal/db"
	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/logger"
	"github.com/oggyb/roommatch/internal/metrics"
	"github.com/oggyb/roommatch/internal/realtime"
	"github.com/oggyb/roommatch/internal/utils/pagination"
	"github.com/oggyb/roommatch/internal/utils/validate"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type Store interface {
	TeardownStore
	Get(ctx context.Context, conversationID string) (*db.Conversation, error)
	CreateIfMissing(ctx context.Context, c *db.Conversation) (bool, error)
	AppendMessage(ctx context.Context, m *db.Message, preview string) error
	ListMessages(ctx context.Context, conversationID string, token *string, limit int) ([]db.Message, *string, error)
	ListRecentMessages(ctx context.Context, conversationID string, limit int) ([]db.Message, error)
	ListFor(ctx context.Context, userID string) ([]db.Conversation, error)
}

// MatchChecker is the authorization source for every gated operation.
type MatchChecker interface {
	AreMatched(ctx context.Context, userA, userB string) (bool, error)
}

type Events interface {
	Publisher
	Subscribe(ctx context.Context, topic string) (<-chan realtime.Event, func())
}

type Config struct {
	Store   Store
	Matches MatchChecker
	Events  Events
	IDs     IDProvider
	Cleaner *Cleaner // built from Store and Events when nil
	// WatchWindow caps how many recent messages a snapshot carries.
	WatchWindow int
	Clock       func() time.Time
	Logger      *slog.Logger
}

type Gateway struct {
	store       Store
	matches     MatchChecker
	events      Events
	ids         IDProvider
	cleaner     *Cleaner
	watchWindow int
	clock       func() time.Time
	log         *slog.Logger
}

func NewGateway(cfg Config) (*Gateway, error) {
	switch {
	case cfg.Store == nil:
		return nil, errors.New("chat: store is required")
	case cfg.Matches == nil:
		return nil, errors.New("chat: match checker is required")
	case cfg.Events == nil:
		return nil, errors.New("chat: events are required")
	}
	if cfg.IDs == nil {
		cfg.IDs = NewUUIDProvider()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	if cfg.Cleaner == nil {
		cfg.Cleaner = NewCleaner(cfg.Store, cfg.Events, cfg.Logger)
	}
	if cfg.WatchWindow <= 0 {
		cfg.WatchWindow = maxPageSize
	}
	return &Gateway{
		store:       cfg.Store,
		matches:     cfg.Matches,
		events:      cfg.Events,
		ids:         cfg.IDs,
		cleaner:     cfg.Cleaner,
		watchWindow: cfg.WatchWindow,
		clock:       cfg.Clock,
		log:         cfg.Logger,
	}, nil
}

// CanonicalConversationID is the same for (a, b) and (b, a).
func CanonicalConversationID(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return userA + validate.PairSeparator + userB
}

// GetOrCreateConversation returns the pair's conversation id, creating the
// conversation on first contact. Unmatched pairs get ErrNotMatched and
// nothing is written.
func (g *Gateway) GetOrCreateConversation(ctx context.Context, userA, userB string) (string, error) {
	if err := validate.Pair(userA, userB); err != nil {
		return "", fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}
	if err := g.requireMatch(ctx, userA, userB); err != nil {
		return "", err
	}

	a, b := userA, userB
	if b < a {
		a, b = b, a
	}
	conv := &db.Conversation{
		ID:           CanonicalConversationID(a, b),
		ParticipantA: a,
		ParticipantB: b,
		CreatedAt:    g.clock().UTC(),
	}
	created, err := g.store.CreateIfMissing(ctx, conv)
	if err != nil {
		return "", svcErr.Persistence("chat.create_conversation", err)
	}
	if created {
		g.events.Publish(realtime.Event{
			Topic:     conv.ID,
			Kind:      realtime.EventConversationOpened,
			Timestamp: conv.CreatedAt,
		})
	}
	return conv.ID, nil
}

// AppendMessage stores a message from senderID. The match is checked again
// right before the write; a pair that unmatched after the conversation was
// opened cannot send.
func (g *Gateway) AppendMessage(ctx context.Context, conversationID, senderID string, p Payload) (string, error) {
	if err := p.Validate(); err != nil {
		if errors.Is(err, svcErr.ErrEmptyMessage) {
			metrics.RecordMessage("empty")
		} else {
			metrics.RecordMessage("invalid")
		}
		return "", err
	}
	if err := validate.UserID(senderID); err != nil {
		return "", fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}

	conv, err := g.participantView(ctx, conversationID, senderID)
	if err != nil {
		return "", err
	}
	other, _ := conv.Other(senderID)
	if err := g.requireMatch(ctx, senderID, other); err != nil {
		if errors.Is(err, svcErr.ErrNotMatched) {
			metrics.RecordMessage("not_matched")
		}
		return "", err
	}

	id, err := g.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("chat: new message id: %w", err)
	}
	msg := &db.Message{
		ID:             id,
		ConversationID: conv.ID,
		SenderID:       senderID,
		Text:           p.Text,
		ImageURL:       p.ImageURL,
		FileURL:        p.FileURL,
		FileName:       p.FileName,
		FileSize:       p.FileSize,
		FileType:       p.FileType,
		SentAt:         g.clock().UTC().Truncate(time.Millisecond),
	}
	if err := g.store.AppendMessage(ctx, msg, p.Preview()); err != nil {
		metrics.RecordMessage("failed")
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", svcErr.ErrConversationNotFound
		}
		g.log.Error("message append failed", "conversation", conv.ID, "sender", senderID, "err", err)
		return "", svcErr.Persistence("chat.append_message", err)
	}
	metrics.RecordMessage("sent")

	g.events.Publish(realtime.Event{
		Topic:     conv.ID,
		Kind:      realtime.EventMessageAppended,
		MessageID: id,
		Timestamp: msg.SentAt,
	})
	return id, nil
}

// ListMessages pages through the conversation oldest first. Reading is
// gated the same way as sending.
func (g *Gateway) ListMessages(ctx context.Context, conversationID, viewerID string, token *string, limit int) ([]db.Message, *string, error) {
	if err := validate.UserID(viewerID); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}
	conv, err := g.participantView(ctx, conversationID, viewerID)
	if err != nil {
		return nil, nil, err
	}
	other, _ := conv.Other(viewerID)
	if err := g.requireMatch(ctx, viewerID, other); err != nil {
		return nil, nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}
	msgs, next, err := g.store.ListMessages(ctx, conv.ID, token, limit)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidToken) {
			return nil, nil, err
		}
		return nil, nil, svcErr.Persistence("chat.list_messages", err)
	}
	return msgs, next, nil
}

// CleanupUnmatched tears down every conversation of userID whose pair is no
// longer matched and returns how many were removed.
func (g *Gateway) CleanupUnmatched(ctx context.Context, userID string) (int, error) {
	if err := validate.UserID(userID); err != nil {
		return 0, fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}
	convs, err := g.store.ListFor(ctx, userID)
	if err != nil {
		return 0, svcErr.Persistence("chat.list_conversations", err)
	}

	removed := 0
	var errs []error
	for _, conv := range convs {
		other, _ := conv.Other(userID)
		matched, err := g.matches.AreMatched(ctx, userID, other)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if matched {
			continue
		}
		if err := g.cleaner.Teardown(ctx, conv.ParticipantA, conv.ParticipantB); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	if removed > 0 {
		g.log.Info("unmatched conversations removed", "user", userID, "removed", removed)
	}
	return removed, errors.Join(errs...)
}

func (g *Gateway) requireMatch(ctx context.Context, userA, userB string) error {
	matched, err := g.matches.AreMatched(ctx, userA, userB)
	if err != nil {
		return err
	}
	if !matched {
		return svcErr.ErrNotMatched
	}
	return nil
}

// participantView loads the conversation and checks userID belongs to it.
func (g *Gateway) participantView(ctx context.Context, conversationID, userID string) (*db.Conversation, error) {
	conv, err := g.store.Get(ctx, conversationID)
	if err != nil {
		return nil, svcErr.Persistence("chat.get_conversation", err)
	}
	if conv == nil {
		return nil, g.missingConversationErr(ctx, conversationID, userID)
	}
	if _, ok := conv.Other(userID); !ok {
		return nil, svcErr.ErrNotParticipant
	}
	return conv, nil
}

// missingConversationErr explains a lookup miss. Unmatching removes the
// conversation, so a canonical id naming userID and a partner they are no
// longer matched with reports ErrNotMatched rather than a plain miss.
func (g *Gateway) missingConversationErr(ctx context.Context, conversationID, userID string) error {
	a, b, ok := strings.Cut(conversationID, validate.PairSeparator)
	if !ok || validate.Pair(a, b) != nil || CanonicalConversationID(a, b) != conversationID {
		return svcErr.ErrConversationNotFound
	}
	var other string
	switch userID {
	case a:
		other = b
	case b:
		other = a
	default:
		return svcErr.ErrConversationNotFound
	}
	if err := g.requireMatch(ctx, userID, other); err != nil {
		return err
	}
	return svcErr.ErrConversationNotFound
}
