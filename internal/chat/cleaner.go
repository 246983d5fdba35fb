package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/logger"
	"github.com/oggyb/roommatch/internal/realtime"
)

// TeardownStore is the part of the conversation store teardown needs.
type TeardownStore interface {
	ListMessageIDs(ctx context.Context, conversationID string) ([]string, error)
	DeleteMessage(ctx context.Context, conversationID, messageID string) error
	Delete(ctx context.Context, conversationID string) error
}

type Publisher interface {
	Publish(ev realtime.Event)
}

// Cleaner removes a pair's conversation after the match is gone.
type Cleaner struct {
	store  TeardownStore
	events Publisher
	log    *slog.Logger
}

func NewCleaner(store TeardownStore, events Publisher, log *slog.Logger) *Cleaner {
	if log == nil {
		log = logger.Discard()
	}
	return &Cleaner{store: store, events: events, log: log}
}

// Teardown deletes every message of the pair's conversation, then the
// conversation itself. A failed message delete does not stop the rest; all
// failures are reported together once everything was attempted.
func (c *Cleaner) Teardown(ctx context.Context, userA, userB string) error {
	id := CanonicalConversationID(userA, userB)
	log := c.log.With("conversation", id)

	ids, err := c.store.ListMessageIDs(ctx, id)
	if err != nil {
		return svcErr.Persistence("chat.teardown", err)
	}

	var errs []error
	for _, msgID := range ids {
		if err := c.store.DeleteMessage(ctx, id, msgID); err != nil {
			log.Warn("message delete failed", "message", msgID, "err", err)
			errs = append(errs, err)
		}
	}
	if err := c.store.Delete(ctx, id); err != nil {
		log.Warn("conversation delete failed", "err", err)
		errs = append(errs, err)
	}

	if c.events != nil {
		c.events.Publish(realtime.Event{Topic: id, Kind: realtime.EventConversationClosed})
	}

	if len(errs) > 0 {
		return svcErr.Persistence("chat.teardown", fmt.Errorf("%d of %d deletes failed: %w", len(errs), len(ids)+1, errors.Join(errs...)))
	}
	log.Info("conversation torn down", "messages", len(ids))
	return nil
}
