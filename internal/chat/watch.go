package chat

import (
	"context"
	"fmt"

	"github.com/oggyb/roommatch/internal/db"
	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/realtime"
	"github.com/oggyb/roommatch/internal/utils/validate"
)

// Snapshot is the state of a watched conversation after a change.
//
// Messages is empty whenever Matched is false. Closed means the conversation
// no longer exists and the watch has ended. Err carries store failures; the
// watch keeps running after one.
type Snapshot struct {
	ConversationID string
	Conversation   *db.Conversation
	Messages       []db.Message
	Matched        bool
	Closed         bool
	Err            error
}

// Watch streams snapshots of the conversation to viewerID: one right away,
// then one per change. The match is re-checked for every snapshot.
//
// The channel closes without a final error when ctx ends. cancel stops the
// watch and returns only once nothing more can be delivered.
func (g *Gateway) Watch(ctx context.Context, conversationID, viewerID string) (<-chan Snapshot, func(), error) {
	if err := validate.UserID(viewerID); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", svcErr.ErrInvalidUserID, err)
	}
	conv, err := g.participantView(ctx, conversationID, viewerID)
	if err != nil {
		return nil, nil, err
	}

	watchCtx, stop := context.WithCancel(ctx)
	events, unsubscribe := g.events.Subscribe(watchCtx, conv.ID)
	out := make(chan Snapshot)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(out)
		defer unsubscribe()

		for {
			snap := g.snapshot(watchCtx, conv.ID, viewerID)
			if watchCtx.Err() != nil {
				return
			}
			select {
			case out <- snap:
			case <-watchCtx.Done():
				return
			}
			if snap.Closed {
				return
			}

			select {
			case <-watchCtx.Done():
				return
			case <-events:
			}
		}
	}()

	cancel := func() {
		stop()
		<-done
	}
	return out, cancel, nil
}

func (g *Gateway) snapshot(ctx context.Context, conversationID, viewerID string) Snapshot {
	snap := Snapshot{ConversationID: conversationID}

	conv, err := g.store.Get(ctx, conversationID)
	if err != nil {
		snap.Err = svcErr.Persistence("chat.watch", err)
		return snap
	}
	if conv == nil {
		snap.Closed = true
		return snap
	}
	snap.Conversation = conv

	other, _ := conv.Other(viewerID)
	matched, err := g.matches.AreMatched(ctx, viewerID, other)
	if err != nil {
		snap.Err = err
		return snap
	}
	if !matched {
		return snap
	}
	snap.Matched = true

	msgs, err := g.store.ListRecentMessages(ctx, conversationID, g.watchWindow)
	if err != nil {
		snap.Err = svcErr.Persistence("chat.watch", err)
		return snap
	}
	snap.Messages = msgs
	return snap
}

var _ Events = (*realtime.Dispatcher)(nil)
