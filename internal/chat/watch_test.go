package chat_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/roommatch/internal/chat"
	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/realtime"
)

func TestWatchDeliversNewMessages(t *testing.T) {
	ctx := context.Background()
	h := setup(t)
	id := h.open(t, "alice", "bob")

	snaps, cancel, err := h.gateway.Watch(ctx, id, "bob")
	require.NoError(t, err)
	defer cancel()

	initial := receive(t, snaps)
	assert.True(t, initial.Matched)
	assert.Empty(t, initial.Messages)

	msgID, err := h.gateway.AppendMessage(ctx, id, "alice", chat.Payload{Text: "hello"})
	require.NoError(t, err)

	next := receive(t, snaps)
	require.NoError(t, next.Err)
	require.Len(t, next.Messages, 1)
	assert.Equal(t, msgID, next.Messages[0].ID)
}

func TestWatchSuppressesMessagesAfterUnmatch(t *testing.T) {
	ctx := context.Background()
	h := setup(t)
	id := h.open(t, "alice", "bob")
	_, err := h.gateway.AppendMessage(ctx, id, "alice", chat.Payload{Text: "hello"})
	require.NoError(t, err)

	snaps, cancel, err := h.gateway.Watch(ctx, id, "bob")
	require.NoError(t, err)
	defer cancel()
	require.Len(t, receive(t, snaps).Messages, 1)

	h.matches.set("alice", "bob", false)
	h.events.Publish(realtime.Event{Topic: id, Kind: realtime.EventConversationOpened})

	snap := receive(t, snaps)
	assert.False(t, snap.Matched)
	assert.Empty(t, snap.Messages)
	assert.NoError(t, snap.Err)
}

func TestWatchEndsWhenConversationClosed(t *testing.T) {
	ctx := context.Background()
	h := setup(t)
	id := h.open(t, "alice", "bob")

	snaps, cancel, err := h.gateway.Watch(ctx, id, "alice")
	require.NoError(t, err)
	defer cancel()
	receive(t, snaps)

	require.NoError(t, chat.NewCleaner(h.convs, h.events, nil).Teardown(ctx, "alice", "bob"))

	snap := receive(t, snaps)
	assert.True(t, snap.Closed)

	_, open := <-snaps
	assert.False(t, open)
}

func TestWatchCancelStopsDelivery(t *testing.T) {
	ctx := context.Background()
	h := setup(t)
	id := h.open(t, "alice", "bob")

	snaps, cancel, err := h.gateway.Watch(ctx, id, "alice")
	require.NoError(t, err)
	receive(t, snaps)

	cancel()
	assert.Zero(t, h.events.Subscribers(id))

	_, err = h.gateway.AppendMessage(ctx, id, "bob", chat.Payload{Text: "anyone?"})
	require.NoError(t, err)

	_, open := <-snaps
	assert.False(t, open)

	// a second cancel is harmless
	cancel()
}

func TestWatchStopsSilentlyWhenContextEnds(t *testing.T) {
	h := setup(t)
	id := h.open(t, "alice", "bob")
	ctx, end := context.WithCancel(context.Background())

	snaps, cancel, err := h.gateway.Watch(ctx, id, "alice")
	require.NoError(t, err)
	defer cancel()
	receive(t, snaps)

	end()
	select {
	case snap, open := <-snaps:
		assert.False(t, open, "unexpected snapshot %+v", snap)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after context end")
	}
}

func TestWatchRejectsOutsider(t *testing.T) {
	h := setup(t)
	id := h.open(t, "alice", "bob")

	_, _, err := h.gateway.Watch(context.Background(), id, "carol")
	assert.ErrorIs(t, err, svcErr.ErrNotParticipant)

	_, _, err = h.gateway.Watch(context.Background(), "nobody_here", "carol")
	assert.ErrorIs(t, err, svcErr.ErrConversationNotFound)
}
