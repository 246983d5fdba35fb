package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToTopic(t *testing.T) {
	d := NewDispatcher(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, cleanup := d.Subscribe(ctx, "alice_bob")
	defer cleanup()

	d.Publish(Event{Topic: "alice_bob", Kind: EventMessageAppended, MessageID: "m1"})

	select {
	case ev := <-stream:
		assert.Equal(t, EventMessageAppended, ev.Kind)
		assert.Equal(t, "m1", ev.MessageID)
		assert.False(t, ev.Timestamp.IsZero())
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected event within deadline")
	}
}

func TestDispatcherIsolatesTopics(t *testing.T) {
	d := NewDispatcher(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, cleanup := d.Subscribe(ctx, "alice_bob")
	defer cleanup()

	d.Publish(Event{Topic: "alice_carol", Kind: EventMessageAppended})

	select {
	case <-stream:
		t.Fatal("did not expect an event for another topic")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDispatcherDropsWhenBufferFull(t *testing.T) {
	d := NewDispatcher(1)
	stream, cleanup := d.Subscribe(context.Background(), "t")
	defer cleanup()

	d.Publish(Event{Topic: "t", Kind: EventMessageAppended, MessageID: "first"})
	d.Publish(Event{Topic: "t", Kind: EventMessageAppended, MessageID: "second"})

	ev := <-stream
	assert.Equal(t, "first", ev.MessageID)
	select {
	case <-stream:
		t.Fatal("second event should have been dropped")
	default:
	}
}

func TestDispatcherUnsubscribesOnContextEnd(t *testing.T) {
	d := NewDispatcher(0)
	ctx, cancel := context.WithCancel(context.Background())

	_, cleanup := d.Subscribe(ctx, "t")
	require.Equal(t, 1, d.Subscribers("t"))

	cancel()
	assert.Eventually(t, func() bool { return d.Subscribers("t") == 0 }, time.Second, 10*time.Millisecond)

	// cleanup after the context already removed the subscription is a no-op
	cleanup()
	assert.Zero(t, d.Subscribers("t"))
}

func TestSubscribeWithoutTopicIsClosed(t *testing.T) {
	stream, cleanup := NewDispatcher(0).Subscribe(context.Background(), "")
	defer cleanup()

	_, open := <-stream
	assert.False(t, open)
}
