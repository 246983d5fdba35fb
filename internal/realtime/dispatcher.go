// Package realtime fans change events out to in-process subscribers.
package realtime

import (
	"context"
	"sync"
	"time"
)

const (
	EventMessageAppended    = "message-appended"
	EventConversationClosed = "conversation-closed"
	EventConversationOpened = "conversation-opened"

	defaultBufferSize = 16
)

// Event announces that something under Topic changed. Subscribers re-read
// state instead of relying on the event payload.
type Event struct {
	Topic     string
	Kind      string
	MessageID string
	Timestamp time.Time
}

// Dispatcher delivers events to subscribers by topic. Publish never blocks:
// a subscriber whose buffer is full misses the event, which is harmless
// because a pending event already triggers a re-read.
type Dispatcher struct {
	mu          sync.RWMutex
	subscribers map[string]map[int64]*subscriber
	nextID      int64
	bufferSize  int
}

type subscriber struct {
	id     int64
	stream chan Event
}

func NewDispatcher(bufferSize int) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Dispatcher{
		subscribers: make(map[string]map[int64]*subscriber),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers for topic until ctx ends or the returned cleanup runs.
// The stream is never closed; callers select on their own context.
func (d *Dispatcher) Subscribe(ctx context.Context, topic string) (<-chan Event, func()) {
	if topic == "" {
		ch := make(chan Event)
		close(ch)
		return ch, func() {}
	}
	sub := &subscriber{
		id:     d.nextSequence(),
		stream: make(chan Event, d.bufferSize),
	}
	d.register(topic, sub)

	var once sync.Once
	cleanup := func() {
		once.Do(func() { d.unregister(topic, sub.id) })
	}
	go func() {
		<-ctx.Done()
		cleanup()
	}()
	return sub.stream, cleanup
}

func (d *Dispatcher) Publish(ev Event) {
	if ev.Topic == "" || ev.Kind == "" {
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	d.mu.RLock()
	subs := d.subscribers[ev.Topic]
	if len(subs) == 0 {
		d.mu.RUnlock()
		return
	}
	copies := make([]*subscriber, 0, len(subs))
	for _, s := range subs {
		copies = append(copies, s)
	}
	d.mu.RUnlock()

	for _, s := range copies {
		select {
		case s.stream <- ev:
		default:
		}
	}
}

// Subscribers reports how many subscriptions topic has.
func (d *Dispatcher) Subscribers(topic string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.subscribers[topic])
}

func (d *Dispatcher) nextSequence() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	return d.nextID
}

func (d *Dispatcher) register(topic string, s *subscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.subscribers[topic]; !ok {
		d.subscribers[topic] = make(map[int64]*subscriber)
	}
	d.subscribers[topic][s.id] = s
}

func (d *Dispatcher) unregister(topic string, id int64) {
	d.mu.Lock()
	subs := d.subscribers[topic]
	if subs != nil {
		delete(subs, id)
		if len(subs) == 0 {
			delete(d.subscribers, topic)
		}
	}
	d.mu.Unlock()
}
