// Package eventbus is a small synchronous in-process pub/sub used to
// decouple the stores from whoever reacts to their changes. Handlers
// run inline on the publishing goroutine, so store operations still run
// to completion before control returns to the caller.
package eventbus

import (
	"context"
	"sync"

	"ebaylistingapp/internal/model"
	"ebaylistingapp/pkg/log"
)

// Event is a single notification published on the bus.
type Event struct {
	Topic   model.EventTopic
	Payload any
}

// Handler reacts to a published event.
type Handler func(ctx context.Context, e Event)

// Bus dispatches events to subscribers by topic.
type Bus struct {
	mu       sync.RWMutex
	handlers map[model.EventTopic][]Handler
	l        log.Logger
}

// New creates an empty Bus.
func New(l log.Logger) *Bus {
	return &Bus{
		handlers: make(map[model.EventTopic][]Handler),
		l:        l,
	}
}

// Subscribe registers a handler for a topic. Subscription order is
// dispatch order.
func (b *Bus) Subscribe(topic model.EventTopic, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish dispatches the event synchronously to every subscriber of its
// topic. A panicking handler is recovered and logged so one bad
// subscriber cannot take down a store operation.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	subs := make([]Handler, len(b.handlers[e.Topic]))
	copy(subs, b.handlers[e.Topic])
	b.mu.RUnlock()

	for _, h := range subs {
		b.dispatch(ctx, e, h)
	}
}

func (b *Bus) dispatch(ctx context.Context, e Event, h Handler) {
	defer func() {
		if r := recover(); r != nil && b.l != nil {
			b.l.Errorf(ctx, "eventbus: handler for %s panicked: %v", e.Topic, r)
		}
	}()
	h(ctx, e)
}
