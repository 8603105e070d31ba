package event

import (
	"context"
	"sync"
	"sync/atomic"
)

// Topic names a notification channel on the bus.
type Topic string

// Handler processes a published payload.
type Handler func(ctx context.Context, payload any)

// PanicHandler is called when a handler panics during delivery.
type PanicHandler func(topic Topic, recovered any)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	topic Topic
	id    uint64
}

// Topic returns the topic the subscription is attached to.
func (s Subscription) Topic() Topic {
	return s.topic
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous topic-based notification bus.
// It is safe for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic][]subscriber

	nextID       atomic.Uint64
	panicHandler PanicHandler

	published atomic.Uint64
	delivered atomic.Uint64
	panics    atomic.Uint64
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithPanicHandler sets the handler invoked when a subscriber panics.
func WithPanicHandler(h PanicHandler) BusOption {
	return func(b *Bus) {
		b.panicHandler = h
	}
}

// NewBus creates an empty bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{subs: make(map[Topic][]subscriber)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, h Handler) Subscription {
	id := b.nextID.Add(1)

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], subscriber{id: id, handler: h})
	b.mu.Unlock()

	return Subscription{topic: topic, id: id}
}

// Unsubscribe removes a previously registered handler. Unknown
// subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[sub.topic]
	for i, s := range list {
		if s.id == sub.id {
			b.subs[sub.topic] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Publish delivers a payload to every subscriber of the topic, in
// subscription order, on the calling goroutine. A panicking handler is
// recovered and reported to the panic handler; remaining handlers still
// run.
func (b *Bus) Publish(ctx context.Context, topic Topic, payload any) {
	b.published.Add(1)

	b.mu.RLock()
	list := make([]subscriber, len(b.subs[topic]))
	copy(list, b.subs[topic])
	b.mu.RUnlock()

	for _, s := range list {
		b.deliver(ctx, topic, payload, s)
	}
}

func (b *Bus) deliver(ctx context.Context, topic Topic, payload any, s subscriber) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
			if b.panicHandler != nil {
				b.panicHandler(topic, r)
			}
		}
	}()
	s.handler(ctx, payload)
	b.delivered.Add(1)
}

// Stats reports bus counters.
type Stats struct {
	Published uint64
	Delivered uint64
	Panics    uint64
}

// Stats returns a snapshot of the bus counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Delivered: b.delivered.Load(),
		Panics:    b.panics.Load(),
	}
}
