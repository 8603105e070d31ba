package detect

import (
	"sync"
	"sync/atomic"
)

// eventQueue is an unbounded multi-producer/single-consumer pipe for
// discrimination events.
//
// Producers (the key source context and the hold monitor) must never
// block, so events land in a mutex-guarded slice and a pump goroutine
// feeds them to the output channel in FIFO order. Close stops accepting
// new events; pending events are still delivered to a consumer that
// keeps draining, after which the output channel is closed. Delivery is
// best effort against a live consumer: a consumer that stops reading
// before the queue empties strands the remainder.
type eventQueue struct {
	mu     sync.Mutex
	items  []Event
	closed bool

	notify chan struct{}
	done   chan struct{}
	out    chan Event

	closeOnce sync.Once

	sent    atomic.Uint64
	dropped atomic.Uint64
}

func newEventQueue() *eventQueue {
	q := &eventQueue{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
		out:    make(chan Event),
	}
	go q.pump()
	return q
}

// Send enqueues an event. It never blocks; events sent after Close are
// dropped.
func (q *eventQueue) Send(e Event) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.dropped.Add(1)
		return
	}
	q.items = append(q.items, e)
	q.mu.Unlock()

	q.sent.Add(1)
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Out returns the consumer side of the queue. The channel is closed once
// the queue is closed and fully drained.
func (q *eventQueue) Out() <-chan Event {
	return q.out
}

// Close stops the queue from accepting new events. It returns without
// waiting for the drain to finish.
func (q *eventQueue) Close() {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()
		close(q.done)
	})
}

// Sent returns the number of events accepted by the queue.
func (q *eventQueue) Sent() uint64 {
	return q.sent.Load()
}

// Dropped returns the number of events discarded after Close.
func (q *eventQueue) Dropped() uint64 {
	return q.dropped.Load()
}

// pump moves events from the pending slice to the output channel,
// preserving FIFO order.
func (q *eventQueue) pump() {
	for {
		q.mu.Lock()
		for len(q.items) == 0 {
			closed := q.closed
			q.mu.Unlock()
			if closed {
				close(q.out)
				return
			}
			select {
			case <-q.notify:
			case <-q.done:
			}
			q.mu.Lock()
		}
		e := q.items[0]
		q.items = q.items[1:]
		q.mu.Unlock()

		q.out <- e
	}
}
