package detect

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/combonavi/internal/input/key"
)

// Default timing configuration. Both values are fixed at engine
// construction; changing them mid-flight is not supported.
const (
	// DefaultHoldThreshold is the minimum held duration for a hold to
	// complete when the expected step does not carry its own duration.
	DefaultHoldThreshold = 300 * time.Millisecond

	// DefaultTickInterval is the hold monitor cadence. It bounds the
	// detection latency for a hold that completes while the key is
	// still down.
	DefaultTickInterval = 50 * time.Millisecond
)

// ErrAlreadyStarted is returned by Start if the engine is running.
var ErrAlreadyStarted = errors.New("detect: engine already started")

// Expected describes the action the engine is currently evaluating
// incoming presses against. A nil Expected means nothing is expected and
// every press degrades to a plain KeyDown/KeyUp pair.
type Expected struct {
	// Action is the abstract input the current combo step asks for.
	Action key.Action

	// Hold is true when the step requires holding the key.
	Hold bool

	// Duration overrides the engine hold threshold for this step when
	// positive.
	Duration time.Duration
}

// pressRecord tracks one currently-pressed key. At most one record exists
// per key; it is created on the first press edge and removed on release.
type pressRecord struct {
	pressTime time.Time

	// holdTriggered is set when hold completion has been signaled for
	// this press, so the release path does not signal it again.
	holdTriggered bool

	// consumed is set when the press was resolved as a tap; the matching
	// release then carries no discrimination weight.
	consumed bool
}

// Engine is the input discrimination facade. It owns the per-key press
// table, applies the tap/hold decision on press and release edges, and
// emits discrimination events to an unbounded queue.
//
// All methods are safe for concurrent use.
type Engine struct {
	clock         Clock
	holdThreshold time.Duration
	tickInterval  time.Duration

	// mu guards states. Critical sections are short and never span a
	// blocking operation.
	mu     sync.Mutex
	states map[key.Key]*pressRecord

	// expectedMu guards the expected-action snapshot separately from the
	// press table so the sequencer never contends with edge delivery.
	expectedMu sync.RWMutex
	expected   *Expected

	queue *eventQueue

	running atomic.Bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source. Tests inject a MockClock.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithHoldThreshold sets the default hold threshold.
func WithHoldThreshold(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.holdThreshold = d
		}
	}
}

// WithTickInterval sets the hold monitor cadence.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.tickInterval = d
		}
	}
}

// NewEngine creates a discrimination engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:         SystemClock{},
		holdThreshold: DefaultHoldThreshold,
		tickInterval:  DefaultTickInterval,
		states:        make(map[key.Key]*pressRecord),
		queue:         newEventQueue(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Events returns the consumer side of the discrimination event stream.
// Delivery is best effort: no redelivery, no persistence, and producers
// never block on a slow or absent consumer.
func (e *Engine) Events() <-chan Event {
	return e.queue.Out()
}

// HoldThreshold returns the default hold threshold.
func (e *Engine) HoldThreshold() time.Duration {
	return e.holdThreshold
}

// SetExpected replaces the expected-action snapshot. A nil value means
// nothing is expected. Readers observe either the previous or the new
// snapshot, never a torn value.
func (e *Engine) SetExpected(exp *Expected) {
	var cp *Expected
	if exp != nil {
		v := *exp
		cp = &v
	}
	e.expectedMu.Lock()
	e.expected = cp
	e.expectedMu.Unlock()
}

// Expected returns a copy of the current expected-action snapshot, or nil
// if nothing is expected.
func (e *Engine) Expected() *Expected {
	e.expectedMu.RLock()
	defer e.expectedMu.RUnlock()
	if e.expected == nil {
		return nil
	}
	v := *e.expected
	return &v
}

// snapshot returns the shared expected-action value for internal readers.
func (e *Engine) snapshot() *Expected {
	e.expectedMu.RLock()
	defer e.expectedMu.RUnlock()
	return e.expected
}

// matches reports whether the pressed key maps to the expected action.
func matches(exp *Expected, k key.Key) bool {
	if exp == nil {
		return false
	}
	action, ok := key.ActionFor(k)
	return ok && action == exp.Action
}

// threshold returns the effective hold threshold for an expectation.
func (e *Engine) threshold(exp *Expected) time.Duration {
	if exp != nil && exp.Duration > 0 {
		return exp.Duration
	}
	return e.holdThreshold
}

// OnPress handles a raw press edge from the key source.
//
// A repeated press edge for an already-pressed key is ignored: key-repeat
// must not create a new record, overwrite the press time, or emit an
// event. A press matching a tap expectation resolves immediately with
// TapComplete and marks the record consumed; any other press emits
// KeyDown.
func (e *Engine) OnPress(k key.Key) {
	now := e.clock.Now()

	e.mu.Lock()
	if _, exists := e.states[k]; exists {
		e.mu.Unlock()
		return
	}
	rec := &pressRecord{pressTime: now}
	e.states[k] = rec

	exp := e.snapshot()
	if exp != nil && !exp.Hold && matches(exp, k) {
		rec.consumed = true
		e.mu.Unlock()
		e.queue.Send(Event{Kind: KindTapComplete, Key: k, Time: now})
		return
	}
	e.mu.Unlock()

	e.queue.Send(Event{Kind: KindKeyDown, Key: k, Time: now})
}

// OnRelease handles a raw release edge from the key source.
//
// The press record, if any, is removed. A release with no matching press
// is tolerated and emits only KeyUp. A consumed record (tap already
// resolved) and a hold-triggered record (completion already signaled by
// the monitor) also emit only KeyUp. Otherwise, a key matching a hold
// expectation that was held past the threshold completes here; a hold
// released early silently fails the step and emits only KeyUp.
func (e *Engine) OnRelease(k key.Key) {
	now := e.clock.Now()

	e.mu.Lock()
	rec, exists := e.states[k]
	if exists {
		delete(e.states, k)
	}
	if !exists || rec.consumed || rec.holdTriggered {
		e.mu.Unlock()
		e.queue.Send(Event{Kind: KindKeyUp, Key: k, Time: now})
		return
	}

	exp := e.snapshot()
	if exp != nil && exp.Hold && matches(exp, k) && now.Sub(rec.pressTime) >= e.threshold(exp) {
		e.mu.Unlock()
		e.queue.Send(Event{Kind: KindHoldComplete, Key: k, Time: now})
		return
	}
	e.mu.Unlock()

	e.queue.Send(Event{Kind: KindKeyUp, Key: k, Time: now})
}

// Start launches the hold monitor. The monitor runs until the context is
// cancelled or Stop is called.
func (e *Engine) Start(ctx context.Context) error {
	if e.running.Swap(true) {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	e.wg.Add(1)
	go e.runMonitor(ctx)
	return nil
}

// Stop halts the monitor and closes the event queue. The queue is closed
// even when the monitor was never started, so a consumer ranging over
// Events always terminates. Further edge deliveries are tolerated; their
// events are discarded. Stop is idempotent.
func (e *Engine) Stop() {
	if e.running.Swap(false) {
		e.cancel()
		e.wg.Wait()
	}
	e.queue.Close()
}

// PressedCount returns the number of keys currently tracked as pressed.
func (e *Engine) PressedCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.states)
}
