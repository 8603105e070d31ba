package detect

import (
	"context"
	"time"
)

// runMonitor is the hold monitor loop. It scans the press table on a
// fixed cadence for the lifetime of the engine; the cadence bounds the
// detection latency for a hold that completes while the key is down.
func (e *Engine) runMonitor(ctx context.Context) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.pollHolds()
		}
	}
}

// pollHolds performs one monitor tick.
//
// For every pressed key that matches a hold expectation and has not been
// consumed or hold-triggered, it computes the completion fraction. A
// fraction at or past 1.0 sets holdTriggered under the table lock and
// emits exactly one HoldComplete; this is the only path that can signal
// completion while the key is still held down. A fraction below 1.0
// emits HoldProgress, which consumers may ignore. The monitor never
// removes records.
func (e *Engine) pollHolds() {
	exp := e.snapshot()
	if exp == nil || !exp.Hold {
		return
	}
	threshold := e.threshold(exp)
	now := e.clock.Now()

	var events []Event
	e.mu.Lock()
	for k, rec := range e.states {
		if rec.consumed || rec.holdTriggered {
			continue
		}
		if !matches(exp, k) {
			continue
		}
		fraction := float64(now.Sub(rec.pressTime)) / float64(threshold)
		if fraction >= 1.0 {
			rec.holdTriggered = true
			events = append(events, Event{Kind: KindHoldComplete, Key: k, Time: now})
			continue
		}
		if fraction < 0 {
			fraction = 0
		}
		events = append(events, Event{Kind: KindHoldProgress, Key: k, Progress: fraction, Time: now})
	}
	e.mu.Unlock()

	for _, ev := range events {
		e.queue.Send(ev)
	}
}
