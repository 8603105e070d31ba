// Package detect implements the input discrimination engine.
//
// The engine decides, in real time, whether a key press resolves as a tap
// or a hold against the single action the combo sequencer is currently
// waiting for. Three execution contexts touch the engine concurrently:
//
//   - the key source delivers raw press/release edges via OnPress/OnRelease
//   - the hold monitor scans pressed keys on a fixed cadence to detect a
//     hold that completes while the key is still down
//   - the consumer drains the event queue and updates the expected action
//
// Per-key bookkeeping lives in a lock-guarded table of press records. Two
// independent paths can observe a hold crossing its threshold (the release
// handler and the monitor); the consumed and holdTriggered flags make
// completion signaling idempotent, so exactly one TapComplete or
// HoldComplete is emitted per press cycle regardless of interleaving.
//
// Events are observations, never commands: the engine does not advance the
// combo itself. Delivery is best effort through an unbounded queue; sends
// never block a producer and are discarded once the queue is closed.
package detect
