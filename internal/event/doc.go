// Package event provides the topic-based notification bus connecting the
// application core to presentation.
//
// The input pipeline and the sequencer publish observations (step
// changes, hold progress, game status, overlay visibility) and the
// overlay view subscribes to the topics it renders. Delivery is
// synchronous and best effort: handlers run in the publisher's
// goroutine, a panicking handler never takes the publisher down, and a
// topic with no subscribers is a no-op.
package event
