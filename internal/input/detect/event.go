package detect

import (
	"fmt"
	"time"

	"github.com/dshills/combonavi/internal/input/key"
)

// Kind classifies a discrimination event.
type Kind int

const (
	// KindKeyDown is emitted for a press that did not resolve a step.
	KindKeyDown Kind = iota
	// KindKeyUp is emitted for every release.
	KindKeyUp
	// KindTapComplete is emitted at press time when the pressed key
	// matches a tap expectation.
	KindTapComplete
	// KindHoldComplete is emitted exactly once per press cycle when a
	// hold expectation reaches its threshold.
	KindHoldComplete
	// KindHoldProgress reports partial progress toward a hold threshold.
	KindHoldProgress
)

// String returns a human-readable name for the event kind.
func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "KeyDown"
	case KindKeyUp:
		return "KeyUp"
	case KindTapComplete:
		return "TapComplete"
	case KindHoldComplete:
		return "HoldComplete"
	case KindHoldProgress:
		return "HoldProgress"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a single discrimination outcome.
//
// Events are observations of player input, not commands: consumers decide
// whether an event advances the combo.
type Event struct {
	// Kind classifies the event.
	Kind Kind

	// Key is the physical key the event concerns.
	Key key.Key

	// Progress is the hold completion fraction in [0, 1) for
	// KindHoldProgress events. Zero otherwise.
	Progress float64

	// Time is the clock reading when the event was produced.
	Time time.Time
}

// String returns a compact description for logging.
func (e Event) String() string {
	if e.Kind == KindHoldProgress {
		return fmt.Sprintf("%s(%s, %.2f)", e.Kind, e.Key, e.Progress)
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
}
