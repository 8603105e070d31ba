package source

import (
	"time"

	"github.com/dshills/combonavi/internal/input/key"
)

// EdgeKind distinguishes scripted press and release edges.
type EdgeKind uint8

const (
	// Press is a key-down edge.
	Press EdgeKind = iota
	// Release is a key-up edge.
	Release
)

// Edge is one scripted input transition.
type Edge struct {
	Kind  EdgeKind
	Key   key.Key
	After time.Duration // delay before delivering this edge
}

// Scripted replays a fixed edge sequence to a Handler. It is used in
// tests and demo mode where no OS hook is available.
type Scripted struct {
	handler Handler
	edges   []Edge
	sleep   func(time.Duration)
}

// NewScripted creates a Scripted source. The sleep function may be
// overridden to make replay instantaneous in tests.
func NewScripted(h Handler, edges []Edge) *Scripted {
	return &Scripted{handler: h, edges: edges, sleep: time.Sleep}
}

// SetSleep replaces the delay function used between edges.
func (s *Scripted) SetSleep(fn func(time.Duration)) {
	s.sleep = fn
}

// Run delivers every edge in order, honoring each edge's delay.
func (s *Scripted) Run() {
	for _, e := range s.edges {
		if e.After > 0 {
			s.sleep(e.After)
		}
		switch e.Kind {
		case Press:
			s.handler.OnPress(e.Key)
		case Release:
			s.handler.OnRelease(e.Key)
		}
	}
}
