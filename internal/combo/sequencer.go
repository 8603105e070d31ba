package combo

import (
	"sync"

	"github.com/dshills/combonavi/internal/input/detect"
)

// ExpectedSetter receives the expected action for the current step.
// *detect.Engine satisfies it.
type ExpectedSetter interface {
	SetExpected(*detect.Expected)
}

// Sequencer owns the current position within a combo's sequencable steps.
//
// After every index change the expected action for the new current step
// is published to the setter before the mutating call returns, so no
// discrimination event is ever evaluated against a stale expectation.
// The sequencer is the only component that advances the combo; the
// discrimination engine merely reports observations.
type Sequencer struct {
	mu     sync.Mutex
	steps  []Step
	index  int
	setter ExpectedSetter
}

// NewSequencer creates a sequencer publishing into setter.
func NewSequencer(setter ExpectedSetter) *Sequencer {
	return &Sequencer{setter: setter}
}

// Load replaces the step list with the sequencable steps of f and resets
// the position to zero. A nil file clears the sequencer.
func (s *Sequencer) Load(f *File) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f == nil {
		s.steps = nil
	} else {
		s.steps = f.Commands()
	}
	s.index = 0
	s.publishLocked()
}

// Current returns the current step. ok is false when no combo is loaded.
func (s *Sequencer) Current() (Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

// Advance moves to the next step, wrapping to zero after the last.
// It is a no-op returning ok=false when no combo is loaded.
func (s *Sequencer) Advance() (Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.steps) == 0 {
		return Step{}, false
	}
	s.index = (s.index + 1) % len(s.steps)
	s.publishLocked()
	return s.currentLocked()
}

// Previous moves to the previous step, flooring at zero (no backward
// wraparound). It is a no-op returning ok=false when no combo is loaded.
func (s *Sequencer) Previous() (Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.steps) == 0 {
		return Step{}, false
	}
	if s.index > 0 {
		s.index--
		s.publishLocked()
	}
	return s.currentLocked()
}

// Seek jumps to position i, clamping into the valid range. It is a
// no-op returning ok=false when no combo is loaded.
func (s *Sequencer) Seek(i int) (Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.steps) == 0 {
		return Step{}, false
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.steps) {
		i = len(s.steps) - 1
	}
	s.index = i
	s.publishLocked()
	return s.currentLocked()
}

// Reset returns to the first step.
func (s *Sequencer) Reset() (Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index = 0
	s.publishLocked()
	return s.currentLocked()
}

// Index returns the current position.
func (s *Sequencer) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Len returns the number of sequencable steps.
func (s *Sequencer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.steps)
}

func (s *Sequencer) currentLocked() (Step, bool) {
	if len(s.steps) == 0 || s.index >= len(s.steps) {
		return Step{}, false
	}
	return s.steps[s.index], true
}

// publishLocked pushes the expected action for the current step into the
// setter. Called with the mutex held so the publication is ordered with
// the index change.
func (s *Sequencer) publishLocked() {
	if s.setter == nil {
		return
	}
	cur, ok := s.currentLocked()
	if !ok {
		s.setter.SetExpected(nil)
		return
	}
	s.setter.SetExpected(&detect.Expected{
		Action:   cur.Action,
		Hold:     cur.Hold,
		Duration: cur.HoldDuration,
	})
}
