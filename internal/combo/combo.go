package combo

import (
	"fmt"
	"time"

	"github.com/dshills/combonavi/internal/input/key"
)

// DefaultHoldDuration is the hold duration for U-prefixed steps that do
// not specify their own.
const DefaultHoldDuration = 300 * time.Millisecond

// Step is a single authored combo input.
type Step struct {
	// Action is the abstract input the step asks for.
	Action key.Action

	// Hold is true when the step requires holding the key.
	Hold bool

	// HoldDuration is the required held duration for hold steps.
	// Zero means the engine default.
	HoldDuration time.Duration

	// Character is the operator name for display.
	Character string

	// SkillType is the skill category for display.
	SkillType string

	// Memo is an optional authored note.
	Memo string

	// Title marks a header line. Title steps are displayed but never
	// sequenced.
	Title bool
}

// KeyDisplay returns the overlay text for the step's key.
// Numbered holds render as "Hold n", matching the authored convention.
func (s Step) KeyDisplay() string {
	if n, ok := s.Action.SkillNumber(); ok {
		if s.Hold {
			return fmt.Sprintf("Hold %d", n)
		}
		return fmt.Sprintf("%d", n)
	}
	return s.Action.String()
}

// File is a parsed combo script.
type File struct {
	// Title is the preset name, taken from the first title line.
	Title string

	// Steps holds every parsed line, title lines included.
	Steps []Step
}

// Commands returns the sequencable steps (title lines excluded).
func (f *File) Commands() []Step {
	out := make([]Step, 0, len(f.Steps))
	for _, s := range f.Steps {
		if !s.Title {
			out = append(out, s)
		}
	}
	return out
}
