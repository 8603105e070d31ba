package key

import "fmt"

// Action identifies the abstract combat input a combo step asks for.
type Action uint8

const (
	// ActionNone represents no action.
	ActionNone Action = iota

	// ActionSkill1 through ActionSkill9 are the numbered operator skill
	// slots. They are contiguous so Skill(n) can compute the value.
	ActionSkill1
	ActionSkill2
	ActionSkill3
	ActionSkill4
	ActionSkill5
	ActionSkill6
	ActionSkill7
	ActionSkill8
	ActionSkill9

	// ActionChain is the chain/link attack.
	ActionChain

	// ActionHeavy is the heavy attack (primary mouse button).
	ActionHeavy
)

// Skill returns the action for the numbered skill slot n (1-9).
// Returns ActionNone for out-of-range slots.
func Skill(n int) Action {
	if n < 1 || n > 9 {
		return ActionNone
	}
	return ActionSkill1 + Action(n-1)
}

// SkillNumber returns the slot number for a numbered skill action.
// Returns 0, false for non-skill actions.
func (a Action) SkillNumber() (int, bool) {
	if a >= ActionSkill1 && a <= ActionSkill9 {
		return int(a-ActionSkill1) + 1, true
	}
	return 0, false
}

// String returns the combo-script token for the action.
func (a Action) String() string {
	if n, ok := a.SkillNumber(); ok {
		return fmt.Sprintf("%d", n)
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionChain:
		return "E"
	case ActionHeavy:
		return "L"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// ParseAction parses a combo-script key token into an Action.
// Tokens are "1".."9" for skill slots, "E" for the chain attack and "L"
// for the heavy attack (case-insensitive). Returns ActionNone, false for
// anything else.
func ParseAction(s string) (Action, bool) {
	if len(s) != 1 {
		return ActionNone, false
	}
	switch c := s[0]; {
	case c >= '1' && c <= '9':
		return Skill(int(c - '0')), true
	case c == 'E' || c == 'e':
		return ActionChain, true
	case c == 'L' || c == 'l':
		return ActionHeavy, true
	}
	return ActionNone, false
}

// ActionFor maps a physical key to its abstract action.
// Number-row and keypad digits 1-9 map to the matching skill slot, E maps
// to the chain attack, and the synthetic mouse-left key maps to the heavy
// attack. All other keys have no action and return ActionNone, false.
func ActionFor(k Key) (Action, bool) {
	switch {
	case k >= KeyNum1 && k <= KeyNum9:
		return Skill(int(k-KeyNum1) + 1), true
	case k >= KeyKP1 && k <= KeyKP9:
		return Skill(int(k-KeyKP1) + 1), true
	case k == KeyE:
		return ActionChain, true
	case k == KeyMouseLeft:
		return ActionHeavy, true
	}
	return ActionNone, false
}
