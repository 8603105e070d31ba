package key

import (
	"fmt"
	"strings"
)

// Key represents a physical keyboard key or mouse button.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Number row
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	// Keypad digits
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifiers
	KeyAlt
	KeyAltGr
	KeyShift
	KeyCtrl

	// KeyMouseLeft is the synthetic key for the primary mouse button.
	// Button edges from the key source are folded into the key space so
	// the discrimination engine can treat them like any other key.
	KeyMouseLeft
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch {
	case k >= KeyNum0 && k <= KeyNum9:
		return string(rune('0' + k - KeyNum0))
	case k >= KeyKP0 && k <= KeyKP9:
		return fmt.Sprintf("KP%d", k-KeyKP0)
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}

	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeySpace:
		return "Space"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyAlt:
		return "Alt"
	case KeyAltGr:
		return "AltGr"
	case KeyShift:
		return "Shift"
	case KeyCtrl:
		return "Ctrl"
	case KeyMouseLeft:
		return "MouseLeft"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsDigit returns true if this is a number-row digit key.
func (k Key) IsDigit() bool {
	return k >= KeyNum0 && k <= KeyNum9
}

// IsKeypadDigit returns true if this is a keypad digit key.
func (k Key) IsKeypadDigit() bool {
	return k >= KeyKP0 && k <= KeyKP9
}

// IsLetter returns true if this is a letter key.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsModifier returns true if this is a modifier key.
func (k Key) IsModifier() bool {
	return k == KeyAlt || k == KeyAltGr || k == KeyShift || k == KeyCtrl
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"none":      KeyNone,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"space":     KeySpace,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"alt":       KeyAlt,
	"altgr":     KeyAltGr,
	"shift":     KeyShift,
	"ctrl":      KeyCtrl,
	"mouseleft": KeyMouseLeft,
}

// FromName returns the Key for a given name (case-insensitive).
// Single characters map to digit and letter keys ("2" -> KeyNum2,
// "e" -> KeyE). Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}

	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= '0' && c <= '9':
			return KeyNum0 + Key(c-'0')
		case c >= 'a' && c <= 'z':
			return KeyA + Key(c-'a')
		}
	}

	// Function keys: "f1" .. "f12"
	if len(name) >= 2 && name[0] == 'f' {
		var n int
		if _, err := fmt.Sscanf(name[1:], "%d", &n); err == nil && n >= 1 && n <= 12 {
			return KeyF1 + Key(n-1)
		}
	}

	return KeyNone
}
