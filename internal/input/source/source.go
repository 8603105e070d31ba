package source

import (
	"errors"
	"strings"
	"sync/atomic"

	hook "github.com/robotn/gohook"

	"github.com/dshills/combonavi/internal/input/key"
)

// Handler consumes press and release edges from a Source.
type Handler interface {
	OnPress(k key.Key)
	OnRelease(k key.Key)
}

// ErrAlreadyStarted is returned when Start is called twice.
var ErrAlreadyStarted = errors.New("source: already started")

// leftButton is the primary mouse button in hook events.
const leftButton = 1

// Source taps the OS-global input stream and forwards edges to a
// Handler. Key auto-repeat arrives as repeated press edges; the
// handler is expected to tolerate duplicates.
type Source struct {
	handler Handler
	running atomic.Bool
	done    chan struct{}
}

// New creates a Source delivering edges to h.
func New(h Handler) *Source {
	return &Source{handler: h}
}

// Start begins tapping the global event stream. Edges are dispatched
// from a dedicated goroutine until Stop is called.
func (s *Source) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	s.done = make(chan struct{})

	events := hook.Start()
	go func() {
		defer close(s.done)
		for ev := range events {
			s.dispatch(ev)
		}
	}()
	return nil
}

// Stop detaches the global hook and waits for the dispatch goroutine.
func (s *Source) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	hook.End()
	<-s.done
}

func (s *Source) dispatch(ev hook.Event) {
	switch ev.Kind {
	case hook.KeyDown, hook.KeyHold:
		if k := translate(ev); k != key.KeyNone {
			s.handler.OnPress(k)
		}
	case hook.KeyUp:
		if k := translate(ev); k != key.KeyNone {
			s.handler.OnRelease(k)
		}
	case hook.MouseDown:
		if ev.Button == leftButton {
			s.handler.OnPress(key.KeyMouseLeft)
		}
	case hook.MouseUp:
		if ev.Button == leftButton {
			s.handler.OnRelease(key.KeyMouseLeft)
		}
	}
}

// translate maps a hook key event onto the key space. The rawcode
// name is preferred because it is layout-stable; the decoded
// character is the fallback for layouts the hook does not name.
func translate(ev hook.Event) key.Key {
	if name := hook.RawcodetoKeychar(ev.Rawcode); name != "" {
		if k := key.FromName(normalizeName(name)); k != key.KeyNone {
			return k
		}
	}
	if ev.Keychar != 0 && ev.Keychar != hook.CharUndefined {
		return key.FromName(string(rune(ev.Keychar)))
	}
	return key.KeyNone
}

// normalizeName folds hook key names onto the names FromName accepts.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "left alt", "right alt", "lalt", "ralt":
		return "alt"
	case "left shift", "right shift", "lshift", "rshift":
		return "shift"
	case "left ctrl", "right ctrl", "lctrl", "rctrl", "control":
		return "ctrl"
	case "page up":
		return "pageup"
	case "page down":
		return "pagedown"
	case "up arrow":
		return "up"
	case "down arrow":
		return "down"
	case "left arrow":
		return "left"
	case "right arrow":
		return "right"
	}
	return name
}
