package lua

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/combonavi/internal/combo"
	"github.com/dshills/combonavi/internal/input/key"
)

// DefaultTimeout bounds the execution of a single combo script.
const DefaultTimeout = 5 * time.Second

// Loader executes combo scripts. Each Load call runs in a fresh
// sandboxed interpreter, so scripts cannot observe one another.
type Loader struct {
	timeout      time.Duration
	holdDuration time.Duration
}

// Option configures a Loader.
type Option func(*Loader)

// WithTimeout sets the per-script execution deadline.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) { l.timeout = d }
}

// WithHoldDuration sets the hold duration applied to combo.hold steps
// that do not specify their own.
func WithHoldDuration(d time.Duration) Option {
	return func(l *Loader) { l.holdDuration = d }
}

// NewLoader creates a Loader with default limits.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		timeout:      DefaultTimeout,
		holdDuration: combo.DefaultHoldDuration,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile reads and executes the script at path.
func (l *Loader) LoadFile(path string) (*combo.File, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	f, err := l.Load(string(code))
	if err != nil {
		var serr *ScriptError
		if errors.As(err, &serr) {
			serr.Path = path
			return nil, serr
		}
		return nil, err
	}
	return f, nil
}

// Load executes code and returns the combo file it declares.
func (l *Loader) Load(code string) (*combo.File, error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	L := newSandboxedState()
	defer L.Close()
	L.SetContext(ctx)

	b := &builder{holdDuration: l.holdDuration}
	b.register(L)

	if err := doStringRecovered(L, code); err != nil {
		return nil, &ScriptError{Err: err}
	}
	return b.file()
}

// newSandboxedState builds an interpreter with only the safe standard
// libraries and no script loading primitives.
func newSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

// doStringRecovered executes code, converting interpreter panics into
// errors.
func doStringRecovered(L *lua.LState, code string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return L.DoString(code)
}

// builder accumulates steps as the script calls into the combo module.
type builder struct {
	holdDuration time.Duration
	steps        []combo.Step
}

// register exposes the combo module to the interpreter.
func (b *builder) register(L *lua.LState) {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"title": b.luaTitle,
		"tap":   b.luaTap,
		"hold":  b.luaHold,
	})
	L.SetGlobal("combo", mod)
}

// luaTitle implements combo.title(text).
func (b *builder) luaTitle(L *lua.LState) int {
	text := L.CheckString(1)
	b.steps = append(b.steps, combo.Step{Title: true, Character: text})
	return 0
}

// luaTap implements combo.tap(action, character, skill, memo).
func (b *builder) luaTap(L *lua.LState) int {
	step, err := b.commandStep(L)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	b.steps = append(b.steps, step)
	return 0
}

// luaHold implements combo.hold(action, character, skill, memo [, ms]).
func (b *builder) luaHold(L *lua.LState) int {
	step, err := b.commandStep(L)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	step.Hold = true
	step.HoldDuration = b.holdDuration
	if ms := L.OptInt(5, 0); ms > 0 {
		step.HoldDuration = time.Duration(ms) * time.Millisecond
	}
	b.steps = append(b.steps, step)
	return 0
}

func (b *builder) commandStep(L *lua.LState) (combo.Step, error) {
	token := L.CheckString(1)
	action, ok := key.ParseAction(token)
	if !ok {
		return combo.Step{}, fmt.Errorf("unknown action %q", token)
	}
	return combo.Step{
		Action:    action,
		Character: L.OptString(2, ""),
		SkillType: L.OptString(3, ""),
		Memo:      L.OptString(4, ""),
	}, nil
}

// file finalizes the accumulated steps into a combo.File.
func (b *builder) file() (*combo.File, error) {
	f := &combo.File{Title: "Untitled", Steps: b.steps}
	titled := false
	hasCommand := false
	for _, s := range b.steps {
		if s.Title {
			if !titled {
				f.Title = s.Character
				titled = true
			}
			continue
		}
		hasCommand = true
	}
	if !hasCommand {
		return nil, ErrNoSteps
	}
	return f, nil
}
