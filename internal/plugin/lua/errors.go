package lua

import (
	"errors"
	"fmt"
)

// ErrNoSteps indicates a script ran to completion without declaring
// any command steps.
var ErrNoSteps = errors.New("lua: script declared no steps")

// ScriptError wraps an error raised while executing a combo script.
type ScriptError struct {
	Path string
	Err  error
}

func (e *ScriptError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("lua script: %v", e.Err)
	}
	return fmt.Sprintf("lua script %s: %v", e.Path, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }
