package combo

import (
	"errors"
	"fmt"
)

// ErrEmptyFile is returned when a combo script contains no steps.
var ErrEmptyFile = errors.New("combo: file contains no steps")

// ParseError describes an invalid combo script line.
type ParseError struct {
	// Line is the 1-based line number.
	Line int

	// Content is the offending line content.
	Content string

	// Reason describes what was wrong.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("combo: line %d: %s: %q", e.Line, e.Reason, e.Content)
}
