// Package overlay renders the always-on-top combo guide view. The
// view shows the active combo title, the current step with its key
// and memo, hold progress while a long press is underway, and the
// game process status. Rendering targets a tcell screen so tests can
// drive it against a simulation screen.
package overlay
