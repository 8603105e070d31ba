// Package source delivers raw key and mouse button edges to a press
// handler. The hook-backed Source taps the OS-global event stream so
// edges arrive even while another window has focus; the Scripted
// source replays a fixed edge sequence for tests and demos.
package source
