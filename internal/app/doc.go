// Package app wires the application together and owns its lifecycle.
// It loads configuration and session state, builds the discrimination
// engine and sequencer, starts the process watcher and input source,
// and runs the event loop that turns discrimination events into combo
// advancement and bus notifications.
package app
