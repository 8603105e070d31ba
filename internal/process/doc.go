// Package process provides a best-effort liveness check for the game
// process the overlay assists with.
//
// The watcher polls the process table on a fixed cadence and keeps an
// atomic running flag. Status changes are edge triggered: an optional
// callback fires only when the process appears or disappears. Failures
// to read the process table degrade to "not running"; the watcher never
// returns an error from its polling loop.
package process
