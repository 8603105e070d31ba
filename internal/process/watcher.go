package process

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// DefaultInterval is the polling cadence.
const DefaultInterval = 2 * time.Second

// Lister returns the names of all running processes. The default lister
// reads the real process table; tests inject their own.
type Lister func() ([]string, error)

// systemLister reads process names via gopsutil. Processes whose name
// cannot be read (typically permission denied) are skipped.
func systemLister() ([]string, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Watcher polls for a named process and tracks its liveness.
type Watcher struct {
	target   string // lowercased process name
	interval time.Duration
	lister   Lister
	onChange func(running bool)

	running atomic.Bool
	started atomic.Bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithInterval sets the polling cadence.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithLister sets the process lister. Tests use this to avoid touching
// the real process table.
func WithLister(l Lister) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.lister = l
		}
	}
}

// WithOnChange sets the edge-triggered status callback. It is invoked
// from the polling goroutine.
func WithOnChange(fn func(running bool)) WatcherOption {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// NewWatcher creates a watcher for the named process. Matching is
// case-insensitive.
func NewWatcher(name string, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		target:   strings.ToLower(name),
		interval: DefaultInterval,
		lister:   systemLister,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start launches the polling loop. It polls once immediately so the
// initial status is available without waiting a full interval.
func (w *Watcher) Start(ctx context.Context) {
	if w.started.Swap(true) {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.poll()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.poll()
			}
		}
	}()
}

// Stop halts the polling loop.
func (w *Watcher) Stop() {
	if !w.started.Swap(false) {
		return
	}
	w.cancel()
	w.wg.Wait()
}

// IsRunning returns the last observed liveness.
func (w *Watcher) IsRunning() bool {
	return w.running.Load()
}

// CheckOnce performs a single liveness check without the polling loop.
func (w *Watcher) CheckOnce() bool {
	names, err := w.lister()
	if err != nil {
		return false
	}
	for _, name := range names {
		if strings.ToLower(name) == w.target {
			return true
		}
	}
	return false
}

// poll refreshes the running flag and fires the change callback on
// status edges.
func (w *Watcher) poll() {
	found := w.CheckOnce()
	if w.running.Swap(found) != found && w.onChange != nil {
		w.onChange(found)
	}
}
