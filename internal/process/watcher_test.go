package process

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeLister is a swappable process table for tests.
type fakeLister struct {
	mu    sync.Mutex
	names []string
	err   error
}

func (f *fakeLister) set(names []string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.names = names
	f.err = err
}

func (f *fakeLister) list() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.names, f.err
}

func TestCheckOnce(t *testing.T) {
	lister := &fakeLister{}
	w := NewWatcher("Endfield.exe", WithLister(lister.list))

	lister.set([]string{"explorer.exe", "endfield.EXE"}, nil)
	if !w.CheckOnce() {
		t.Error("CheckOnce should match case-insensitively")
	}

	lister.set([]string{"explorer.exe"}, nil)
	if w.CheckOnce() {
		t.Error("CheckOnce should report absent process")
	}
}

func TestCheckOnceListerError(t *testing.T) {
	lister := &fakeLister{}
	lister.set(nil, errors.New("permission denied"))

	w := NewWatcher("Endfield.exe", WithLister(lister.list))
	if w.CheckOnce() {
		t.Error("lister errors should degrade to not running")
	}
}

func TestWatcherEdgeTriggeredChanges(t *testing.T) {
	lister := &fakeLister{}
	lister.set(nil, nil)

	changes := make(chan bool, 16)
	w := NewWatcher("Endfield.exe",
		WithLister(lister.list),
		WithInterval(5*time.Millisecond),
		WithOnChange(func(running bool) { changes <- running }),
	)

	w.Start(context.Background())
	defer w.Stop()

	lister.set([]string{"Endfield.exe"}, nil)
	select {
	case v := <-changes:
		if !v {
			t.Error("first change should report running")
		}
	case <-time.After(time.Second):
		t.Fatal("no change notification for process appearing")
	}
	if !w.IsRunning() {
		t.Error("IsRunning should be true")
	}

	lister.set(nil, nil)
	select {
	case v := <-changes:
		if v {
			t.Error("second change should report not running")
		}
	case <-time.After(time.Second):
		t.Fatal("no change notification for process disappearing")
	}
}

func TestWatcherStartIdempotent(t *testing.T) {
	lister := &fakeLister{}
	w := NewWatcher("Endfield.exe", WithLister(lister.list), WithInterval(5*time.Millisecond))

	ctx := context.Background()
	w.Start(ctx)
	w.Start(ctx)
	w.Stop()
	w.Stop()
}
