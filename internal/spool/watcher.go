// Package spool watches the open-file spool: a plain file that other
// processes append newline-separated paths to when they want this
// application to open them. The watcher drains the spool on a fixed
// interval and publishes each batch as an event.
package spool

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"
)

// Event conveys a drained batch of paths or an error from a poll.
type Event struct {
	Paths []string
	Err   error
}

// Watcher polls the spool file at a fixed interval and publishes
// events for non-empty batches.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher draining path every interval.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(func() ([]string, error) {
		throttle.wait()
		return drain(w.path)
	})

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of spool events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current drain
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events
// channel is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(fetch func() ([]string, error)) {
	defer w.wg.Done()

	emit := func() bool {
		paths, err := fetch()
		if err == nil && len(paths) == 0 {
			return true
		}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- Event{Paths: paths, Err: err}:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}

// drain consumes the spool file, returning its non-blank lines. A
// missing spool is an empty batch, not an error.
func drain(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	if err := os.Truncate(path, 0); err != nil {
		return nil, err
	}
	lines := strings.Split(string(raw), "\n")
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}
