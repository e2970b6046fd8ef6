package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// pollInterval bounds how often the debounce deadline is checked.
const pollInterval = 250 * time.Millisecond

// Watcher invokes a callback when any of a fixed set of files changes,
// after a quiet period of at least the configured delay.
type Watcher struct {
	delay    time.Duration
	onChange func()
	fsw      *fsnotify.Watcher
	watched  map[string]struct{}

	mu      sync.Mutex
	dirty   bool
	dirtyAt time.Time

	stop chan struct{}
	done chan struct{}
}

// New creates a watcher for the given file paths. Call Start to begin
// watching and Stop to release the underlying notifier.
func New(paths []string, delay time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		delay:    delay,
		onChange: onChange,
		fsw:      fsw,
		watched:  make(map[string]struct{}, len(paths)),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		w.watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return w, nil
}

// Start begins delivering debounced change callbacks.
func (w *Watcher) Start() {
	go w.run()
}

// Stop ends watching and waits for the event loop to exit. The callback is
// not invoked after Stop returns.
func (w *Watcher) Stop() {
	close(w.stop)
	w.fsw.Close()
	<-w.done
}

func (w *Watcher) run() {
	defer close(w.done)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.notify(event.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("file watch error")
		case <-ticker.C:
			w.flush()
		}
	}
}

// notify marks the watcher dirty if name is one of the watched files,
// restarting the quiet period.
func (w *Watcher) notify(name string) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}
	if _, ok := w.watched[abs]; !ok {
		return
	}
	w.mu.Lock()
	w.dirty = true
	w.dirtyAt = time.Now()
	w.mu.Unlock()
	logrus.WithField("path", abs).Debug("input changed")
}

// flush fires the callback once the quiet period has elapsed.
func (w *Watcher) flush() {
	w.mu.Lock()
	ready := w.dirty && time.Since(w.dirtyAt) >= w.delay
	if ready {
		w.dirty = false
	}
	w.mu.Unlock()
	if ready {
		w.onChange()
	}
}
