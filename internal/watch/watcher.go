// Package watch signals when pill configuration files change on disk.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultQuiet is how long the files must stay untouched before a change is signalled.
const DefaultQuiet = 100 * time.Millisecond

// WatcherInterface defines the interface for file watchers
type WatcherInterface interface {
	Changes() <-chan struct{}
	Errors() <-chan error
	Close() error
}

// Watcher monitors a set of files and coalesces bursts of events
// (editors often write, rename and chmod in quick succession) into one signal.
type Watcher struct {
	watcher    *fsnotify.Watcher
	files      map[string]bool
	quiet      time.Duration
	changeChan chan struct{}
	errorChan  chan error
	done       chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewWatcher watches the directories holding paths. Events for the listed files,
// and files created next to them, are reported once the quiet period has passed.
func NewWatcher(paths []string, quiet time.Duration) (*Watcher, error) {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:    fsWatcher,
		files:      make(map[string]bool, len(paths)),
		quiet:      quiet,
		changeChan: make(chan struct{}, 1),
		errorChan:  make(chan error, 10),
		done:       make(chan struct{}),
	}

	// Watch directories, not files: editors replace files by rename
	dirs := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		w.files[p] = true
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, err
		}
		dirs[dir] = true
	}

	w.wg.Add(1)
	go w.watch()

	return w, nil
}

// watch runs the event loop until Close
func (w *Watcher) watch() {
	defer w.wg.Done()
	defer close(w.changeChan)
	defer close(w.errorChan)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.quiet)
			} else {
				timer.Reset(w.quiet)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.changeChan <- struct{}{}:
			default:
				// a change is already pending
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errorChan <- err:
			default:
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return w.files[filepath.Clean(event.Name)] || event.Has(fsnotify.Create)
}

// Changes signals after watched files changed. It is closed by Close.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changeChan
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	changeChan chan struct{}
	errorChan  chan error
	closed     bool
	mu         sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		changeChan: make(chan struct{}, 10),
		errorChan:  make(chan error, 10),
	}
}

func (tw *TestWatcher) Changes() <-chan struct{} {
	return tw.changeChan
}

func (tw *TestWatcher) Errors() <-chan error {
	return tw.errorChan
}

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true
	close(tw.changeChan)
	close(tw.errorChan)
	return nil
}

// Notify sends a change signal
func (tw *TestWatcher) Notify() {
	tw.changeChan <- struct{}{}
}

// SendError sends a test error to the watcher
func (tw *TestWatcher) SendError(err error) {
	tw.errorChan <- err
}
