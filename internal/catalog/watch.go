package catalog

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces the burst of events editors emit on save
const debounce = 150 * time.Millisecond

// Event carries the result of reloading a watched catalog file
type Event struct {
	Catalog *Catalog
	Err     error
}

// Watcher reloads a catalog file whenever it changes on disk
type Watcher struct {
	path   string
	fsw    *fsnotify.Watcher
	events chan Event
	done   chan struct{}
	once   sync.Once
}

// Watch starts watching path. The parent directory is watched so that
// editors replacing the file atomically are still picked up.
func Watch(path string) (*Watcher, error) {
	if _, err := FormatFor(path); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:   abs,
		fsw:    fsw,
		events: make(chan Event, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events delivers one Event per settled change. The channel is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.events)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.send(Event{Err: fmt.Errorf("watcher: %w", err)})

		case <-fire:
			fire = nil
			c, err := Load(w.path)
			w.send(Event{Catalog: c, Err: err})
		}
	}
}

// send delivers ev unless the watcher is closing
func (w *Watcher) send(ev Event) {
	select {
	case w.events <- ev:
	case <-w.done:
	}
}
