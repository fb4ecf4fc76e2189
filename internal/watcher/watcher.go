// Package watcher reloads the log file when it changes on disk.
package watcher

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the watched log file changed and should be reparsed.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Watcher monitors a single log file using OS-level notifications. Editors
// and Unreal itself replace the file on rotation, so the parent directory is
// watched and events are filtered by name.
type Watcher struct {
	fsw    *fsnotify.Watcher
	Events chan Event
	path   string
}

// New creates a Watcher for the given file path.
func New(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		fsw:    fsw,
		Events: make(chan Event, 16),
		path:   abs,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Start forwards change events for the watched file. It blocks until the
// context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	defer w.fsw.Close()
	defer close(w.Events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			switch {
			case ev.Op&fsnotify.Write != 0,
				ev.Op&fsnotify.Create != 0,
				ev.Op&fsnotify.Rename != 0:
				select {
				case w.Events <- Event{Path: w.path, Op: ev.Op}:
				default:
					// Drop when the UI is behind; the next event retriggers
					// the same full reparse anyway.
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}
