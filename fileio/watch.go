package fileio

import (
	"github.com/fsnotify/fsnotify"
)

// Watcher watches one directory for files with an accepted extension
// being created or written; Run delivers their paths and blocks until
// Close is called.
type Watcher struct {
	w *fsnotify.Watcher
}

// NewWatcher starts watching dir.
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{w: w}, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.w.Close()
}

// Run invokes onFile for every accepted-extension file created or
// written inside the watched directory, until the watcher is closed.
// Errors from the underlying watcher are passed to onErr.
func (w *Watcher) Run(onFile func(path string), onErr func(error)) {
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !hasAcceptedExt(ev.Name) {
				continue
			}
			onFile(ev.Name)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			if onErr != nil {
				onErr(err)
			}
		}
	}
}
