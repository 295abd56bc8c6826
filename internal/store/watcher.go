package store

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change reports that a catalog file in the data directory was rewritten or removed
type Change struct {
	File    string // Base name, e.g. chords.json
	Removed bool
}

// Watcher monitors the data directory for catalog rewrites using fsnotify
type Watcher struct {
	Dir     string
	Changes <-chan Change

	changes  chan Change
	done     chan struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher creates a watcher for the given data directory
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Dir:      dir,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
		debounce: 100 * time.Millisecond,
	}, nil
}

// Start begins watching the data directory
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.emit(file)
				}
				return
			}

			if !isCatalogFile(event.Name) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= w.debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal.
		}
	}
}

func (w *Watcher) emit(path string) {
	_, err := os.Stat(path)
	w.changes <- Change{File: filepath.Base(path), Removed: err != nil}
}

func isCatalogFile(name string) bool {
	switch filepath.Base(name) {
	case ChordsFile, ScalesFile, ManifestFile:
		return true
	}
	return false
}
