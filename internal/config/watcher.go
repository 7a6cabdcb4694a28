package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a layout file when it changes on disk. The callback
// receives the re-decoded layout or the decode error; applying it into
// an engine stays the caller's job, on the caller's thread.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	onReload func(Layout, error)
	done     chan struct{}
}

// Watch starts watching the given layout file. The parent directory is
// watched so the file may be replaced atomically (write to temp file,
// rename over).
func Watch(path string, onReload func(Layout, error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.onReload(LoadFile(w.path))
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
