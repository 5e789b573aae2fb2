package app

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	statepkg "github.com/kk-code-lab/rover/internal/state"
)

// dirWatcher follows the directory shown by the active tab and turns
// changes into RefreshActions.
type dirWatcher struct {
	fsw    *fsnotify.Watcher
	events chan statepkg.Action
	logger *slog.Logger

	mu      sync.Mutex
	watched string // name passed to fsnotify, without trailing separator
	done    chan struct{}
}

func newDirWatcher(logger *slog.Logger) (*dirWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &dirWatcher{
		fsw:    fsw,
		events: make(chan statepkg.Action, 16),
		logger: logger,
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events delivers refresh requests to the event loop.
func (w *dirWatcher) Events() <-chan statepkg.Action {
	return w.events
}

// Watch replaces the watched directory with path.
func (w *dirWatcher) Watch(path string) {
	name := filepath.Clean(path)

	w.mu.Lock()
	defer w.mu.Unlock()
	if name == w.watched {
		return
	}
	if w.watched != "" {
		if err := w.fsw.Remove(w.watched); err != nil {
			w.logger.Debug("unwatch failed", "path", w.watched, "err", err)
		}
		w.watched = ""
	}
	if err := w.fsw.Add(name); err != nil {
		w.logger.Debug("watch failed", "path", name, "err", err)
		return
	}
	w.watched = name
}

// Close stops the watcher goroutine.
func (w *dirWatcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *dirWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			w.notify(directoryKey(w.target(ev)))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "err", err)
		}
	}
}

// target is the directory whose listing ev changes: the parent of a
// child event, or the watched directory itself when it goes away.
func (w *dirWatcher) target(ev fsnotify.Event) string {
	name := filepath.Clean(ev.Name)

	w.mu.Lock()
	defer w.mu.Unlock()
	if name != w.watched {
		return filepath.Dir(name)
	}
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		w.watched = ""
	}
	return name
}

// notify drops the request when the loop already has plenty queued; a
// single refresh picks up every change.
func (w *dirWatcher) notify(path string) {
	select {
	case w.events <- statepkg.RefreshAction{Path: path}:
	case <-w.done:
	default:
	}
}

// directoryKey renders path the way tabs store it.
func directoryKey(path string) string {
	sep := string(filepath.Separator)
	if strings.HasSuffix(path, sep) {
		return path
	}
	return path + sep
}
