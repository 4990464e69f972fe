package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches rapid editor write bursts into one apply.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a single file and invokes a callback after each change,
// debounced. The zero value is not usable; construct with New.
type Watcher struct {
	path     string
	apply    func()
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// New creates a watcher for the given file. apply runs on the watch
// goroutine after each debounced change. A debounce of 0 selects
// DefaultDebounce.
func New(path string, debounce time.Duration, apply func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	// Absolute path so events compare consistently.
	absPath, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		path:     absPath,
		apply:    apply,
		fsw:      fsw,
		debounce: debounce,
	}, nil
}

// Run blocks, applying on every debounced change of the watched file,
// until ctx is canceled or the event stream closes.
func (w *Watcher) Run(ctx context.Context) error {
	// Watch the containing directory; watching the file directly breaks
	// when editors replace it via rename.
	dir := filepath.Dir(w.path)
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}

	name := filepath.Base(w.path)
	slog.Info("watching layout file", "path", w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create):
				slog.Debug("layout file changed", "op", event.Op.String())
				timer.Reset(w.debounce)
			case event.Op.Has(fsnotify.Remove):
				slog.Warn("layout file removed", "path", w.path)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)

		case <-timer.C:
			w.apply()
		}
	}
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
