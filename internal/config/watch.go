package config

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// LoadFile reads, schema-validates and decodes a Tables file from disk.
func LoadFile(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return LoadBytes(data)
}

// Watcher keeps a Tables value fresh against its backing file, using
// functional options for its optional subsystems rather than a constructor
// with a pile of booleans. The backing file is external; this only gives
// the core a race-free, always-current handle onto it instead of
// re-reading the file on every call.
type Watcher struct {
	path    string
	current atomic.Pointer[Tables]
	onError func(error)

	mu     sync.Mutex
	fsw    *fsnotify.Watcher
	closed chan struct{}
}

// WatcherOption configures a Watcher at construction time.
type WatcherOption func(*Watcher)

// WithErrorHandler installs a callback invoked whenever a reload fails (the
// Watcher keeps serving the last good Tables rather than going dark).
func WithErrorHandler(f func(error)) WatcherOption {
	return func(w *Watcher) { w.onError = f }
}

// NewWatcher loads path once synchronously, then watches it for changes in
// the background. The returned Watcher must be closed with Close.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	initial, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: starting file watcher: %w", err)
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: watching %s: %w", path, err)
	}

	w := &Watcher{path: path, fsw: fsw, closed: make(chan struct{})}
	for _, opt := range opts {
		opt(w)
	}
	w.current.Store(&initial)

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			tbl, err := LoadFile(w.path)
			if err != nil {
				if w.onError != nil {
					w.onError(err)
				}
				continue
			}
			w.current.Store(&tbl)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		case <-w.closed:
			return
		}
	}
}

// Tables returns the most recently loaded, schema-valid configuration.
func (w *Watcher) Tables() Tables {
	return *w.current.Load()
}

// Close stops watching the backing file.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.closed:
		return nil
	default:
		close(w.closed)
	}
	return w.fsw.Close()
}
