package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is how often a polling Watcher checks the file.
const DefaultPollInterval = 500 * time.Millisecond

// Watcher keeps a settings file loaded and reloads it on change. Invalid
// edits are logged and ignored; the last good Config stays current.
type Watcher struct {
	path     string
	interval time.Duration

	mu      sync.RWMutex
	current Config
}

// NewWatcher loads path and returns a Watcher for it.
func NewWatcher(path string) (*Watcher, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:     path,
		interval: DefaultPollInterval,
		current:  cfg,
	}, nil
}

// WithPollInterval sets the polling interval used when fsnotify is unavailable.
func (w *Watcher) WithPollInterval(d time.Duration) *Watcher {
	if d > 0 {
		w.interval = d
	}
	return w
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Current returns the last successfully loaded Config.
func (w *Watcher) Current() Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Watch follows the settings file and sends each newly loaded Config to the
// returned channel. The channel is closed when ctx is cancelled.
// Uses fsnotify with a polling fallback.
func (w *Watcher) Watch(ctx context.Context) <-chan Config {
	ch := make(chan Config, 1)

	go func() {
		defer close(ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			slog.Debug("fsnotify unavailable, polling settings", slog.String("error", err.Error()))
			w.poll(ctx, ch)
			return
		}
		defer watcher.Close()

		// Watching the directory survives editors that replace the file.
		if err := watcher.Add(filepath.Dir(w.path)); err != nil {
			slog.Debug("cannot watch settings dir, polling", slog.String("error", err.Error()))
			w.poll(ctx, ch)
			return
		}

		w.notify(ctx, ch, watcher)
	}()

	return ch
}

func (w *Watcher) notify(ctx context.Context, ch chan<- Config, watcher *fsnotify.Watcher) {
	base := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload(ctx, ch)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("settings watcher error", slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) poll(ctx context.Context, ch chan<- Config) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var lastMod time.Time
	var lastSize int64
	if info, err := os.Stat(w.path); err == nil {
		lastMod, lastSize = info.ModTime(), info.Size()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(lastMod) && info.Size() == lastSize {
				continue
			}
			lastMod, lastSize = info.ModTime(), info.Size()
			w.reload(ctx, ch)
		}
	}
}

// reload loads the file and publishes it if it differs from the current Config.
func (w *Watcher) reload(ctx context.Context, ch chan<- Config) {
	cfg, err := Load(w.path)
	if err != nil {
		slog.Warn("settings reload failed, keeping previous",
			slog.String("path", w.path),
			slog.String("error", err.Error()))
		return
	}

	w.mu.Lock()
	changed := cfg != w.current
	if changed {
		w.current = cfg
	}
	w.mu.Unlock()

	if !changed {
		return
	}

	slog.Debug("settings reloaded", slog.String("path", w.path))
	select {
	case ch <- cfg:
	case <-ctx.Done():
	}
}
