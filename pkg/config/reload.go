package config

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ApplyFunc receives the hot-reloadable subset of a freshly loaded
// config. Everything else requires a restart.
type ApplyFunc func(HotConfig)

// HotConfig is the slice of configuration that takes effect without a
// restart.
type HotConfig struct {
	VoiceAuthToken     string
	HookActiveInterval time.Duration
	FallbackInterval   time.Duration
}

// Reloader watches the config file and re-applies the hot-reloadable
// fields when it changes. Editors replace files on save, so the parent
// directory is watched rather than the file itself.
type Reloader struct {
	path    string
	apply   ApplyFunc
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending *time.Timer

	stopOnce sync.Once
	done     chan struct{}
}

const reloadDebounce = 500 * time.Millisecond

// NewReloader starts watching the config file's directory.
func NewReloader(path string, apply ApplyFunc) (*Reloader, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	r := &Reloader{
		path:    path,
		apply:   apply,
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go r.loop()
	slog.Info("Config hot reload enabled", "path", path)
	return r, nil
}

// Stop ends the watch loop.
func (r *Reloader) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
		r.watcher.Close()
		r.mu.Lock()
		if r.pending != nil {
			r.pending.Stop()
		}
		r.mu.Unlock()
	})
}

func (r *Reloader) loop() {
	for {
		select {
		case <-r.done:
			return
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(r.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			r.schedule()
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Config watcher error", "error", err)
		}
	}
}

// schedule debounces bursts of write events from editors.
func (r *Reloader) schedule() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending != nil {
		r.pending.Stop()
	}
	r.pending = time.AfterFunc(reloadDebounce, r.reload)
}

func (r *Reloader) reload() {
	cfg, err := Load(r.path)
	if err != nil {
		slog.Error("Config reload failed, keeping previous values", "error", err)
		return
	}
	r.apply(HotConfig{
		VoiceAuthToken:     cfg.VoiceBridge.AuthToken,
		HookActiveInterval: cfg.FileWatcher.HookActiveInterval,
		FallbackInterval:   cfg.FileWatcher.FallbackInterval,
	})
	slog.Info("Configuration reloaded", "path", r.path)
}
