package transcript

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/headspace-sh/headspace/pkg/registry"
)

// Config tunes the watcher's two polling regimes and the debounce.
type Config struct {
	// HookActiveInterval applies while hooks are flowing: the hooks are
	// the primary signal and the poll is just a safety net.
	HookActiveInterval time.Duration
	// FallbackInterval applies when no hook has fired recently and the
	// transcript tail is the only signal.
	FallbackInterval time.Duration
	// HookActiveWindow is how long after the last hook the watcher stays
	// in the relaxed regime.
	HookActiveWindow time.Duration
	// DebounceInterval coalesces bursts of fsnotify write events into
	// one read pass per session.
	DebounceInterval time.Duration
	// InactivityTimeout ends sessions with no transcript or hook
	// activity.
	InactivityTimeout time.Duration
	// ProjectsRoot is the directory holding per-project transcript
	// folders, named by the project path codec.
	ProjectsRoot string
}

// DefaultConfig mirrors the shipped defaults.
func DefaultConfig(projectsRoot string) Config {
	return Config{
		HookActiveInterval: 60 * time.Second,
		FallbackInterval:   2 * time.Second,
		HookActiveWindow:   120 * time.Second,
		DebounceInterval:   300 * time.Millisecond,
		InactivityTimeout:  30 * time.Minute,
		ProjectsRoot:       projectsRoot,
	}
}

// TurnSink receives every parsed turn along with its session.
type TurnSink func(ctx context.Context, sessionUUID string, turn ParsedTurn)

// InactiveFunc is called for sessions that exceeded the inactivity
// timeout.
type InactiveFunc func(ctx context.Context, sessionUUID string)

// Watcher discovers and tails per-session JSONL transcripts. One
// instance per process; fsnotify gives low-latency wakeups and the
// periodic poll catches anything the notifications miss.
type Watcher struct {
	cfg      Config
	registry *registry.Registry
	sink     TurnSink
	inactive InactiveFunc

	mu         sync.Mutex
	lastHookAt time.Time
	watched    map[string]bool // dirs added to fsnotify
	pending    map[string]bool // sessions debounce-scheduled for a read

	fsw    *fsnotify.Watcher
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWatcher creates a transcript watcher over the registry.
func NewWatcher(cfg Config, reg *registry.Registry, sink TurnSink, inactive InactiveFunc) *Watcher {
	return &Watcher{
		cfg:      cfg,
		registry: reg,
		sink:     sink,
		inactive: inactive,
		watched:  make(map[string]bool),
		pending:  make(map[string]bool),
	}
}

// NoteHookActivity records that a hook just fired, switching the poll
// into the relaxed regime.
func (w *Watcher) NoteHookActivity() {
	w.mu.Lock()
	w.lastHookAt = time.Now()
	w.mu.Unlock()
}

// SetIntervals replaces the two polling intervals; used by config hot
// reload. The change takes effect on the next tick.
func (w *Watcher) SetIntervals(hookActive, fallback time.Duration) {
	w.mu.Lock()
	w.cfg.HookActiveInterval = hookActive
	w.cfg.FallbackInterval = fallback
	w.mu.Unlock()
}

// currentInterval picks the regime from recent hook activity.
func (w *Watcher) currentInterval() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.lastHookAt.IsZero() && time.Since(w.lastHookAt) < w.cfg.HookActiveWindow {
		return w.cfg.HookActiveInterval
	}
	return w.cfg.FallbackInterval
}

// Start launches the poll loop and the fsnotify event loop.
func (w *Watcher) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		// Degrade to poll-only: the tail still works, just slower.
		slog.Warn("fsnotify unavailable, running poll-only", "error", err)
	}
	w.fsw = fsw

	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})
	go w.run(ctx)

	slog.Info("Transcript watcher started",
		"projects_root", w.cfg.ProjectsRoot,
		"fallback_interval", w.cfg.FallbackInterval,
		"hook_active_interval", w.cfg.HookActiveInterval)
	return nil
}

// Stop signals the loops to exit and waits for them.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
	if w.fsw != nil {
		_ = w.fsw.Close()
	}
	slog.Info("Transcript watcher stopped")
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	if w.fsw != nil {
		go w.eventLoop(ctx)
	}

	w.pollOnce(ctx)
	timer := time.NewTimer(w.currentInterval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			w.pollOnce(ctx)
			timer.Reset(w.currentInterval())
		}
	}
}

// eventLoop reacts to fsnotify writes on watched transcript dirs with a
// per-session debounce.
func (w *Watcher) eventLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".jsonl" {
				continue
			}
			w.scheduleRead(ctx, event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("fsnotify error", "error", err)
		}
	}
}

// scheduleRead debounces: the first event for a session arms a timer,
// subsequent events within the window are absorbed.
func (w *Watcher) scheduleRead(ctx context.Context, path string) {
	var target *registry.Session
	for _, sess := range w.registry.List() {
		if sess.JSONLPath == path {
			target = sess
			break
		}
	}
	if target == nil {
		return
	}

	w.mu.Lock()
	if w.pending[target.SessionUUID] {
		w.mu.Unlock()
		return
	}
	w.pending[target.SessionUUID] = true
	delay := w.cfg.DebounceInterval
	w.mu.Unlock()

	uuid := target.SessionUUID
	time.AfterFunc(delay, func() {
		w.mu.Lock()
		delete(w.pending, uuid)
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		if sess, ok := w.registry.Get(uuid); ok {
			w.readSession(ctx, sess)
		}
	})
}

// pollOnce runs one full pass: discovery, tailing, inactivity check.
func (w *Watcher) pollOnce(ctx context.Context) {
	for _, sess := range w.registry.List() {
		if sess.JSONLPath == "" {
			w.discover(ctx, sess)
			continue
		}
		w.readSession(ctx, sess)
	}

	for _, sess := range w.registry.StaleSessions(w.cfg.InactivityTimeout) {
		slog.Info("Session inactive, ending", "session_uuid", sess.SessionUUID)
		w.inactive(ctx, sess.SessionUUID)
	}
}

// discover locates the newest transcript for a session that has none
// yet and registers its directory with fsnotify.
func (w *Watcher) discover(ctx context.Context, sess *registry.Session) {
	dir := filepath.Join(w.cfg.ProjectsRoot, registry.EncodeProjectPath(sess.ProjectPath))
	path, err := DiscoverNewest(dir)
	if err != nil {
		slog.Warn("Transcript discovery failed", "session_uuid", sess.SessionUUID, "dir", dir, "error", err)
		return
	}
	if path == "" {
		return
	}

	w.registry.SetTranscript(sess.SessionUUID, path, 0)
	slog.Info("Transcript discovered", "session_uuid", sess.SessionUUID, "path", path)

	if w.fsw != nil {
		w.mu.Lock()
		add := !w.watched[dir]
		if add {
			w.watched[dir] = true
		}
		w.mu.Unlock()
		if add {
			if err := w.fsw.Add(dir); err != nil {
				slog.Warn("Failed to watch transcript dir", "dir", dir, "error", err)
			}
		}
	}

	if sess, ok := w.registry.Get(sess.SessionUUID); ok {
		w.readSession(ctx, sess)
	}
}

// readSession tails one transcript and pushes every parsed turn to the
// sink.
func (w *Watcher) readSession(ctx context.Context, sess *registry.Session) {
	turns, newOffset, err := ReadAppended(sess.JSONLPath, sess.JSONLOffset)
	if err != nil {
		slog.Warn("Transcript read failed", "session_uuid", sess.SessionUUID, "error", err)
		return
	}
	if newOffset != sess.JSONLOffset {
		w.registry.SetTranscript(sess.SessionUUID, sess.JSONLPath, newOffset)
	}
	if len(turns) == 0 {
		return
	}

	w.registry.Touch(sess.SessionUUID)
	for _, turn := range turns {
		w.sink(ctx, sess.SessionUUID, turn)
	}
}
