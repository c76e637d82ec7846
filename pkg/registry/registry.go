// Package registry tracks live agent sessions in memory. The registry is
// authoritative for "is this session still live?" and feeds the reaper
// with last-activity timestamps.
package registry

import (
	"sync"
	"time"
)

// Session is the in-memory record for one live host-side conversation.
type Session struct {
	SessionUUID      string
	ProjectPath      string
	WorkingDirectory string
	PaneID           string
	JSONLPath        string
	JSONLOffset      int64
	RegisteredAt     time.Time
	LastActivityAt   time.Time
}

// Registry is a thread-safe map session_uuid -> Session.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Register adds a session. Re-registering an existing UUID refreshes the
// project path and working directory but keeps the original timestamps,
// so a duplicate session_start hook is harmless.
func (r *Registry) Register(sessionUUID, projectPath, workingDirectory string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sessions[sessionUUID]; ok {
		existing.ProjectPath = projectPath
		existing.WorkingDirectory = workingDirectory
		return existing.clone()
	}

	now := r.now()
	s := &Session{
		SessionUUID:      sessionUUID,
		ProjectPath:      projectPath,
		WorkingDirectory: workingDirectory,
		RegisteredAt:     now,
		LastActivityAt:   now,
	}
	r.sessions[sessionUUID] = s
	return s.clone()
}

// Get returns a copy of the session, if registered.
func (r *Registry) Get(sessionUUID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionUUID]
	if !ok {
		return nil, false
	}
	return s.clone(), true
}

// List returns copies of all registered sessions.
func (r *Registry) List() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.clone())
	}
	return out
}

// Touch bumps last_activity_at. Returns false for unknown sessions.
func (r *Registry) Touch(sessionUUID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionUUID]
	if !ok {
		return false
	}
	s.LastActivityAt = r.now()
	return true
}

// SetPane records the tmux pane for a session.
func (r *Registry) SetPane(sessionUUID, paneID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionUUID]
	if !ok {
		return false
	}
	s.PaneID = paneID
	return true
}

// SetTranscript records the discovered JSONL path and read offset.
func (r *Registry) SetTranscript(sessionUUID, path string, offset int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionUUID]
	if !ok {
		return false
	}
	s.JSONLPath = path
	s.JSONLOffset = offset
	return true
}

// Remove deletes a session and reports whether it existed.
func (r *Registry) Remove(sessionUUID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionUUID]; !ok {
		return false
	}
	delete(r.sessions, sessionUUID)
	return true
}

// StaleSessions returns sessions whose last activity is older than the
// given timeout. The reaper closes these.
func (r *Registry) StaleSessions(timeout time.Duration) []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := r.now().Add(-timeout)
	var stale []*Session
	for _, s := range r.sessions {
		if s.LastActivityAt.Before(cutoff) {
			stale = append(stale, s.clone())
		}
	}
	return stale
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (s *Session) clone() *Session {
	copied := *s
	return &copied
}
