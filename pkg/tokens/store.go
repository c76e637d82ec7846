// Package tokens issues and validates the short-lived bearer tokens that
// scope external callers to a single agent. Tokens have no server-side
// expiry of their own — they live exactly as long as the agent.
package tokens

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

// FeatureFlags enables embed-surface features for a remote caller.
type FeatureFlags struct {
	FileUpload   bool `json:"file_upload"`
	ContextUsage bool `json:"context_usage"`
	VoiceMic     bool `json:"voice_mic"`
}

// Record is what a token resolves to.
type Record struct {
	AgentID   int
	Flags     FeatureFlags
	CreatedAt time.Time
}

// Store is a thread-safe token table. One token per agent: generating a
// new token revokes the previous one.
type Store struct {
	mu      sync.RWMutex
	byToken map[string]Record
	byAgent map[int]string
}

// NewStore creates an empty token store.
func NewStore() *Store {
	return &Store{
		byToken: make(map[string]Record),
		byAgent: make(map[int]string),
	}
}

// Generate mints a fresh URL-safe token for the agent, revoking any
// previous token for the same agent.
func (s *Store) Generate(agentID int, flags FeatureFlags) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byAgent[agentID]; ok {
		delete(s.byToken, prev)
	}
	s.byToken[token] = Record{
		AgentID:   agentID,
		Flags:     flags,
		CreatedAt: time.Now(),
	}
	s.byAgent[agentID] = token

	return token, nil
}

// Validate resolves a token to its record.
func (s *Store) Validate(token string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byToken[token]
	return rec, ok
}

// ValidateForAgent resolves a token and checks it is scoped to agentID.
func (s *Store) ValidateForAgent(token string, agentID int) (Record, bool) {
	rec, ok := s.Validate(token)
	if !ok || rec.AgentID != agentID {
		return Record{}, false
	}
	return rec, true
}

// Revoke removes a single token.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.byToken[token]; ok {
		delete(s.byToken, token)
		if s.byAgent[rec.AgentID] == token {
			delete(s.byAgent, rec.AgentID)
		}
	}
}

// RevokeForAgent removes the agent's token, if any. Called during agent
// shutdown.
func (s *Store) RevokeForAgent(agentID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.byAgent[agentID]; ok {
		delete(s.byToken, token)
		delete(s.byAgent, agentID)
	}
}

// Len returns the number of live tokens.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byToken)
}
