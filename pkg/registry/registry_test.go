package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Idempotent(t *testing.T) {
	r := New()

	first := r.Register("sess-1", "/proj", "/proj/sub")
	require.NotNil(t, first)

	// A duplicate session_start refreshes paths but keeps timestamps.
	again := r.Register("sess-1", "/proj-moved", "/proj-moved")
	assert.Equal(t, first.RegisteredAt, again.RegisteredAt)
	assert.Equal(t, "/proj-moved", again.ProjectPath)
	assert.Equal(t, 1, r.Len())
}

func TestGet_ReturnsCopy(t *testing.T) {
	r := New()
	r.Register("sess-1", "/proj", "/proj")

	got, ok := r.Get("sess-1")
	require.True(t, ok)
	got.PaneID = "%9"

	fresh, _ := r.Get("sess-1")
	assert.Empty(t, fresh.PaneID, "mutating a returned session must not leak into the registry")
}

func TestSettersOnUnknownSession(t *testing.T) {
	r := New()
	assert.False(t, r.Touch("nope"))
	assert.False(t, r.SetPane("nope", "%1"))
	assert.False(t, r.SetTranscript("nope", "/t.jsonl", 0))
	assert.False(t, r.Remove("nope"))
}

func TestStaleSessions(t *testing.T) {
	r := New()
	now := time.Now()
	r.now = func() time.Time { return now }

	r.Register("old", "/a", "/a")

	r.now = func() time.Time { return now.Add(10 * time.Minute) }
	r.Register("fresh", "/b", "/b")

	stale := r.StaleSessions(5 * time.Minute)
	require.Len(t, stale, 1)
	assert.Equal(t, "old", stale[0].SessionUUID)

	// Activity rescues a session from the stale set.
	require.True(t, r.Touch("old"))
	assert.Empty(t, r.StaleSessions(5*time.Minute))
}

func TestSetTranscriptTracksOffset(t *testing.T) {
	r := New()
	r.Register("sess-1", "/proj", "/proj")

	require.True(t, r.SetTranscript("sess-1", "/logs/sess-1.jsonl", 0))
	require.True(t, r.SetTranscript("sess-1", "/logs/sess-1.jsonl", 4096))

	got, _ := r.Get("sess-1")
	assert.Equal(t, int64(4096), got.JSONLOffset)
}

func TestProjectPathCodec(t *testing.T) {
	assert.Equal(t, "-home-dev-api", EncodeProjectPath("/home/dev/api"))
	assert.Equal(t, "-home-dev-api", EncodeProjectPath("/home/dev/api/"))
	assert.Equal(t, "/home/dev/api", DecodeProjectPath("-home-dev-api"))
}
