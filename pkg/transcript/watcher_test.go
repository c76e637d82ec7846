package transcript

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/pkg/registry"
)

type sinkRecorder struct {
	mu    sync.Mutex
	turns []ParsedTurn
	uuids []string
}

func (r *sinkRecorder) sink(_ context.Context, sessionUUID string, turn ParsedTurn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uuids = append(r.uuids, sessionUUID)
	r.turns = append(r.turns, turn)
}

func (r *sinkRecorder) snapshot() []ParsedTurn {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ParsedTurn(nil), r.turns...)
}

func TestWatcher_DiscoversAndTails(t *testing.T) {
	root := t.TempDir()
	projectPath := "/work/demo"
	dir := filepath.Join(root, registry.EncodeProjectPath(projectPath))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFile(t, filepath.Join(dir, "s1.jsonl"),
		`{"type":"user","message":{"content":"Fix login"}}`+"\n")

	reg := registry.New()
	reg.Register("S1", projectPath, "/work/demo")

	rec := &sinkRecorder{}
	w := NewWatcher(DefaultConfig(root), reg, rec.sink, func(context.Context, string) {})

	w.pollOnce(context.Background())

	turns := rec.snapshot()
	require.Len(t, turns, 1)
	assert.Equal(t, "Fix login", turns[0].Text)
	assert.Equal(t, []string{"S1"}, rec.uuids)

	sess, ok := reg.Get("S1")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "s1.jsonl"), sess.JSONLPath)
	assert.Positive(t, sess.JSONLOffset)

	// Second pass with no new bytes emits nothing.
	w.pollOnce(context.Background())
	assert.Len(t, rec.snapshot(), 1)
}

func TestWatcher_InactivityTimeout(t *testing.T) {
	reg := registry.New()
	reg.Register("S1", "/work/demo", "/work/demo")

	cfg := DefaultConfig(t.TempDir())
	cfg.InactivityTimeout = time.Nanosecond

	var ended []string
	w := NewWatcher(cfg, reg, func(context.Context, string, ParsedTurn) {}, func(_ context.Context, uuid string) {
		ended = append(ended, uuid)
	})

	time.Sleep(time.Millisecond)
	w.pollOnce(context.Background())
	assert.Equal(t, []string{"S1"}, ended)
}

func TestWatcher_IntervalRegimes(t *testing.T) {
	w := NewWatcher(DefaultConfig(t.TempDir()), registry.New(),
		func(context.Context, string, ParsedTurn) {}, func(context.Context, string) {})

	assert.Equal(t, w.cfg.FallbackInterval, w.currentInterval(), "no hooks yet: tight polling")

	w.NoteHookActivity()
	assert.Equal(t, w.cfg.HookActiveInterval, w.currentInterval(), "hooks flowing: relaxed polling")

	w.SetIntervals(30*time.Second, time.Second)
	assert.Equal(t, 30*time.Second, w.currentInterval())
}
