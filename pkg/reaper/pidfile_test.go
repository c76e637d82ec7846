package reaper

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_WritesAndRemovesPIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watcher.pid")
	m := NewMonitor(path, time.Hour)

	require.NoError(t, m.Start(context.Background()))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(raw))

	status := CheckPIDFile(path, time.Hour)
	assert.True(t, status.Running)
	assert.Equal(t, os.Getpid(), status.PID)

	m.Stop()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestCheckPIDFile_Absent(t *testing.T) {
	status := CheckPIDFile(filepath.Join(t.TempDir(), "nope.pid"), time.Hour)
	assert.False(t, status.Running)
	assert.Equal(t, "pid file absent", status.Reason)
}

func TestCheckPIDFile_Stale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watcher.pid")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	status := CheckPIDFile(path, time.Minute)
	assert.False(t, status.Running)
	assert.Equal(t, "pid file stale", status.Reason)
}

func TestCheckPIDFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watcher.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid"), 0o644))

	status := CheckPIDFile(path, time.Hour)
	assert.False(t, status.Running)
	assert.Equal(t, "pid file malformed", status.Reason)
}

func TestCheckPIDFile_DeadProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watcher.pid")
	// PID 1 is init and always alive; use an implausibly large PID for
	// the dead case instead.
	require.NoError(t, os.WriteFile(path, []byte("4194000"), 0o644))

	status := CheckPIDFile(path, time.Hour)
	assert.False(t, status.Running)
	assert.Equal(t, "process gone", status.Reason)
}
