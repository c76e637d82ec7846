package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8700, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.FileWatcher.HookActiveInterval)
	assert.Equal(t, 2*time.Second, cfg.FileWatcher.FallbackInterval)
	assert.Equal(t, 20, cfg.Correlator.CommandsPerMinute)
	assert.Equal(t, 14*24*time.Hour, cfg.Retention.EventTTL)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9100
file_watcher:
  fallback_interval: 5s
correlator:
  commands_per_minute: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.FileWatcher.FallbackInterval)
	assert.Equal(t, 5, cfg.Correlator.CommandsPerMinute)

	// Untouched sections keep their defaults.
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 30*time.Minute, cfg.FileWatcher.InactivityTimeout)
	assert.Equal(t, 25*time.Second, cfg.SSE.HeartbeatInterval)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("HEADSPACE_TEST_TOKEN", "s3cret")

	path := writeConfig(t, `
voice_bridge:
  enabled: true
  auth_token: "{{.HEADSPACE_TEST_TOKEN}}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.VoiceBridge.AuthToken)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "port out of range",
			content: "server:\n  port: 99999\n",
		},
		{
			name:    "hook interval shorter than fallback",
			content: "file_watcher:\n  hook_active_interval: 1s\n  fallback_interval: 10s\n",
		},
		{
			name:    "voice bridge without token",
			content: "voice_bridge:\n  enabled: true\n",
		},
		{
			name:    "remote agents without origins",
			content: "remote_agents:\n  enabled: true\n",
		},
		{
			name:    "test database guard",
			content: "database:\n  url: postgres://u:p@localhost:5432/headspace_test\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [not a mapping"))
	assert.Error(t, err)
}

func TestListenAddr(t *testing.T) {
	cfg := defaults()
	assert.Equal(t, "127.0.0.1:8700", cfg.ListenAddr())
}

func TestExpandProjectsRoot(t *testing.T) {
	cfg := defaults()
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".claude", "projects"), cfg.ExpandProjectsRoot())

	cfg.FileWatcher.ProjectsRoot = "/var/lib/headspace/projects"
	assert.Equal(t, "/var/lib/headspace/projects", cfg.ExpandProjectsRoot())
}

func TestReloader_AppliesHotFields(t *testing.T) {
	path := writeConfig(t, "voice_bridge:\n  enabled: false\n  auth_token: first\n")

	var mu sync.Mutex
	var got []HotConfig
	r, err := NewReloader(path, func(hc HotConfig) {
		mu.Lock()
		got = append(got, hc)
		mu.Unlock()
	})
	require.NoError(t, err)
	defer r.Stop()

	require.NoError(t, os.WriteFile(path, []byte("voice_bridge:\n  enabled: false\n  auth_token: second\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0 && got[len(got)-1].VoiceAuthToken == "second"
	}, 5*time.Second, 50*time.Millisecond)

	mu.Lock()
	last := got[len(got)-1]
	mu.Unlock()
	assert.Equal(t, 60*time.Second, last.HookActiveInterval)
	assert.Equal(t, 2*time.Second, last.FallbackInterval)
}

func TestReloader_InvalidFileKeepsPrevious(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")

	var mu sync.Mutex
	applied := 0
	r, err := NewReloader(path, func(HotConfig) {
		mu.Lock()
		applied++
		mu.Unlock()
	})
	require.NoError(t, err)
	defer r.Stop()

	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 99999\n"), 0o644))

	time.Sleep(2 * reloadDebounce)
	mu.Lock()
	assert.Zero(t, applied, "invalid config must not be applied")
	mu.Unlock()
}
