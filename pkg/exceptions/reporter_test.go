package exceptions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_PostsReport(t *testing.T) {
	var received atomic.Int32
	var last atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var report Report
		require.NoError(t, json.NewDecoder(r.Body).Decode(&report))
		last.Store(report)
		received.Add(1)
	}))
	defer server.Close()

	reporter := NewReporter(Config{WebhookURL: server.URL, MinInterval: time.Hour})
	reporter.Notify("reaper", "sweep panicked", map[string]interface{}{"agent_id": 7})

	require.Eventually(t, func() bool { return received.Load() == 1 },
		2*time.Second, 10*time.Millisecond)
	report := last.Load().(Report)
	assert.Equal(t, "reaper", report.Component)
	assert.Equal(t, "sweep panicked", report.Message)
	assert.EqualValues(t, 7, report.Detail["agent_id"])
}

func TestNotify_RateLimited(t *testing.T) {
	var received atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
	}))
	defer server.Close()

	reporter := NewReporter(Config{WebhookURL: server.URL, MinInterval: time.Hour})
	for i := 0; i < 5; i++ {
		reporter.Notify("scorer", "round failed", nil)
	}

	require.Eventually(t, func() bool { return received.Load() == 1 },
		2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.EqualValues(t, 1, received.Load(), "burst collapses to one report")
}

func TestNotify_NoWebhookIsNoOp(t *testing.T) {
	reporter := NewReporter(Config{})
	assert.NotPanics(t, func() { reporter.Notify("api", "boom", nil) })

	var nilReporter *Reporter
	assert.NotPanics(t, func() { nilReporter.Notify("api", "boom", nil) })
}
