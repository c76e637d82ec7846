package reaper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// Monitor maintains the watcher's PID file. The file holds the process
// id and its mtime doubles as a liveness heartbeat: the HTTP service
// reports degraded health when the file is absent or its mtime is older
// than the stale threshold.
type Monitor struct {
	path     string
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor creates a PID-file monitor touching path every interval.
func NewMonitor(path string, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{path: path, interval: interval}
}

// Start writes the PID file and begins heartbeating its mtime.
func (m *Monitor) Start(ctx context.Context) error {
	if m.cancel != nil {
		return nil
	}
	if err := os.WriteFile(m.path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return fmt.Errorf("failed to write PID file %s: %w", m.path, err)
	}

	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go m.run(ctx)

	slog.Info("PID file written", "path", m.path, "pid", os.Getpid())
	return nil
}

// Stop halts the heartbeat and removes the PID file.
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done

	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove PID file", "path", m.path, "error", err)
	}
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			if err := os.Chtimes(m.path, now, now); err != nil {
				slog.Warn("PID file heartbeat failed", "path", m.path, "error", err)
			}
		}
	}
}

// WatcherStatus is the /health view of the watcher process.
type WatcherStatus struct {
	Running bool   `json:"running"`
	PID     int    `json:"pid,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// CheckPIDFile reports whether the watcher behind the PID file looks
// alive. staleAfter bounds how old the heartbeat mtime may be.
func CheckPIDFile(path string, staleAfter time.Duration) WatcherStatus {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return WatcherStatus{Reason: "pid file absent"}
	}
	if err != nil {
		return WatcherStatus{Reason: fmt.Sprintf("pid file unreadable: %v", err)}
	}
	if staleAfter > 0 && time.Since(info.ModTime()) > staleAfter {
		return WatcherStatus{Reason: "pid file stale"}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return WatcherStatus{Reason: fmt.Sprintf("pid file unreadable: %v", err)}
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || pid <= 0 {
		return WatcherStatus{Reason: "pid file malformed"}
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return WatcherStatus{PID: pid, Reason: "process gone"}
	}
	if err := proc.Signal(syscall.Signal(0)); err != nil {
		return WatcherStatus{PID: pid, Reason: "process gone"}
	}
	return WatcherStatus{Running: true, PID: pid}
}
