// Package tmux is the terminal bridge: it delivers text and key presses
// to agent panes, captures pane contents, and reports pane health.
package tmux

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config holds the bridge's tunables.
type Config struct {
	// SubprocessTimeout bounds every tmux invocation.
	SubprocessTimeout time.Duration
	// TextEnterDelay separates the literal-text send from the Enter key,
	// compensating for the REPL's paste-detection heuristic.
	TextEnterDelay time.Duration
	// SequentialKeyDelay separates consecutive SendKeys presses.
	SequentialKeyDelay time.Duration
}

// DefaultConfig matches the configuration document defaults.
func DefaultConfig() Config {
	return Config{
		SubprocessTimeout:  5 * time.Second,
		TextEnterDelay:     150 * time.Millisecond,
		SequentialKeyDelay: 50 * time.Millisecond,
	}
}

// runFunc executes one tmux invocation. Replaceable in tests.
type runFunc func(ctx context.Context, args ...string) (stdout, stderr string, err error)

// Bridge sends input to tmux panes. Sends to the same pane are
// serialised by a per-pane mutex; sends to different panes run
// concurrently.
type Bridge struct {
	cfg Config
	run runFunc

	mu        sync.Mutex
	paneLocks map[string]*sync.Mutex

	sleep func(time.Duration)
}

// NewBridge creates a bridge that shells out to the tmux binary.
func NewBridge(cfg Config) *Bridge {
	b := &Bridge{
		cfg:       cfg,
		paneLocks: make(map[string]*sync.Mutex),
		sleep:     time.Sleep,
	}
	b.run = b.execTmux
	return b
}

// PaneInfo describes one pane from ListPanes.
type PaneInfo struct {
	PaneID           string `json:"pane_id"`
	SessionName      string `json:"session_name"`
	CurrentCommand   string `json:"current_command"`
	WorkingDirectory string `json:"working_directory"`
	PID              int    `json:"pid"`
}

// Health is the result of CheckHealth.
type Health struct {
	Available bool `json:"available"`
	Running   bool `json:"running"`
	PID       int  `json:"pid,omitempty"`
}

// replCommands are the pane commands that count as "agent REPL running".
var replCommands = map[string]bool{
	"claude": true,
	"node":   true,
}

// IsREPLCommand reports whether a pane's current command counts as a
// running agent REPL. Health checks and reconnection both match against
// this set.
func IsREPLCommand(cmd string) bool {
	return replCommands[cmd]
}

// SendText sends literal text to a pane followed by Enter. The two
// subprocess calls are separated by the configured delay and protected
// by the pane's send lock so concurrent handlers cannot interleave key
// streams.
func (b *Bridge) SendText(ctx context.Context, pane, text string) error {
	if pane == "" {
		return &BridgeError{Code: CodeNoPaneID, Op: "send-text"}
	}

	lock := b.sendLock(pane)
	lock.Lock()
	defer lock.Unlock()

	if _, stderr, err := b.run(ctx, "send-keys", "-t", pane, "-l", "--", text); err != nil {
		be := classify("send-text", stderr, err)
		if be.Code == CodeSubprocessFailed {
			be.Code = CodeSendFailed
		}
		return be
	}

	b.sleep(b.cfg.TextEnterDelay)

	if _, stderr, err := b.run(ctx, "send-keys", "-t", pane, "Enter"); err != nil {
		be := classify("send-text", stderr, err)
		if be.Code == CodeSubprocessFailed {
			be.Code = CodeSendFailed
		}
		return be
	}
	return nil
}

// SendKeys sends named keys (e.g. "Escape", "C-c") one subprocess call
// per key, under the pane's send lock.
func (b *Bridge) SendKeys(ctx context.Context, pane string, keys ...string) error {
	if pane == "" {
		return &BridgeError{Code: CodeNoPaneID, Op: "send-keys"}
	}

	lock := b.sendLock(pane)
	lock.Lock()
	defer lock.Unlock()

	for i, key := range keys {
		if i > 0 {
			b.sleep(b.cfg.SequentialKeyDelay)
		}
		if _, stderr, err := b.run(ctx, "send-keys", "-t", pane, key); err != nil {
			be := classify("send-keys", stderr, err)
			if be.Code == CodeSubprocessFailed {
				be.Code = CodeSendFailed
			}
			return be
		}
	}
	return nil
}

// CapturePane returns the last n rendered lines of a pane.
func (b *Bridge) CapturePane(ctx context.Context, pane string, lines int) (string, error) {
	if pane == "" {
		return "", &BridgeError{Code: CodeNoPaneID, Op: "capture-pane"}
	}

	stdout, stderr, err := b.run(ctx,
		"capture-pane", "-p", "-t", pane, "-S", fmt.Sprintf("-%d", lines))
	if err != nil {
		return "", classify("capture-pane", stderr, err)
	}
	return stdout, nil
}

// ListPanes lists every pane on the server with the fields the
// reconnection matcher needs.
func (b *Bridge) ListPanes(ctx context.Context) ([]PaneInfo, error) {
	const format = "#{pane_id}\t#{session_name}\t#{pane_current_command}\t#{pane_current_path}\t#{pane_pid}"

	stdout, stderr, err := b.run(ctx, "list-panes", "-a", "-F", format)
	if err != nil {
		return nil, classify("list-panes", stderr, err)
	}

	var panes []PaneInfo
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 5 {
			continue
		}
		pid, _ := strconv.Atoi(fields[4])
		panes = append(panes, PaneInfo{
			PaneID:           fields[0],
			SessionName:      fields[1],
			CurrentCommand:   fields[2],
			WorkingDirectory: fields[3],
			PID:              pid,
		})
	}
	return panes, nil
}

// CheckHealth combines a pane-existence check with the REPL
// process-name heuristic.
func (b *Bridge) CheckHealth(ctx context.Context, pane string) (Health, error) {
	if pane == "" {
		return Health{}, &BridgeError{Code: CodeNoPaneID, Op: "check-health"}
	}

	panes, err := b.ListPanes(ctx)
	if err != nil {
		return Health{}, err
	}

	for _, p := range panes {
		if p.PaneID == pane {
			return Health{
				Available: true,
				Running:   replCommands[p.CurrentCommand],
				PID:       p.PID,
			}, nil
		}
	}
	return Health{Available: false}, nil
}

// NewSession spawns a detached tmux session running the given command in
// the given directory, and returns the id of its single pane.
func (b *Bridge) NewSession(ctx context.Context, name, workdir, command string) (string, error) {
	stdout, stderr, err := b.run(ctx,
		"new-session", "-d", "-s", name, "-c", workdir,
		"-P", "-F", "#{pane_id}", command)
	if err != nil {
		return "", classify("new-session", stderr, err)
	}
	return strings.TrimSpace(stdout), nil
}

// ReleaseSendLock drops the pane's send lock entry. Called when an agent
// is unregistered so the map does not grow without bound.
func (b *Bridge) ReleaseSendLock(pane string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.paneLocks, pane)
}

// sendLock returns (creating if needed) the mutex for a pane.
func (b *Bridge) sendLock(pane string) *sync.Mutex {
	b.mu.Lock()
	defer b.mu.Unlock()

	lock, ok := b.paneLocks[pane]
	if !ok {
		lock = &sync.Mutex{}
		b.paneLocks[pane] = lock
	}
	return lock
}

// execTmux runs one tmux command under the subprocess timeout.
func (b *Bridge) execTmux(ctx context.Context, args ...string) (string, string, error) {
	runCtx, cancel := context.WithTimeout(ctx, b.cfg.SubprocessTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "tmux", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if runCtx.Err() == context.DeadlineExceeded {
		err = context.DeadlineExceeded
	}
	return stdout.String(), stderr.String(), err
}
