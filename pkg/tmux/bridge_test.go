package tmux

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// call records one tmux invocation seen by the fake runner.
type call struct {
	args []string
}

// fakeRunner scripts the subprocess layer.
type fakeRunner struct {
	mu     sync.Mutex
	calls  []call
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) run(_ context.Context, args ...string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{args: args})
	return f.stdout, f.stderr, f.err
}

func newTestBridge(runner *fakeRunner) *Bridge {
	b := NewBridge(DefaultConfig())
	b.run = runner.run
	b.sleep = func(time.Duration) {}
	return b
}

func TestSendText_LiteralThenEnter(t *testing.T) {
	runner := &fakeRunner{}
	b := newTestBridge(runner)

	require.NoError(t, b.SendText(context.Background(), "%1", "fix the build -- now"))

	require.Len(t, runner.calls, 2)
	assert.Equal(t,
		[]string{"send-keys", "-t", "%1", "-l", "--", "fix the build -- now"},
		runner.calls[0].args, "text goes literal, after the option terminator")
	assert.Equal(t, []string{"send-keys", "-t", "%1", "Enter"}, runner.calls[1].args)
}

func TestSendText_EmptyPane(t *testing.T) {
	b := newTestBridge(&fakeRunner{})
	err := b.SendText(context.Background(), "", "hello")
	assert.Equal(t, CodeNoPaneID, CodeOf(err))
}

func TestSendText_PaneGone(t *testing.T) {
	runner := &fakeRunner{stderr: "can't find pane: %7", err: errors.New("exit status 1")}
	b := newTestBridge(runner)

	err := b.SendText(context.Background(), "%7", "hello")
	assert.Equal(t, CodePaneNotFound, CodeOf(err))
}

func TestSendText_GenericFailureIsSendFailed(t *testing.T) {
	runner := &fakeRunner{stderr: "server exited unexpectedly", err: errors.New("exit status 1")}
	b := newTestBridge(runner)

	err := b.SendText(context.Background(), "%1", "hello")
	assert.Equal(t, CodeSendFailed, CodeOf(err))
}

func TestSendKeys_OneCallPerKey(t *testing.T) {
	runner := &fakeRunner{}
	b := newTestBridge(runner)

	require.NoError(t, b.SendKeys(context.Background(), "%2", "Escape", "C-c"))

	require.Len(t, runner.calls, 2)
	assert.Equal(t, []string{"send-keys", "-t", "%2", "Escape"}, runner.calls[0].args)
	assert.Equal(t, []string{"send-keys", "-t", "%2", "C-c"}, runner.calls[1].args)
}

func TestCapturePane(t *testing.T) {
	runner := &fakeRunner{stdout: "line one\nline two\n"}
	b := newTestBridge(runner)

	out, err := b.CapturePane(context.Background(), "%3", 30)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", out)
	assert.Equal(t,
		[]string{"capture-pane", "-p", "-t", "%3", "-S", "-30"},
		runner.calls[0].args)
}

func TestListPanes_ParsesFormat(t *testing.T) {
	runner := &fakeRunner{stdout: "" +
		"%1\ths-api-a1b2\tclaude\t/home/dev/api\t4021\n" +
		"%4\tscratch\tzsh\t/home/dev\t990\n" +
		"malformed line\n"}
	b := newTestBridge(runner)

	panes, err := b.ListPanes(context.Background())
	require.NoError(t, err)
	require.Len(t, panes, 2)
	assert.Equal(t, PaneInfo{
		PaneID:           "%1",
		SessionName:      "hs-api-a1b2",
		CurrentCommand:   "claude",
		WorkingDirectory: "/home/dev/api",
		PID:              4021,
	}, panes[0])
	assert.Equal(t, "zsh", panes[1].CurrentCommand)
}

func TestCheckHealth(t *testing.T) {
	runner := &fakeRunner{stdout: "" +
		"%1\ths-api-a1b2\tclaude\t/home/dev/api\t4021\n" +
		"%4\tscratch\tzsh\t/home/dev\t990\n"}
	b := newTestBridge(runner)
	ctx := context.Background()

	h, err := b.CheckHealth(ctx, "%1")
	require.NoError(t, err)
	assert.True(t, h.Available)
	assert.True(t, h.Running)
	assert.Equal(t, 4021, h.PID)

	h, err = b.CheckHealth(ctx, "%4")
	require.NoError(t, err)
	assert.True(t, h.Available)
	assert.False(t, h.Running, "a shell pane is alive but not an agent REPL")

	h, err = b.CheckHealth(ctx, "%99")
	require.NoError(t, err)
	assert.False(t, h.Available)
}

func TestNewSession(t *testing.T) {
	runner := &fakeRunner{stdout: "%12\n"}
	b := newTestBridge(runner)

	pane, err := b.NewSession(context.Background(), "hs-api-a1b2", "/home/dev/api", "claude")
	require.NoError(t, err)
	assert.Equal(t, "%12", pane)
	assert.Equal(t, []string{
		"new-session", "-d", "-s", "hs-api-a1b2", "-c", "/home/dev/api",
		"-P", "-F", "#{pane_id}", "claude",
	}, runner.calls[0].args)
}

func TestClassify_Taxonomy(t *testing.T) {
	assert.Equal(t, CodeTmuxNotInstalled,
		classify("x", "", fmt.Errorf("wrapped: %w", exec.ErrNotFound)).Code)
	assert.Equal(t, CodeTimeout,
		classify("x", "", context.DeadlineExceeded).Code)
	assert.Equal(t, CodePaneNotFound,
		classify("x", "No such session: hs-gone", errors.New("exit 1")).Code)
	assert.Equal(t, CodeSubprocessFailed,
		classify("x", "boom", errors.New("exit 1")).Code)
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
}

func TestSendLock_SerialisesPerPane(t *testing.T) {
	var mu sync.Mutex
	active := map[string]int{}
	maxActive := map[string]int{}

	runner := &fakeRunner{}
	b := newTestBridge(runner)
	b.run = func(_ context.Context, args ...string) (string, string, error) {
		pane := args[2]
		mu.Lock()
		active[pane]++
		if active[pane] > maxActive[pane] {
			maxActive[pane] = active[pane]
		}
		mu.Unlock()
		time.Sleep(2 * time.Millisecond)
		mu.Lock()
		active[pane]--
		mu.Unlock()
		return "", "", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		pane := fmt.Sprintf("%%%d", i%2)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.SendText(context.Background(), pane, "ping")
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, maxActive["%0"], 1, "sends to one pane never interleave")
	assert.LessOrEqual(t, maxActive["%1"], 1)
}

func TestParseContextUsage(t *testing.T) {
	usage := ParseContextUsage("some output\n[ctx: 42% used, 31k remaining]\n> ")
	require.NotNil(t, usage)
	assert.Equal(t, 42, usage.PercentUsed)
	assert.Equal(t, "31k", usage.RemainingTokens)

	assert.Nil(t, ParseContextUsage("no status line here"))
	assert.Nil(t, ParseContextUsage("[ctx: 250% used, 1k remaining]"), "impossible percentage rejected")

	// ANSI colour codes around the status line are stripped first.
	colored := "\x1b[2m[ctx: 9% used, 88k remaining]\x1b[0m"
	usage = ParseContextUsage(colored)
	require.NotNil(t, usage)
	assert.Equal(t, 9, usage.PercentUsed)

	// The freshest render wins when the line scrolled.
	usage = ParseContextUsage("[ctx: 10% used, 90k remaining]\n[ctx: 12% used, 88k remaining]")
	require.NotNil(t, usage)
	assert.Equal(t, 12, usage.PercentUsed)
}
