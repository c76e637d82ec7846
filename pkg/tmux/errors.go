package tmux

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrorCode classifies bridge failures. Callers decide whether a given
// code is fatal; the bridge never does.
type ErrorCode string

const (
	CodeTmuxNotInstalled ErrorCode = "TMUX_NOT_INSTALLED"
	CodeNoPaneID         ErrorCode = "NO_PANE_ID"
	CodePaneNotFound     ErrorCode = "PANE_NOT_FOUND"
	CodeTimeout          ErrorCode = "TIMEOUT"
	CodeSendFailed       ErrorCode = "SEND_FAILED"
	CodeSubprocessFailed ErrorCode = "SUBPROCESS_FAILED"
	CodeUnknown          ErrorCode = "UNKNOWN"
)

// BridgeError is the typed error every bridge operation returns on
// failure.
type BridgeError struct {
	Code   ErrorCode
	Op     string
	Stderr string
	Err    error
}

func (e *BridgeError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("tmux %s: %s: %s", e.Op, e.Code, strings.TrimSpace(e.Stderr))
	}
	if e.Err != nil {
		return fmt.Sprintf("tmux %s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("tmux %s: %s", e.Op, e.Code)
}

func (e *BridgeError) Unwrap() error { return e.Err }

// CodeOf extracts the ErrorCode from any error, or CodeUnknown.
func CodeOf(err error) ErrorCode {
	var be *BridgeError
	if errors.As(err, &be) {
		return be.Code
	}
	return CodeUnknown
}

// paneNotFoundMarkers are the tmux stderr fragments that mean the target
// pane or session is gone.
var paneNotFoundMarkers = []string{
	"can't find pane",
	"no such session",
	"pane not found",
}

// classify maps a subprocess failure onto the error taxonomy.
func classify(op string, stderr string, err error) *BridgeError {
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return &BridgeError{Code: CodeTmuxNotInstalled, Op: op, Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &BridgeError{Code: CodeTimeout, Op: op, Err: err}
	}

	lower := strings.ToLower(stderr)
	for _, marker := range paneNotFoundMarkers {
		if strings.Contains(lower, marker) {
			return &BridgeError{Code: CodePaneNotFound, Op: op, Stderr: stderr, Err: err}
		}
	}

	if err != nil {
		return &BridgeError{Code: CodeSubprocessFailed, Op: op, Stderr: stderr, Err: err}
	}
	return &BridgeError{Code: CodeUnknown, Op: op, Stderr: stderr}
}
