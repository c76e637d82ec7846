package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/headspace-sh/headspace/pkg/lifecycle"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/tmux"
)

// ErrorBody is the uniform nested error shape every endpoint returns.
type ErrorBody struct {
	Code              string `json:"code"`
	Message           string `json:"message"`
	Status            int    `json:"status"`
	Retryable         bool   `json:"retryable"`
	RetryAfterSeconds *int   `json:"retry_after_seconds,omitempty"`
}

// Envelope wraps ErrorBody under the "error" key.
type Envelope struct {
	Error ErrorBody `json:"error"`
}

func writeError(c *gin.Context, status int, code, message string, retryable bool) {
	c.AbortWithStatusJSON(status, Envelope{Error: ErrorBody{
		Code:      code,
		Message:   message,
		Status:    status,
		Retryable: retryable,
	}})
}

func writeRetryAfter(c *gin.Context, status int, code, message string, retryAfter int) {
	c.AbortWithStatusJSON(status, Envelope{Error: ErrorBody{
		Code:              code,
		Message:           message,
		Status:            status,
		Retryable:         true,
		RetryAfterSeconds: &retryAfter,
	}})
}

// mapServiceError maps service- and subsystem-layer errors onto the
// HTTP error envelope.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		writeError(c, http.StatusBadRequest, "validation_error", validErr.Error(), false)
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		writeError(c, http.StatusNotFound, "not_found", "resource not found", false)
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		writeError(c, http.StatusConflict, "already_exists", "resource already exists", false)
		return
	}
	if errors.Is(err, services.ErrTerminalState) {
		writeError(c, http.StatusConflict, "terminal_state", "command is complete and immutable", false)
		return
	}
	if errors.Is(err, lifecycle.ErrMultiplexerMissing) {
		writeError(c, http.StatusServiceUnavailable, "multiplexer_missing", "terminal multiplexer is not installed", true)
		return
	}

	var bridgeErr *tmux.BridgeError
	if errors.As(err, &bridgeErr) {
		switch bridgeErr.Code {
		case tmux.CodePaneNotFound, tmux.CodeNoPaneID:
			writeError(c, http.StatusUnprocessableEntity, "pane_unavailable", bridgeErr.Error(), false)
		case tmux.CodeTimeout:
			writeError(c, http.StatusGatewayTimeout, "multiplexer_timeout", bridgeErr.Error(), true)
		case tmux.CodeTmuxNotInstalled:
			writeError(c, http.StatusServiceUnavailable, "multiplexer_missing", bridgeErr.Error(), true)
		default:
			writeError(c, http.StatusBadGateway, "multiplexer_failed", bridgeErr.Error(), true)
		}
		return
	}

	slog.Error("Unexpected service error", "error", err)
	writeError(c, http.StatusInternalServerError, "internal_error", "internal server error", true)
}
