package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/services"
)

// ctxKeyAuthenticated marks requests that passed bearer auth, for the
// audit log.
const ctxKeyAuthenticated = "headspace.authenticated"

// requestLog emits one slog line per request.
func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if c.Writer.Status() >= 500 {
			slog.Error("HTTP request failed", attrs...)
		} else {
			slog.Debug("HTTP request", attrs...)
		}
	}
}

// bodyCapture tees the response body for the audit trail.
type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// redactedHeaders never reach the audit rows verbatim.
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

// auditLog persists one ApiCallLog row per request under the given path
// prefixes. The write is asynchronous and best-effort; the audit trail
// never slows or fails a request.
func (s *Server) auditLog(prefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				matched = true
				break
			}
		}
		// The SSE stream is long-lived; auditing it would hold the row
		// open for the connection's lifetime.
		if !matched || strings.HasSuffix(c.Request.URL.Path, "/events/stream") {
			c.Next()
			return
		}

		var reqBody string
		if c.Request.Body != nil {
			raw, err := io.ReadAll(c.Request.Body)
			if err == nil {
				reqBody = string(raw)
				c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			}
		}

		headers := make(map[string]string, len(c.Request.Header))
		for name := range c.Request.Header {
			if redactedHeaders[http.CanonicalHeaderKey(name)] {
				headers[name] = "[redacted]"
				continue
			}
			headers[name] = c.Request.Header.Get(name)
		}

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture

		start := time.Now()
		c.Next()

		entry := services.LogCallInput{
			Method:         c.Request.Method,
			Path:           c.Request.URL.Path,
			Status:         capture.Status(),
			LatencyMS:      int(time.Since(start).Milliseconds()),
			Authenticated:  c.GetBool(ctxKeyAuthenticated),
			RequestHeaders: headers,
			RequestBody:    reqBody,
			ResponseBody:   capture.buf.String(),
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.deps.APILogs.Log(ctx, entry); err != nil {
				slog.Warn("Failed to write api call log", "error", err)
				return
			}
			if s.deps.Publisher != nil {
				s.deps.Publisher.Publish(ctx, events.StreamMessage{
					Type: events.StreamAPICallLogged,
					Data: map[string]interface{}{
						"method": entry.Method,
						"path":   entry.Path,
						"status": entry.Status,
					},
				})
			}
		}()
	}
}

// corsForOrigins applies the remote-agent CORS policy.
func corsForOrigins(allowed []string) gin.HandlerFunc {
	allowedSet := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		allowedSet[origin] = true
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowedSet[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Header("Vary", "Origin")
		}
		c.Next()
	}
}

// remoteAgentAuth requires a bearer token scoped to the agent in the
// path.
func (s *Server) remoteAgentAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid_agent_id", "agent id must be an integer", false)
			return
		}

		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || token == c.GetHeader("Authorization") {
			writeError(c, http.StatusUnauthorized, "missing_token", "bearer token required", false)
			return
		}
		if _, ok := s.deps.Tokens.ValidateForAgent(token, agentID); !ok {
			writeError(c, http.StatusUnauthorized, "invalid_token", "token does not grant access to this agent", false)
			return
		}

		c.Set(ctxKeyAuthenticated, true)
		c.Next()
	}
}
