package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// StreamMessage is one message on the SSE bus. Type is a Stream…
// constant; Data is the type-specific payload.
type StreamMessage struct {
	Type      string                 `json:"type"`
	AgentID   *int                   `json:"agent_id,omitempty"`
	Reason    string                 `json:"reason,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Publisher pushes stream messages onto the shared NOTIFY channel so
// that both the HTTP process and the standalone watcher process reach
// every dashboard subscriber, whichever process observed the change.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a publisher over the shared connection pool.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// maxNotifyPayload keeps messages inside PostgreSQL's 8000-byte NOTIFY
// limit with headroom.
const maxNotifyPayload = 7900

// Publish broadcasts one stream message. Best-effort: failures are
// logged, never returned to the hot path.
func (p *Publisher) Publish(ctx context.Context, msg StreamMessage) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		slog.Error("Failed to marshal stream message", "type", msg.Type, "error", err)
		return
	}
	if len(raw) > maxNotifyPayload {
		raw, err = truncateMessage(msg)
		if err != nil {
			slog.Error("Failed to truncate stream message", "type", msg.Type, "error", err)
			return
		}
	}

	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", NotifyChannel, string(raw)); err != nil {
		slog.Warn("pg_notify failed", "type", msg.Type, "error", err)
	}
}

// truncateMessage rebuilds an oversized message with only its routing
// fields plus a truncation marker; the client refetches details over
// REST.
func truncateMessage(msg StreamMessage) ([]byte, error) {
	truncated := StreamMessage{
		Type:      msg.Type,
		AgentID:   msg.AgentID,
		Reason:    msg.Reason,
		Timestamp: msg.Timestamp,
		Data:      map[string]interface{}{"truncated": true},
	}
	raw, err := json.Marshal(truncated)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal truncated message: %w", err)
	}
	return raw, nil
}
