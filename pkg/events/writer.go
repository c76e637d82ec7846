package events

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/headspace-sh/headspace/ent"
	entevent "github.com/headspace-sh/headspace/ent/event"
)

// WriteResult reports the outcome of one event write.
type WriteResult struct {
	Success bool
	EventID int
	Retries int
	Err     error
}

// WriteOption attaches foreign keys or a caller transaction to a write.
type WriteOption func(*writeParams)

type writeParams struct {
	tx        *ent.Tx
	projectID *int
	agentID   *int
	commandID *int
	turnID    *int
}

// WithTx switches the writer to pass-through mode: the event is created
// on the caller's transaction and NOT committed here, so a hook handler
// can bundle turn creation, the state change, and the event into one
// atomic commit.
func WithTx(tx *ent.Tx) WriteOption { return func(p *writeParams) { p.tx = tx } }

// WithProject attaches the project foreign key.
func WithProject(id int) WriteOption { return func(p *writeParams) { p.projectID = &id } }

// WithAgent attaches the agent foreign key.
func WithAgent(id int) WriteOption { return func(p *writeParams) { p.agentID = &id } }

// WithCommand attaches the command foreign key.
func WithCommand(id int) WriteOption { return func(p *writeParams) { p.commandID = &id } }

// WithTurn attaches the turn foreign key.
func WithTurn(id int) WriteOption { return func(p *writeParams) { p.turnID = &id } }

// Metrics are the writer's running counters.
type Metrics struct {
	Total              int64      `json:"total"`
	Successful         int64      `json:"successful"`
	Failed             int64      `json:"failed"`
	LastWriteTimestamp *time.Time `json:"last_write_timestamp,omitempty"`
	LastError          string     `json:"last_error,omitempty"`
}

// Writer is the validated, retrying, session-pass-through writer for the
// durable event log.
type Writer struct {
	client        *ent.Client
	retryAttempts int
	retryDelay    time.Duration

	mu      sync.Mutex
	metrics Metrics
}

// NewWriter creates an event writer. retryDelay is the base of the
// exponential backoff applied to transient failures in own-session mode.
func NewWriter(client *ent.Client, retryAttempts int, retryDelay time.Duration) *Writer {
	return &Writer{
		client:        client,
		retryAttempts: retryAttempts,
		retryDelay:    retryDelay,
	}
}

// Write validates and persists one durable event. Invalid payloads are
// rejected before any I/O, counted as failures, and never written.
func (w *Writer) Write(ctx context.Context, eventType string, payload map[string]interface{}, opts ...WriteOption) WriteResult {
	var params writeParams
	for _, opt := range opts {
		opt(&params)
	}

	if err := ValidatePayload(eventType, payload); err != nil {
		w.record(false, err)
		return WriteResult{Err: err}
	}

	if params.tx != nil {
		evt, err := w.create(ctx, params.tx.Event.Create(), eventType, payload, params)
		if err != nil {
			w.record(false, err)
			return WriteResult{Err: fmt.Errorf("failed to write event (pass-through): %w", err)}
		}
		w.record(true, nil)
		return WriteResult{Success: true, EventID: evt.ID}
	}

	// Own-session mode: short-lived create with retry on transient errors.
	var lastErr error
	for attempt := 0; attempt <= w.retryAttempts; attempt++ {
		if attempt > 0 {
			delay := w.retryDelay * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				w.record(false, ctx.Err())
				return WriteResult{Retries: attempt - 1, Err: ctx.Err()}
			case <-time.After(delay):
			}
		}

		evt, err := w.create(ctx, w.client.Event.Create(), eventType, payload, params)
		if err == nil {
			w.record(true, nil)
			return WriteResult{Success: true, EventID: evt.ID, Retries: attempt}
		}
		lastErr = err

		if !isTransient(err) {
			break
		}
		slog.Warn("Transient event write failure, retrying",
			"event_type", eventType, "attempt", attempt+1, "error", err)
	}

	w.record(false, lastErr)
	return WriteResult{Retries: w.retryAttempts, Err: fmt.Errorf("failed to write event: %w", lastErr)}
}

// create applies payload and foreign keys to a builder and saves it.
func (w *Writer) create(ctx context.Context, builder *ent.EventCreate, eventType string, payload map[string]interface{}, params writeParams) (*ent.Event, error) {
	builder = builder.
		SetEventType(entevent.EventType(eventType)).
		SetPayload(payload)

	if params.projectID != nil {
		builder = builder.SetProjectID(*params.projectID)
	}
	if params.agentID != nil {
		builder = builder.SetAgentID(*params.agentID)
	}
	if params.commandID != nil {
		builder = builder.SetCommandID(*params.commandID)
	}
	if params.turnID != nil {
		builder = builder.SetTurnID(*params.turnID)
	}

	return builder.Save(ctx)
}

// Metrics returns a snapshot of the running counters.
func (w *Writer) Metrics() Metrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

func (w *Writer) record(success bool, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.metrics.Total++
	if success {
		w.metrics.Successful++
		now := time.Now()
		w.metrics.LastWriteTimestamp = &now
	} else {
		w.metrics.Failed++
		if err != nil {
			w.metrics.LastError = err.Error()
		}
	}
}

// isTransient reports whether an error is worth retrying: connection
// loss and serialisation/deadlock failures, never validation or
// constraint violations.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if ent.IsConstraintError(err) || ent.IsValidationError(err) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"deadlock detected",
		"serialization failure",
		"bad connection",
		"i/o timeout",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
