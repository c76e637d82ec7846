// Package events provides the durable event log writer, the PostgreSQL
// NOTIFY bridge between processes, and the SSE broadcaster.
//
// Two event vocabularies live here and must not be confused:
//
//   - Durable event kinds (EventType…) are the closed enumeration stored
//     in the events table. They are the audit log.
//   - Stream types (Stream…) are what SSE subscribers receive. Some are
//     1:1 projections of durable events, others (card_refresh) are
//     transient notifications that are never persisted.
package events

// Durable event kinds, mirroring the events.event_type enum.
const (
	EventTypeSessionRegistered       = "session_registered"
	EventTypeSessionEnded            = "session_ended"
	EventTypeTurnDetected            = "turn_detected"
	EventTypeStateTransition         = "state_transition"
	EventTypeStateTransitionRejected = "state_transition_rejected"
	EventTypeHookReceived            = "hook_received"
	EventTypeHookSessionStart        = "hook_session_start"
	EventTypeHookSessionEnd          = "hook_session_end"
	EventTypeHookUserPrompt          = "hook_user_prompt"
	EventTypeHookStop                = "hook_stop"
	EventTypeHookNotification        = "hook_notification"
	EventTypeHookPostToolUse         = "hook_post_tool_use"
	EventTypeQuestionDetected        = "question_detected"
	EventTypeReconnectionAmbiguous   = "reconnection_ambiguous"
)

// Stream types delivered to SSE subscribers.
const (
	StreamSessionCreated               = "session_created"
	StreamSessionEnded                 = "session_ended"
	StreamCardRefresh                  = "card_refresh"
	StreamStateTransition              = "state_transition"
	StreamObjectiveChanged             = "objective_changed"
	StreamPriorityUpdated              = "priority_updated"
	StreamActivityMetricUpdated        = "activity_metric_updated"
	StreamAPICallLogged                = "api_call_logged"
	StreamCommanderAvailabilityChanged = "commander_availability_changed"
)

// NotifyChannel is the single PostgreSQL NOTIFY channel the HTTP process
// and the standalone watcher share. Every stream message crosses it.
const NotifyChannel = "headspace_stream"
