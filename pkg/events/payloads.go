package events

import "fmt"

// payloadSpec declares the field contract for one durable event kind.
// Required fields must be present; fields outside required ∪ optional
// are rejected. Validation happens before any I/O.
type payloadSpec struct {
	required []string
	optional []string
}

var payloadSpecs = map[string]payloadSpec{
	EventTypeSessionRegistered: {
		required: []string{"session_uuid", "project_path"},
		optional: []string{"working_directory", "pane_id"},
	},
	EventTypeSessionEnded: {
		required: []string{"session_uuid", "reason"},
		optional: []string{"ended_at"},
	},
	EventTypeTurnDetected: {
		required: []string{"actor", "intent"},
		optional: []string{"text_preview", "timestamp_source", "jsonl_entry_hash", "is_internal"},
	},
	EventTypeStateTransition: {
		required: []string{"from_state", "to_state", "trigger"},
		optional: []string{"confidence"},
	},
	EventTypeStateTransitionRejected: {
		required: []string{"from_state", "trigger", "reason"},
		optional: []string{"actor", "intent"},
	},
	EventTypeHookReceived: {
		required: []string{"hook", "session_uuid"},
		optional: []string{"working_directory"},
	},
	EventTypeHookSessionStart: {
		required: []string{"session_uuid"},
		optional: []string{"working_directory", "source"},
	},
	EventTypeHookSessionEnd: {
		required: []string{"session_uuid"},
		optional: []string{"reason"},
	},
	EventTypeHookUserPrompt: {
		required: []string{"session_uuid"},
		optional: []string{"prompt_preview"},
	},
	EventTypeHookStop: {
		required: []string{"session_uuid"},
		optional: []string{"stop_hook_active"},
	},
	EventTypeHookNotification: {
		required: []string{"session_uuid"},
		optional: []string{"message"},
	},
	EventTypeHookPostToolUse: {
		required: []string{"session_uuid", "tool_name"},
		optional: []string{"tool_error", "sanitized"},
	},
	EventTypeQuestionDetected: {
		required: []string{"question_preview"},
		optional: []string{"turn_id"},
	},
	EventTypeReconnectionAmbiguous: {
		required: []string{"working_directory", "candidate_panes"},
		optional: []string{},
	},
}

// ValidatePayload checks a payload against the declared contract for its
// event kind. Unknown event kinds are rejected outright — the
// enumeration is closed.
func ValidatePayload(eventType string, payload map[string]interface{}) error {
	spec, ok := payloadSpecs[eventType]
	if !ok {
		return fmt.Errorf("unknown event type %q", eventType)
	}

	for _, field := range spec.required {
		if _, present := payload[field]; !present {
			return fmt.Errorf("event %s: missing required field %q", eventType, field)
		}
	}

	allowed := make(map[string]bool, len(spec.required)+len(spec.optional))
	for _, f := range spec.required {
		allowed[f] = true
	}
	for _, f := range spec.optional {
		allowed[f] = true
	}
	for field := range payload {
		if !allowed[field] {
			return fmt.Errorf("event %s: unexpected field %q", eventType, field)
		}
	}

	return nil
}

// KnownEventTypes returns the closed set of durable event kinds, for
// contract tests.
func KnownEventTypes() []string {
	out := make([]string, 0, len(payloadSpecs))
	for t := range payloadSpecs {
		out = append(out, t)
	}
	return out
}
