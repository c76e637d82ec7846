package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayload_RequiredFields(t *testing.T) {
	err := ValidatePayload(EventTypeStateTransition, map[string]interface{}{
		"from_state": "commanded",
		"to_state":   "processing",
		"trigger":    "agent:progress",
	})
	assert.NoError(t, err)

	err = ValidatePayload(EventTypeStateTransition, map[string]interface{}{
		"from_state": "commanded",
		"to_state":   "processing",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trigger")
}

func TestValidatePayload_RejectsUnexpectedFields(t *testing.T) {
	err := ValidatePayload(EventTypeSessionEnded, map[string]interface{}{
		"session_uuid": "abc",
		"reason":       "stale",
		"extra":        true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected field")
}

func TestValidatePayload_UnknownTypeRejected(t *testing.T) {
	err := ValidatePayload("made_up_event", map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event type")
}

func TestValidatePayload_OptionalFieldsAccepted(t *testing.T) {
	err := ValidatePayload(EventTypeTurnDetected, map[string]interface{}{
		"actor":            "agent",
		"intent":           "question",
		"text_preview":     "Should I delete this file?",
		"timestamp_source": "jsonl",
	})
	assert.NoError(t, err)
}

func TestKnownEventTypes_Closed(t *testing.T) {
	types := KnownEventTypes()
	assert.Len(t, types, 14)
	assert.Contains(t, types, EventTypeStateTransitionRejected)
	assert.Contains(t, types, EventTypeReconnectionAmbiguous)
}
