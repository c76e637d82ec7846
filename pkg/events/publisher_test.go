package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateMessage_KeepsRoutingFields(t *testing.T) {
	agentID := 42
	msg := StreamMessage{
		Type:    StreamStateTransition,
		AgentID: &agentID,
		Reason:  "hook",
		Data: map[string]interface{}{
			"blob": strings.Repeat("x", 20000),
		},
	}

	raw, err := truncateMessage(msg)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(raw), maxNotifyPayload)

	var out StreamMessage
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, StreamStateTransition, out.Type)
	require.NotNil(t, out.AgentID)
	assert.Equal(t, 42, *out.AgentID)
	assert.Equal(t, "hook", out.Reason)
	assert.Equal(t, true, out.Data["truncated"])
	assert.NotContains(t, out.Data, "blob")
}
