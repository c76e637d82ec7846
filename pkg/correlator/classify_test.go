package correlator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/headspace-sh/headspace/pkg/statemachine"
)

func TestClassifyUser(t *testing.T) {
	cls := classifyUser("Fix the login flow", statemachine.StateIdle)
	assert.Equal(t, statemachine.IntentCommand, cls.Intent)
	assert.False(t, cls.IsInternal)

	cls = classifyUser("Yes, both environments.", statemachine.StateAwaitingInput)
	assert.Equal(t, statemachine.IntentAnswer, cls.Intent)

	cls = classifyUser("Another task please", statemachine.StateProcessing)
	assert.Equal(t, statemachine.IntentCommand, cls.Intent, "double-prompting is still a command")
}

func TestClassifyUser_InternalMarker(t *testing.T) {
	cls := classifyUser(InternalMarker+" persona briefing follows", statemachine.StateIdle)
	assert.True(t, cls.IsInternal)

	cls = classifyUser("  "+InternalMarker+" with leading space", statemachine.StateProcessing)
	assert.True(t, cls.IsInternal)
}

func TestClassifyAgent(t *testing.T) {
	cls := classifyAgent("Reading auth.go and tracing the session check.")
	assert.Equal(t, statemachine.IntentProgress, cls.Intent)

	cls = classifyAgent("Should I also migrate the staging config?")
	assert.Equal(t, statemachine.IntentQuestion, cls.Intent)

	// The question mark must be on the last non-empty line.
	cls = classifyAgent("Is this right?\nActually, I checked: it is.")
	assert.Equal(t, statemachine.IntentProgress, cls.Intent)

	cls = classifyAgent("Two options here.\nWhich do you prefer?\n\n")
	assert.Equal(t, statemachine.IntentQuestion, cls.Intent)
}

func TestHashRing_DuplicateWithinTTL(t *testing.T) {
	ring := newHashRing(time.Minute, 4)

	assert.False(t, ring.Seen(1, "h1"))
	ring.Record(1, "h1")
	assert.True(t, ring.Seen(1, "h1"), "a recorded hash is a duplicate")
	assert.False(t, ring.Seen(2, "h1"), "rings are per-agent")
	assert.False(t, ring.Seen(1, ""), "empty hash never matches")
}

func TestHashRing_SeenDoesNotRecord(t *testing.T) {
	ring := newHashRing(time.Minute, 4)

	// A failed commit never calls Record, so a redelivery of the same
	// content must not be treated as a duplicate.
	assert.False(t, ring.Seen(1, "h1"))
	assert.False(t, ring.Seen(1, "h1"), "checking alone leaves no trace")

	ring.Record(1, "h1")
	assert.True(t, ring.Seen(1, "h1"))
}

func TestHashRing_BoundedEviction(t *testing.T) {
	ring := newHashRing(time.Minute, 2)

	ring.Record(1, "a")
	ring.Record(1, "b")
	ring.Record(1, "c") // evicts "a"

	assert.False(t, ring.Seen(1, "a"), "evicted hash is seen as new")
	assert.True(t, ring.Seen(1, "c"))
}

func TestHashRing_Forget(t *testing.T) {
	ring := newHashRing(time.Minute, 4)
	ring.Record(1, "a")
	ring.Forget(1)
	assert.False(t, ring.Seen(1, "a"))
}
