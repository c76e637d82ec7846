package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTurn_UserCommandAlwaysCreatesSibling(t *testing.T) {
	for _, from := range []State{StateIdle, StateCommanded, StateProcessing, StateAwaitingInput, StateComplete} {
		result := ValidateTurn(from, ActorUser, IntentCommand)
		assert.True(t, result.CreateCommand, "from %s", from)
		assert.False(t, result.Valid, "a sibling create never mutates the current command")
		assert.Equal(t, "user_command", result.Trigger)
	}
}

func TestValidateTurn_AnswerOnlyFromAwaitingInput(t *testing.T) {
	result := ValidateTurn(StateAwaitingInput, ActorUser, IntentAnswer)
	require.True(t, result.Valid)
	assert.Equal(t, StateProcessing, result.To)

	for _, from := range []State{StateIdle, StateCommanded, StateProcessing, StateComplete} {
		assert.False(t, ValidateTurn(from, ActorUser, IntentAnswer).Valid, "from %s", from)
	}
}

func TestValidateTurn_ProgressSelfLoop(t *testing.T) {
	first := ValidateTurn(StateCommanded, ActorAgent, IntentProgress)
	require.True(t, first.Valid)
	assert.Equal(t, StateProcessing, first.To)
	assert.False(t, first.SelfLoop)

	loop := ValidateTurn(StateProcessing, ActorAgent, IntentProgress)
	require.True(t, loop.Valid)
	assert.Equal(t, StateProcessing, loop.To)
	assert.True(t, loop.SelfLoop, "processing->processing records the turn without a transition event")
}

func TestValidateTurn_AgentQuestionParks(t *testing.T) {
	for _, from := range []State{StateCommanded, StateProcessing} {
		result := ValidateTurn(from, ActorAgent, IntentQuestion)
		require.True(t, result.Valid, "from %s", from)
		assert.Equal(t, StateAwaitingInput, result.To)
	}
	assert.False(t, ValidateTurn(StateAwaitingInput, ActorAgent, IntentQuestion).Valid)
}

func TestValidateTurn_CompletionPaths(t *testing.T) {
	for _, intent := range []Intent{IntentCompletion, IntentEndOfCommand} {
		for _, from := range []State{StateCommanded, StateProcessing} {
			result := ValidateTurn(from, ActorAgent, intent)
			require.True(t, result.Valid, "from %s on %s", from, intent)
			assert.Equal(t, StateComplete, result.To)
		}
		assert.False(t, ValidateTurn(StateAwaitingInput, ActorAgent, intent).Valid,
			"a parked command needs its answer first")
	}
}

func TestValidateTurn_CompleteIsTerminal(t *testing.T) {
	for _, actor := range []Actor{ActorUser, ActorAgent} {
		for _, intent := range []Intent{IntentAnswer, IntentQuestion, IntentCompletion, IntentProgress, IntentEndOfCommand} {
			result := ValidateTurn(StateComplete, actor, intent)
			assert.False(t, result.Valid, "%s:%s", actor, intent)
			assert.False(t, result.CreateCommand, "%s:%s", actor, intent)
			assert.NotEmpty(t, result.Reason)
		}
	}
}

func TestValidateHook_StopCompletesLiveCommand(t *testing.T) {
	for _, from := range []State{StateCommanded, StateProcessing} {
		result := ValidateHook(from, HookStop)
		require.True(t, result.Valid, "from %s", from)
		assert.Equal(t, StateComplete, result.To)
	}
	assert.False(t, ValidateHook(StateAwaitingInput, HookStop).Valid)
	assert.False(t, ValidateHook(StateComplete, HookStop).Valid)
}

func TestValidateHook_NotificationParksProcessingOnly(t *testing.T) {
	result := ValidateHook(StateProcessing, HookNotification)
	require.True(t, result.Valid)
	assert.Equal(t, StateAwaitingInput, result.To)

	for _, from := range []State{StateIdle, StateCommanded, StateAwaitingInput, StateComplete} {
		assert.False(t, ValidateHook(from, HookNotification).Valid, "from %s", from)
	}
}

func TestNormalizeIntent(t *testing.T) {
	got, err := NormalizeIntent("end_of_task")
	require.NoError(t, err)
	assert.Equal(t, IntentEndOfCommand, got, "legacy spelling maps onto the closed set")

	got, err = NormalizeIntent("question")
	require.NoError(t, err)
	assert.Equal(t, IntentQuestion, got)

	_, err = NormalizeIntent("musing")
	assert.Error(t, err)
}
