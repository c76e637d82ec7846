// Package statemachine holds the pure command state transition table.
// No I/O happens here: the correlator feeds observations in and acts on
// the returned TransitionResult.
package statemachine

import "fmt"

// State is a command's persistent state.
type State string

const (
	StateIdle          State = "idle"
	StateCommanded     State = "commanded"
	StateProcessing    State = "processing"
	StateAwaitingInput State = "awaiting_input"
	StateComplete      State = "complete"
)

// Actor is who produced a turn.
type Actor string

const (
	ActorUser  Actor = "user"
	ActorAgent Actor = "agent"
)

// Intent classifies a turn.
type Intent string

const (
	IntentCommand      Intent = "command"
	IntentAnswer       Intent = "answer"
	IntentQuestion     Intent = "question"
	IntentCompletion   Intent = "completion"
	IntentProgress     Intent = "progress"
	IntentEndOfCommand Intent = "end_of_command"
)

// HookKind is one of the five host hook callbacks.
type HookKind string

const (
	HookSessionStart     HookKind = "session_start"
	HookSessionEnd       HookKind = "session_end"
	HookUserPromptSubmit HookKind = "user_prompt_submit"
	HookStop             HookKind = "stop"
	HookNotification     HookKind = "notification"
)

// NormalizeIntent maps legacy intent spellings onto the closed Intent
// set. The historical "end_of_task" value is accepted on input but never
// exposed at the API boundary.
func NormalizeIntent(raw string) (Intent, error) {
	switch raw {
	case "command", "answer", "question", "completion", "progress", "end_of_command":
		return Intent(raw), nil
	case "end_of_task":
		return IntentEndOfCommand, nil
	default:
		return "", fmt.Errorf("unknown intent %q", raw)
	}
}

// TransitionResult is the outcome of validating one observation against
// the current command state.
type TransitionResult struct {
	// Valid reports whether the command should move to To.
	Valid bool
	// To is the target state when Valid.
	To State
	// CreateCommand steers the correlator to its new-sibling-command
	// branch instead of mutating the current command.
	CreateCommand bool
	// Reason explains rejected or special-cased cells.
	Reason string
	// Trigger names the observation for the state_transition event.
	Trigger string
	// SelfLoop marks a valid transition that lands on the same state
	// (processing -> processing): the turn is recorded but no
	// state_transition event is emitted.
	SelfLoop bool
}

// ValidateTurn is the pure transition function for turn observations.
// The table is total: every (state, actor, intent) cell either appears
// below or is an explicit no-op the correlator records as
// state_transition_rejected.
func ValidateTurn(from State, actor Actor, intent Intent) TransitionResult {
	// COMPLETE is terminal. No intent revives a completed command.
	if from == StateComplete && !(actor == ActorUser && intent == IntentCommand) {
		return rejected(from, actor, intent)
	}

	switch {
	case actor == ActorUser && intent == IntentCommand:
		// A user command never mutates the current command, whatever its
		// state. Double-prompting creates a sibling command.
		return TransitionResult{
			CreateCommand: true,
			Reason:        "should create new command",
			Trigger:       "user_command",
		}

	case actor == ActorUser && intent == IntentAnswer:
		if from == StateAwaitingInput {
			return TransitionResult{Valid: true, To: StateProcessing, Trigger: "user_answer"}
		}
		return rejected(from, actor, intent)

	case actor == ActorAgent && intent == IntentProgress:
		switch from {
		case StateCommanded:
			return TransitionResult{Valid: true, To: StateProcessing, Trigger: "agent_progress"}
		case StateProcessing:
			return TransitionResult{Valid: true, To: StateProcessing, Trigger: "agent_progress", SelfLoop: true}
		}
		return rejected(from, actor, intent)

	case actor == ActorAgent && intent == IntentQuestion:
		if from == StateCommanded || from == StateProcessing {
			return TransitionResult{Valid: true, To: StateAwaitingInput, Trigger: "agent_question"}
		}
		return rejected(from, actor, intent)

	case actor == ActorAgent && intent == IntentCompletion:
		if from == StateCommanded || from == StateProcessing {
			return TransitionResult{Valid: true, To: StateComplete, Trigger: "agent_completion"}
		}
		return rejected(from, actor, intent)

	case actor == ActorAgent && intent == IntentEndOfCommand:
		if from == StateCommanded || from == StateProcessing {
			return TransitionResult{Valid: true, To: StateComplete, Trigger: "end_of_command"}
		}
		return rejected(from, actor, intent)
	}

	return rejected(from, actor, intent)
}

// ValidateHook is the pure transition function for lifecycle hooks that
// act directly on command state (stop, notification). The other hook
// kinds never touch command state.
func ValidateHook(from State, hook HookKind) TransitionResult {
	switch hook {
	case HookStop:
		// No debounce: a stop observed while the command is live
		// completes it immediately.
		if from == StateCommanded || from == StateProcessing {
			return TransitionResult{Valid: true, To: StateComplete, Trigger: "hook_stop"}
		}
	case HookNotification:
		if from == StateProcessing {
			return TransitionResult{Valid: true, To: StateAwaitingInput, Trigger: "hook_notification"}
		}
	}
	return TransitionResult{
		Reason:  fmt.Sprintf("no transition from %s on hook %s", from, hook),
		Trigger: string(hook),
	}
}

func rejected(from State, actor Actor, intent Intent) TransitionResult {
	return TransitionResult{
		Reason:  fmt.Sprintf("no transition from %s on %s:%s", from, actor, intent),
		Trigger: fmt.Sprintf("%s_%s", actor, intent),
	}
}
