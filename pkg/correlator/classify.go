package correlator

import (
	"strings"

	"github.com/headspace-sh/headspace/pkg/statemachine"
)

// InternalMarker prefixes control prompts the system itself types into
// an agent's pane (persona briefings, handoff injections). Turns
// carrying it are recorded as is_internal and never open commands.
const InternalMarker = "[hs-internal]"

// classification is the correlator's reading of one transcript turn.
type classification struct {
	Intent     statemachine.Intent
	IsInternal bool
}

// classifyUser reads a user transcript turn. While the agent waits for
// input the turn is the answer; otherwise it is a fresh command.
func classifyUser(text string, state statemachine.State) classification {
	if strings.HasPrefix(strings.TrimSpace(text), InternalMarker) {
		return classification{Intent: statemachine.IntentProgress, IsInternal: true}
	}
	if state == statemachine.StateAwaitingInput {
		return classification{Intent: statemachine.IntentAnswer}
	}
	return classification{Intent: statemachine.IntentCommand}
}

// classifyAgent reads an agent transcript turn: a trailing question mark
// on the last line is a question, everything else is progress.
// Completion is signalled by the stop hook, not by transcript text.
func classifyAgent(text string) classification {
	if isQuestion(text) {
		return classification{Intent: statemachine.IntentQuestion}
	}
	return classification{Intent: statemachine.IntentProgress}
}

func isQuestion(text string) bool {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		return strings.HasSuffix(line, "?")
	}
	return false
}
