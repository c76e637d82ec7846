package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_UserStringContent(t *testing.T) {
	line := `{"type":"user","timestamp":"2026-03-01T12:00:00Z","message":{"role":"user","content":"Fix the login flow"}}`

	turn, err := ParseLine(line)
	require.NoError(t, err)
	assert.Equal(t, "user", turn.Actor)
	assert.Equal(t, "Fix the login flow", turn.Text)
	assert.Equal(t, "user", turn.MessageType)
	assert.Equal(t, 2026, turn.Timestamp.Year())
}

func TestParseLine_AssistantMultiBlock(t *testing.T) {
	line := `{"type":"assistant","timestamp":"2026-03-01T12:00:05+02:00","message":{"role":"assistant","content":[` +
		`{"type":"text","text":"Looking at auth.go"},` +
		`{"type":"tool_use","id":"t1"},` +
		`{"type":"text","text":"The session check is inverted."}]}}`

	turn, err := ParseLine(line)
	require.NoError(t, err)
	assert.Equal(t, "agent", turn.Actor)
	assert.Equal(t, "Looking at auth.go\nThe session check is inverted.", turn.Text)
}

func TestParseLine_SkipsNonMessageTypes(t *testing.T) {
	for _, line := range []string{
		`{"type":"progress","message":{"content":"thinking"}}`,
		`{"type":"file-history-snapshot","snapshot":{}}`,
		`{"type":"summary","summary":"..."}`,
		``,
		`   `,
	} {
		_, err := ParseLine(line)
		assert.ErrorIs(t, err, ErrSkipLine, "line: %s", line)
	}
}

func TestParseLine_SkipsEmptyText(t *testing.T) {
	line := `{"type":"assistant","message":{"role":"assistant","content":[{"type":"tool_use","id":"t1"}]}}`
	_, err := ParseLine(line)
	assert.ErrorIs(t, err, ErrSkipLine)
}

func TestParseLine_MalformedJSON(t *testing.T) {
	_, err := ParseLine(`{"type":"user","message":`)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSkipLine)
}

func TestParseLine_MalformedTimestamp(t *testing.T) {
	_, err := ParseLine(`{"type":"user","timestamp":"yesterday","message":{"content":"hi"}}`)
	require.Error(t, err)
}

func TestContentHash_StableAndDistinct(t *testing.T) {
	a := ParsedTurn{Actor: "user", Text: "Fix the login flow"}
	b := ParsedTurn{Actor: "user", Text: "  Fix the login flow  "}
	c := ParsedTurn{Actor: "agent", Text: "Fix the login flow"}

	assert.Equal(t, a.ContentHash(), b.ContentHash(), "whitespace must not change the hash")
	assert.NotEqual(t, a.ContentHash(), c.ContentHash(), "actor participates in the hash")
	assert.Len(t, a.ContentHash(), 64)
}
