package transcript

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ParsedTurn is one conversational message lifted out of a session's
// JSONL transcript.
type ParsedTurn struct {
	Actor       string    // "user" or "agent"
	Text        string
	Timestamp   time.Time
	MessageType string // the raw JSONL "type" field
	Raw         string // the original line, for diagnostics
}

// ContentHash is the stable dedup key: SHA-256 over the canonicalised
// actor and text. Identical content re-read after a restart hashes the
// same, so the storage-level unique index can reject the duplicate.
func (t ParsedTurn) ContentHash() string {
	h := sha256.New()
	h.Write([]byte(t.Actor))
	h.Write([]byte{0})
	h.Write([]byte(strings.TrimSpace(t.Text)))
	return hex.EncodeToString(h.Sum(nil))
}

// jsonlEntry mirrors the transcript line shape. content is either a
// plain string or an array of typed blocks.
type jsonlEntry struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Message   struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"message"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ErrSkipLine marks lines that are valid JSONL but carry no
// conversational content (progress, file-history-snapshot, tool
// chatter).
var ErrSkipLine = fmt.Errorf("transcript line carries no turn")

// ParseLine parses one JSONL line into a turn. Returns ErrSkipLine for
// non-message entries; any other error means the line was malformed.
func ParseLine(line string) (ParsedTurn, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParsedTurn{}, ErrSkipLine
	}

	var entry jsonlEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return ParsedTurn{}, fmt.Errorf("malformed transcript line: %w", err)
	}

	switch entry.Type {
	case "user", "assistant":
	default:
		return ParsedTurn{}, ErrSkipLine
	}

	text, err := extractText(entry.Message.Content)
	if err != nil {
		return ParsedTurn{}, fmt.Errorf("malformed message content: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return ParsedTurn{}, ErrSkipLine
	}

	actor := "agent"
	if entry.Type == "user" {
		actor = "user"
	}

	ts := time.Time{}
	if entry.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, entry.Timestamp)
		if err != nil {
			return ParsedTurn{}, fmt.Errorf("malformed timestamp %q: %w", entry.Timestamp, err)
		}
		ts = parsed
	}

	return ParsedTurn{
		Actor:       actor,
		Text:        text,
		Timestamp:   ts,
		MessageType: entry.Type,
		Raw:         line,
	}, nil
}

// extractText handles both content shapes: a bare string, or an array
// of blocks where every text-typed block contributes, concatenated in
// order.
func extractText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var blocks []contentBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return "", err
	}

	var parts []string
	for _, b := range blocks {
		if b.Type == "text" && b.Text != "" {
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n"), nil
}
