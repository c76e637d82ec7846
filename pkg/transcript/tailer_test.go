package transcript

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverNewest_PicksLatestMtime(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "aaa.jsonl")
	newer := filepath.Join(dir, "bbb.jsonl")
	writeFile(t, older, "{}\n")
	writeFile(t, newer, "{}\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	got, err := DiscoverNewest(dir)
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}

func TestDiscoverNewest_MissingDir(t *testing.T) {
	got, err := DiscoverNewest(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadAppended_IncrementalOffsets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	writeFile(t, path,
		`{"type":"user","message":{"content":"first"}}`+"\n")

	turns, offset, err := ReadAppended(path, 0)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "first", turns[0].Text)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(`{"type":"assistant","message":{"content":"second"}}` + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	turns, offset2, err := ReadAppended(path, offset)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "second", turns[0].Text)
	assert.Greater(t, offset2, offset)
}

func TestReadAppended_HoldsBackPartialLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	writeFile(t, path,
		`{"type":"user","message":{"content":"complete"}}`+"\n"+
			`{"type":"assistant","message":{"con`)

	turns, offset, err := ReadAppended(path, 0)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "complete", turns[0].Text)

	// Complete the held-back line and verify it parses on the next pass.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(`tent":"now whole"}}` + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	turns, _, err = ReadAppended(path, offset)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "now whole", turns[0].Text)
}

func TestReadAppended_MalformedLinesSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	writeFile(t, path,
		"not json at all\n"+
			`{"type":"progress","data":"x"}`+"\n"+
			`{"type":"user","message":{"content":"real"}}`+"\n")

	turns, _, err := ReadAppended(path, 0)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "real", turns[0].Text)
}

func TestReadAppended_TruncationResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	writeFile(t, path, `{"type":"user","message":{"content":"long long line"}}`+"\n")

	_, offset, err := ReadAppended(path, 0)
	require.NoError(t, err)

	// Rotate: replace with a shorter file.
	writeFile(t, path, `{"type":"user","message":{"content":"new"}}`+"\n")

	turns, _, err := ReadAppended(path, offset)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "new", turns[0].Text)
}

func TestReadAppended_NoNewBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	writeFile(t, path, `{"type":"user","message":{"content":"hi"}}`+"\n")

	_, offset, err := ReadAppended(path, 0)
	require.NoError(t, err)

	turns, offset2, err := ReadAppended(path, offset)
	require.NoError(t, err)
	assert.Empty(t, turns)
	assert.Equal(t, offset, offset2)
}
