package transcript

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// DiscoverNewest returns the most recently modified .jsonl file in dir,
// or "" when the directory has none yet.
func DiscoverNewest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read transcript dir: %w", err)
	}

	var newest string
	var newestMod int64
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".jsonl" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod > newestMod {
			newest = filepath.Join(dir, entry.Name())
			newestMod = mod
		}
	}
	return newest, nil
}

// ReadAppended reads the bytes appended to path since offset and parses
// the complete lines among them. The returned offset excludes any
// trailing partial line, so an in-flight append is re-read whole on the
// next pass. Malformed lines are logged and skipped.
func ReadAppended(path string, offset int64) ([]ParsedTurn, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, offset, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, offset, fmt.Errorf("failed to stat transcript: %w", err)
	}
	if info.Size() < offset {
		// Truncated or rotated underneath us. Start over; content-hash
		// dedup absorbs the replay.
		slog.Warn("Transcript shrank, rereading from start", "path", path, "offset", offset, "size", info.Size())
		offset = 0
	}
	if info.Size() == offset {
		return nil, offset, nil
	}

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, offset, fmt.Errorf("failed to seek transcript: %w", err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, offset, fmt.Errorf("failed to read transcript: %w", err)
	}

	// Hold back the trailing partial line.
	consumed := len(data)
	if last := bytes.LastIndexByte(data, '\n'); last < 0 {
		return nil, offset, nil
	} else if last != len(data)-1 {
		consumed = last + 1
		data = data[:consumed]
	}

	var turns []ParsedTurn
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		turn, err := ParseLine(string(line))
		if err == ErrSkipLine {
			continue
		}
		if err != nil {
			slog.Warn("Skipping malformed transcript line", "path", path, "error", err)
			continue
		}
		turns = append(turns, turn)
	}

	return turns, offset + int64(consumed), nil
}
