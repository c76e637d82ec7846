package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsErrorPatterns(t *testing.T) {
	assert.True(t, ContainsErrorPatterns("Error: connection refused"))
	assert.True(t, ContainsErrorPatterns("Traceback (most recent call last):"))
	assert.True(t, ContainsErrorPatterns("panic: runtime error"))
	assert.True(t, ContainsErrorPatterns("build FAILED after 2s"))

	assert.False(t, ContainsErrorPatterns("All 42 tests passed"))
	assert.False(t, ContainsErrorPatterns("wrote 3 files"))
}

func TestSanitize_CleanOutputUntouched(t *testing.T) {
	text := "Compiled successfully in 1.2s\nwrote dist/app.js"
	assert.Equal(t, text, Sanitize(text))
}

func TestSanitize_TracebackCollapses(t *testing.T) {
	text := "Error running tool\n" +
		"Traceback (most recent call last):\n" +
		"  File \"/home/dev/.venv/lib/site-packages/requests/api.py\", line 59, in request\n" +
		"    return session.request(method=method, url=url)\n" +
		"ConnectionError: refused"

	out := Sanitize(text)
	assert.Contains(t, out, Sentinel)
	assert.NotContains(t, out, "site-packages")
	assert.NotContains(t, out, "/home/dev")
	assert.Contains(t, out, "ConnectionError: refused", "the error itself survives")
	assert.Equal(t, 1, strings.Count(out, Sentinel), "whole traceback folds into one sentinel")
}

func TestSanitize_PathsAndEnvRedacted(t *testing.T) {
	out := Sanitize("error: cannot open /etc/headspace/secrets.yaml with DATABASE_URL=postgres://u:p@h/db set")
	assert.NotContains(t, out, "/etc/headspace/secrets.yaml")
	assert.NotContains(t, out, "postgres://u:p@h/db")
	assert.Contains(t, out, Sentinel)
}

func TestSanitize_VersionAndPID(t *testing.T) {
	out := Sanitize("fatal error in python 3.11.4, pid=8123")
	assert.NotContains(t, out, "3.11.4")
	assert.NotContains(t, out, "8123")
}

func TestSanitize_SentinelRunsCollapse(t *testing.T) {
	out := Sanitize("error at /a/b/c /d/e/f PYTHONPATH=/x/y")
	assert.False(t, strings.Contains(out, Sentinel+" "+Sentinel+" "+Sentinel),
		"adjacent sentinels collapse: %q", out)
}
