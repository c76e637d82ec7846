// Package sanitize strips system detail from tool error text before it
// reaches an agent. Non-error text passes through unchanged.
package sanitize

import (
	"regexp"
	"strings"
)

// Sentinel replaces every redacted fragment.
const Sentinel = "[redacted]"

// compiledPattern pairs a regex with its replacement, applied in order.
type compiledPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Redaction patterns, in application order. Multi-line block patterns run
// before single-line ones so a whole traceback collapses into one
// sentinel instead of one per frame.
var patterns = []compiledPattern{
	{
		name: "stack_trace_block",
		regex: regexp.MustCompile(
			`(?m)^Traceback \(most recent call last\):\n(?:[ \t]+.*\n?)+`),
		replacement: Sentinel + "\n",
	},
	{
		name: "stack_frame_line",
		regex: regexp.MustCompile(
			`(?m)^[ \t]+(?:File "[^"]+", line \d+.*|at [\w./$<>]+\([^)]*\))$`),
		replacement: Sentinel,
	},
	{
		name:        "virtualenv_fragment",
		regex:       regexp.MustCompile(`\S*(?:/\.?venv|/virtualenvs?|/site-packages)/\S*`),
		replacement: Sentinel,
	},
	{
		name:        "env_assignment",
		regex:       regexp.MustCompile(`\b[A-Z][A-Z0-9_]{2,}=\S+`),
		replacement: Sentinel,
	},
	{
		name:        "pid_mention",
		regex:       regexp.MustCompile(`(?i)\b(?:pid[=:]\s*\d+|process \d+)\b`),
		replacement: Sentinel,
	},
	{
		name:        "language_version",
		regex:       regexp.MustCompile(`(?i)\b(?:python|node|go|ruby|java)[ /]?v?\d+\.\d+(?:\.\d+)?\b`),
		replacement: Sentinel,
	},
	{
		name:        "dotted_module",
		regex:       regexp.MustCompile(`\b[a-z_][\w]*(?:\.[a-z_][\w]*){2,}\b`),
		replacement: Sentinel,
	},
}

// absolutePathRe runs after the block patterns and keeps the delimiter
// character it consumed via a capture group.
var absolutePathRe = regexp.MustCompile(`(^|[\s"'(=])/[\w.\-]+(?:/[\w.\-]+)+`)

// collapseSentinels folds runs of sentinels (optionally whitespace
// separated) into a single one.
var collapseSentinels = regexp.MustCompile(
	`(?:` + regexp.QuoteMeta(Sentinel) + `[ \t]*\n?[ \t]*)+` + regexp.QuoteMeta(Sentinel))

// errorGates decide whether text is error output at all; clean tool
// output is returned untouched.
var errorGates = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\berror\b`),
	regexp.MustCompile(`(?i)\bexception\b`),
	regexp.MustCompile(`(?i)\btraceback\b`),
	regexp.MustCompile(`(?i)\bpanic:`),
	regexp.MustCompile(`(?i)\bfailed\b`),
	regexp.MustCompile(`(?i)\bfatal\b`),
	regexp.MustCompile(`(?m)^\s+File "`),
}

// ContainsErrorPatterns reports whether text looks like tool error
// output. It is the gate in front of Sanitize.
func ContainsErrorPatterns(text string) bool {
	for _, g := range errorGates {
		if g.MatchString(text) {
			return true
		}
	}
	return false
}

// Sanitize strips system detail from error text. Text that does not
// trip ContainsErrorPatterns is returned unchanged.
func Sanitize(text string) string {
	if text == "" || !ContainsErrorPatterns(text) {
		return text
	}

	out := text
	for _, p := range patterns {
		out = p.regex.ReplaceAllString(out, p.replacement)
		if p.name == "virtualenv_fragment" {
			// Paths go right after the virtualenv pass so venv fragments
			// are not double-redacted.
			out = absolutePathRe.ReplaceAllString(out, "${1}"+Sentinel)
		}
	}

	out = collapseSentinels.ReplaceAllString(out, Sentinel)
	return strings.TrimRight(out, " \t")
}
