package tmux

import (
	"regexp"
	"strconv"
)

// ContextUsage is the parsed form of the REPL's context status line.
type ContextUsage struct {
	PercentUsed     int    `json:"percent_used"`
	RemainingTokens string `json:"remaining_tokens"`
	Raw             string `json:"raw"`
}

// ansiRe strips SGR color sequences before matching.
var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// ctxRe matches "[ctx: NN% used, MMk remaining]" with arbitrary embedded
// whitespace. The remaining-token figure keeps its SI suffix as text.
var ctxRe = regexp.MustCompile(
	`\[\s*ctx:\s*(\d{1,3})\s*%\s*used\s*,\s*([\d.]+[kKmM]?)\s*remaining\s*\]`)

// ParseContextUsage scans captured pane text for the context status line.
// Returns nil when no status line is present. When the line appears more
// than once the last occurrence wins — it is the freshest render.
func ParseContextUsage(captured string) *ContextUsage {
	clean := ansiRe.ReplaceAllString(captured, "")

	matches := ctxRe.FindAllStringSubmatch(clean, -1)
	if len(matches) == 0 {
		return nil
	}
	m := matches[len(matches)-1]

	percent, err := strconv.Atoi(m[1])
	if err != nil || percent > 100 {
		return nil
	}

	return &ContextUsage{
		PercentUsed:     percent,
		RemainingTokens: m[2],
		Raw:             m[0],
	}
}
