package registry

import "strings"

// EncodeProjectPath converts an absolute filesystem path into the flat
// folder name the host uses for per-session transcript directories:
// "/" becomes "-" and trailing separators are stripped.
// EncodeProjectPath("/home/dev/api") == "-home-dev-api".
func EncodeProjectPath(path string) string {
	trimmed := strings.TrimRight(path, "/")
	return strings.ReplaceAll(trimmed, "/", "-")
}

// DecodeProjectPath reverses EncodeProjectPath on well-formed folder
// names. Paths containing literal "-" in segments are not recoverable;
// the host guarantees well-formed inputs.
func DecodeProjectPath(folder string) string {
	return strings.ReplaceAll(folder, "-", "/")
}
