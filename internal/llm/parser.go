package llm

import "strings"

// StripMarkdownFences removes ```json / ``` wrappers that models wrap JSON
// in despite being told not to.
func StripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}

// RepairTruncatedJSON closes unbalanced braces on responses cut off by the
// token limit. Anything worse than missing closers still fails to decode and
// the caller falls back.
func RepairTruncatedJSON(s string) string {
	open := strings.Count(s, "{")
	closed := strings.Count(s, "}")
	if open > closed {
		s += strings.Repeat("}", open-closed)
	}
	return s
}

// CleanResponse is the usual pipeline for model output expected to be JSON.
func CleanResponse(s string) string {
	return RepairTruncatedJSON(StripMarkdownFences(s))
}
