package history

import (
	"regexp"
	"strings"

	"github.com/rwalden/clipwatch/internal/store"
)

// codeKeyword matches a line starting with a common code keyword followed
// by whitespace.
var codeKeyword = regexp.MustCompile(`(?m)^(import|export|function|class|const|let|var|if|for|while)\s`)

// DetectContentType classifies content as code or plain text. This is a
// heuristic, not a parser: prose containing braces or comment markers will
// classify as code, and that is accepted.
func DetectContentType(content string) store.ContentType {
	switch {
	case codeKeyword.MatchString(content):
		return store.ContentCode
	case strings.ContainsAny(content, "{}[];()"):
		return store.ContentCode
	case strings.Contains(content, "=>"):
		return store.ContentCode
	case strings.Contains(content, "//"):
		return store.ContentCode
	case strings.Contains(content, "/*"):
		return store.ContentCode
	default:
		return store.ContentText
	}
}

// CountLines returns the number of newline-delimited segments in content.
func CountLines(content string) int {
	return strings.Count(content, "\n") + 1
}

// Preview renders content as a single trimmed line of at most maxLen
// characters, appending "..." when truncated. Truncation counts runes so
// multi-byte text is never split mid-character.
func Preview(content string, maxLen int) string {
	flat := strings.ReplaceAll(content, "\n", " ")
	flat = strings.TrimSpace(flat)

	runes := []rune(flat)
	if len(runes) <= maxLen {
		return flat
	}

	return string(runes[:maxLen]) + "..."
}
