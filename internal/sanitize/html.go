// Package sanitize strips backend-supplied HTML for terminal display.
// Event and course descriptions arrive as rich text authored in the web
// app; the CLI renders them as plain text.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Text removes all HTML tags and collapses surrounding whitespace.
// Use for names, titles, and anything rendered inline.
func Text(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}

// Description prepares a rich-text description for the terminal: tags
// are removed and blank-line runs collapsed to a single separator.
func Description(input string) string {
	stripped := strictPolicy.Sanitize(input)
	lines := strings.Split(stripped, "\n")

	var out []string
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// TextSlice sanitizes each string in a slice, removing all HTML.
func TextSlice(inputs []string) []string {
	if inputs == nil {
		return nil
	}
	sanitized := make([]string, len(inputs))
	for i, input := range inputs {
		sanitized[i] = Text(input)
	}
	return sanitized
}
