// Package dates parses user-entered date expressions for CLI flags.
// Accepts RFC 3339, common date formats, and natural language such as
// "next friday 9am".
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Parse resolves input relative to now, preferring future dates since
// the flags feed event and course scheduling.
func Parse(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty")
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dateparser.Future,
	}
	parsed, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", input, err)
	}
	return parsed.Time, nil
}
