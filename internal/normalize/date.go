package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"

	"event-system/internal/status"
)

// Layouts tried in order before falling back to cast's permissive parser.
// Upstream forms land as free text, so this covers ISO, US and written-out
// dates explicitly.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
}

// Date canonicalizes any parseable date representation to YYYY-MM-DD.
// Time-of-day and zone information in the input is discarded.
func Date(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", status.ErrInvalidDate
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}

	t, err := cast.ToTimeE(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q", status.ErrInvalidDate, raw)
	}

	return t.Format("2006-01-02"), nil
}
