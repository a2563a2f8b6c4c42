package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"event-system/internal/status"
)

var (
	twentyFourHour = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
	twelveHour     = regexp.MustCompile(`(?i)^(\d{1,2}):([0-5]\d)\s?(AM|PM)$`)
)

// Clock canonicalizes a wall-clock time to 24-hour HH:MM. Exactly two
// shapes are accepted: 24-hour "H:MM"/"HH:MM" and 12-hour "H:MM AM/PM".
// Anything else is rejected rather than best-effort parsed.
func Clock(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", status.ErrInvalidTime
	}

	if m := twentyFourHour.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%02d:%s", hours, m[2]), nil
	}

	if m := twelveHour.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		if hours < 1 || hours > 12 {
			return "", fmt.Errorf("%w: %q", status.ErrInvalidTime, raw)
		}

		if hours == 12 {
			hours = 0
		}
		if strings.EqualFold(m[3], "PM") {
			hours += 12
		}

		return fmt.Sprintf("%02d:%s", hours, m[2]), nil
	}

	return "", fmt.Errorf("%w: %q", status.ErrInvalidTime, raw)
}
