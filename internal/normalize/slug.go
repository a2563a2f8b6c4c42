package normalize

import (
	"regexp"
	"strings"

	"event-system/internal/status"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// Slug derives a URL-safe identifier from an event title: lowercase,
// alphanumerics and hyphens only, single hyphens between words. The
// derivation is idempotent, so feeding an existing slug back in returns
// it unchanged.
func Slug(title string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "", status.ErrSlugDerivation
	}

	return slug, nil
}
