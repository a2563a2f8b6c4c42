package validators

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"event-system/models"
)

var (
	// Store record ids: 15 lowercase alphanumerics.
	recordIDPattern = regexp.MustCompile(`^[a-z0-9]{15}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// NormalizeEmail returns the canonical stored form of an email address.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateBooking checks the booking's field shape. The email must
// already be in its normalized (trimmed, lowercased) form when stored,
// so callers normalize first and validate the result.
func ValidateBooking(b *models.Booking) error {
	return validation.ValidateStruct(b,
		validation.Field(&b.EventID,
			validation.Required.Error("event reference is required"),
			validation.Match(recordIDPattern).Error("invalid event reference")),
		validation.Field(&b.Email,
			validation.Required.Error("email is required"),
			validation.Match(emailPattern).Error("email must be valid")),
	)
}
