package validators

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-system/models"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"User@Example.COM", "user@example.com"},
		{"  alice@example.com  ", "alice@example.com"},
		{"bob@example.com", "bob@example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.raw))
	}
}

func TestValidateBooking_Valid(t *testing.T) {
	b := &models.Booking{
		EventID: "abc123def456ghi",
		Email:   "user@example.com",
	}
	assert.NoError(t, ValidateBooking(b))
}

func TestValidateBooking_EventID(t *testing.T) {
	tests := []struct {
		name    string
		eventID string
		errMsg  string
	}{
		{"missing", "", "event reference is required"},
		{"too short", "abc123", "invalid event reference"},
		{"uppercase", "ABC123DEF456GHI", "invalid event reference"},
		{"too long", "abc123def456ghi0", "invalid event reference"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &models.Booking{EventID: tt.eventID, Email: "user@example.com"}

			err := ValidateBooking(b)
			require.Error(t, err)

			verrs := err.(validation.Errors)
			require.Contains(t, verrs, "eventId")
			assert.Equal(t, tt.errMsg, verrs["eventId"].Error())
		})
	}
}

func TestValidateBooking_Email(t *testing.T) {
	invalid := []string{"plainaddress", "no@tld", "spa ce@example.com", "two@@example.com"}

	for _, email := range invalid {
		b := &models.Booking{EventID: "abc123def456ghi", Email: email}

		err := ValidateBooking(b)
		require.Error(t, err, "email %q", email)

		verrs := err.(validation.Errors)
		assert.Contains(t, verrs, "email")
	}
}
