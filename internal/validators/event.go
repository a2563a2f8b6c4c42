package validators

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"event-system/models"
)

var errBlank = errors.New("cannot be blank")

// nonEmptyTrimmed rejects values that are empty once surrounding
// whitespace is stripped. validation.Required alone would accept "  ".
func nonEmptyTrimmed(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errBlank
	}
	return nil
}

func nonEmptyItems(value any) error {
	items, _ := value.([]string)
	if len(items) == 0 {
		return errors.New("must contain at least one item")
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return errors.New("items cannot be blank")
		}
	}
	return nil
}

// ValidateEvent checks field shape and business rules independently of
// storage. All violations are reported together, keyed by field name.
func ValidateEvent(e *models.Event) error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Title, validation.By(nonEmptyTrimmed)),
		validation.Field(&e.Description, validation.By(nonEmptyTrimmed), validation.RuneLength(0, 1000)),
		validation.Field(&e.Overview, validation.By(nonEmptyTrimmed), validation.RuneLength(0, 500)),
		validation.Field(&e.Image, validation.By(nonEmptyTrimmed)),
		validation.Field(&e.Venue, validation.By(nonEmptyTrimmed)),
		validation.Field(&e.Location, validation.By(nonEmptyTrimmed)),
		validation.Field(&e.Date, validation.By(nonEmptyTrimmed)),
		validation.Field(&e.Time, validation.By(nonEmptyTrimmed)),
		validation.Field(&e.Mode, validation.By(nonEmptyTrimmed),
			validation.In(models.ModeOnline, models.ModeOffline, models.ModeHybrid).
				Error("must be either online, offline, or hybrid")),
		validation.Field(&e.Audience, validation.By(nonEmptyTrimmed)),
		validation.Field(&e.Agenda, validation.By(nonEmptyItems)),
		validation.Field(&e.Organizer, validation.By(nonEmptyTrimmed)),
		validation.Field(&e.Tags, validation.By(nonEmptyItems)),
	)
}
