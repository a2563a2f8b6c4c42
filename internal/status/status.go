package status

import (
	"errors"
	"fmt"
)

var (
	ErrSlugDerivation        = errors.New("slug: title cannot produce a valid slug")
	ErrInvalidDate           = errors.New("date: invalid event date")
	ErrInvalidTime           = errors.New("time: invalid event time")
	ErrDuplicateSlug         = errors.New("event: an event with this slug already exists")
	ErrEventNotFound         = errors.New("event: event not found")
	ErrEventReferenceMissing = errors.New("booking: referenced event does not exist")
	ErrStore                 = errors.New("store: storage operation failed")
)

// StoreFailure wraps an opaque error from the storage layer so callers can
// match on ErrStore without caring about the driver behind it.
func StoreFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}
