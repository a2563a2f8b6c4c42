package interceptors

import (
	"context"

	"event-system/internal/status"
	"event-system/internal/validators"
	"event-system/models"
)

// EventExister is the single store capability the booking pipeline
// needs: confirm a referenced event exists without fetching it.
type EventExister interface {
	ExistsEvent(ctx context.Context, eventID string) (bool, error)
}

type BookingInterceptor struct {
	events EventExister
}

func NewBookingInterceptor(events EventExister) *BookingInterceptor {
	return &BookingInterceptor{events: events}
}

func (i *BookingInterceptor) InterceptCreate(ctx context.Context, b *models.Booking) error {
	return i.run(ctx, b, true)
}

// InterceptUpdate re-checks the event reference only when it was
// modified, mirroring the create path's trigger condition.
func (i *BookingInterceptor) InterceptUpdate(ctx context.Context, b *models.Booking, eventChanged bool) error {
	return i.run(ctx, b, eventChanged)
}

func (i *BookingInterceptor) run(ctx context.Context, b *models.Booking, checkReference bool) error {
	b.Email = validators.NormalizeEmail(b.Email)

	if err := validators.ValidateBooking(b); err != nil {
		return err
	}

	if checkReference {
		ok, err := i.events.ExistsEvent(ctx, b.EventID)
		if err != nil {
			return err
		}
		if !ok {
			return status.ErrEventReferenceMissing
		}
	}

	return nil
}
