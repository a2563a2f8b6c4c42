package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/dbx"

	"event-system/internal/interceptors"
	"event-system/internal/notify"
	"event-system/internal/status"
	"event-system/internal/store"
	"event-system/models"
	"event-system/monitoring"
)

const BookingsCollection = "bookings"

type BookingService struct {
	store       store.Store
	interceptor *interceptors.BookingInterceptor
	notifier    *notify.Notifier
}

func NewBookingService(st store.Store, events interceptors.EventExister, notifier *notify.Notifier) *BookingService {
	return &BookingService{
		store:       st,
		interceptor: interceptors.NewBookingInterceptor(events),
		notifier:    notifier,
	}
}

// Create validates the booking and confirms the referenced event exists
// before anything is written. The existence check is inherently racy
// against a concurrent event deletion; that narrow window is accepted
// since the store offers no multi-document transactions.
func (s *BookingService) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	started := time.Now()
	err := s.interceptor.InterceptCreate(ctx, booking)
	monitoring.TrackIntercept(BookingsCollection, time.Since(started))
	if err != nil {
		trackWriteFailure(BookingsCollection, err)
		return nil, err
	}

	id, err := s.store.Insert(ctx, BookingsCollection, booking.Doc())
	if err != nil {
		trackWriteFailure(BookingsCollection, err)
		return nil, err
	}
	booking.ID = id

	monitoring.TrackWrite(BookingsCollection, monitoring.WriteOK)
	s.notifier.BookingCreated(ctx, booking)
	slog.Info("booking created", "id", booking.ID, "eventId", booking.EventID)

	return booking, nil
}

// Update re-runs the reference check only when the eventId actually
// changed, mirroring the create-time trigger condition.
func (s *BookingService) Update(ctx context.Context, id string, incoming *models.Booking) (*models.Booking, error) {
	doc, err := s.store.FindOne(ctx, BookingsCollection, dbx.HashExp{"id": id})
	if err != nil {
		return nil, err
	}
	current := models.BookingFromDoc(doc)

	merged := *current
	if incoming.EventID != "" {
		merged.EventID = incoming.EventID
	}
	if incoming.Email != "" {
		merged.Email = incoming.Email
	}
	eventChanged := merged.EventID != current.EventID

	started := time.Now()
	err = s.interceptor.InterceptUpdate(ctx, &merged, eventChanged)
	monitoring.TrackIntercept(BookingsCollection, time.Since(started))
	if err != nil {
		trackWriteFailure(BookingsCollection, err)
		return nil, err
	}

	if err := s.store.Update(ctx, BookingsCollection, id, merged.Doc()); err != nil {
		trackWriteFailure(BookingsCollection, err)
		return nil, err
	}

	monitoring.TrackWrite(BookingsCollection, monitoring.WriteOK)
	slog.Info("booking updated", "id", id, "eventChanged", eventChanged)

	return &merged, nil
}

// trackWriteFailure classifies a failed write for metrics and records
// per-field validation failures.
func trackWriteFailure(collection string, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		monitoring.TrackWrite(collection, monitoring.WriteInvalid)
		for field := range verrs {
			monitoring.TrackValidationFailure(collection, field)
		}
		return
	}

	switch {
	case errors.Is(err, status.ErrDuplicateSlug):
		monitoring.TrackWrite(collection, monitoring.WriteDuplicate)
	case errors.Is(err, status.ErrEventReferenceMissing):
		monitoring.TrackWrite(collection, monitoring.WriteRefMissing)
	default:
		monitoring.TrackWrite(collection, monitoring.WriteStoreError)
	}
}
