package interceptors

import (
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-system/internal/status"
	"event-system/models"
)

type fakeExister struct {
	known map[string]bool
	err   error
	calls int
}

func (f *fakeExister) ExistsEvent(_ context.Context, eventID string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.known[eventID], nil
}

func TestBookingInterceptor_Create(t *testing.T) {
	exister := &fakeExister{known: map[string]bool{"abc123def456ghi": true}}
	b := &models.Booking{EventID: "abc123def456ghi", Email: "  User@Example.COM  "}

	err := NewBookingInterceptor(exister).InterceptCreate(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", b.Email)
	assert.Equal(t, 1, exister.calls)
}

func TestBookingInterceptor_CreateMissingEvent(t *testing.T) {
	exister := &fakeExister{known: map[string]bool{}}
	b := &models.Booking{EventID: "abc123def456ghi", Email: "user@example.com"}

	err := NewBookingInterceptor(exister).InterceptCreate(context.Background(), b)
	assert.ErrorIs(t, err, status.ErrEventReferenceMissing)
}

func TestBookingInterceptor_InvalidFieldsSkipReferenceCheck(t *testing.T) {
	exister := &fakeExister{known: map[string]bool{}}
	b := &models.Booking{EventID: "short", Email: "not-an-email"}

	err := NewBookingInterceptor(exister).InterceptCreate(context.Background(), b)
	require.Error(t, err)

	verrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, verrs, "eventId")
	assert.Contains(t, verrs, "email")
	assert.Zero(t, exister.calls)
}

func TestBookingInterceptor_UpdateEventUnchanged(t *testing.T) {
	exister := &fakeExister{known: map[string]bool{}}
	b := &models.Booking{EventID: "abc123def456ghi", Email: "user@example.com"}

	err := NewBookingInterceptor(exister).InterceptUpdate(context.Background(), b, false)
	require.NoError(t, err)
	assert.Zero(t, exister.calls)
}

func TestBookingInterceptor_UpdateEventChanged(t *testing.T) {
	exister := &fakeExister{known: map[string]bool{"abc123def456ghi": true}}
	b := &models.Booking{EventID: "abc123def456ghi", Email: "user@example.com"}

	err := NewBookingInterceptor(exister).InterceptUpdate(context.Background(), b, true)
	require.NoError(t, err)
	assert.Equal(t, 1, exister.calls)
}

func TestBookingInterceptor_ExistsCheckFailure(t *testing.T) {
	storeErr := status.StoreFailure("exists", errors.New("connection refused"))
	exister := &fakeExister{err: storeErr}
	b := &models.Booking{EventID: "abc123def456ghi", Email: "user@example.com"}

	err := NewBookingInterceptor(exister).InterceptCreate(context.Background(), b)
	assert.ErrorIs(t, err, status.ErrStore)
}
