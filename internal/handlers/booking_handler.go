package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"event-system/internal/services"
	"event-system/models"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking - POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(e *core.RequestEvent) error {
	var req struct {
		EventID string `json:"eventId"`
		Email   string `json:"email"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	booking, err := h.bookingService.Create(e.Request.Context(), &models.Booking{
		EventID: req.EventID,
		Email:   req.Email,
	})
	if err != nil {
		return writeError(err)
	}

	return e.JSON(http.StatusCreated, map[string]any{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// UpdateBooking - PATCH /api/v1/bookings/{id}
func (h *BookingHandler) UpdateBooking(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	var req struct {
		EventID string `json:"eventId"`
		Email   string `json:"email"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	booking, err := h.bookingService.Update(e.Request.Context(), id, &models.Booking{
		EventID: req.EventID,
		Email:   req.Email,
	})
	if err != nil {
		return writeError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"message": "Booking updated successfully",
		"booking": booking,
	})
}
