package handlers

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"event-system/internal/services"
	"event-system/internal/status"
	"event-system/models"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

type eventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Image       string   `json:"image"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Mode        string   `json:"mode"`
	Audience    string   `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
}

func (r *eventRequest) toModel() *models.Event {
	return &models.Event{
		Title:       r.Title,
		Description: r.Description,
		Overview:    r.Overview,
		Image:       r.Image,
		Venue:       r.Venue,
		Location:    r.Location,
		Date:        r.Date,
		Time:        r.Time,
		Mode:        r.Mode,
		Audience:    r.Audience,
		Agenda:      r.Agenda,
		Organizer:   r.Organizer,
		Tags:        r.Tags,
	}
}

// CreateEvent - POST /api/v1/events
func (h *EventHandler) CreateEvent(e *core.RequestEvent) error {
	var req eventRequest
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	event, err := h.eventService.Create(e.Request.Context(), req.toModel())
	if err != nil {
		return writeError(err)
	}

	return e.JSON(http.StatusCreated, map[string]any{
		"message": "Event created successfully",
		"event":   event,
	})
}

// UpdateEvent - PUT /api/v1/events/{id}
func (h *EventHandler) UpdateEvent(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	var req eventRequest
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	event, err := h.eventService.Update(e.Request.Context(), id, req.toModel())
	if err != nil {
		return writeError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"message": "Event updated successfully",
		"event":   event,
	})
}

// ListEvents - GET /api/v1/events
func (h *EventHandler) ListEvents(e *core.RequestEvent) error {
	events, err := h.eventService.List(e.Request.Context())
	if err != nil {
		return writeError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{"events": events})
}

// GetEvent - GET /api/v1/events/{slug}
func (h *EventHandler) GetEvent(e *core.RequestEvent) error {
	event, err := h.eventService.GetBySlug(e.Request.Context(), e.Request.PathValue("slug"))
	if err != nil {
		return writeError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{"event": event})
}

// GetSimilarEvents - GET /api/v1/events/{slug}/similar
func (h *EventHandler) GetSimilarEvents(e *core.RequestEvent) error {
	events, err := h.eventService.Similar(e.Request.Context(), e.Request.PathValue("slug"))
	if err != nil {
		return writeError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{"events": events})
}

// writeError maps pipeline failures onto API errors. Field violations
// travel in the error data so clients can report every problem at once.
func writeError(err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return apis.NewBadRequestError("Validation failed", verrs)
	}

	switch {
	case errors.Is(err, status.ErrDuplicateSlug):
		return apis.NewApiError(http.StatusConflict, "An event with this slug already exists", nil)
	case errors.Is(err, status.ErrEventReferenceMissing):
		return apis.NewBadRequestError("Referenced event does not exist", nil)
	case errors.Is(err, status.ErrEventNotFound):
		return apis.NewNotFoundError("Event not found", nil)
	default:
		return apis.NewApiError(http.StatusInternalServerError, "Something went wrong", nil)
	}
}
