package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pocketbase/dbx"

	"event-system/internal/cache"
	"event-system/internal/interceptors"
	"event-system/internal/notify"
	"event-system/internal/status"
	"event-system/internal/store"
	"event-system/models"
	"event-system/monitoring"
)

const EventsCollection = "events"

type EventService struct {
	store       store.Store
	cache       *cache.EventCache
	interceptor *interceptors.EventInterceptor
	notifier    *notify.Notifier
}

func NewEventService(st store.Store, eventCache *cache.EventCache, notifier *notify.Notifier) *EventService {
	return &EventService{
		store:       st,
		cache:       eventCache,
		interceptor: interceptors.NewEventInterceptor(),
		notifier:    notifier,
	}
}

// Create runs the write interceptor and only then touches the store.
// Slug uniqueness is left to the store's unique index; a conflict comes
// back as status.ErrDuplicateSlug.
func (s *EventService) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	started := time.Now()
	err := s.interceptor.InterceptCreate(event)
	monitoring.TrackIntercept(EventsCollection, time.Since(started))
	if err != nil {
		trackWriteFailure(EventsCollection, err)
		return nil, err
	}

	id, err := s.store.Insert(ctx, EventsCollection, event.Doc())
	if err != nil {
		trackWriteFailure(EventsCollection, err)
		return nil, err
	}
	event.ID = id

	monitoring.TrackWrite(EventsCollection, monitoring.WriteOK)
	s.notifier.EventCreated(ctx, event)
	slog.Info("event created", "id", event.ID, "slug", event.Slug)

	return event, nil
}

// Update merges the incoming fields over the stored document and runs
// the interceptor on the result. The slug is re-derived only when the
// title changed (or no slug was stored); date and time are always
// re-normalized, even when they were not part of this update.
func (s *EventService) Update(ctx context.Context, id string, incoming *models.Event) (*models.Event, error) {
	doc, err := s.store.FindOne(ctx, EventsCollection, dbx.HashExp{"id": id})
	if err != nil {
		return nil, err
	}
	current := models.EventFromDoc(doc)

	merged := mergeEvent(current, incoming)
	titleChanged := merged.Title != current.Title

	started := time.Now()
	err = s.interceptor.InterceptUpdate(merged, titleChanged)
	monitoring.TrackIntercept(EventsCollection, time.Since(started))
	if err != nil {
		trackWriteFailure(EventsCollection, err)
		return nil, err
	}

	if err := s.store.Update(ctx, EventsCollection, id, merged.Doc()); err != nil {
		trackWriteFailure(EventsCollection, err)
		return nil, err
	}

	// The slug may have changed, so both cache entries go.
	s.cache.Invalidate(ctx, current.Slug)
	s.cache.Invalidate(ctx, merged.Slug)

	monitoring.TrackWrite(EventsCollection, monitoring.WriteOK)
	s.notifier.EventUpdated(ctx, merged)
	slog.Info("event updated", "id", id, "slug", merged.Slug, "titleChanged", titleChanged)

	return merged, nil
}

// GetBySlug reads through the cache. Slugs arrive from URLs, so the
// lookup value is trimmed and lowercased first.
func (s *EventService) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	sanitized := strings.ToLower(strings.TrimSpace(slug))
	if sanitized == "" {
		return nil, status.ErrEventNotFound
	}

	if cached := s.cache.Get(ctx, sanitized); cached != nil {
		monitoring.TrackCacheLookup("hit")
		return cached, nil
	}
	monitoring.TrackCacheLookup("miss")

	doc, err := s.store.FindOne(ctx, EventsCollection, dbx.HashExp{"slug": sanitized})
	if err != nil {
		return nil, err
	}

	event := models.EventFromDoc(doc)
	if err := s.cache.Set(ctx, event); err != nil {
		slog.Warn("event cache set failed", "slug", event.Slug, "error", err)
	}

	return event, nil
}

// List returns all events, newest first.
func (s *EventService) List(ctx context.Context) ([]*models.Event, error) {
	docs, err := s.store.Find(ctx, EventsCollection, nil, "-createdAt", 0)
	if err != nil {
		return nil, err
	}

	events := make([]*models.Event, 0, len(docs))
	for _, doc := range docs {
		events = append(events, models.EventFromDoc(doc))
	}
	return events, nil
}

// Similar returns other events sharing at least one tag with the event
// behind the given slug.
func (s *EventService) Similar(ctx context.Context, slug string) ([]*models.Event, error) {
	base, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	similar := make([]*models.Event, 0)
	for _, event := range all {
		if event.ID == base.ID {
			continue
		}
		if event.SharesTag(base.Tags) {
			similar = append(similar, event)
		}
	}
	return similar, nil
}

// ExistsEvent satisfies interceptors.EventExister through a count query,
// never a full fetch.
func (s *EventService) ExistsEvent(ctx context.Context, eventID string) (bool, error) {
	return s.store.Exists(ctx, EventsCollection, dbx.HashExp{"id": eventID})
}

// mergeEvent overlays the non-zero incoming fields onto the stored
// event, so a partial update still carries the raw values the
// interceptor must re-normalize.
func mergeEvent(current, incoming *models.Event) *models.Event {
	merged := *current

	if incoming.Title != "" {
		merged.Title = incoming.Title
	}
	if incoming.Description != "" {
		merged.Description = incoming.Description
	}
	if incoming.Overview != "" {
		merged.Overview = incoming.Overview
	}
	if incoming.Image != "" {
		merged.Image = incoming.Image
	}
	if incoming.Venue != "" {
		merged.Venue = incoming.Venue
	}
	if incoming.Location != "" {
		merged.Location = incoming.Location
	}
	if incoming.Date != "" {
		merged.Date = incoming.Date
	}
	if incoming.Time != "" {
		merged.Time = incoming.Time
	}
	if incoming.Mode != "" {
		merged.Mode = incoming.Mode
	}
	if incoming.Audience != "" {
		merged.Audience = incoming.Audience
	}
	if len(incoming.Agenda) > 0 {
		merged.Agenda = incoming.Agenda
	}
	if incoming.Organizer != "" {
		merged.Organizer = incoming.Organizer
	}
	if len(incoming.Tags) > 0 {
		merged.Tags = incoming.Tags
	}

	return &merged
}
