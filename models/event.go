package models

import (
	"time"

	"github.com/spf13/cast"
)

// Mode values accepted for an event.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"` // canonical YYYY-MM-DD
	Time        string    `json:"time"` // canonical 24h HH:MM
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Doc returns the storable field map. ID and timestamps are managed by
// the store and never written from here.
func (e *Event) Doc() map[string]any {
	return map[string]any{
		"title":       e.Title,
		"slug":        e.Slug,
		"description": e.Description,
		"overview":    e.Overview,
		"image":       e.Image,
		"venue":       e.Venue,
		"location":    e.Location,
		"date":        e.Date,
		"time":        e.Time,
		"mode":        e.Mode,
		"audience":    e.Audience,
		"agenda":      e.Agenda,
		"organizer":   e.Organizer,
		"tags":        e.Tags,
	}
}

func EventFromDoc(doc map[string]any) *Event {
	return &Event{
		ID:          cast.ToString(doc["id"]),
		Title:       cast.ToString(doc["title"]),
		Slug:        cast.ToString(doc["slug"]),
		Description: cast.ToString(doc["description"]),
		Overview:    cast.ToString(doc["overview"]),
		Image:       cast.ToString(doc["image"]),
		Venue:       cast.ToString(doc["venue"]),
		Location:    cast.ToString(doc["location"]),
		Date:        cast.ToString(doc["date"]),
		Time:        cast.ToString(doc["time"]),
		Mode:        cast.ToString(doc["mode"]),
		Audience:    cast.ToString(doc["audience"]),
		Agenda:      cast.ToStringSlice(doc["agenda"]),
		Organizer:   cast.ToString(doc["organizer"]),
		Tags:        cast.ToStringSlice(doc["tags"]),
		CreatedAt:   cast.ToTime(doc["createdAt"]),
		UpdatedAt:   cast.ToTime(doc["updatedAt"]),
	}
}

// SharesTag reports whether the event carries at least one of the given
// tags. Used for the similar-events lookup.
func (e *Event) SharesTag(tags []string) bool {
	for _, t := range tags {
		for _, own := range e.Tags {
			if own == t {
				return true
			}
		}
	}
	return false
}
