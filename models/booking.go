package models

import (
	"time"

	"github.com/spf13/cast"
)

// Booking weakly references an event by identifier. It never owns the
// event; existence is verified at write time instead of through a
// storage-level foreign key.
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) Doc() map[string]any {
	return map[string]any{
		"eventId": b.EventID,
		"email":   b.Email,
	}
}

func BookingFromDoc(doc map[string]any) *Booking {
	return &Booking{
		ID:        cast.ToString(doc["id"]),
		EventID:   cast.ToString(doc["eventId"]),
		Email:     cast.ToString(doc["email"]),
		CreatedAt: cast.ToTime(doc["createdAt"]),
		UpdatedAt: cast.ToTime(doc["updatedAt"]),
	}
}
