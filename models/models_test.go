package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventDoc_OmitsStoreManagedFields(t *testing.T) {
	e := &Event{
		ID:        "abc123def456ghi",
		Title:     "Dev Conf 2025",
		Slug:      "dev-conf-2025",
		CreatedAt: time.Now(),
	}

	doc := e.Doc()
	assert.NotContains(t, doc, "id")
	assert.NotContains(t, doc, "createdAt")
	assert.NotContains(t, doc, "updatedAt")
	assert.Equal(t, "dev-conf-2025", doc["slug"])
}

func TestEventFromDoc_DecodedJSONFields(t *testing.T) {
	// JSON columns come back from the store as []any, not []string.
	doc := map[string]any{
		"id":     "abc123def456ghi",
		"title":  "Dev Conf 2025",
		"slug":   "dev-conf-2025",
		"agenda": []any{"Opening keynote", "Workshops"},
		"tags":   []any{"go", "tooling"},
	}

	e := EventFromDoc(doc)
	assert.Equal(t, "abc123def456ghi", e.ID)
	assert.Equal(t, []string{"Opening keynote", "Workshops"}, e.Agenda)
	assert.Equal(t, []string{"go", "tooling"}, e.Tags)
}

func TestSharesTag(t *testing.T) {
	e := &Event{Tags: []string{"go", "backend"}}

	assert.True(t, e.SharesTag([]string{"backend", "design"}))
	assert.False(t, e.SharesTag([]string{"design"}))
	assert.False(t, e.SharesTag(nil))
	assert.False(t, (&Event{}).SharesTag([]string{"go"}))
}

func TestBookingDoc(t *testing.T) {
	b := &Booking{
		ID:      "xyz",
		EventID: "abc123def456ghi",
		Email:   "user@example.com",
	}

	doc := b.Doc()
	assert.Equal(t, map[string]any{
		"eventId": "abc123def456ghi",
		"email":   "user@example.com",
	}, doc)

	restored := BookingFromDoc(map[string]any{
		"id":      "booking000000001",
		"eventId": "abc123def456ghi",
		"email":   "user@example.com",
	})
	require.Equal(t, "booking000000001", restored.ID)
	assert.Equal(t, "abc123def456ghi", restored.EventID)
}
