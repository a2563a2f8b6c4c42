package validators

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-system/models"
)

func validEvent() *models.Event {
	return &models.Event{
		Title:       "Dev Conf 2025",
		Description: "A conference about developer tooling.",
		Overview:    "Talks and workshops.",
		Image:       "https://example.com/devconf.png",
		Venue:       "Convention Center",
		Location:    "Vientiane",
		Date:        "2025-03-05",
		Time:        "09:30",
		Mode:        models.ModeOffline,
		Audience:    "Developers",
		Agenda:      []string{"Opening keynote", "Workshops"},
		Organizer:   "DevConf Org",
		Tags:        []string{"go", "tooling"},
	}
}

func TestValidateEvent_Valid(t *testing.T) {
	assert.NoError(t, ValidateEvent(validEvent()))
}

func TestValidateEvent_BlankFields(t *testing.T) {
	e := validEvent()
	e.Title = "   "
	e.Venue = ""

	err := ValidateEvent(e)
	require.Error(t, err)

	verrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, verrs, "title")
	assert.Contains(t, verrs, "venue")
	assert.NotContains(t, verrs, "location")
}

func TestValidateEvent_EmptyTags(t *testing.T) {
	e := validEvent()
	e.Tags = []string{}

	err := ValidateEvent(e)
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "tags")
}

func TestValidateEvent_BlankAgendaItems(t *testing.T) {
	e := validEvent()
	e.Agenda = []string{"", "   "}

	err := ValidateEvent(e)
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "agenda")
}

func TestValidateEvent_Mode(t *testing.T) {
	e := validEvent()
	e.Mode = "in-person"

	err := ValidateEvent(e)
	require.Error(t, err)

	verrs := err.(validation.Errors)
	require.Contains(t, verrs, "mode")
	assert.Equal(t, "must be either online, offline, or hybrid", verrs["mode"].Error())

	for _, mode := range []string{models.ModeOnline, models.ModeOffline, models.ModeHybrid} {
		e.Mode = mode
		assert.NoError(t, ValidateEvent(e), "mode %q", mode)
	}
}

func TestValidateEvent_LengthLimits(t *testing.T) {
	e := validEvent()
	e.Description = strings.Repeat("x", 1001)
	e.Overview = strings.Repeat("y", 501)

	err := ValidateEvent(e)
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "description")
	assert.Contains(t, verrs, "overview")

	e.Description = strings.Repeat("x", 1000)
	e.Overview = strings.Repeat("y", 500)
	assert.NoError(t, ValidateEvent(e))
}

func TestValidateEvent_LengthLimitsCountRunes(t *testing.T) {
	// Multibyte text within the character limits must pass even though
	// its byte length is double.
	e := validEvent()
	e.Description = strings.Repeat("é", 1000)
	e.Overview = strings.Repeat("é", 400)
	assert.NoError(t, ValidateEvent(e))

	e.Overview = strings.Repeat("é", 501)
	err := ValidateEvent(e)
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "overview")
}

func TestValidateEvent_ReportsAllViolations(t *testing.T) {
	err := ValidateEvent(&models.Event{})
	require.Error(t, err)

	verrs := err.(validation.Errors)
	for _, field := range []string{
		"title", "description", "overview", "image", "venue", "location",
		"date", "time", "mode", "audience", "agenda", "organizer", "tags",
	} {
		assert.Contains(t, verrs, field)
	}
}
