package store

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"

	"event-system/internal/status"
)

func TestMapSaveError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			"slug validation conflict",
			validation.Errors{"slug": errors.New("Value must be unique.")},
			status.ErrDuplicateSlug,
		},
		{
			"raw sqlite unique violation",
			errors.New("UNIQUE constraint failed: events.slug"),
			status.ErrDuplicateSlug,
		},
		{
			"other field validation error",
			validation.Errors{"title": errors.New("Cannot be blank.")},
			status.ErrStore,
		},
		{
			"unrelated failure",
			errors.New("database is locked"),
			status.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapSaveError(tt.err), tt.want)
		})
	}
}

func TestOrderExpr(t *testing.T) {
	assert.Equal(t, "[[createdAt]] DESC", orderExpr("-createdAt"))
	assert.Equal(t, "[[title]] ASC", orderExpr("title"))
}
