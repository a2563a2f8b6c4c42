// Package interceptors holds the write pipeline that every record passes
// through before it reaches storage: field validation, slug derivation
// and date/time canonicalization for events, reference checking for
// bookings. Interceptors mutate the record in place and never talk to
// the store for events; global slug uniqueness stays store-enforced.
package interceptors

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"event-system/internal/normalize"
	"event-system/internal/validators"
	"event-system/models"
)

type EventInterceptor struct{}

func NewEventInterceptor() *EventInterceptor {
	return &EventInterceptor{}
}

// InterceptCreate validates and normalizes a new event. The slug is
// always derived from the title on create.
func (i *EventInterceptor) InterceptCreate(e *models.Event) error {
	return i.run(e, true)
}

// InterceptUpdate validates and normalizes an event update. The slug is
// re-derived only when the title changed or no slug is set; date and
// time are re-normalized unconditionally, since stored values are never
// trusted to already be canonical.
func (i *EventInterceptor) InterceptUpdate(e *models.Event, titleChanged bool) error {
	return i.run(e, titleChanged || e.Slug == "")
}

// run reports ALL violations at once as validation.Errors keyed by
// field name. When a field fails both shape validation and
// normalization, the normalization error is the one reported.
func (i *EventInterceptor) run(e *models.Event, deriveSlug bool) error {
	errs := validation.Errors{}

	if err := validators.ValidateEvent(e); err != nil {
		verrs, ok := err.(validation.Errors)
		if !ok {
			return err
		}
		for field, ferr := range verrs {
			errs[field] = ferr
		}
	}

	if deriveSlug {
		slug, err := normalize.Slug(e.Title)
		if err != nil {
			errs["slug"] = err
		} else {
			e.Slug = slug
		}
	}

	if date, err := normalize.Date(e.Date); err != nil {
		errs["date"] = err
	} else {
		e.Date = date
	}

	if clock, err := normalize.Clock(e.Time); err != nil {
		errs["time"] = err
	} else {
		e.Time = clock
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
