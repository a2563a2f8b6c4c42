package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		collection := core.NewBaseCollection("bookings")

		collection.Fields.Add(
			// Deliberately a plain text field, not a relation: the booking
			// only weakly references the event and existence is verified by
			// the write interceptor, not by the store.
			&core.TextField{Name: "eventId", Required: true},
			&core.TextField{Name: "email", Required: true},
			&core.AutodateField{Name: "createdAt", OnCreate: true},
			&core.AutodateField{Name: "updatedAt", OnCreate: true, OnUpdate: true},
		)

		collection.AddIndex("idx_bookings_eventId", false, "eventId", "")

		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("bookings")
		if err != nil {
			return err
		}

		return app.Delete(collection)
	})
}
