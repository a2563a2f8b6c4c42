package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		collection := core.NewBaseCollection("events")

		collection.Fields.Add(
			&core.TextField{Name: "title", Required: true},
			&core.TextField{Name: "slug", Required: true},
			&core.TextField{Name: "description", Required: true, Max: 1000},
			&core.TextField{Name: "overview", Required: true, Max: 500},
			&core.URLField{Name: "image", Required: true},
			&core.TextField{Name: "venue", Required: true},
			&core.TextField{Name: "location", Required: true},
			// Stored in canonical form only; normalization happens in the
			// write interceptor, never in the schema.
			&core.TextField{Name: "date", Required: true},
			&core.TextField{Name: "time", Required: true},
			&core.SelectField{Name: "mode", Required: true, MaxSelect: 1, Values: []string{"online", "offline", "hybrid"}},
			&core.TextField{Name: "audience", Required: true},
			&core.JSONField{Name: "agenda", Required: true, MaxSize: 50000},
			&core.TextField{Name: "organizer", Required: true},
			&core.JSONField{Name: "tags", Required: true, MaxSize: 10000},
			&core.AutodateField{Name: "createdAt", OnCreate: true},
			&core.AutodateField{Name: "updatedAt", OnCreate: true, OnUpdate: true},
		)

		// Slug uniqueness is enforced here, at the store level. Concurrent
		// creates that derive the same slug race down to this index.
		collection.AddIndex("idx_events_slug", true, "slug", "")

		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("events")
		if err != nil {
			return err
		}

		return app.Delete(collection)
	})
}
