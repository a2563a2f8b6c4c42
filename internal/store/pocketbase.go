package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"event-system/internal/status"
)

// PocketBaseStore adapts a PocketBase app to the Store interface. The
// slug unique index lives on the events collection, so uniqueness
// conflicts surface here, not in the interceptors.
type PocketBaseStore struct {
	app core.App
}

func NewPocketBaseStore(app core.App) *PocketBaseStore {
	return &PocketBaseStore{app: app}
}

func (s *PocketBaseStore) Insert(ctx context.Context, collection string, doc map[string]any) (string, error) {
	col, err := s.app.FindCollectionByNameOrId(collection)
	if err != nil {
		return "", status.StoreFailure("insert: find collection", err)
	}

	record := core.NewRecord(col)
	for name, value := range doc {
		record.Set(name, value)
	}

	if err := s.app.Save(record); err != nil {
		return "", mapSaveError(err)
	}

	return record.Id, nil
}

func (s *PocketBaseStore) FindOne(ctx context.Context, collection string, filter dbx.HashExp) (map[string]any, error) {
	record := &core.Record{}
	err := s.app.RecordQuery(collection).
		AndWhere(filter).
		Limit(1).
		WithContext(ctx).
		One(record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, status.ErrEventNotFound
	}
	if err != nil {
		return nil, status.StoreFailure("findOne", err)
	}

	return DocFromRecord(record), nil
}

func (s *PocketBaseStore) Find(ctx context.Context, collection string, filter dbx.HashExp, sort string, limit int) ([]map[string]any, error) {
	query := s.app.RecordQuery(collection).WithContext(ctx)
	if filter != nil {
		query.AndWhere(filter)
	}
	if sort != "" {
		query.OrderBy(orderExpr(sort))
	}
	if limit > 0 {
		query.Limit(int64(limit))
	}

	records := []*core.Record{}
	if err := query.All(&records); err != nil {
		return nil, status.StoreFailure("find", err)
	}

	docs := make([]map[string]any, 0, len(records))
	for _, record := range records {
		docs = append(docs, DocFromRecord(record))
	}
	return docs, nil
}

func (s *PocketBaseStore) Update(ctx context.Context, collection, id string, doc map[string]any) error {
	record, err := s.app.FindRecordById(collection, id)
	if err != nil {
		return status.ErrEventNotFound
	}

	for name, value := range doc {
		record.Set(name, value)
	}

	if err := s.app.Save(record); err != nil {
		return mapSaveError(err)
	}
	return nil
}

func (s *PocketBaseStore) Exists(ctx context.Context, collection string, filter dbx.HashExp) (bool, error) {
	var total int64
	err := s.app.DB().
		Select("count(*)").
		From(collection).
		AndWhere(filter).
		WithContext(ctx).
		Row(&total)
	if err != nil {
		return false, status.StoreFailure("exists", err)
	}

	return total > 0, nil
}

// mapSaveError translates a PocketBase save failure. A violated unique
// index reports as a per-field "not unique" validation error; only the
// slug carries one, so that case becomes ErrDuplicateSlug.
func mapSaveError(err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		if _, ok := verrs["slug"]; ok {
			return status.ErrDuplicateSlug
		}
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") &&
		strings.Contains(err.Error(), "slug") {
		return status.ErrDuplicateSlug
	}

	return status.StoreFailure("save", err)
}

// DocFromRecord flattens a record into the generic document shape the
// rest of the pipeline works with. JSON fields are decoded and datetimes
// become time.Time values.
func DocFromRecord(record *core.Record) map[string]any {
	doc := record.FieldsData()
	doc["id"] = record.Id

	for name, value := range doc {
		switch v := value.(type) {
		case types.JSONRaw:
			var decoded any
			if err := json.Unmarshal(v, &decoded); err == nil {
				doc[name] = decoded
			}
		case types.DateTime:
			doc[name] = v.Time()
		}
	}

	return doc
}

func orderExpr(sort string) string {
	if strings.HasPrefix(sort, "-") {
		return "[[" + strings.TrimPrefix(sort, "-") + "]] DESC"
	}
	return "[[" + sort + "]] ASC"
}
