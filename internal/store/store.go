// Package store defines the document-store capability the write pipeline
// consumes. The concrete backend (PocketBase collections) lives behind
// this interface so validators and interceptors stay storage-free.
package store

import (
	"context"

	"github.com/pocketbase/dbx"
)

type Store interface {
	// Insert persists a new document and returns its generated id.
	Insert(ctx context.Context, collection string, doc map[string]any) (string, error)

	// FindOne returns the first document matching the filter, or
	// status.ErrEventNotFound-compatible nil result via error.
	FindOne(ctx context.Context, collection string, filter dbx.HashExp) (map[string]any, error)

	// Find returns documents matching the filter. A nil filter matches
	// everything. sort uses record field names, "-" prefix for descending.
	Find(ctx context.Context, collection string, filter dbx.HashExp, sort string, limit int) ([]map[string]any, error)

	// Update overwrites the given fields of an existing document.
	Update(ctx context.Context, collection, id string, doc map[string]any) error

	// Exists reports whether any document matches the filter, without
	// fetching it.
	Exists(ctx context.Context, collection string, filter dbx.HashExp) (bool, error)
}
