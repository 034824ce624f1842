// Package store provides the document store abstraction used by the API
// layer. Records are schemaless maps grouped into named collections; the
// concrete backend is MongoDB in production and an in-memory store in tests.
package store

import (
	"context"
)

// Filter is an equality filter on document fields. An empty filter matches
// every document in the collection.
type Filter map[string]any

// Document is a raw record as returned by the backend, including any
// store-internal fields such as "_id".
type Document map[string]any

// Store is the document store contract. GetDocuments fails softly from the
// caller's perspective: API handlers catch the error and degrade to static
// defaults rather than failing the request.
type Store interface {
	// GetDocuments returns documents from a collection matching the filter,
	// in the backend's natural (insertion) order. A limit of 0 means
	// unbounded.
	GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)

	// CreateDocument inserts a single record into a collection and returns
	// the store-assigned identifier.
	CreateDocument(ctx context.Context, collection string, record any) (string, error)

	// ListCollectionNames returns the names of all collections.
	ListCollectionNames(ctx context.Context) ([]string, error)

	// Name returns the backend database name, for diagnostics.
	Name() string

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
