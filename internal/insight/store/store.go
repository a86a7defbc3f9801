// Package store persists the insight records. Every backend holds one flat
// collection that is read in full and replaced wholesale by the loader.
package store

import (
	"context"

	"insightboard/internal/insight/models"
)

// Store is the contract shared by the record backends.
type Store interface {
	// List returns every record in insertion order.
	List(ctx context.Context) ([]models.Record, error)
	// Replace drops every existing record and writes records in order.
	Replace(ctx context.Context, records []models.Record) error
	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

var (
	_ Store = (*InMemoryStore)(nil)
	_ Store = (*MongoStore)(nil)
	_ Store = (*PostgresStore)(nil)
	_ Store = (*Guarded)(nil)
)
