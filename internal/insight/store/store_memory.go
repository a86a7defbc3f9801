package store

import (
	"context"
	"sync"

	"insightboard/internal/insight/models"
)

// InMemoryStore keeps records in process memory. Used for tests and for
// running the server without a database.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []models.Record
}

func NewInMemoryStore(records ...models.Record) *InMemoryStore {
	s := &InMemoryStore{}
	s.records = cloneAll(records)
	return s
}

func (s *InMemoryStore) List(_ context.Context) ([]models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.records), nil
}

func (s *InMemoryStore) Replace(_ context.Context, records []models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = cloneAll(records)
	return nil
}

func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

func (s *InMemoryStore) Ping(_ context.Context) error {
	return nil
}

func cloneAll(records []models.Record) []models.Record {
	out := make([]models.Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
