package store

import (
	"context"
	"sync"

	"github.com/wanderlust-app/backend/internal/domain"
)

// MemoryStore is the default in-process Store. Like the Postgres
// implementation it hands out a fresh tree on every fetch, so concurrent
// readers never share entities with a caller mutating its fetched copy.
type MemoryStore struct {
	mu   sync.Mutex
	days []*domain.Day
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// FetchAll returns a detached copy of the day sequence sorted by date
// ascending. Mutations to the returned tree are invisible until Save.
func (s *MemoryStore) FetchAll(_ context.Context) ([]*domain.Day, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	domain.SortDays(s.days)
	out := make([]*domain.Day, 0, len(s.days))
	for _, d := range s.days {
		out = append(out, d.Clone())
	}
	return out, nil
}

// Insert appends a day to the document. The store takes a copy, so the
// caller keeps sole ownership of the pointer it passed in.
func (s *MemoryStore) Insert(_ context.Context, day *domain.Day) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = append(s.days, day.Clone())
	return nil
}

// Save replaces the stored sequence with a copy of the given one.
func (s *MemoryStore) Save(_ context.Context, days []*domain.Day) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]*domain.Day, 0, len(days))
	for _, d := range days {
		next = append(next, d.Clone())
	}
	s.days = next
	return nil
}
