// Package store is the document store collaborator for the itinerary.
// Every fetch returns a detached tree: callers mutate their own copy and
// call Save to persist it (persist-on-mutate). Readers therefore never
// observe a half-applied edit-set, and concurrent reads race with nothing.
package store

import (
	"context"

	"github.com/wanderlust-app/backend/internal/domain"
)

// Store defines the persistence operations for the itinerary document.
type Store interface {
	// FetchAll returns every day sorted by date ascending, as a detached
	// tree the caller may mutate. Edit day indices are resolved against
	// exactly this order.
	FetchAll(ctx context.Context) ([]*domain.Day, error)

	// Insert adds a new day to the document.
	Insert(ctx context.Context, day *domain.Day) error

	// Save persists the full day sequence. Called after every applied
	// edit-set and after bulk import.
	Save(ctx context.Context, days []*domain.Day) error
}
